package engine

import (
	"floorview-server/internal/domain"
	"floorview-server/internal/engine/handlers"
	"floorview-server/internal/engine/handlers/actions"
	"floorview-server/internal/floorplan"
	"floorview-server/internal/network"
	"floorview-server/pkg/api"
	"floorview-server/pkg/logger"
)

// ViewService - ядро сервера просмотра: неизменяемый каталог плана плюс
// набор живых сессий. Все команды всех сессий сериализуются через один
// канал и обрабатываются одним циклом - хендлер гарантированно доходит
// до конца раньше, чем берется следующая команда, поэтому состояние
// сессий не нуждается в блокировках.
type ViewService struct {
	Catalog *floorplan.Catalog
	Scene   floorplan.SceneConfig

	// Sessions принадлежит циклу runLoop; снаружи читается только на
	// shutdown, когда цикл уже остановлен.
	Sessions map[string]*ViewSession

	CommandChan chan domain.InternalCommand
	JoinChan    chan string
	LeaveChan   chan string
	Hub         *network.Broadcaster

	Booking handlers.BookingGateway // nil, если сервис не сконфигурирован
	Replays ReplayStore             // nil, если запись сессий выключена

	handlers map[domain.ActionType]handlers.HandlerFunc

	// warnedKinds гасит повтор warning про категорию без привязки рендера.
	warnedKinds map[string]bool

	quit chan struct{}
	done chan struct{}
}

// ReplayStore - то, куда сервис складывает записи сессий.
// storage.ReplayService неявно реализует этот интерфейс.
type ReplayStore interface {
	Save(session *domain.ReplaySession) error
}

func NewService(cat *floorplan.Catalog, scene floorplan.SceneConfig) *ViewService {
	s := &ViewService{
		Catalog:     cat,
		Scene:       scene,
		Sessions:    make(map[string]*ViewSession),
		CommandChan: make(chan domain.InternalCommand, 100),
		JoinChan:    make(chan string, 8),
		LeaveChan:   make(chan string, 8),
		Hub:         network.NewBroadcaster(),
		handlers:    make(map[domain.ActionType]handlers.HandlerFunc),
		warnedKinds: make(map[string]bool),
		quit:        make(chan struct{}),
		done:        make(chan struct{}),
	}

	s.registerHandlers()
	return s
}

func (s *ViewService) registerHandlers() {
	s.handlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
	s.handlers[domain.ActionClick] = handlers.WithPayload(actions.HandleClick)
	s.handlers[domain.ActionHoverEnter] = handlers.WithPayload(actions.HandleHoverEnter)
	s.handlers[domain.ActionHoverExit] = handlers.WithEmptyPayload(actions.HandleHoverExit)
	s.handlers[domain.ActionToggle] = handlers.WithPayload(actions.HandleToggle)
	s.handlers[domain.ActionSetVisibleBulk] = handlers.WithPayload(actions.HandleSetVisibleBulk)
	s.handlers[domain.ActionClearSelection] = handlers.WithEmptyPayload(actions.HandleClearSelection)
	s.handlers[domain.ActionBook] = handlers.WithPayload(actions.HandleBook)
}

func (s *ViewService) Start() {
	go s.runLoop()
}

// Stop останавливает цикл команд и ждет его завершения.
// После возврата Sessions можно читать без гонок.
func (s *ViewService) Stop() {
	close(s.quit)
	<-s.done
}

// ProcessCommand принимает команду от внешнего мира (WebSocket)
func (s *ViewService) ProcessCommand(externalCmd api.ClientCommand) {
	actionType := domain.ParseAction(externalCmd.Action)
	if actionType == domain.ActionUnknown {
		logger.Component("engine").WithField("action", externalCmd.Action).
			Warn("Unknown action, ignoring")
		return
	}

	s.CommandChan <- domain.InternalCommand{
		Action:    actionType,
		SessionID: externalCmd.Token,
		Payload:   externalCmd.Payload,
	}
}

// --- COMMAND LOOP ---

func (s *ViewService) runLoop() {
	defer close(s.done)

	log := logger.Component("engine")
	log.Info("View command loop started")

	for {
		select {
		case id := <-s.JoinChan:
			s.join(id)

		case id := <-s.LeaveChan:
			s.leave(id)

		case cmd := <-s.CommandChan:
			s.execute(cmd)

		case <-s.quit:
			log.Info("View command loop stopped")
			return
		}
	}
}

// join создает сессию: множество видимости наполняется ВСЕМИ именами
// каталога (по умолчанию видно всё) ровно один раз.
func (s *ViewService) join(id string) {
	if _, ok := s.Sessions[id]; ok {
		return // реконнект под тем же токеном, состояние живо
	}

	sess := newSession(id)
	sess.State.Initialize(s.Catalog.Names())
	s.Sessions[id] = sess

	logger.Component("engine").WithField("session", id).Info("Session joined")
}

// leave сохраняет запись сессии и выбрасывает ее состояние.
func (s *ViewService) leave(id string) {
	sess, ok := s.Sessions[id]
	if !ok {
		return
	}

	if s.Replays != nil && len(sess.Recording) > 0 {
		if err := s.Replays.Save(sess.ToReplay()); err != nil {
			logger.Component("engine").WithError(err).Warn("failed to save session replay")
		}
	}

	delete(s.Sessions, id)
	logger.Component("engine").WithField("session", id).Info("Session left")
}

// executeCommand выполняет хендлер и публикует свежий снимок сцены.
func (s *ViewService) execute(cmd domain.InternalCommand) {
	sess, ok := s.Sessions[cmd.SessionID]
	if !ok {
		logger.Component("engine").WithField("session", cmd.SessionID).
			Warn("Command for unknown session, dropping")
		return
	}

	handler, ok := s.handlers[cmd.Action]
	if !ok {
		return
	}

	// Пишем команду в запись сессии ДО выполнения: реплей должен
	// содержать и команды, завершившиеся ошибкой валидации.
	sess.Recording = append(sess.Recording, domain.ReplayAction{
		Tick:    sess.Seq,
		Action:  cmd.Action,
		Payload: cmd.Payload,
	})

	ctx := handlers.Context{
		Catalog:    s.Catalog,
		State:      sess.State,
		Dispatcher: sess.Dispatcher,
		Booking:    s.Booking,
	}

	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		sess.AddLog(err.Error(), "ERROR")
	} else if result.Msg != "" {
		msgType := result.MsgType
		if msgType == "" {
			msgType = "INFO"
		}
		sess.AddLog(result.Msg, msgType)
	}

	if result.Detail != nil {
		sess.lastDetail = result.Detail
	}
	// Панель деталей живет ровно столько, сколько жив выбор.
	if sess.State.Selected() == "" {
		sess.lastDetail = nil
	}

	sess.Seq++
	s.publish(sess)
}

// publish отправляет сессии ее персональный снимок сцены.
func (s *ViewService) publish(sess *ViewSession) {
	// Снимок строить незачем, если сокет сессии уже отвалился от хаба.
	if !s.Hub.HasSubscriber(sess.ID) {
		sess.Logs = nil
		return
	}

	resp := s.BuildStateFor(sess)
	s.Hub.SendTo(sess.ID, *resp)

	// Логи очищаются ПОСЛЕ отправки: каждый снимок несет только новое.
	sess.Logs = nil
}
