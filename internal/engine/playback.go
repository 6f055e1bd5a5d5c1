package engine

import (
	"github.com/sirupsen/logrus"

	"floorview-server/internal/domain"
	"floorview-server/internal/engine/handlers"
	"floorview-server/pkg/logger"
)

// Playback прогоняет записанную сессию против текущего каталога без
// клиента и без хаба: команды выполняются синхронно, переходы состояния
// уходят в лог. Используется для разбора пользовательских сценариев
// и регрессий декомпозиции.
func (s *ViewService) Playback(rs *domain.ReplaySession) {
	log := logger.Component("playback").WithField("session", rs.SessionID)
	log.WithField("actions", len(rs.Actions)).Info("Playback started")

	sess := newSession(rs.SessionID)
	sess.State.Initialize(s.Catalog.Names())

	ctx := handlers.Context{
		Catalog:    s.Catalog,
		State:      sess.State,
		Dispatcher: sess.Dispatcher,
		// Внешний сервис бронирования в реплее не дергаем.
	}

	for _, act := range rs.Actions {
		handler, ok := s.handlers[act.Action]
		if !ok {
			log.WithField("action", act.Action.String()).Warn("No handler for recorded action, skipping")
			continue
		}

		if _, err := handler(ctx, act.Payload); err != nil {
			log.WithError(err).WithField("tick", act.Tick).Warn("Recorded action failed")
			continue
		}

		log.WithFields(logrus.Fields{
			"tick":     act.Tick,
			"action":   act.Action.String(),
			"visible":  sess.State.VisibleCount(),
			"selected": sess.State.Selected(),
		}).Info("Replayed action")
	}

	log.Info("Playback finished")
}
