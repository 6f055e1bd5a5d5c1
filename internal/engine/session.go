package engine

import (
	"fmt"
	"time"

	"floorview-server/internal/domain"
	"floorview-server/internal/systems"
	"floorview-server/pkg/api"
)

// ViewSession - одна сессия просмотра плана. Живет от подключения клиента
// до его ухода; между сессиями ничего не сохраняется. Всё состояние
// мутируется только из цикла команд сервиса.
type ViewSession struct {
	ID         string
	State      *systems.VisibilityState
	Dispatcher *systems.Dispatcher

	// Seq - порядковый номер обработанной команды (тик сессии).
	Seq       int
	StartedAt int64

	Logs      []api.LogEntry
	Recording []domain.ReplayAction

	// lastDetail - панель деталей текущего выбора; живет, пока выбор
	// не снят. НЕ дублирует состояние видимости - только данные панели.
	lastDetail *api.DetailView
}

func newSession(id string) *ViewSession {
	state := systems.NewVisibilityState()
	return &ViewSession{
		ID:         id,
		State:      state,
		Dispatcher: systems.NewDispatcher(state),
		StartedAt:  time.Now().Unix(),
	}
}

// AddLog добавляет запись в лог сессии (уходит со следующим снимком).
func (s *ViewSession) AddLog(text, logType string) {
	s.Logs = append(s.Logs, api.LogEntry{
		ID:        fmt.Sprintf("%d", time.Now().UnixNano()),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
}

// ToReplay упаковывает записанный поток команд сессии.
func (s *ViewSession) ToReplay() *domain.ReplaySession {
	return &domain.ReplaySession{
		SessionID: s.ID,
		Timestamp: s.StartedAt,
		Actions:   s.Recording,
	}
}
