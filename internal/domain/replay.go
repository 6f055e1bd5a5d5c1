package domain

import "encoding/json"

// ReplayAction - одно записанное действие пользователя в сессии просмотра.
type ReplayAction struct {
	Tick    int             `json:"tick"` // Порядковый номер команды в сессии
	Action  ActionType      `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ReplaySession - полная запись интерактивной сессии просмотра плана.
// Содержит поток команд, которого достаточно, чтобы воспроизвести все
// переходы состояния видимости/выбора против того же каталога.
type ReplaySession struct {
	SessionID string
	Timestamp int64 // Unix seconds на момент начала записи
	Actions   []ReplayAction
}
