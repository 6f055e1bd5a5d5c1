package domain

import "strings"

// ActionType - Внутренний числовой идентификатор действия
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionClick
	ActionHoverEnter
	ActionHoverExit
	ActionToggle
	ActionSetVisibleBulk
	ActionClearSelection
	ActionBook
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":             ActionInit,
	"CLICK":            ActionClick,
	"HOVER_ENTER":      ActionHoverEnter,
	"HOVER_EXIT":       ActionHoverExit,
	"TOGGLE":           ActionToggle,
	"SET_VISIBLE_BULK": ActionSetVisibleBulk,
	"CLEAR_SELECTION":  ActionClearSelection,
	"BOOK":             ActionBook,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionInit:           "INIT",
	ActionClick:          "CLICK",
	ActionHoverEnter:     "HOVER_ENTER",
	ActionHoverExit:      "HOVER_EXIT",
	ActionToggle:         "TOGGLE",
	ActionSetVisibleBulk: "SET_VISIBLE_BULK",
	ActionClearSelection: "CLEAR_SELECTION",
	ActionBook:           "BOOK",
}

// ParseAction конвертирует строку команды клиента во внутренний тип.
func ParseAction(s string) ActionType {
	if t, ok := actionStringToCmd[strings.ToUpper(s)]; ok {
		return t
	}
	return ActionUnknown
}

// String возвращает строковое имя действия (для логов и реплеев).
func (a ActionType) String() string {
	if s, ok := actionCmdToString[a]; ok {
		return s
	}
	return "UNKNOWN"
}
