package domain

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		input    string
		expected ActionType
	}{
		{"CLICK", ActionClick},
		{"click", ActionClick},
		{"Click", ActionClick},
		{"HOVER_ENTER", ActionHoverEnter},
		{"HOVER_EXIT", ActionHoverExit},
		{"TOGGLE", ActionToggle},
		{"SET_VISIBLE_BULK", ActionSetVisibleBulk},
		{"CLEAR_SELECTION", ActionClearSelection},
		{"BOOK", ActionBook},
		{"INIT", ActionInit},
		{"UNKNOWN_ACTION", ActionUnknown},
		{"", ActionUnknown},
	}

	for _, tt := range tests {
		result := ParseAction(tt.input)
		if result != tt.expected {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.input, result, tt.expected)
		}
	}
}

func TestActionType_String(t *testing.T) {
	tests := []struct {
		action   ActionType
		expected string
	}{
		{ActionClick, "CLICK"},
		{ActionSetVisibleBulk, "SET_VISIBLE_BULK"},
		{ActionUnknown, "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("ActionType(%d).String() = %q, want %q", tt.action, got, tt.expected)
		}
	}
}
