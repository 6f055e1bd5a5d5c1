package systems

import "testing"

func TestVisibilityState_Initialize(t *testing.T) {
	s := NewVisibilityState()
	s.Select("old")
	s.SetHover("old")

	s.Initialize([]string{"a", "b", "c"})

	if s.VisibleCount() != 3 {
		t.Errorf("VisibleCount() = %d, want 3", s.VisibleCount())
	}
	if !s.IsVisible("a") || !s.IsVisible("c") {
		t.Error("all catalog names should be visible after Initialize")
	}
	if s.Selected() != "" || s.Hovered() != "" {
		t.Error("Initialize must reset selection and hover")
	}
}

func TestVisibilityState_Toggle(t *testing.T) {
	s := NewVisibilityState()
	s.Initialize([]string{"a", "b"})

	s.Toggle("a")
	if s.IsVisible("a") {
		t.Error("a should be hidden after toggle")
	}

	s.Toggle("a")
	if !s.IsVisible("a") {
		t.Error("a should be visible after second toggle")
	}

	// Toggle незнакомого имени просто добавляет его в множество.
	s.Toggle("x")
	if !s.IsVisible("x") {
		t.Error("toggling an absent name adds it")
	}
}

// Сценарий из бага с master-флагом: "скрыть всё", затем показать один
// объект поштучно. Видимым должен оказаться РОВНО этот объект.
func TestVisibilityState_BulkHideThenToggleOne(t *testing.T) {
	names := []string{"a", "b", "c", "d"}
	s := NewVisibilityState()
	s.Initialize(names)

	// 1. Скрыть всё.
	s.SetVisibleBulk(names, false)
	if s.VisibleCount() != 0 {
		t.Fatalf("after bulk hide VisibleCount() = %d, want 0", s.VisibleCount())
	}

	// 2. Показать один.
	s.Toggle("b")

	if !s.IsVisible("b") {
		t.Error("b should be visible")
	}
	if s.VisibleCount() != 1 {
		t.Errorf("exactly one object should be visible, got %d", s.VisibleCount())
	}
}

func TestVisibilityState_BulkShow(t *testing.T) {
	names := []string{"a", "b", "c"}
	s := NewVisibilityState()
	s.Initialize(names)
	s.SetVisibleBulk(names, false)

	s.SetVisibleBulk([]string{"a", "c"}, true)

	if !s.IsVisible("a") || !s.IsVisible("c") || s.IsVisible("b") {
		t.Error("bulk show should affect exactly the listed names")
	}
}

func TestVisibilityState_SelectAndHover(t *testing.T) {
	s := NewVisibilityState()
	s.Initialize([]string{"a", "b"})

	s.Select("a")
	s.Select("b")
	if s.Selected() != "b" {
		t.Error("at most one selection: last Select wins")
	}

	s.Select("")
	if s.Selected() != "" {
		t.Error("empty Select clears selection")
	}

	s.SetHover("a")
	if s.Hovered() != "a" {
		t.Error("hover not set")
	}
	s.SetHover("")
	if s.Hovered() != "" {
		t.Error("hover not cleared")
	}
}
