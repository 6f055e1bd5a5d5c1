package systems

import (
	"testing"

	"floorview-server/internal/domain"
)

func TestCapabilityFor(t *testing.T) {
	tests := []struct {
		kind        string
		interactive bool
		blocks      bool
	}{
		{domain.KindRoom, true, true},
		{domain.KindDesk, true, true},
		{domain.KindTable, true, true},
		{domain.KindChair, false, false},
		{domain.KindWallInterior, false, true},
		{domain.KindWallExterior, false, true},
		// Неизвестная категория ведет себя как стена.
		{"hologram", false, true},
	}

	for _, tt := range tests {
		c := CapabilityFor(tt.kind)
		if c.Interactive != tt.interactive || c.BlocksRaycast != tt.blocks {
			t.Errorf("CapabilityFor(%q) = %+v, want {%v %v}",
				tt.kind, c, tt.interactive, tt.blocks)
		}
	}
}

func TestDispatcher_ClickSelectsFrontmost(t *testing.T) {
	state := NewVisibilityState()
	state.Initialize([]string{"desk", "managementRoom"})
	d := NewDispatcher(state)

	// Рейкаст отдает все пересечения от ближнего к дальнему.
	hits := []Hit{
		{ID: "desk", Kind: domain.KindDesk},
		{ID: "managementRoom", Kind: domain.KindRoom},
	}

	front, changed := d.Click(hits)
	if !changed || front.ID != "desk" {
		t.Fatalf("Click = (%q, %v), want (desk, true)", front.ID, changed)
	}
	if state.Selected() != "desk" {
		t.Error("only the frontmost primitive gets selected")
	}
}

// Структурный id проходит сквозь диспетчер нетронутым - разрешение
// деталей не должно заново гадать по строковой форме.
func TestDispatcher_ClickCarriesSceneID(t *testing.T) {
	state := NewVisibilityState()
	d := NewDispatcher(state)

	sid := domain.InstanceID("desk", 1)
	hits := []Hit{{ID: "desk-1", Kind: domain.KindDesk, SceneID: &sid}}

	front, changed := d.Click(hits)
	if !changed {
		t.Fatal("click on an interactive primitive must change state")
	}
	if front.SceneID == nil || *front.SceneID != sid {
		t.Errorf("front.SceneID = %v, want %v", front.SceneID, sid)
	}
}

// Стул не поглощает луч: клик проходит насквозь к комнате под ним.
func TestDispatcher_ChairPassesRayThrough(t *testing.T) {
	state := NewVisibilityState()
	d := NewDispatcher(state)

	hits := []Hit{
		{ID: "managementRoom-chair-0", Kind: domain.KindChair},
		{ID: "managementRoom", Kind: domain.KindRoom},
	}

	front, changed := d.Click(hits)
	if !changed || front.ID != "managementRoom" {
		t.Fatalf("Click = (%q, %v), want (managementRoom, true)", front.ID, changed)
	}
}

// Стена поглощает луч, но не реагирует: событие съедено без мутаций.
func TestDispatcher_WallAbsorbsWithoutSelecting(t *testing.T) {
	state := NewVisibilityState()
	state.Select("previous")
	d := NewDispatcher(state)

	hits := []Hit{
		{ID: "walls-interior-0", Kind: domain.KindWallInterior},
		{ID: "managementRoom", Kind: domain.KindRoom},
	}

	front, changed := d.Click(hits)
	if changed || front.ID != "" {
		t.Fatalf("Click = (%q, %v), want no change", front.ID, changed)
	}
	if state.Selected() != "previous" {
		t.Error("wall click must not mutate selection")
	}
}

func TestDispatcher_EmptyHits(t *testing.T) {
	state := NewVisibilityState()
	d := NewDispatcher(state)

	if _, changed := d.Click(nil); changed {
		t.Error("empty hit list must not change state")
	}
	if _, changed := d.HoverEnter([]Hit{{ID: "c", Kind: domain.KindChair}}); changed {
		t.Error("chairs-only hit list must not change hover")
	}
}

func TestDispatcher_Hover(t *testing.T) {
	state := NewVisibilityState()
	d := NewDispatcher(state)

	hits := []Hit{{ID: "desk-2", Kind: domain.KindDesk}}

	front, changed := d.HoverEnter(hits)
	if !changed || front.ID != "desk-2" {
		t.Fatalf("HoverEnter = (%q, %v), want (desk-2, true)", front.ID, changed)
	}
	if state.Hovered() != "desk-2" {
		t.Error("hover should land on the frontmost interactive primitive")
	}

	d.HoverExit()
	if state.Hovered() != "" {
		t.Error("HoverExit clears hover")
	}

	// Ховер над стеной не перезаписывает и не чистит ничего сам по себе.
	state.SetHover("desk-2")
	if _, changed := d.HoverEnter([]Hit{{ID: "w", Kind: domain.KindWallExterior}}); changed {
		t.Error("wall hover must not change state")
	}
	if state.Hovered() != "desk-2" {
		t.Error("wall hover must leave previous hover intact")
	}
}
