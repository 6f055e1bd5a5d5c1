package domain

import "testing"

func TestFloorEntity_Capacity(t *testing.T) {
	tests := []struct {
		name     string
		entity   FloorEntity
		expected int
	}{
		{
			name: "capacity from chairs",
			entity: FloorEntity{
				IsRoom:    true,
				Furniture: &FurnitureComponent{Chairs: []Rect{{}, {}, {}}},
			},
			expected: 3,
		},
		{
			name:     "sub-room default",
			entity:   FloorEntity{IsRoom: true, Source: SourceRef{SubKey: "small"}},
			expected: 4,
		},
		{
			name:     "plain room default",
			entity:   FloorEntity{IsRoom: true},
			expected: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entity.Capacity(); got != tt.expected {
				t.Errorf("Capacity() = %d, want %d", got, tt.expected)
			}
		})
	}
}

// Структурный id, восстановленный из Source, обязан давать строковую
// форму, совпадающую с именем сущности.
func TestFloorEntity_SceneID(t *testing.T) {
	tests := []struct {
		name   string
		entity FloorEntity
		want   SceneID
	}{
		{
			name:   "plain catalog entity",
			entity: FloorEntity{Name: "desk", Source: SourceRef{Group: "desk", RectIndex: -1}},
			want:   CatalogID("desk"),
		},
		{
			name: "split of a simple room",
			entity: FloorEntity{
				Name:   "managementRoom-1",
				Source: SourceRef{Group: "managementRoom", RectIndex: 1},
			},
			want: SplitID("managementRoom", "", 1),
		},
		{
			name: "sub-room with a single rect",
			entity: FloorEntity{
				Name:   "teamMeetings-small",
				Source: SourceRef{Group: "teamMeetings", SubKey: "small", RectIndex: -1},
			},
			want: SplitID("teamMeetings", "small", -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.entity.SceneID()
			if got != tt.want {
				t.Errorf("SceneID() = %+v, want %+v", got, tt.want)
			}
			if got.String() != tt.entity.Name {
				t.Errorf("SceneID().String() = %q, want %q", got.String(), tt.entity.Name)
			}
		})
	}
}

func TestFloorEntity_IsBookable(t *testing.T) {
	room := FloorEntity{Kind: KindRoom, IsRoom: true}
	desk := FloorEntity{Kind: KindDesk}
	wall := FloorEntity{Kind: KindWallInterior}

	if !room.IsBookable() {
		t.Error("room should be bookable")
	}
	if !desk.IsBookable() {
		t.Error("desk should be bookable")
	}
	if wall.IsBookable() {
		t.Error("wall should not be bookable")
	}
}
