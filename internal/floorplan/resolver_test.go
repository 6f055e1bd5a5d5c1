package floorplan

import (
	"testing"

	"floorview-server/internal/domain"
	"floorview-server/pkg/logger"
)

func resolverCatalog(t *testing.T) *Catalog {
	t.Helper()
	logger.Init()

	doc := &Document{Groups: map[string]RawGroup{
		"managementRoom": {
			Room: 1,
			Space: []domain.Rect{
				{X: 0, Y: 0, Width: 10, Height: 10},
				{X: 10, Y: 0, Width: 5, Height: 10},
			},
		},
		"desk": {
			Space: []domain.Rect{
				{X: 0, Y: 20, Width: 2, Height: 1},
				{X: 5, Y: 20, Width: 2, Height: 1},
			},
		},
		"teamMeetings": {
			Room: 1,
			Sub: map[string]RawSubGroup{
				"small": {Space: []domain.Rect{
					{X: 0, Y: 30, Width: 5, Height: 5},
					{X: 5, Y: 30, Width: 5, Height: 5},
				}},
			},
		},
	}}
	return Decompose(doc, testSchema())
}

func TestCatalog_Resolve(t *testing.T) {
	cat := resolverCatalog(t)

	tests := []struct {
		name      string
		input     string
		wantName  string
		wantFound bool
	}{
		// 1. Точное имя каталога.
		{"exact object group", "desk", "desk", true},
		// 2. Материализованный сплит комнаты.
		{"room split", "managementRoom-1", "managementRoom-1", true},
		{"composite split", "teamMeetings-small-0", "teamMeetings-small-0", true},
		// 3. Per-instance id мебели разрешается во всю группу.
		{"instance id", "desk-1", "desk", true},
		// 4. Несуществующий индекс сплита - не найдено, не проваливается
		// в instance-ветку.
		{"split index out of range", "managementRoom-7", "", false},
		// 5. Совсем чужие имена.
		{"unknown name", "garage", "", false},
		{"unknown base with index", "garage-0", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := cat.Resolve(tt.input)
			if ok != tt.wantFound {
				t.Fatalf("Resolve(%q) found = %v, want %v", tt.input, ok, tt.wantFound)
			}
			if ok && e.Name != tt.wantName {
				t.Errorf("Resolve(%q) = %q, want %q", tt.input, e.Name, tt.wantName)
			}
		})
	}
}

// Каждое имя каталога обязано разрешаться в самого себя.
func TestCatalog_ResolveRoundTrip(t *testing.T) {
	cat := resolverCatalog(t)

	for _, name := range cat.Names() {
		e, ok := cat.Resolve(name)
		if !ok {
			t.Errorf("catalog name %q did not resolve", name)
			continue
		}
		if e.Name != name {
			t.Errorf("Resolve(%q) = %q, want itself", name, e.Name)
		}
	}
}

func TestCatalog_ResolveID(t *testing.T) {
	cat := resolverCatalog(t)

	// Структурный instance id идет прямо к группе-владельцу.
	e, ok := cat.ResolveID(domain.InstanceID("desk", 0))
	if !ok || e.Name != "desk" {
		t.Errorf("ResolveID(instance desk-0) = %v, want desk", e)
	}

	// Структурный сплит - к материализованной сущности.
	e, ok = cat.ResolveID(domain.SplitID("managementRoom", "", 0))
	if !ok || e.Name != "managementRoom-0" {
		t.Errorf("ResolveID(split managementRoom-0) = %v, want managementRoom-0", e)
	}

	if _, ok := cat.ResolveID(domain.CatalogID("garage")); ok {
		t.Error("unknown catalog id should not resolve")
	}
}
