package floorplan

import (
	"encoding/json"
	"fmt"

	"floorview-server/internal/domain"
	"floorview-server/pkg/logger"
)

// WallsKey - зарезервированное имя контейнера стен в документе.
const WallsKey = "walls"

// RawSubGroup - вложенная запись составной комнаты (своя зона со своим space).
type RawSubGroup struct {
	Space  []domain.Rect
	Chairs []domain.Rect
	Tables []domain.Rect
}

// RawGroup - одна верхнеуровневая запись документа плана.
type RawGroup struct {
	Space  []domain.Rect
	Room   int
	Chairs []domain.Rect
	Tables []domain.Rect

	// Sub - вложенные записи, извлеченные по SubKeys из схемы.
	// Для несоставных групп пустая.
	Sub map[string]RawSubGroup
}

// Walls - прямоугольники стен. Стены никогда не сплитятся и не сливаются.
type Walls struct {
	Interior []domain.Rect `json:"interior"`
	Exterior []domain.Rect `json:"exterior"`
}

// Document - разобранный документ плана этажа.
type Document struct {
	Groups map[string]RawGroup
	Walls  Walls
}

// ParseDocument разбирает сырой floor_data JSON.
// Данные плана считаются частично авторскими: битая запись группы или
// нечисловое поле мебели молча выкидывается (группа деградирует, документ
// живет). Ошибка возвращается только если сам JSON не читается - это
// фатально для всего вида.
func ParseDocument(data []byte, schema Schema) (*Document, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("floor plan document is not valid JSON: %w", err)
	}

	log := logger.Component("floorplan")
	doc := &Document{Groups: make(map[string]RawGroup, len(top))}

	for name, raw := range top {
		if name == WallsKey {
			var w Walls
			if err := json.Unmarshal(raw, &w); err != nil {
				log.WithError(err).Warn("walls entry is malformed, skipping")
				continue
			}
			doc.Walls = w
			continue
		}

		group, ok := parseGroup(raw, schema.SubKeys(name))
		if !ok {
			log.WithField("group", name).Warn("group record is malformed, skipping")
			continue
		}
		doc.Groups[name] = group
	}

	return doc, nil
}

// parseGroup разбирает запись группы по полям, терпя мусор в отдельных полях.
func parseGroup(raw json.RawMessage, subKeys []string) (RawGroup, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return RawGroup{}, false
	}

	g := RawGroup{
		Space:  parseRects(fields["space"]),
		Chairs: parseRects(fields["chairs"]),
		Tables: parseRects(fields["tables"]),
	}

	if roomRaw, ok := fields["room"]; ok {
		// Нечисловой room трактуем как 0 (обычная группа объектов)
		_ = json.Unmarshal(roomRaw, &g.Room)
	}

	for _, key := range subKeys {
		subRaw, ok := fields[key]
		if !ok {
			continue
		}
		var subFields map[string]json.RawMessage
		if err := json.Unmarshal(subRaw, &subFields); err != nil {
			continue
		}
		sub := RawSubGroup{
			Space:  parseRects(subFields["space"]),
			Chairs: parseRects(subFields["chairs"]),
			Tables: parseRects(subFields["tables"]),
		}
		if g.Sub == nil {
			g.Sub = make(map[string]RawSubGroup)
		}
		g.Sub[key] = sub
	}

	return g, true
}

// parseRects разбирает массив прямоугольников; любой мусор дает nil.
func parseRects(raw json.RawMessage) []domain.Rect {
	if len(raw) == 0 {
		return nil
	}
	var rects []domain.Rect
	if err := json.Unmarshal(raw, &rects); err != nil {
		return nil
	}
	return rects
}
