package floorplan

import "encoding/json"

// GroupSchema - декларативные метаданные одной группы плана.
// Какие группы составные и какие у них саб-ключи - это свойство ВХОДНЫХ
// ДАННЫХ, а не алгоритма, поэтому декомпозер не знает ни одного имени
// группы: всё приходит отсюда.
type GroupSchema struct {
	// Composite true, если площадь группы авторится как набор саб-зон
	// (вложенные записи со своим space), каждая из которых должна быть
	// отдельно выбираемой.
	Composite bool `json:"composite"`

	// SubKeys - имена вложенных записей составной группы.
	// Порядок задает порядок обхода при декомпозиции.
	SubKeys []string `json:"subKeys,omitempty"`

	// Kind - категория меша для группы-НЕ-комнаты ("desk", "table"...).
	// Для комнат игнорируется. Пустое значение = "desk".
	Kind string `json:"kind,omitempty"`

	// RoomType - тип комнаты для сервиса бронирования
	// (office, meeting, training, beer, wellbeing). Пустое = "office".
	RoomType string `json:"roomType,omitempty"`
}

// Schema - метаданные всех групп документа, ключ - имя группы.
type Schema map[string]GroupSchema

// ParseSchema разбирает JSON со схемой групп.
func ParseSchema(data []byte) (Schema, error) {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return s, nil
}

// IsComposite возвращает true, если группа объявлена составной.
func (s Schema) IsComposite(group string) bool {
	g, ok := s[group]
	return ok && g.Composite
}

// SubKeys возвращает саб-ключи составной группы (nil для остальных).
func (s Schema) SubKeys(group string) []string {
	if g, ok := s[group]; ok && g.Composite {
		return g.SubKeys
	}
	return nil
}

// KindFor возвращает категорию меша для группы.
func (s Schema) KindFor(group string, isRoom bool) string {
	if isRoom {
		return "room"
	}
	if g, ok := s[group]; ok && g.Kind != "" {
		return g.Kind
	}
	return "desk"
}

// RoomTypeFor возвращает тип комнаты для бронирования.
func (s Schema) RoomTypeFor(group string) string {
	if g, ok := s[group]; ok && g.RoomType != "" {
		return g.RoomType
	}
	return "office"
}

// DefaultSchema описывает группы исходного floor_data.json офиса.
// Используется, когда рядом с документом не положили свою схему.
func DefaultSchema() Schema {
	return Schema{
		"desk":           {Kind: "desk"},
		"managementRoom": {RoomType: "office"},
		"beerPoint":      {RoomType: "beer"},
		"billiard":       {RoomType: "beer"},
		"wellbeing":      {RoomType: "wellbeing"},
		"trainingRoom1":  {RoomType: "training"},
		"trainingRoom2":  {RoomType: "training"},
		"teamMeetings": {
			Composite: true,
			SubKeys:   []string{"small", "round4", "square4"},
			RoomType:  "meeting",
		},
	}
}
