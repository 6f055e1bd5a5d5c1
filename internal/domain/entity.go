package domain

// Категории сущностей плана (определяют меш/материал на стороне рендера)
const (
	KindRoom         = "room"
	KindDesk         = "desk"
	KindChair        = "chair"
	KindTable        = "table"
	KindWallInterior = "wall-interior"
	KindWallExterior = "wall-exterior"
)

// FurnitureComponent - мебель, физически находящаяся внутри сущности.
// Присутствует только у комнат (или саб-комнат), в которые декомпозер
// реально отфильтровал стулья/столы. Если nil - мебели нет.
type FurnitureComponent struct {
	Chairs []Rect `json:"chairs,omitempty"`
	Tables []Rect `json:"tables,omitempty"`
}

// IsEmpty возвращает true, если компонент не несет ни одного прямоугольника.
func (f *FurnitureComponent) IsEmpty() bool {
	return f == nil || (len(f.Chairs) == 0 && len(f.Tables) == 0)
}

// SourceRef - обратная ссылка на исходную запись документа.
// Используется ТОЛЬКО для восстановления оригинальной записи при показе
// деталей, никогда - для владения данными.
type SourceRef struct {
	Group     string `json:"group"`
	SubKey    string `json:"subKey,omitempty"`
	RectIndex int    `json:"rectIndex"` // -1, если сущность не является сплитом
}

// FloorEntity - единица адресации после декомпозиции плана.
// Имя уникально в пределах каталога. Для сплитов составных комнат имя
// синтезируется как "{group}-{subkey}-{index}" или "{group}-{index}".
type FloorEntity struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	IsRoom bool   `json:"isRoom"`

	// PrimarySpace - прямоугольники размещения. У сплита всегда ровно один.
	PrimarySpace []Rect `json:"primarySpace"`

	// Furniture - мебель внутри сущности (инвариант: каждый прямоугольник
	// проходит ContainsCenter хотя бы для одного Rect из PrimarySpace;
	// гарантируется декомпозером на этапе фильтрации, не проверкой постфактум).
	Furniture *FurnitureComponent `json:"furniture,omitempty"`

	Source SourceRef `json:"source"`
}

// SceneID возвращает структурный идентификатор сущности.
// Сплиты восстанавливают его из Source, обычные записи - из имени.
func (e *FloorEntity) SceneID() SceneID {
	if e.Source.SubKey != "" || e.Source.RectIndex >= 0 {
		return SplitID(e.Source.Group, e.Source.SubKey, e.Source.RectIndex)
	}
	return CatalogID(e.Name)
}

// IsBookable возвращает true, если сущность участвует в бронировании
// (комнаты и рабочие столы; стулья, столы-мебель и стены - нет).
func (e *FloorEntity) IsBookable() bool {
	return e.IsRoom || e.Kind == KindDesk
}

// Capacity возвращает вместимость комнаты по количеству стульев.
// Значения по умолчанию повторяют правила заполнения базы бронирования:
// 4 для саб-комнат составных групп, 6 для обычных комнат.
func (e *FloorEntity) Capacity() int {
	if e.Furniture != nil && len(e.Furniture.Chairs) > 0 {
		return len(e.Furniture.Chairs)
	}
	if e.Source.SubKey != "" {
		return 4
	}
	return 6
}
