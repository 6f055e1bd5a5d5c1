package api

import (
	"encoding/json"
	"time"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
// Он представляет собой полный "снимок" сцены для конкретной сессии
// просмотра: какие примитивы рисовать и с какой подсветкой.
// Отправляется после каждой обработанной команды сессии.
type ServerResponse struct {
	// Type тип сообщения. На данный момент всегда "UPDATE".
	Type string `json:"type"`

	// Seq порядковый номер команды, после которой сформирован снимок.
	Seq int `json:"seq"`

	// SessionID ID сессии просмотра, которой адресован снимок.
	SessionID string `json:"sessionId,omitempty"`

	// Primitives срез всех видимых примитивов сцены.
	// Рендер-бэкенд превращает их в геометрию и материалы сам.
	Primitives []PrimitiveView `json:"primitives,omitempty"`

	// Selected детали выбранной сущности. Отсутствует, если ничего
	// не выбрано или выбранное имя не разрешилось (это не ошибка).
	Selected *DetailView `json:"selected,omitempty"`

	// Logs срез новых сообщений, сгенерированных с прошлой команды.
	Logs []LogEntry `json:"logs,omitempty"`
}

// RectView это DTO прямоугольника в координатах плана.
type RectView struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SceneIDView это структурная форма идентификатора примитива.
// Kind снимает неоднозначность строковой формы ("{group}-{i}" бывает
// и сплитом комнаты, и экземпляром мебели): рендер возвращает ее в
// hits как есть, и разрешение идет без разбора строк.
type SceneIDView struct {
	Kind   string `json:"kind"` // "catalog" | "split" | "instance"
	Group  string `json:"group"`
	SubKey string `json:"subKey,omitempty"`
	Index  int    `json:"index"`
}

// PrimitiveView это DTO одного рисуемого примитива сцены.
// ID может быть именем сущности каталога или per-instance id
// ("{entityName}-{rectIndex}") для повторяющейся мебели.
type PrimitiveView struct {
	ID      string      `json:"id"`
	SceneID SceneIDView `json:"sceneId"`
	Kind    string      `json:"kind"`

	// IsRoom true для плоских цветных областей пола,
	// false для объемных боксов (мебель, стены).
	IsRoom bool `json:"isRoom"`

	Rect RectView `json:"rect"`

	// Mesh и Material - привязка из scene config для данного kind.
	Mesh     string `json:"mesh"`
	Material string `json:"material"`

	// IsSelected и IsHovered вычисляются из состояния сессии,
	// кэшированных флагов на примитиве нет.
	IsSelected bool `json:"isSelected"`
	IsHovered  bool `json:"isHovered"`
}

// DetailView это DTO выбранной сущности для панели деталей.
type DetailView struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	IsRoom bool   `json:"isRoom"`

	Space  []RectView `json:"space"`
	Chairs []RectView `json:"chairs,omitempty"`
	Tables []RectView `json:"tables,omitempty"`

	Capacity int  `json:"capacity,omitempty"`
	Bookable bool `json:"bookable"`

	// Resource и Availability заполняются из сервиса бронирования,
	// если выбранная сущность бронируема и сервис ответил вовремя.
	Resource     *ResourceView     `json:"resource,omitempty"`
	Availability *AvailabilityView `json:"availability,omitempty"`
}

// ResourceView это DTO ресурса бронирования, сопоставленного сущности.
type ResourceView struct {
	Type string `json:"type"` // "room" | "desk"
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SlotView это DTO одного часового слота доступности.
type SlotView struct {
	Start  string `json:"start"` // RFC3339
	End    string `json:"end"`
	Booked bool   `json:"booked"`
}

// AvailabilityView это DTO сетки доступности ресурса на дату.
type AvailabilityView struct {
	Date  string     `json:"date"` // YYYY-MM-DD
	Slots []SlotView `json:"slots"`
}

// LogEntry представляет одну запись в логе сессии.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, WARN, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token ID сессии просмотра. Обязателен только для первого
	// сообщения; пустой токен означает "выдай новую сессию".
	Token string `json:"token,omitempty"`

	// Action название действия, которое нужно выполнить.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// HitView это один примитив, пересеченный лучом рейкаста рендера.
// SceneID - структурный id, который рендер получил в PrimitiveView;
// старые клиенты могут его не присылать, тогда имя разбирается строкой.
type HitView struct {
	ID      string       `json:"id"`
	Kind    string       `json:"kind"`
	SceneID *SceneIDView `json:"sceneId,omitempty"`
}

// PointerPayload используется для действий указателя (CLICK, HOVER_ENTER).
// Hits упорядочены от ближнего пересечения к дальнему - рендер отдает
// ВСЁ, что пересек луч, а диспетчер сам решает, кто реагирует.
type PointerPayload struct {
	Hits []HitView `json:"hits"`
}

// TogglePayload используется для переключения видимости одной сущности.
type TogglePayload struct {
	Name string `json:"name"`
}

// BookPayload используется для создания брони выбранной сущности.
// Name - имя сущности каталога или per-instance id стола.
type BookPayload struct {
	Name   string    `json:"name"`
	UserID string    `json:"userId,omitempty"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}

// BulkVisibilityPayload используется для "показать всё / скрыть всё"
// и групповых фильтров. Единственный корректный способ массового
// переключения - отдельный master-флаг запрещен.
type BulkVisibilityPayload struct {
	Names []string `json:"names"`
	Show  bool     `json:"show"`
}
