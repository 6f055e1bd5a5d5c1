package booking

import "time"

// Типы ресурсов бронирования
const (
	ResourceRoom = "room"
	ResourceDesk = "desk"
)

// Resource - один бронируемый ресурс (комната или рабочий стол).
// Name у комнаты и позиция у стола совпадают с именем сущности каталога -
// сопоставление идет строго по точному совпадению строк.
type Resource struct {
	Type     string `json:"type"`
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity,omitempty"`
	RoomType string `json:"roomType,omitempty"`
}

// Slot - один часовой слот сетки доступности.
type Slot struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Booked bool      `json:"booked"`
}

// Availability - сетка доступности ресурса на одну дату.
type Availability struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Slots []Slot `json:"slots"`
}

// Booking - созданная бронь.
type Booking struct {
	ID           string    `json:"id"`
	ResourceType string    `json:"resourceType"`
	ResourceID   string    `json:"resourceId"`
	UserID       string    `json:"userId,omitempty"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	// Pending true, если тип комнаты требует одобрения брони.
	Pending bool `json:"pending"`
}

// CreateRequest - запрос на создание брони.
type CreateRequest struct {
	ResourceType string    `json:"resourceType"`
	ResourceID   string    `json:"resourceId"`
	UserID       string    `json:"userId,omitempty"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
}

// Границы рабочего дня для сетки доступности (локальное время).
const (
	DayStartHour = 8
	DayEndHour   = 20
)

// Overlaps - предикат пересечения двух полуоткрытых интервалов [start, end).
// Бронь конфликтует с существующей ровно тогда, когда интервалы
// пересекаются: existing.start < new.end && new.start < existing.end.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// BuildSlots строит часовую сетку дня и помечает слоты, пересекающиеся
// хотя бы с одной бронью.
func BuildSlots(day time.Time, bookings []Booking) []Slot {
	base := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())

	slots := make([]Slot, 0, DayEndHour-DayStartHour)
	for hour := DayStartHour; hour < DayEndHour; hour++ {
		start := base.Add(time.Duration(hour) * time.Hour)
		end := start.Add(time.Hour)

		booked := false
		for _, b := range bookings {
			if Overlaps(start, end, b.Start, b.End) {
				booked = true
				break
			}
		}
		slots = append(slots, Slot{Start: start, End: end, Booked: booked})
	}
	return slots
}
