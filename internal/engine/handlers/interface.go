package handlers

import (
	"context"
	"encoding/json"
	"time"

	"floorview-server/internal/booking"
	"floorview-server/internal/domain"
	"floorview-server/internal/systems"
	"floorview-server/pkg/api"
)

// CatalogResolver описывает любую структуру, которая умеет разрешать имя
// в сущность каталога. floorplan.Catalog неявно реализует этот интерфейс.
type CatalogResolver interface {
	Resolve(name string) (*domain.FloorEntity, bool)
	ResolveID(id domain.SceneID) (*domain.FloorEntity, bool)
	Names() []string
}

// BookingGateway - внешний сервис бронирования. Хендлеры считают его
// непрозрачным: только сопоставление сущность -> ресурс и доступность.
// Может быть nil, если сервис не сконфигурирован.
type BookingGateway interface {
	ResourceFor(ctx context.Context, entityName string) (booking.Resource, bool)
	Availability(ctx context.Context, res booking.Resource, day time.Time) (*booking.Availability, error)
	Create(ctx context.Context, req booking.CreateRequest) (*booking.Booking, error)
}

// Context передает хендлеру состояние сессии.
// Мы передаем ссылки, чтобы хендлер мог менять состояние (мутировать данные).
type Context struct {
	Catalog    CatalogResolver
	State      *systems.VisibilityState
	Dispatcher *systems.Dispatcher
	Booking    BookingGateway
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в логи сервиса напрямую, он возвращает данные.
type Result struct {
	Msg     string          // Текст лога
	MsgType string          // Тип лога (INFO, WARN, ERROR)
	Detail  *api.DetailView // Детали выбора для панели (nil = панели нет)
}

// HandlerFunc - это контракт для любой команды (CLICK, TOGGLE, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
