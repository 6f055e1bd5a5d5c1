package actions

import (
	"context"
	"time"

	"floorview-server/internal/domain"
	"floorview-server/internal/engine/handlers"
	"floorview-server/internal/systems"
	"floorview-server/pkg/api"
	"floorview-server/pkg/logger"
)

// bookingTimeout ограничивает поход за доступностью, чтобы внешний сервис
// не подвешивал обработку клика.
const bookingTimeout = 2 * time.Second

func HandleClick(ctx handlers.Context, p api.PointerPayload) (handlers.Result, error) {
	hits := toHits(p.Hits)

	front, changed := ctx.Dispatcher.Click(hits)
	if !changed {
		// Луч поглощен стеной или прошел сквозь инертные примитивы -
		// состояние не тронуто, событие съедено.
		return handlers.EmptyResult(), nil
	}

	// Структурный id из рендера разрешается без разбора строк;
	// строковая форма остается запасным путем для старых клиентов.
	var ent *domain.FloorEntity
	var ok bool
	if front.SceneID != nil {
		ent, ok = ctx.Catalog.ResolveID(*front.SceneID)
	} else {
		ent, ok = ctx.Catalog.Resolve(front.ID)
	}
	if !ok {
		// Неразрешимое имя - это отсутствие деталей, не ошибка.
		return handlers.EmptyResult(), nil
	}

	detail := buildDetail(ent)
	attachAvailability(ctx, ent, front.ID, detail)

	return handlers.Result{Detail: detail}, nil
}

// attachAvailability дополняет панель деталей ресурсом бронирования и
// сеткой доступности на сегодня. Любой сбой внешнего сервиса деградирует
// до warning - панель показывается без доступности.
// Сначала ищется ресурс по кликнутому id (столы заведены по-штучно),
// затем по имени сущности-владельца.
func attachAvailability(ctx handlers.Context, ent *domain.FloorEntity, clickedID string, detail *api.DetailView) {
	if !ent.IsBookable() || ctx.Booking == nil {
		return
	}

	log := logger.Component("booking")

	reqCtx, cancel := context.WithTimeout(context.Background(), bookingTimeout)
	defer cancel()

	res, ok := ctx.Booking.ResourceFor(reqCtx, clickedID)
	if !ok && clickedID != ent.Name {
		res, ok = ctx.Booking.ResourceFor(reqCtx, ent.Name)
	}
	if !ok {
		log.WithField("entity", ent.Name).Debug("no booking resource matches entity")
		return
	}
	detail.Resource = &api.ResourceView{Type: res.Type, ID: res.ID, Name: res.Name}

	avail, err := ctx.Booking.Availability(reqCtx, res, time.Now())
	if err != nil {
		log.WithError(err).WithField("resource", res.ID).Warn("availability lookup failed")
		return
	}

	view := &api.AvailabilityView{Date: avail.Date}
	for _, slot := range avail.Slots {
		view.Slots = append(view.Slots, api.SlotView{
			Start:  slot.Start.Format(time.RFC3339),
			End:    slot.End.Format(time.RFC3339),
			Booked: slot.Booked,
		})
	}
	detail.Availability = view
}

// buildDetail собирает DTO панели деталей из записи каталога.
func buildDetail(ent *domain.FloorEntity) *api.DetailView {
	detail := &api.DetailView{
		Name:     ent.Name,
		Kind:     ent.Kind,
		IsRoom:   ent.IsRoom,
		Space:    toRectViews(ent.PrimarySpace),
		Bookable: ent.IsBookable(),
	}
	if ent.IsRoom {
		detail.Capacity = ent.Capacity()
	}
	if !ent.Furniture.IsEmpty() {
		detail.Chairs = toRectViews(ent.Furniture.Chairs)
		detail.Tables = toRectViews(ent.Furniture.Tables)
	}
	return detail
}

func toHits(views []api.HitView) []systems.Hit {
	hits := make([]systems.Hit, len(views))
	for i, h := range views {
		hits[i] = systems.Hit{ID: h.ID, Kind: h.Kind}
		if h.SceneID != nil {
			hits[i].SceneID = &domain.SceneID{
				Kind:   domain.ParseSceneIDKind(h.SceneID.Kind),
				Group:  h.SceneID.Group,
				SubKey: h.SceneID.SubKey,
				Index:  h.SceneID.Index,
			}
		}
	}
	return hits
}

func toRectViews(rects []domain.Rect) []api.RectView {
	if len(rects) == 0 {
		return nil
	}
	views := make([]api.RectView, len(rects))
	for i, r := range rects {
		views[i] = api.RectView{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
	}
	return views
}
