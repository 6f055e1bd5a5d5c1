package actions

import (
	"context"
	"errors"
	"fmt"

	"floorview-server/internal/booking"
	"floorview-server/internal/engine/handlers"
	"floorview-server/pkg/api"
	"floorview-server/pkg/logger"
)

// HandleBook создает бронь для сущности каталога через внешний сервис.
// Состояние просмотра не мутируется: бронь - побочный эффект наружу,
// клиенту уходит только запись лога с результатом.
func HandleBook(ctx handlers.Context, p api.BookPayload) (handlers.Result, error) {
	if ctx.Booking == nil {
		return handlers.Result{}, errors.New("booking service is not configured")
	}

	ent, ok := ctx.Catalog.Resolve(p.Name)
	if !ok {
		return handlers.Result{}, fmt.Errorf("unknown entity %q", p.Name)
	}
	if !ent.IsBookable() {
		return handlers.Result{}, fmt.Errorf("%q is not bookable", p.Name)
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), bookingTimeout)
	defer cancel()

	// Сначала кликнутое имя (столы заведены по-штучно), затем владелец.
	res, ok := ctx.Booking.ResourceFor(reqCtx, p.Name)
	if !ok && p.Name != ent.Name {
		res, ok = ctx.Booking.ResourceFor(reqCtx, ent.Name)
	}
	if !ok {
		return handlers.Result{}, fmt.Errorf("no booking resource for %q", p.Name)
	}

	b, err := ctx.Booking.Create(reqCtx, booking.CreateRequest{
		ResourceType: res.Type,
		ResourceID:   res.ID,
		UserID:       p.UserID,
		Start:        p.Start,
		End:          p.End,
	})
	if err != nil {
		return handlers.Result{}, err
	}

	logger.Component("booking").WithField("booking_id", b.ID).Info("Booking created via view session")

	msg := fmt.Sprintf("%s booked %s - %s", p.Name,
		p.Start.Format("15:04"), p.End.Format("15:04"))
	if b.Pending {
		msg += " (pending approval)"
	}
	return handlers.Result{Msg: msg, MsgType: "INFO"}, nil
}
