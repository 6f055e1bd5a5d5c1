package actions

import (
	"floorview-server/internal/engine/handlers"
	"floorview-server/pkg/api"
)

func HandleHoverEnter(ctx handlers.Context, p api.PointerPayload) (handlers.Result, error) {
	// Подсветка не требует разрешения имени: рендеру достаточно id.
	ctx.Dispatcher.HoverEnter(toHits(p.Hits))
	return handlers.EmptyResult(), nil
}

func HandleHoverExit(ctx handlers.Context) (handlers.Result, error) {
	ctx.Dispatcher.HoverExit()
	return handlers.EmptyResult(), nil
}
