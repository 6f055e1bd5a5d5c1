package actions

import (
	"fmt"

	"floorview-server/internal/engine/handlers"
	"floorview-server/pkg/api"
)

func HandleToggle(ctx handlers.Context, p api.TogglePayload) (handlers.Result, error) {
	ctx.State.Toggle(p.Name)
	return handlers.EmptyResult(), nil
}

func HandleSetVisibleBulk(ctx handlers.Context, p api.BulkVisibilityPayload) (handlers.Result, error) {
	ctx.State.SetVisibleBulk(p.Names, p.Show)

	verb := "hidden"
	if p.Show {
		verb = "shown"
	}
	return handlers.Result{
		Msg:     fmt.Sprintf("%d objects %s", len(p.Names), verb),
		MsgType: "INFO",
	}, nil
}
