package actions

import "floorview-server/internal/engine/handlers"

// HandleInit ничего не мутирует: его задача - заставить движок отправить
// клиенту первый снимок сцены после подписки.
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.EmptyResult(), nil
}

// HandleClearSelection снимает текущий выбор (клик в пустоту).
func HandleClearSelection(ctx handlers.Context) (handlers.Result, error) {
	ctx.State.Select("")
	return handlers.EmptyResult(), nil
}
