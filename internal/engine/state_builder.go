package engine

import (
	"fmt"

	"floorview-server/internal/domain"
	"floorview-server/pkg/api"
	"floorview-server/pkg/logger"
)

// BuildStateFor создает персональный снимок сцены для сессии: все
// видимые примитивы с привязкой рендера и флагами подсветки.
// Видимость примитива - это ТОЛЬКО членство имени сущности в множестве
// видимости сессии; никаких других флагов показа не существует.
func (s *ViewService) BuildStateFor(sess *ViewSession) *api.ServerResponse {
	selected := sess.State.Selected()
	hovered := sess.State.Hovered()

	var prims []api.PrimitiveView

	for _, e := range s.Catalog.Entities() {
		if !sess.State.IsVisible(e.Name) {
			continue
		}

		binding, ok := s.lookupBinding(e.Kind)
		if ok {
			prims = append(prims, s.entityPrimitives(e, binding, selected, hovered)...)
		}

		// Мебель комнаты рендерится объемными саб-примитивами.
		// Они неинтерактивны и не имеют собственной видимости:
		// показ следует за комнатой-владельцем.
		if !e.Furniture.IsEmpty() {
			prims = append(prims, s.furniturePrimitives(e)...)
		}
	}

	var logsCopy []api.LogEntry
	if len(sess.Logs) > 0 {
		logsCopy = make([]api.LogEntry, len(sess.Logs))
		copy(logsCopy, sess.Logs)
	}

	resp := &api.ServerResponse{
		Type:       "UPDATE",
		Seq:        sess.Seq,
		SessionID:  sess.ID,
		Primitives: prims,
		Logs:       logsCopy,
	}
	if selected != "" {
		resp.Selected = sess.lastDetail
	}
	return resp
}

// entityPrimitives разворачивает сущность в примитивы.
// Группа объектов с несколькими прямоугольниками дает по примитиву на
// прямоугольник с per-instance id "{имя}-{индекс}" - у каждого
// физического стола своя подсветка, хотя запись каталога одна.
func (s *ViewService) entityPrimitives(e *domain.FloorEntity, binding renderBinding, selected, hovered string) []api.PrimitiveView {
	single := e.IsRoom || len(e.PrimarySpace) == 1

	prims := make([]api.PrimitiveView, 0, len(e.PrimarySpace))
	for i, rect := range e.PrimarySpace {
		id := e.Name
		sid := e.SceneID()
		if !single {
			sid = domain.InstanceID(e.Name, i)
			id = sid.String()
		}
		prims = append(prims, api.PrimitiveView{
			ID:         id,
			SceneID:    sceneIDView(sid),
			Kind:       e.Kind,
			IsRoom:     e.IsRoom,
			Rect:       api.RectView{X: rect.X, Y: rect.Y, Width: rect.Width, Height: rect.Height},
			Mesh:       binding.Mesh,
			Material:   binding.Material,
			IsSelected: id == selected,
			IsHovered:  id == hovered,
		})
	}
	return prims
}

// furniturePrimitives разворачивает мебель сущности в инертные примитивы.
func (s *ViewService) furniturePrimitives(e *domain.FloorEntity) []api.PrimitiveView {
	var prims []api.PrimitiveView

	if binding, ok := s.lookupBinding(domain.KindChair); ok {
		for i, rect := range e.Furniture.Chairs {
			id := fmt.Sprintf("%s-chair-%d", e.Name, i)
			prims = append(prims, api.PrimitiveView{
				ID:       id,
				SceneID:  sceneIDView(domain.CatalogID(id)),
				Kind:     domain.KindChair,
				Rect:     api.RectView{X: rect.X, Y: rect.Y, Width: rect.Width, Height: rect.Height},
				Mesh:     binding.Mesh,
				Material: binding.Material,
			})
		}
	}
	if binding, ok := s.lookupBinding(domain.KindTable); ok {
		for i, rect := range e.Furniture.Tables {
			id := fmt.Sprintf("%s-table-%d", e.Name, i)
			prims = append(prims, api.PrimitiveView{
				ID:       id,
				SceneID:  sceneIDView(domain.CatalogID(id)),
				Kind:     domain.KindTable,
				Rect:     api.RectView{X: rect.X, Y: rect.Y, Width: rect.Width, Height: rect.Height},
				Mesh:     binding.Mesh,
				Material: binding.Material,
			})
		}
	}
	return prims
}

// sceneIDView переводит структурный id в проводную форму.
// Клиент обязан вернуть его в HitView как есть.
func sceneIDView(id domain.SceneID) api.SceneIDView {
	return api.SceneIDView{
		Kind:   id.Kind.Label(),
		Group:  id.Group,
		SubKey: id.SubKey,
		Index:  id.Index,
	}
}

type renderBinding struct {
	Mesh     string
	Material string
}

// lookupBinding ищет привязку рендера для категории.
// Категория без привязки не фатальна: примитивы пропускаются,
// warning пишется один раз на категорию.
func (s *ViewService) lookupBinding(kind string) (renderBinding, bool) {
	b, ok := s.Scene[kind]
	if !ok {
		if !s.warnedKinds[kind] {
			s.warnedKinds[kind] = true
			logger.Component("engine").WithField("kind", kind).
				Warn("No render binding for kind, primitives skipped")
		}
		return renderBinding{}, false
	}
	return renderBinding{Mesh: b.Mesh, Material: b.Material}, true
}
