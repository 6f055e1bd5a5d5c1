package systems

import "floorview-server/internal/domain"

// Capability - явные флаги интерактивности категории вместо
// "есть хендлер / нет хендлера". Политика из таблицы событий становится
// данными и проверяется тестами напрямую.
type Capability struct {
	// Interactive - реагирует ли категория на клик/ховер.
	Interactive bool
	// BlocksRaycast - поглощает ли категория луч рейкаста.
	// Стена блокирует, но не реагирует; стул не делает ни того, ни другого.
	BlocksRaycast bool
}

var kindCapabilities = map[string]Capability{
	domain.KindRoom:         {Interactive: true, BlocksRaycast: true},
	domain.KindDesk:         {Interactive: true, BlocksRaycast: true},
	domain.KindTable:        {Interactive: true, BlocksRaycast: true},
	domain.KindChair:        {Interactive: false, BlocksRaycast: false},
	domain.KindWallInterior: {Interactive: false, BlocksRaycast: true},
	domain.KindWallExterior: {Interactive: false, BlocksRaycast: true},
}

// CapabilityFor возвращает флаги категории.
// Неизвестная категория ведет себя как стена: не реагирует, но блокирует -
// клик сквозь незнакомый объект хуже, чем отсутствие реакции.
func CapabilityFor(kind string) Capability {
	if c, ok := kindCapabilities[kind]; ok {
		return c
	}
	return Capability{Interactive: false, BlocksRaycast: true}
}

// Hit - один примитив, пересеченный лучом. ID - имя сущности каталога
// или per-instance id; Kind - категория примитива. SceneID - структурный
// id примитива, если рендер его вернул: с ним разрешение не гадает по
// строке.
type Hit struct {
	ID      string
	Kind    string
	SceneID *domain.SceneID
}

// Dispatcher превращает сырые события указателя в мутации состояния
// сессии. Рейкаст рендера отдает ВСЕ пересеченные примитивы вдоль луча
// (от ближнего к дальнему); без дисциплины "только передний" выбор
// одного стола подсвечивал бы всё, что за ним. Это жесткое требование
// корректности, не оптимизация.
type Dispatcher struct {
	state *VisibilityState
}

func NewDispatcher(state *VisibilityState) *Dispatcher {
	return &Dispatcher{state: state}
}

// frontmost возвращает первый примитив, поглощающий луч.
// Инертные непоглощающие примитивы (стулья) луч пропускают насквозь.
func frontmost(hits []Hit) (Hit, bool) {
	for _, h := range hits {
		if CapabilityFor(h.Kind).BlocksRaycast {
			return h, true
		}
	}
	return Hit{}, false
}

// Click обрабатывает клик по списку пересечений.
// Возвращает выбранный примитив и признак изменения состояния.
// Неинтерактивный поглотитель (стена) съедает событие без мутаций.
func (d *Dispatcher) Click(hits []Hit) (Hit, bool) {
	front, ok := frontmost(hits)
	if !ok {
		return Hit{}, false
	}
	if !CapabilityFor(front.Kind).Interactive {
		return Hit{}, false
	}
	d.state.Select(front.ID)
	return front, true
}

// HoverEnter обрабатывает вход указателя: подсвечивается только
// передний интерактивный примитив.
func (d *Dispatcher) HoverEnter(hits []Hit) (Hit, bool) {
	front, ok := frontmost(hits)
	if !ok {
		return Hit{}, false
	}
	if !CapabilityFor(front.Kind).Interactive {
		return Hit{}, false
	}
	d.state.SetHover(front.ID)
	return front, true
}

// HoverExit снимает подсветку.
func (d *Dispatcher) HoverExit() {
	d.state.SetHover("")
}
