package systems

// VisibilityState - состояние одной сессии просмотра: множество видимых
// имен плюс текущий выбор и ховер. Членство в visible - ЕДИНСТВЕННЫЙ
// источник истины о показе сущности; никакие производные флаги нигде
// не кэшируются. Отдельный master-флаг "показать всё" запрещен: он
// рассинхронизируется с поштучными переключениями (этот дефект уже
// ловили, лечится только массовым обновлением самого множества).
//
// Мутируется только из последовательного цикла команд своей сессии,
// поэтому блокировки не нужны: хендлер доходит до конца раньше, чем
// берется следующая команда.
type VisibilityState struct {
	visible  map[string]struct{}
	selected string // "" = ничего не выбрано
	hovered  string // "" = ничего не подсвечено
}

func NewVisibilityState() *VisibilityState {
	return &VisibilityState{visible: make(map[string]struct{})}
}

// Initialize наполняет множество всеми именами каталога (по умолчанию
// видно всё) и сбрасывает выбор. Вызывается ровно один раз на каталог.
func (s *VisibilityState) Initialize(names []string) {
	s.visible = make(map[string]struct{}, len(names))
	for _, n := range names {
		s.visible[n] = struct{}{}
	}
	s.selected = ""
	s.hovered = ""
}

// Toggle переключает членство имени в множестве видимых.
func (s *VisibilityState) Toggle(name string) {
	if _, ok := s.visible[name]; ok {
		delete(s.visible, name)
		return
	}
	s.visible[name] = struct{}{}
}

// SetVisibleBulk атомарно добавляет или убирает весь список имен.
// "Показать всё / скрыть всё" реализуется ТОЛЬКО через этот метод.
func (s *VisibilityState) SetVisibleBulk(names []string, show bool) {
	for _, n := range names {
		if show {
			s.visible[n] = struct{}{}
		} else {
			delete(s.visible, n)
		}
	}
}

// Select назначает выбранную сущность ("" снимает выбор).
// Выбранной может быть максимум одна.
func (s *VisibilityState) Select(name string) {
	s.selected = name
}

// SetHover назначает подсвеченную сущность ("" снимает подсветку).
// Подсвеченной может быть максимум одна.
func (s *VisibilityState) SetHover(name string) {
	s.hovered = name
}

// IsVisible отвечает на единственный законный вопрос рендера про показ.
func (s *VisibilityState) IsVisible(name string) bool {
	_, ok := s.visible[name]
	return ok
}

func (s *VisibilityState) Selected() string { return s.selected }
func (s *VisibilityState) Hovered() string  { return s.hovered }

// VisibleCount возвращает размер множества видимых.
func (s *VisibilityState) VisibleCount() int {
	return len(s.visible)
}
