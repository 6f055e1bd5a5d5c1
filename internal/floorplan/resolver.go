package floorplan

import "floorview-server/internal/domain"

// Resolve восстанавливает отображаемую запись по выбранному имени.
// Имя может быть именем каталога, синтезом сплита составной комнаты
// или per-instance id мебели. Порядок разбора важен:
//
//  1. точное совпадение - сплиты материализованы декомпозером жадно,
//     так что любой настоящий сплит находится здесь;
//  2. суффикс "-{index}" как сплит комнаты - только если база известна
//     как комната/составная группа: несуществующий индекс означает
//     "не найдено", а не проваливание в пункт 3;
//  3. суффикс "-{index}" как per-instance id: база - группа объектов
//     (не комната), возвращается вся запись группы, потому что instance
//     id - концепция рендера, а не данных.
//
// Отсутствие результата - это отсутствие деталей, не ошибка.
func (c *Catalog) Resolve(name string) (*domain.FloorEntity, bool) {
	if e, ok := c.byName[name]; ok {
		return e, true
	}

	base, _, ok := domain.SplitTrailingIndex(name)
	if !ok {
		return nil, false
	}

	if owner, ok := c.byName[base]; ok {
		if owner.IsRoom {
			// База - комната: суффикс мог бы быть только сплитом,
			// но такой сплит не материализован. Не найдено.
			return nil, false
		}
		return owner, true
	}

	// База не материализована: либо это составная комната с несуществующим
	// индексом, либо совсем чужое имя. В обоих случаях деталей нет.
	return nil, false
}

// ResolveID - однозначный структурный путь разрешения: никакого разбора
// строк, дискриминатор говорит всё сам.
func (c *Catalog) ResolveID(id domain.SceneID) (*domain.FloorEntity, bool) {
	switch id.Kind {
	case domain.SceneInstance:
		// Детали показываются для всей группы-владельца.
		return c.Get(id.Group)
	default:
		return c.Get(id.String())
	}
}

