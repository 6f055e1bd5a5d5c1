package floorplan

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"floorview-server/internal/domain"
	"floorview-server/pkg/logger"
)

// Decompose превращает документ плана в плоский каталог адресуемых
// сущностей: стены, группы объектов, комнаты и сплиты составных комнат
// с мебелью, распределенной по содержанию центра.
//
// Весь ветвящийся разбор управляется схемой групп, не именами-литералами.
func Decompose(doc *Document, schema Schema) *Catalog {
	log := logger.Component("decomposer")
	cat := newCatalog(schema)

	// 1. Стены: по одной сущности на прямоугольник, без сплитов и слияний.
	for i, rect := range doc.Walls.Interior {
		cat.add(&domain.FloorEntity{
			Name:         fmt.Sprintf("%s-interior-%d", WallsKey, i),
			Kind:         domain.KindWallInterior,
			PrimarySpace: []domain.Rect{rect},
			Source:       domain.SourceRef{Group: WallsKey, SubKey: "interior", RectIndex: i},
		})
	}
	for i, rect := range doc.Walls.Exterior {
		cat.add(&domain.FloorEntity{
			Name:         fmt.Sprintf("%s-exterior-%d", WallsKey, i),
			Kind:         domain.KindWallExterior,
			PrimarySpace: []domain.Rect{rect},
			Source:       domain.SourceRef{Group: WallsKey, SubKey: "exterior", RectIndex: i},
		})
	}

	// Обходим группы в стабильном порядке, чтобы каталог был детерминирован.
	names := make([]string, 0, len(doc.Groups))
	for name := range doc.Groups {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		group := doc.Groups[name]

		// 2. Обычная группа объектов: мебель принадлежит группе безусловно,
		// никакой координатной фильтрации.
		if group.Room != 1 {
			if len(group.Space) == 0 {
				log.WithField("group", name).Debug("group has no space, skipping")
				continue
			}
			cat.add(&domain.FloorEntity{
				Name:         name,
				Kind:         schema.KindFor(name, false),
				PrimarySpace: group.Space,
				Furniture:    furniture(group.Chairs, group.Tables),
				Source:       domain.SourceRef{Group: name, RectIndex: -1},
			})
			continue
		}

		// 3. Составная комната: каждая объявленная саб-зона декомпозируется
		// отдельно под своим синтезированным именем.
		if schema.IsComposite(name) {
			for _, subKey := range schema.SubKeys(name) {
				sub, ok := group.Sub[subKey]
				if !ok || len(sub.Space) == 0 {
					log.WithFields(logrus.Fields{
						"group": name, "subKey": subKey,
					}).Debug("sub-group missing or empty, skipping")
					continue
				}
				cat.addRoomSpaces(name, subKey, sub.Space, sub.Chairs, sub.Tables)
			}
			// Собственная площадь составной группы (если авторы ее задали)
			// обрабатывается по тем же правилам, что и у простой комнаты.
			if len(group.Space) > 0 {
				cat.addRoomSpaces(name, "", group.Space, group.Chairs, group.Tables)
			}
			continue
		}

		// 4-5. Простая комната: мульти-прямоугольная площадь сплитится,
		// одиночная остается как есть.
		if len(group.Space) == 0 {
			log.WithField("group", name).Debug("room has no space, skipping")
			continue
		}
		cat.addRoomSpaces(name, "", group.Space, group.Chairs, group.Tables)
	}

	log.WithField("entities", cat.Len()).Info("Floor plan decomposed")
	return cat
}

// addRoomSpaces добавляет сущности комнаты для одного массива space.
// Один прямоугольник - одна несплитнутая сущность с мебелью как есть.
// Несколько - по сущности на прямоугольник с распределением мебели.
func (c *Catalog) addRoomSpaces(group, subKey string, space, chairs, tables []domain.Rect) {
	if len(space) == 1 {
		name := group
		ref := domain.SourceRef{Group: group, RectIndex: -1}
		if subKey != "" {
			name = domain.SceneID{Kind: domain.SceneSplit, Group: group, SubKey: subKey, Index: -1}.String()
			ref = domain.SourceRef{Group: group, SubKey: subKey, RectIndex: -1}
		}
		c.add(&domain.FloorEntity{
			Name:         name,
			Kind:         domain.KindRoom,
			IsRoom:       true,
			PrimarySpace: space,
			Furniture:    furniture(chairs, tables),
			Source:       ref,
		})
		return
	}

	chairBuckets := assignByCenter(space, chairs)
	tableBuckets := assignByCenter(space, tables)

	for i, rect := range space {
		c.add(&domain.FloorEntity{
			Name:         domain.SplitID(group, subKey, i).String(),
			Kind:         domain.KindRoom,
			IsRoom:       true,
			PrimarySpace: []domain.Rect{rect},
			Furniture:    furniture(chairBuckets[i], tableBuckets[i]),
			Source:       domain.SourceRef{Group: group, SubKey: subKey, RectIndex: i},
		})
	}
}

// assignByCenter раскладывает предметы по прямоугольникам зоны.
// Каждый предмет попадает РОВНО в один прямоугольник - первый, чей
// ContainsCenter сработал (first-match-wins). Так сохраняется инвариант
// разбиения даже когда центр лежит на общей границе двух зон.
// Предмет, не попавший никуда, выбрасывается.
func assignByCenter(space []domain.Rect, items []domain.Rect) [][]domain.Rect {
	buckets := make([][]domain.Rect, len(space))
	for _, item := range items {
		for i, rect := range space {
			if rect.ContainsCenter(item) {
				buckets[i] = append(buckets[i], item)
				break
			}
		}
	}
	return buckets
}

// furniture собирает компонент мебели; nil, если собирать нечего.
func furniture(chairs, tables []domain.Rect) *domain.FurnitureComponent {
	if len(chairs) == 0 && len(tables) == 0 {
		return nil
	}
	return &domain.FurnitureComponent{Chairs: chairs, Tables: tables}
}
