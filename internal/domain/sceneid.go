package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// SceneIDKind - дискриминатор синтезированных идентификаторов.
// Исторически сплит саб-комнаты и per-instance id мебели имели одинаковую
// строковую форму "{group}-{index}", и резолвер гадал по известным именам
// групп. Структурный id снимает неоднозначность полностью; строковая форма
// остается только для проводки (wire) и ключей множества видимости.
type SceneIDKind uint8

const (
	// SceneCatalog - имя сущности каталога как есть (без синтеза).
	SceneCatalog SceneIDKind = iota
	// SceneSplit - саб-комната, выделенная из составной комнаты.
	SceneSplit
	// SceneInstance - отдельный экземпляр мебели внутри группы.
	// Концепция рендера: детали показываются для всей группы.
	SceneInstance
)

// Label возвращает строковую форму дискриминатора для проводки.
func (k SceneIDKind) Label() string {
	switch k {
	case SceneSplit:
		return "split"
	case SceneInstance:
		return "instance"
	default:
		return "catalog"
	}
}

// ParseSceneIDKind - обратное преобразование; незнакомая строка
// трактуется как обычное имя каталога.
func ParseSceneIDKind(s string) SceneIDKind {
	switch s {
	case "split":
		return SceneSplit
	case "instance":
		return SceneInstance
	default:
		return SceneCatalog
	}
}

// SceneID - структурный идентификатор примитива сцены.
type SceneID struct {
	Kind   SceneIDKind `json:"kind"`
	Group  string      `json:"group"`
	SubKey string      `json:"subKey,omitempty"`
	Index  int         `json:"index"`
}

// CatalogID возвращает id сущности каталога без синтеза.
func CatalogID(name string) SceneID {
	return SceneID{Kind: SceneCatalog, Group: name, Index: -1}
}

// SplitID возвращает id сплита составной комнаты.
func SplitID(group, subKey string, index int) SceneID {
	return SceneID{Kind: SceneSplit, Group: group, SubKey: subKey, Index: index}
}

// InstanceID возвращает per-instance id экземпляра мебели.
func InstanceID(entityName string, index int) SceneID {
	return SceneID{Kind: SceneInstance, Group: entityName, Index: index}
}

// String возвращает каноническую строковую форму идентификатора.
// Именно эта форма живет в множестве видимости и уходит клиенту.
func (id SceneID) String() string {
	switch id.Kind {
	case SceneSplit:
		switch {
		case id.SubKey != "" && id.Index >= 0:
			return fmt.Sprintf("%s-%s-%d", id.Group, id.SubKey, id.Index)
		case id.SubKey != "":
			// Саб-зона с единственным прямоугольником: индекс не нужен.
			return fmt.Sprintf("%s-%s", id.Group, id.SubKey)
		default:
			return fmt.Sprintf("%s-%d", id.Group, id.Index)
		}
	case SceneInstance:
		return fmt.Sprintf("%s-%d", id.Group, id.Index)
	default:
		return id.Group
	}
}

// SplitTrailingIndex отделяет числовой суффикс "-{index}" от имени.
// Возвращает базу, индекс и признак того, что суффикс был.
// Используется резолвером как последний (наименее специфичный) шаг разбора.
func SplitTrailingIndex(name string) (base string, index int, ok bool) {
	pos := strings.LastIndexByte(name, '-')
	if pos <= 0 || pos == len(name)-1 {
		return name, 0, false
	}
	idx, err := strconv.Atoi(name[pos+1:])
	if err != nil || idx < 0 {
		return name, 0, false
	}
	return name[:pos], idx, true
}
