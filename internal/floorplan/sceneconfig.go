package floorplan

import (
	"encoding/json"

	"floorview-server/internal/domain"
)

// RenderBinding - привязка категории сущности к ресурсам рендера.
// Сам рендер (меши, свет, камера) - внешний бэкенд; ядро лишь сообщает,
// КАКИМ мешом и материалом рисовать примитив.
type RenderBinding struct {
	Mesh     string `json:"mesh"`
	Material string `json:"material"`
}

// SceneConfig - отображение kind -> привязка рендера.
// Категория без привязки не фатальна: примитив пропускается с warning.
type SceneConfig map[string]RenderBinding

// ParseSceneConfig разбирает JSON конфигурации сцены.
func ParseSceneConfig(data []byte) (SceneConfig, error) {
	var cfg SceneConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultSceneConfig покрывает все шесть категорий ядра.
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		domain.KindRoom:         {Mesh: "floor-plane", Material: "room-flat"},
		domain.KindDesk:         {Mesh: "desk-box", Material: "wood-light"},
		domain.KindChair:        {Mesh: "chair-box", Material: "fabric-grey"},
		domain.KindTable:        {Mesh: "table-box", Material: "wood-dark"},
		domain.KindWallInterior: {Mesh: "wall-box", Material: "plaster-inner"},
		domain.KindWallExterior: {Mesh: "wall-box", Material: "plaster-outer"},
	}
}
