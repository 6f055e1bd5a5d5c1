package floorplan

import "floorview-server/internal/domain"

// Catalog - плоский, неизменяемый после декомпозиции каталог сущностей
// плана. Порядок сущностей стабилен (порядок добавления декомпозером).
type Catalog struct {
	entities []*domain.FloorEntity
	byName   map[string]*domain.FloorEntity
	schema   Schema
}

func newCatalog(schema Schema) *Catalog {
	return &Catalog{
		byName: make(map[string]*domain.FloorEntity),
		schema: schema,
	}
}

func (c *Catalog) add(e *domain.FloorEntity) {
	c.entities = append(c.entities, e)
	c.byName[e.Name] = e
}

// Entities возвращает все сущности в стабильном порядке.
func (c *Catalog) Entities() []*domain.FloorEntity {
	return c.entities
}

// Get возвращает сущность по точному имени.
func (c *Catalog) Get(name string) (*domain.FloorEntity, bool) {
	e, ok := c.byName[name]
	return e, ok
}

// Names возвращает имена всех сущностей - ими инициализируется
// множество видимости новой сессии.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entities))
	for i, e := range c.entities {
		names[i] = e.Name
	}
	return names
}

// Len возвращает размер каталога.
func (c *Catalog) Len() int {
	return len(c.entities)
}

// Schema возвращает схему групп, с которой строился каталог.
func (c *Catalog) Schema() Schema {
	return c.schema
}
