package booking

import (
	"context"
	"database/sql"

	"github.com/sirupsen/logrus"

	"floorview-server/internal/domain"
	"floorview-server/internal/floorplan"
	"floorview-server/pkg/logger"
)

// Типы комнат и их флаг одобрения - как в исходной базе офиса.
var roomTypes = map[string]bool{
	"office":    false,
	"meeting":   true,
	"training":  true,
	"beer":      false,
	"wellbeing": false,
}

// SeedFromCatalog наполняет хранилище ресурсами из декомпозированного
// каталога: каждая комната (включая сплиты составных) - одна строка room,
// каждый экземпляр стола - одна строка desk с per-instance позицией.
// Идемпотентно: существующие записи не трогаются.
func SeedFromCatalog(ctx context.Context, db *sql.DB, cat *floorplan.Catalog) error {
	log := logger.Component("seed")

	for name, approval := range roomTypes {
		if _, err := db.ExecContext(ctx, `
            INSERT INTO type (type_name, approval) VALUES (?, ?)
            ON CONFLICT (type_name) DO NOTHING`,
			name, boolToInt(approval)); err != nil {
			return err
		}
	}

	rooms, desks := 0, 0
	schema := cat.Schema()

	for _, e := range cat.Entities() {
		switch {
		case e.IsRoom:
			roomType := schema.RoomTypeFor(e.Source.Group)
			if _, err := db.ExecContext(ctx, `
                INSERT INTO room (name, capacity, type_id)
                VALUES (?, ?, (SELECT type_id FROM type WHERE type_name = ?))
                ON CONFLICT (name) DO NOTHING`,
				e.Name, e.Capacity(), roomType); err != nil {
				return err
			}
			rooms++

		case e.Kind == domain.KindDesk:
			// Позиция стола = id примитива рендера, чтобы выбор
			// конкретного стола находил свой ресурс по точному имени.
			for i := range e.PrimarySpace {
				position := e.Name
				if len(e.PrimarySpace) > 1 {
					position = domain.InstanceID(e.Name, i).String()
				}
				if _, err := db.ExecContext(ctx, `
                    INSERT INTO desk (position_name) VALUES (?)
                    ON CONFLICT (position_name) DO NOTHING`,
					position); err != nil {
					return err
				}
				desks++
			}
		}
	}

	log.WithFields(logrus.Fields{
		"rooms": rooms, "desks": desks,
	}).Info("Catalog seeded into booking store")
	return nil
}
