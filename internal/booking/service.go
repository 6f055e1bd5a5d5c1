package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"floorview-server/pkg/logger"
)

// ErrConflict возвращается при пересечении запрошенного интервала
// с существующей бронью того же ресурса.
var ErrConflict = errors.New("time slot is already booked")

// ErrNotFound возвращается для несуществующего ресурса или брони.
var ErrNotFound = errors.New("resource not found")

// Service - серверная логика бронирования поверх sqlite-хранилища.
type Service struct {
	db *sql.DB
}

func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// Resources возвращает все бронируемые ресурсы: комнаты и столы.
// Именно этот список ядро просмотра сопоставляет с каталогом по именам.
func (s *Service) Resources(ctx context.Context) ([]Resource, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT r.room_id, r.name, r.capacity, COALESCE(t.type_name, 'office')
        FROM room r LEFT JOIN type t ON t.type_id = r.type_id
        ORDER BY r.room_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Resource
	for rows.Next() {
		var id int64
		var r Resource
		if err := rows.Scan(&id, &r.Name, &r.Capacity, &r.RoomType); err != nil {
			return nil, err
		}
		r.Type = ResourceRoom
		r.ID = strconv.FormatInt(id, 10)
		list = append(list, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	deskRows, err := s.db.QueryContext(ctx,
		`SELECT desk_id, position_name FROM desk ORDER BY desk_id`)
	if err != nil {
		return nil, err
	}
	defer deskRows.Close()

	for deskRows.Next() {
		var id int64
		var r Resource
		if err := deskRows.Scan(&id, &r.Name); err != nil {
			return nil, err
		}
		r.Type = ResourceDesk
		r.ID = strconv.FormatInt(id, 10)
		list = append(list, r)
	}
	return list, deskRows.Err()
}

// Availability строит часовую сетку занятости ресурса на дату.
func (s *Service) Availability(ctx context.Context, resourceType, resourceID string, day time.Time) (*Availability, error) {
	column, err := resourceColumn(resourceType)
	if err != nil {
		return nil, err
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
        SELECT booking_id, start_time, end_time, pending
        FROM booking
        WHERE %s = ? AND start_time < ? AND end_time > ?`, column),
		resourceID, dayEnd.Format(time.RFC3339), dayStart.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings, err := scanBookings(rows, resourceType, resourceID)
	if err != nil {
		return nil, err
	}

	return &Availability{
		Date:  dayStart.Format("2006-01-02"),
		Slots: BuildSlots(dayStart, bookings),
	}, nil
}

// Create создает бронь, предварительно проверив конфликт интервалов.
// Комната с типом, требующим одобрения, бронируется со статусом pending.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	column, err := resourceColumn(req.ResourceType)
	if err != nil {
		return nil, err
	}
	if !req.Start.Before(req.End) {
		return nil, errors.New("start must be before end")
	}

	pending := false
	if req.ResourceType == ResourceRoom {
		exists, needsApproval, err := s.roomApproval(ctx, req.ResourceID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrNotFound
		}
		pending = needsApproval
	} else if exists, err := s.deskExists(ctx, req.ResourceID); err != nil {
		return nil, err
	} else if !exists {
		return nil, ErrNotFound
	}

	// Проверка конфликта: пересечение полуоткрытых интервалов.
	var conflicts int
	err = s.db.QueryRowContext(ctx, fmt.Sprintf(`
        SELECT COUNT(*) FROM booking
        WHERE %s = ? AND start_time < ? AND end_time > ?`, column),
		req.ResourceID, req.End.Format(time.RFC3339), req.Start.Format(time.RFC3339),
	).Scan(&conflicts)
	if err != nil {
		return nil, err
	}
	if conflicts > 0 {
		return nil, ErrConflict
	}

	b := Booking{
		ID:           uuid.NewString(),
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		UserID:       req.UserID,
		Start:        req.Start,
		End:          req.End,
		Pending:      pending,
	}

	var deskID, roomID interface{}
	if req.ResourceType == ResourceDesk {
		deskID = req.ResourceID
	} else {
		roomID = req.ResourceID
	}

	_, err = s.db.ExecContext(ctx, `
        INSERT INTO booking (booking_id, user_id, desk_id, room_id, start_time, end_time, pending)
        VALUES (?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.UserID, deskID, roomID,
		b.Start.Format(time.RFC3339), b.End.Format(time.RFC3339), boolToInt(b.Pending))
	if err != nil {
		return nil, err
	}

	logger.Component("booking").WithField("booking_id", b.ID).Info("Booking created")
	return &b, nil
}

// Cancel удаляет бронь по id.
func (s *Service) Cancel(ctx context.Context, bookingID string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM booking WHERE booking_id = ?`, bookingID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) roomApproval(ctx context.Context, roomID string) (exists, approval bool, err error) {
	var a int
	err = s.db.QueryRowContext(ctx, `
        SELECT COALESCE(t.approval, 0)
        FROM room r LEFT JOIN type t ON t.type_id = r.type_id
        WHERE r.room_id = ?`, roomID).Scan(&a)
	if errors.Is(err, sql.ErrNoRows) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return true, a != 0, nil
}

func (s *Service) deskExists(ctx context.Context, deskID string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM desk WHERE desk_id = ?`, deskID).Scan(&n)
	return n > 0, err
}

func scanBookings(rows *sql.Rows, resourceType, resourceID string) ([]Booking, error) {
	var list []Booking
	for rows.Next() {
		var b Booking
		var start, end string
		var pending int
		if err := rows.Scan(&b.ID, &start, &end, &pending); err != nil {
			return nil, err
		}
		var err error
		if b.Start, err = time.Parse(time.RFC3339, start); err != nil {
			continue // битая запись не валит всю сетку
		}
		if b.End, err = time.Parse(time.RFC3339, end); err != nil {
			continue
		}
		b.ResourceType = resourceType
		b.ResourceID = resourceID
		b.Pending = pending != 0
		list = append(list, b)
	}
	return list, rows.Err()
}

func resourceColumn(resourceType string) (string, error) {
	switch resourceType {
	case ResourceRoom:
		return "room_id", nil
	case ResourceDesk:
		return "desk_id", nil
	default:
		return "", fmt.Errorf("unknown resource type %q", resourceType)
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
