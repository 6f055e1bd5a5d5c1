package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"net/http"
	"os"
	"time"

	"floorview-server/internal/booking"
	"floorview-server/internal/floorplan"
	"floorview-server/internal/infrastructure/storage"
	"floorview-server/pkg/logger"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// ============================================================
// Booking Service
// ============================================================
//
// Отдельный сервис бронирования: хранит брони в SQLite и отдает
// сетку доступности. floorview-server ходит сюда через booking.Client.

func main() {
	logger.Init()

	var seedSource string
	flag.StringVar(&seedSource, "seed-from", "", "Floor plan path/URL to seed resources from (empty to skip)")
	flag.Parse()

	ctx := context.Background()

	dbPath := getenv("BOOKING_DB_PATH", "data/booking.db")
	db, err := booking.OpenStore(ctx, dbPath)
	if err != nil {
		logger.Log.Fatal("open db: ", err)
	}
	defer db.Close()

	// Опциональный посев ресурсов из плана этажа: каждая комната и каждый
	// стол каталога становятся бронируемыми ресурсами.
	if seedSource != "" {
		schema := floorplan.DefaultSchema()
		doc, _, err := storage.LoadDocument(ctx, seedSource, schema)
		if err != nil {
			logger.Log.Fatal("seed: load floor plan: ", err)
		}
		cat := floorplan.Decompose(doc, schema)
		if err := booking.SeedFromCatalog(ctx, db, cat); err != nil {
			logger.Log.Fatal("seed: ", err)
		}
		logger.Log.Infof("Resources seeded from %s", seedSource)
	}

	svc := booking.NewService(db)
	h := &bookingHandler{svc: svc}

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		AppName:      "Booking Service",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{"*"},
		AllowMethods: []string{"*"},
	}))

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})

	app.Get("/health/ready", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ready"})
	})

	// ============================================================
	// Booking Routes
	// ============================================================

	app.Get("/resources", h.ListResources)
	app.Get("/availability", h.GetAvailability)
	app.Post("/bookings", h.CreateBooking)
	app.Delete("/bookings/:id", h.CancelBooking)

	// ============================================================
	// Server Start
	// ============================================================

	addr := ":" + getenv("BOOKING_PORT", "3003")
	logger.Log.Infof("Starting Booking Service on %s", addr)

	if err := app.Listen(addr); err != nil {
		logger.Log.Fatal("Failed to start server: ", err)
	}
}

type bookingHandler struct {
	svc *booking.Service
}

func (h *bookingHandler) ListResources(c fiber.Ctx) error {
	resources, err := h.svc.Resources(c.Context())
	if err != nil {
		logger.Log.WithError(err).Error("list resources")
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(resources)
}

// GetAvailability отдает часовую сетку дня: ?type=room&id=...&day=YYYY-MM-DD.
func (h *bookingHandler) GetAvailability(c fiber.Ctx) error {
	resourceType := c.Query("type")
	resourceID := c.Query("id")
	if resourceType == "" || resourceID == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "type and id are required"})
	}

	day := time.Now()
	if raw := c.Query("day"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "day must be YYYY-MM-DD"})
		}
		day = parsed
	}

	av, err := h.svc.Availability(c.Context(), resourceType, resourceID, day)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "resource not found"})
		}
		logger.Log.WithError(err).Error("availability")
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(av)
}

func (h *bookingHandler) CreateBooking(c fiber.Ctx) error {
	var req booking.CreateRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}

	if req.ResourceType == "" || req.ResourceID == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "resourceType and resourceId are required"})
	}
	if !req.Start.Before(req.End) {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "start must be before end"})
	}

	b, err := h.svc.Create(c.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrNotFound):
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "resource not found"})
		case errors.Is(err, booking.ErrConflict):
			return c.Status(http.StatusConflict).JSON(fiber.Map{"error": "time slot is already booked"})
		default:
			logger.Log.WithError(err).Error("create booking")
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
		}
	}
	return c.Status(http.StatusCreated).JSON(b)
}

func (h *bookingHandler) CancelBooking(c fiber.Ctx) error {
	if err := h.svc.Cancel(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "booking not found"})
		}
		logger.Log.WithError(err).Error("cancel booking")
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.SendStatus(http.StatusNoContent)
}

func getenv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}
