package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"floorview-server/internal/booking"
	"floorview-server/internal/engine"
	"floorview-server/internal/floorplan"
	"floorview-server/internal/infrastructure/storage"
	"floorview-server/internal/server"
	"floorview-server/internal/version"
	"floorview-server/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var floorPlanSource string
	var schemaSource string
	var sceneSource string
	var replayPath string
	flag.StringVar(&floorPlanSource, "floorplan", "floor_data.json", "Path or http(s) URL of the floor plan document")
	flag.StringVar(&schemaSource, "schema", "", "Path or URL of the group schema (empty for built-in)")
	flag.StringVar(&sceneSource, "scene", "", "Path or URL of the scene render config (empty for built-in)")
	flag.StringVar(&replayPath, "replay", "", "Path to .fvrp replay file to simulate")
	flag.Parse()

	logger.Log.Info("Starting FloorView...")
	logger.Log.Info(version.String())

	ctx := context.Background()

	schema, err := storage.LoadSchema(ctx, schemaSource)
	if err != nil {
		logger.Log.Fatal("Failed to load schema: ", err)
	}

	scene, err := storage.LoadSceneConfig(ctx, sceneSource)
	if err != nil {
		logger.Log.Fatal("Failed to load scene config: ", err)
	}

	doc, raw, err := storage.LoadDocument(ctx, floorPlanSource, schema)
	if err != nil {
		logger.Log.Fatal("Failed to load floor plan: ", err)
	}

	// 2. Декомпозиция плана. Выполняется ровно один раз: каталог неизменяем
	// на все время жизни процесса.
	catalog := floorplan.Decompose(doc, schema)
	logger.Log.Infof("Catalog built: %d entities", catalog.Len())

	viewService := engine.NewService(catalog, scene)

	// РЕЖИМ РЕПЛЕЯ
	if replayPath != "" {
		logger.Log.Info("💿 Mode: Replay Simulation")

		replays := storage.NewReplayService("")
		rs, err := replays.Load(replayPath)
		if err != nil {
			logger.Log.Fatal("Failed to load replay: ", err)
		}

		viewService.Playback(rs)
		return // Выходим после симуляции
	}

	if dir := os.Getenv("FV_REPLAY_DIR"); dir != "" {
		viewService.Replays = storage.NewReplayService(dir)
		logger.Log.Infof("Session recording enabled: %s", dir)
	}

	// Typed-nil в интерфейсе опаснее отсутствия поля, поэтому клиент
	// присваивается только при заданном URL.
	if url := os.Getenv("BOOKING_URL"); url != "" {
		viewService.Booking = booking.NewClient(url)
		logger.Log.Infof("Booking gateway: %s", url)
	} else {
		logger.Log.Info("Booking gateway not configured, detail panels go without availability")
	}

	port := os.Getenv("FV_PORT")
	if port == "" {
		port = "8080"
	}

	// 3. Запуск ядра
	viewService.Start()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// 4. Запуск сервера
	srv := server.New(viewService, port, raw)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error: ", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")

	// Останавливаем цикл команд и сохраняем записи активных сессий.
	viewService.Stop()
	if viewService.Replays != nil {
		for _, sess := range viewService.Sessions {
			if len(sess.Recording) == 0 {
				continue
			}
			if err := viewService.Replays.Save(sess.ToReplay()); err != nil {
				logger.Log.WithError(err).Warn("failed to save session replay")
			}
		}
	}

	logger.Log.Info("Done.")
}
