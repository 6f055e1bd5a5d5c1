package server

import (
	"encoding/json"
	"net/http"
	_ "net/http/pprof" // Profiling

	"floorview-server/internal/engine"
	"floorview-server/internal/version"
	"floorview-server/pkg/logger"
)

type Server struct {
	Engine *engine.ViewService
	Port   string

	// FloorPlanRaw - исходный документ плана как есть.
	// Рендер-бэкенд забирает его для построения геометрии пола.
	FloorPlanRaw []byte
}

func New(engine *engine.ViewService, port string, floorPlanRaw []byte) *Server {
	return &Server{
		Engine:       engine,
		Port:         port,
		FloorPlanRaw: floorPlanRaw,
	}
}

// Run запускает HTTP сервер
func (s *Server) Run() error {
	mux := http.DefaultServeMux

	// Регистрируем роуты
	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))
	mux.HandleFunc("/floorplan", enableCORS(s.handleFloorPlan))

	logger.Log.Infof("Floor view server running on :%s", s.Port)
	return http.ListenAndServe(":"+s.Port, mux)
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с фронтенда
		w.Header().Set("Access-Control-Allow-Origin", "*")
		// Разрешаем заголовки, если фронт шлет что-то нестандартное
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// handleWS обрабатывает подключение по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("Upgrade error:", err)
		return
	}

	client := NewClient(s.Engine, conn)

	// Запускаем пампы
	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"clients": s.Engine.Hub.SubscriberCount(),
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(version.Info())
}

func (s *Server) handleFloorPlan(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(s.FloorPlanRaw)
}
