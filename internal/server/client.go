package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"floorview-server/internal/engine"
	"floorview-server/pkg/api"
	"floorview-server/pkg/logger"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192 // список hits указателя бывает длинным
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и ViewService
type Client struct {
	Engine    *engine.ViewService
	Conn      *websocket.Conn
	Send      chan api.ServerResponse
	SessionID string
}

func NewClient(engine *engine.ViewService, conn *websocket.Conn) *Client {
	return &Client{
		Engine: engine,
		Conn:   conn,
		Send:   make(chan api.ServerResponse, 64),
	}
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	defer func() {
		c.Engine.Hub.Unregister(c.SessionID)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Warn("failed to close websocket connection")
		}
		// Сообщаем движку, что сессия ушла: ее состояние выбрасывается,
		// запись команд сохраняется в реплей
		if c.SessionID != "" {
			select {
			case c.Engine.LeaveChan <- c.SessionID:
			default:
			}
			logger.Log.WithField("session", c.SessionID).Info("Client disconnected")
		}
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// 1. HANDSHAKE
	var hello api.ClientCommand
	if err := c.Conn.ReadJSON(&hello); err != nil {
		logger.Log.Warn("Handshake failed")
		return
	}

	c.SessionID = hello.Token
	if c.SessionID == "" {
		c.SessionID = uuid.NewString()
	}

	logger.Log.WithField("session", c.SessionID).Info("Client connected")

	// 2. ПОДПИСКА НА СНИМКИ СЦЕНЫ
	sceneUpdates := c.Engine.Hub.Register(c.SessionID)

	// Запускаем пересылку снимков из Hub в writePump
	go func() {
		for msg := range sceneUpdates {
			c.Send <- msg
		}
		close(c.Send)
	}()

	// 3. СОЗДАНИЕ СЕССИИ + ПЕРВЫЙ СНИМОК
	c.Engine.JoinChan <- c.SessionID
	c.Engine.ProcessCommand(api.ClientCommand{Action: "INIT", Token: c.SessionID})

	// 4. ЦИКЛ ЧТЕНИЯ КОМАНД
	for {
		var cmd api.ClientCommand
		err := c.Conn.ReadJSON(&cmd)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Errorf("WS Error: %v", err)
			}
			break
		}
		cmd.Token = c.SessionID
		c.Engine.ProcessCommand(cmd)
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Warn("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
