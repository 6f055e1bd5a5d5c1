package network

import (
	"sync"

	"floorview-server/pkg/api"
)

// Broadcaster занимается только рассылкой снимков сцены подписчикам.
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: SessionID -> Личный канал
	subscribers map[string]chan api.ServerResponse
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerResponse),
	}
}

// Register создает личный канал для сессии просмотра.
func (b *Broadcaster) Register(sessionID string) chan api.ServerResponse {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := b.subscribers[sessionID]; ok {
		close(old)
	}

	ch := make(chan api.ServerResponse, 64)
	b.subscribers[sessionID] = ch
	return ch
}

// Unregister удаляет подписчика
func (b *Broadcaster) Unregister(sessionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[sessionID]; ok {
		close(ch)
		delete(b.subscribers, sessionID)
	}
}

// SendTo отправляет снимок конкретной сессии (Unicast).
// Переполненный канал означает мертвого или безнадежно отставшего
// клиента - снимок просто теряется, следующий все равно полный.
func (b *Broadcaster) SendTo(sessionID string, msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if ch, ok := b.subscribers[sessionID]; ok {
		select {
		case ch <- msg:
		default:
		}
	}
}

// HasSubscriber проверяет, жива ли подписка сессии.
func (b *Broadcaster) HasSubscriber(sessionID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[sessionID]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
