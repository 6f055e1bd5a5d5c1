package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"floorview-server/pkg/logger"
)

// Client - HTTP-клиент внешнего сервиса бронирования.
// Ядро просмотра считает сервис непрозрачным: клиенту нужны только
// список ресурсов (для сопоставления по имени), доступность и создание
// брони. Внутренняя логика конфликтов остается на стороне сервиса.
type Client struct {
	baseURL string
	http    *http.Client

	mu        sync.Mutex
	resources map[string]Resource // имя сущности -> ресурс
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

// ResourceFor сопоставляет имя сущности каталога ресурсу бронирования.
// Список ресурсов забирается один раз и переиспользуется; промах по
// имени - не ошибка (не всякая сущность бронируема на стороне сервиса).
func (c *Client) ResourceFor(ctx context.Context, entityName string) (Resource, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.resources == nil {
		list, err := c.fetchResources(ctx)
		if err != nil {
			logger.Component("booking").WithError(err).Warn("resource list fetch failed")
			return Resource{}, false
		}
		c.resources = make(map[string]Resource, len(list))
		for _, r := range list {
			// Точное совпадение строк: room.name / desk.position_name
			c.resources[r.Name] = r
		}
	}

	r, ok := c.resources[entityName]
	return r, ok
}

// Availability возвращает сетку доступности ресурса на дату.
func (c *Client) Availability(ctx context.Context, res Resource, day time.Time) (*Availability, error) {
	q := url.Values{}
	q.Set("type", res.Type)
	q.Set("id", res.ID)
	q.Set("day", day.Format("2006-01-02"))

	var avail Availability
	if err := c.getJSON(ctx, "/availability?"+q.Encode(), &avail); err != nil {
		return nil, err
	}
	return &avail, nil
}

// Create отправляет запрос на создание брони.
func (c *Client) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/bookings", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusConflict {
		return nil, fmt.Errorf("time slot is already booked")
	}
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("booking service returned %d", resp.StatusCode)
	}

	var b Booking
	if err := json.NewDecoder(resp.Body).Decode(&b); err != nil {
		return nil, fmt.Errorf("malformed booking response: %w", err)
	}
	return &b, nil
}

func (c *Client) fetchResources(ctx context.Context) ([]Resource, error) {
	var list []Resource
	if err := c.getJSON(ctx, "/resources", &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("booking service returned %d for %s", resp.StatusCode, path)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
