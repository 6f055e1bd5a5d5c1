package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"floorview-server/internal/floorplan"
	"floorview-server/pkg/logger"
)

// fetchTimeout ограничивает единственную асинхронную границу вида -
// первоначальную загрузку документа.
const fetchTimeout = 15 * time.Second

// LoadDocument забирает floor_data по пути или http(s)-URL и разбирает его.
// Загрузка происходит РОВНО один раз до декомпозиции; сбой фатален для
// всего вида - частичного каталога не бывает, ретраев нет.
// Возвращает и сырые байты: сервер отдает их рендер-бэкенду как есть.
func LoadDocument(ctx context.Context, source string, schema floorplan.Schema) (*floorplan.Document, []byte, error) {
	raw, err := fetch(ctx, source)
	if err != nil {
		return nil, nil, fmt.Errorf("floor plan fetch failed: %w", err)
	}

	doc, err := floorplan.ParseDocument(raw, schema)
	if err != nil {
		return nil, nil, err
	}

	logger.Component("storage").WithField("source", source).Info("Floor plan loaded")
	return doc, raw, nil
}

// LoadSchema читает схему групп; пустой источник дает схему по умолчанию.
func LoadSchema(ctx context.Context, source string) (floorplan.Schema, error) {
	if source == "" {
		return floorplan.DefaultSchema(), nil
	}
	raw, err := fetch(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("schema fetch failed: %w", err)
	}
	return floorplan.ParseSchema(raw)
}

// LoadSceneConfig читает конфигурацию сцены; пустой источник дает дефолт.
func LoadSceneConfig(ctx context.Context, source string) (floorplan.SceneConfig, error) {
	if source == "" {
		return floorplan.DefaultSceneConfig(), nil
	}
	raw, err := fetch(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("scene config fetch failed: %w", err)
	}
	return floorplan.ParseSceneConfig(raw)
}

// fetch читает источник: файл или http(s).
func fetch(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		reqCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
		defer cancel()

		req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, source, nil)
		if err != nil {
			return nil, err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, source)
		}
		return io.ReadAll(resp.Body)
	}

	return os.ReadFile(source)
}
