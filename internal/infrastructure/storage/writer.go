package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"floorview-server/internal/domain"
)

const (
	MagicHeader string = `FVRP` // 4 байта
	Version1    uint32 = 1

	// maxSessionIDLen отсекает мусорные длины из битых файлов.
	// Реальные id - это uuid, 36 байт.
	maxSessionIDLen uint32 = 256
)

// ReplayFileHeader — это точное представление заголовка файла в памяти.
// binary.Write умеет писать это целиком, так как тут нет слайсов и строк,
// только массивы и числа.
type ReplayFileHeader struct {
	Magic        [4]byte // 4 байта
	Version      uint32  // 4 байта
	Timestamp    int64   // 8 байт
	SessionIDLen uint32  // 4 байта
	ActionCount  int32   // 4 байта
}

// ActionHeader — заголовок каждой записи действия.
type ActionHeader struct {
	Tick       int32  // 4
	ActionType uint8  // 1
	PayloadLen uint16 // 2
}

type ReplayService struct {
	SaveDir string
}

func NewReplayService(dir string) *ReplayService {
	// Создаем папку если нет
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		_ = os.MkdirAll(dir, 0755)
	}
	return &ReplayService{SaveDir: dir}
}

func (s *ReplayService) Save(session *domain.ReplaySession) error {
	filename := fmt.Sprintf("session_%s_%d.fvrp", session.SessionID, session.Timestamp)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return writeBinary(f, session)
}

func writeBinary(w io.Writer, s *domain.ReplaySession) error {
	// 1. Пишем глобальный заголовок
	header := ReplayFileHeader{
		Version:      Version1,
		Timestamp:    s.Timestamp,
		SessionIDLen: uint32(len(s.SessionID)),
		ActionCount:  int32(len(s.Actions)),
	}
	copy(header.Magic[:], MagicHeader) // Копируем строку в массив [4]byte

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if _, err := w.Write([]byte(s.SessionID)); err != nil {
		return err
	}

	// 2. Пишем действия
	for _, act := range s.Actions {
		payloadLen := len(act.Payload)
		if payloadLen > 65535 {
			return fmt.Errorf("payload too long: %d", payloadLen)
		}

		actHeader := ActionHeader{
			Tick:       int32(act.Tick),
			ActionType: uint8(act.Action),
			PayloadLen: uint16(payloadLen),
		}

		if err := binary.Write(w, binary.LittleEndian, &actHeader); err != nil {
			return err
		}

		if payloadLen > 0 {
			if _, err := w.Write(act.Payload); err != nil {
				return err
			}
		}
	}

	return nil
}
