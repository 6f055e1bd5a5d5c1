package storage

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"floorview-server/internal/domain"
)

func (s *ReplayService) Load(path string) (*domain.ReplaySession, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBinary(f)
}

func readBinary(r io.Reader) (*domain.ReplaySession, error) {
	// 1. Читаем заголовок целиком
	var header ReplayFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("invalid magic")
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}
	// Счетчики из битого файла не должны доходить до make().
	if header.ActionCount < 0 {
		return nil, fmt.Errorf("invalid action count: %d", header.ActionCount)
	}
	if header.SessionIDLen > maxSessionIDLen {
		return nil, fmt.Errorf("invalid session id length: %d", header.SessionIDLen)
	}

	// 2. Читаем ID сессии
	idBuf := make([]byte, header.SessionIDLen)
	if _, err := io.ReadFull(r, idBuf); err != nil {
		return nil, fmt.Errorf("failed to read session id: %w", err)
	}

	session := &domain.ReplaySession{
		SessionID: string(idBuf),
		Timestamp: header.Timestamp,
		Actions:   make([]domain.ReplayAction, header.ActionCount),
	}

	// 3. Читаем Actions
	for i := 0; i < int(header.ActionCount); i++ {
		var ah ActionHeader
		if err := binary.Read(r, binary.LittleEndian, &ah); err != nil {
			return nil, err
		}

		act := domain.ReplayAction{
			Tick:   int(ah.Tick),
			Action: domain.ActionType(ah.ActionType),
		}

		if ah.PayloadLen > 0 {
			act.Payload = make([]byte, ah.PayloadLen)
			if _, err := io.ReadFull(r, act.Payload); err != nil {
				return nil, err
			}
		} else {
			act.Payload = json.RawMessage{}
		}

		session.Actions[i] = act
	}

	return session, nil
}
