package storage

import (
	"bytes"
	"encoding/json"
	"testing"

	"floorview-server/internal/domain"
)

func TestReplayBinaryRoundTrip(t *testing.T) {
	original := &domain.ReplaySession{
		SessionID: "abc-123",
		Timestamp: 1756200000,
		Actions: []domain.ReplayAction{
			{Tick: 0, Action: domain.ActionInit, Payload: json.RawMessage{}},
			{Tick: 1, Action: domain.ActionClick,
				Payload: json.RawMessage(`{"hits":[{"id":"desk-0","kind":"desk"}]}`)},
			{Tick: 2, Action: domain.ActionToggle,
				Payload: json.RawMessage(`{"name":"managementRoom"}`)},
		},
	}

	var buf bytes.Buffer
	if err := writeBinary(&buf, original); err != nil {
		t.Fatalf("writeBinary failed: %v", err)
	}

	loaded, err := readBinary(&buf)
	if err != nil {
		t.Fatalf("readBinary failed: %v", err)
	}

	if loaded.SessionID != original.SessionID {
		t.Errorf("SessionID = %q, want %q", loaded.SessionID, original.SessionID)
	}
	if loaded.Timestamp != original.Timestamp {
		t.Errorf("Timestamp = %d, want %d", loaded.Timestamp, original.Timestamp)
	}
	if len(loaded.Actions) != len(original.Actions) {
		t.Fatalf("Actions = %d, want %d", len(loaded.Actions), len(original.Actions))
	}

	for i, act := range loaded.Actions {
		want := original.Actions[i]
		if act.Tick != want.Tick || act.Action != want.Action {
			t.Errorf("action %d = {%d %v}, want {%d %v}", i, act.Tick, act.Action, want.Tick, want.Action)
		}
		if !bytes.Equal(act.Payload, want.Payload) {
			t.Errorf("action %d payload = %s, want %s", i, act.Payload, want.Payload)
		}
	}
}

func TestReadBinary_RejectsBadMagic(t *testing.T) {
	var buf bytes.Buffer
	if err := writeBinary(&buf, &domain.ReplaySession{SessionID: "x"}); err != nil {
		t.Fatal(err)
	}

	data := buf.Bytes()
	data[0] = 'X' // портим магию

	if _, err := readBinary(bytes.NewReader(data)); err == nil {
		t.Fatal("expected error for invalid magic")
	}
}

func TestReadBinary_RejectsWrongVersion(t *testing.T) {
	var buf bytes.Buffer
	if err := writeBinary(&buf, &domain.ReplaySession{SessionID: "x"}); err != nil {
		t.Fatal(err)
	}

	data := buf.Bytes()
	data[4] = 99 // version - little endian uint32 сразу после магии

	if _, err := readBinary(bytes.NewReader(data)); err == nil {
		t.Fatal("expected error for unsupported version")
	}
}

// Отрицательный счетчик из битого файла не должен доходить до make().
func TestReadBinary_RejectsNegativeActionCount(t *testing.T) {
	var buf bytes.Buffer
	if err := writeBinary(&buf, &domain.ReplaySession{SessionID: "x"}); err != nil {
		t.Fatal(err)
	}

	data := buf.Bytes()
	// ActionCount - little endian int32 со смещения 20: magic(4) +
	// version(4) + timestamp(8) + sessionIDLen(4).
	data[20], data[21], data[22], data[23] = 0xFF, 0xFF, 0xFF, 0xFF // -1

	if _, err := readBinary(bytes.NewReader(data)); err == nil {
		t.Fatal("expected error for negative action count")
	}
}

func TestReadBinary_RejectsHugeSessionIDLen(t *testing.T) {
	var buf bytes.Buffer
	if err := writeBinary(&buf, &domain.ReplaySession{SessionID: "x"}); err != nil {
		t.Fatal(err)
	}

	data := buf.Bytes()
	// SessionIDLen - little endian uint32 со смещения 16.
	data[16], data[17], data[18], data[19] = 0xFF, 0xFF, 0xFF, 0xFF

	if _, err := readBinary(bytes.NewReader(data)); err == nil {
		t.Fatal("expected error for absurd session id length")
	}
}

func TestWriteBinary_RejectsOversizedPayload(t *testing.T) {
	big := make(json.RawMessage, 70000)

	var buf bytes.Buffer
	err := writeBinary(&buf, &domain.ReplaySession{
		SessionID: "x",
		Actions:   []domain.ReplayAction{{Action: domain.ActionClick, Payload: big}},
	})
	if err == nil {
		t.Fatal("expected error for payload over uint16 limit")
	}
}
