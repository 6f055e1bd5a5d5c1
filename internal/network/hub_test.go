package network

import (
	"testing"

	"floorview-server/pkg/api"
)

func TestBroadcaster_SendTo(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("s1")

	b.SendTo("s1", api.ServerResponse{Type: "UPDATE", Seq: 7})

	select {
	case msg := <-ch:
		if msg.Seq != 7 {
			t.Errorf("Seq = %d, want 7", msg.Seq)
		}
	default:
		t.Fatal("message not delivered")
	}

	// Unicast: чужой сессии ничего не приходит.
	ch2 := b.Register("s2")
	b.SendTo("s1", api.ServerResponse{})
	select {
	case <-ch2:
		t.Fatal("message leaked to another session")
	default:
	}
}

func TestBroadcaster_Unregister(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("s1")
	b.Unregister("s1")

	if b.HasSubscriber("s1") {
		t.Error("subscriber should be gone")
	}
	if _, ok := <-ch; ok {
		t.Error("channel should be closed")
	}

	// Отправка в отписанную сессию не паникует.
	b.SendTo("s1", api.ServerResponse{})
}

func TestBroadcaster_RegisterReplacesOldChannel(t *testing.T) {
	b := NewBroadcaster()
	old := b.Register("s1")
	fresh := b.Register("s1")

	if _, ok := <-old; ok {
		t.Error("old channel should be closed on re-register")
	}

	b.SendTo("s1", api.ServerResponse{Seq: 1})
	select {
	case <-fresh:
	default:
		t.Fatal("fresh channel should receive")
	}

	if b.SubscriberCount() != 1 {
		t.Errorf("SubscriberCount() = %d, want 1", b.SubscriberCount())
	}
}
