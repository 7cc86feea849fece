package events

import (
	"testing"
	"time"
)

func TestBus_PublishReachesAllSubscribers(t *testing.T) {
	bus := NewBus()
	ch1, cancel1 := bus.Subscribe()
	ch2, cancel2 := bus.Subscribe()
	defer cancel1()
	defer cancel2()

	event := CheckInRecorded{AssinaturaID: 42, At: time.Now()}
	bus.Publish(event)

	for i, ch := range []<-chan CheckInRecorded{ch1, ch2} {
		select {
		case got := <-ch:
			if got.AssinaturaID != 42 {
				t.Errorf("subscriber %d got %+v", i, got)
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d never received the event", i)
		}
	}
}

func TestBus_CancelStopsDelivery(t *testing.T) {
	bus := NewBus()
	ch, cancel := bus.Subscribe()
	cancel()

	if bus.SubscriberCount() != 0 {
		t.Fatalf("subscriber count = %d after cancel", bus.SubscriberCount())
	}
	// Channel is closed so a receive returns immediately.
	if _, open := <-ch; open {
		t.Error("channel still open after cancel")
	}
	bus.Publish(CheckInRecorded{AssinaturaID: 1})
}

func TestBus_PublishDoesNotBlockOnSlowSubscriber(t *testing.T) {
	bus := NewBus()
	_, cancel := bus.Subscribe() // never reads
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			bus.Publish(CheckInRecorded{AssinaturaID: int64(i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a slow subscriber")
	}
}
