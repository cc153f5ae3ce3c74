package drawinglog

import (
	"reflect"
	"testing"
	"time"

	"doodleserver/internal/model"
)

func sampleEvent(userID string) model.DrawingEvent {
	return model.DrawingEvent{
		Type:      model.DrawingEventDraw,
		Points:    []model.Point{{X: 0, Y: 0}, {X: 10, Y: 10}},
		Color:     "#000000",
		LineWidth: 2,
		UserID:    userID,
		Timestamp: time.Unix(0, 0),
	}
}

func TestAppendAndReplayPreservesContent(t *testing.T) {
	l := New()
	ev := sampleEvent("u1")
	l.Append(ev)

	replayed := l.Events()
	if len(replayed) != 1 {
		t.Fatalf("len(Events()) = %d, want 1", len(replayed))
	}
	if !reflect.DeepEqual(replayed[0], ev) {
		t.Fatalf("replayed event = %+v, want %+v", replayed[0], ev)
	}
}

func TestClearEmptiesLog(t *testing.T) {
	l := New()
	l.Append(sampleEvent("u1"))
	l.Append(sampleEvent("u2"))
	l.Clear()
	if l.Len() != 0 {
		t.Fatalf("Len() after Clear() = %d, want 0", l.Len())
	}
	if len(l.Events()) != 0 {
		t.Fatalf("Events() after Clear() should be empty")
	}
}

func TestEventsReturnsDefensiveCopy(t *testing.T) {
	l := New()
	l.Append(sampleEvent("u1"))
	out := l.Events()
	out[0].UserID = "mutated"
	if l.Events()[0].UserID != "u1" {
		t.Fatal("mutating a returned Events() slice should not affect the log")
	}
}

func TestAppendOrderIsPreserved(t *testing.T) {
	l := New()
	l.Append(sampleEvent("first"))
	l.Append(sampleEvent("second"))
	l.Append(sampleEvent("third"))

	events := l.Events()
	order := []string{events[0].UserID, events[1].UserID, events[2].UserID}
	want := []string{"first", "second", "third"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("arrival order not preserved: got %v, want %v", order, want)
		}
	}
}
