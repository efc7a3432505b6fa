package subscription

import (
	"context"
	"testing"
	"time"
)

func TestRunEmitsSingleEvent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := Run(ctx)

	select {
	case <-events:
	case <-time.After(time.Second):
		t.Fatalf("expected one placeholder event")
	}

	select {
	case _, ok := <-events:
		if ok {
			t.Fatalf("unexpected second event")
		}
		t.Fatalf("channel closed while context still active")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestRunClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	events := Run(ctx)

	<-events
	cancel()

	select {
	case _, ok := <-events:
		if ok {
			t.Fatalf("expected channel close, got event")
		}
	case <-time.After(time.Second):
		t.Fatalf("channel not closed after cancel")
	}
}
