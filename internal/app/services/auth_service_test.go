package services

import (
	"context"
	"testing"
	"time"
)

func TestRunTokenSweeperStopsOnCancel(t *testing.T) {
	s := &AuthService{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		s.RunTokenSweeper(ctx, time.Hour)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("token sweeper did not stop after context cancellation")
	}
}
