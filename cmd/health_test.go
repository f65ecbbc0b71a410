package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping() error { return p.err }

type fakeQueue struct {
	size int64
	err  error
}

func (q fakeQueue) Ping(context.Context) error { return q.err }

func (q fakeQueue) Size(context.Context) (int64, error) { return q.size, q.err }

type fakeSessions bool

func (s fakeSessions) Degraded() bool { return bool(s) }

func TestHealthHandler(t *testing.T) {
	down := errors.New("connection refused")

	tests := []struct {
		name      string
		db        fakePinger
		queue     fakeQueue
		sessions  fakeSessions
		wantDB    bool
		wantRedis bool
		wantDepth float64
	}{
		{"healthy", fakePinger{}, fakeQueue{size: 3}, false, true, true, 3},
		{"redis down", fakePinger{}, fakeQueue{err: down}, true, true, false, -1},
		{"db down", fakePinger{err: down}, fakeQueue{}, false, false, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/health", healthHandler(tt.db, tt.queue, tt.sessions))

			resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != fiber.StatusOK {
				t.Fatalf("status = %d", resp.StatusCode)
			}

			var body map[string]any
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body["db"] != tt.wantDB || body["redis"] != tt.wantRedis {
				t.Errorf("db=%v redis=%v", body["db"], body["redis"])
			}
			if body["queue_depth"] != tt.wantDepth {
				t.Errorf("queue_depth = %v, want %v", body["queue_depth"], tt.wantDepth)
			}
			if body["sessions_degraded"] != bool(tt.sessions) {
				t.Errorf("sessions_degraded = %v", body["sessions_degraded"])
			}
		})
	}
}
