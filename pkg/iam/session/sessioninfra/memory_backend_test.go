package sessioninfra

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Abraxas-365/crewdesk/pkg/iam/session"
)

func TestMemoryBackend_Expiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryBackend()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	if err := m.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := m.Get(ctx, "k")
	if err != nil || string(got) != "v" {
		t.Fatalf("Get() = %q, %v; want v, nil", got, err)
	}

	now = now.Add(time.Minute)
	if _, err := m.Get(ctx, "k"); !errors.Is(err, session.ErrKeyNotFound) {
		t.Errorf("Get() after ttl error = %v, want ErrKeyNotFound", err)
	}
}

func TestMemoryBackend_CopiesValues(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryBackend()

	value := []byte("abc")
	_ = m.Set(ctx, "k", value, 0)
	value[0] = 'x'

	got, _ := m.Get(ctx, "k")
	if string(got) != "abc" {
		t.Errorf("Get() = %q, stored value was aliased", got)
	}

	_ = m.Remove(ctx, "k")
	if _, err := m.Get(ctx, "k"); !errors.Is(err, session.ErrKeyNotFound) {
		t.Errorf("Get() after Remove error = %v", err)
	}
}
