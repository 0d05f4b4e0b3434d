package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gibbonedu/finance/internal/sequence/domain"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stubStore struct {
	max   int64
	found bool
	err   error

	gotPrefix string
}

func (s *stubStore) MaxSequence(ctx context.Context, prefix string) (int64, bool, error) {
	s.gotPrefix = prefix
	return s.max, s.found, s.err
}

func newGenerator(t *testing.T, store domain.Store) domain.Generator {
	t.Helper()
	return NewGenerator(Params{Log: zap.NewNop(), Store: store})
}

func TestNextStartsAtOne(t *testing.T) {
	gen := newGenerator(t, &stubStore{found: false})
	if got := gen.Next(context.Background(), "INV-"); got != "INV-000001" {
		t.Fatalf("expected INV-000001, got %q", got)
	}
}

func TestNextIncrementsMax(t *testing.T) {
	store := &stubStore{max: 5, found: true}
	gen := newGenerator(t, store)
	if got := gen.Next(context.Background(), "INV-"); got != "INV-000006" {
		t.Fatalf("expected INV-000006, got %q", got)
	}
	if store.gotPrefix != "INV-" {
		t.Fatalf("expected store queried with prefix INV-, got %q", store.gotPrefix)
	}
}

func TestNextFallsBackOnStoreFailure(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	gen := NewGenerator(Params{
		Log:   zap.New(core),
		Store: &stubStore{err: errors.New("connection refused")},
	})

	if got := gen.Next(context.Background(), "RL24-2025-"); got != "RL24-2025-000001" {
		t.Fatalf("expected fallback RL24-2025-000001, got %q", got)
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 warn entry, got %d", len(entries))
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Fatalf("expected warn level, got %v", entries[0].Level)
	}
	if entries[0].ContextMap()["prefix"] != "RL24-2025-" {
		t.Fatalf("expected prefix field on warn, got %v", entries[0].ContextMap())
	}
}

func TestNextTreatsZeroMaxAsEmpty(t *testing.T) {
	gen := newGenerator(t, &stubStore{max: 0, found: true})
	if got := gen.Next(context.Background(), "INV-"); got != "INV-000001" {
		t.Fatalf("expected INV-000001, got %q", got)
	}
}
