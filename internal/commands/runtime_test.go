package commands

import (
	"context"
	"testing"
	"time"
)

func TestEnsureContextDefaultsToBackground(t *testing.T) {
	if EnsureContext(nil) == nil {
		t.Fatal("expected a non-nil context")
	}
	ctx := context.Background()
	if EnsureContext(ctx) != ctx {
		t.Fatal("expected the provided context to pass through")
	}
}

func TestWithCommandTimeoutAppliesDeadline(t *testing.T) {
	ctx, cancel := WithCommandTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, ok := ctx.Deadline(); !ok {
		t.Fatal("expected a deadline on the returned context")
	}
}

func TestWithCommandTimeoutSkipsNonPositiveValues(t *testing.T) {
	parent := context.Background()
	ctx, cancel := WithCommandTimeout(parent, 0)
	defer cancel()
	if ctx != parent {
		t.Fatal("zero timeout must leave the context untouched")
	}
	if _, ok := ctx.Deadline(); ok {
		t.Fatal("zero timeout must not attach a deadline")
	}
}
