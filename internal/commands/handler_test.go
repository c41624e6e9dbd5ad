package commands

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-docgen/internal/logging"
)

type testMessage struct{}

func (testMessage) Type() string { return "docgen.test.message" }

func (testMessage) Validate() error { return nil }

type invalidMessage struct{}

func (invalidMessage) Type() string { return "docgen.test.invalid" }

func (invalidMessage) Validate() error {
	return errors.New("invalid")
}

func TestHandlerExecuteSuccess(t *testing.T) {
	called := false
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		called = true
		return nil
	})

	if err := h.Execute(context.Background(), testMessage{}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !called {
		t.Fatal("expected handler to be invoked")
	}
}

func TestHandlerValidationShortCircuitsExecution(t *testing.T) {
	called := false
	h := NewHandler[invalidMessage](func(ctx context.Context, msg invalidMessage) error {
		called = true
		return nil
	})

	err := h.Execute(context.Background(), invalidMessage{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if called {
		t.Fatal("expected handler not to run when validation fails")
	}
}

func TestHandlerContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		called = true
		return nil
	})

	err := h.Execute(ctx, testMessage{})
	if err == nil {
		t.Fatal("expected context cancellation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
	if called {
		t.Fatal("expected handler not to run when context is cancelled")
	}
}

func TestHandlerWrapsExecutionError(t *testing.T) {
	execErr := errors.New("boom")
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		return execErr
	})

	err := h.Execute(context.Background(), testMessage{})
	if err == nil {
		t.Fatal("expected wrapped execution error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestHandlerHonoursTimeoutOption(t *testing.T) {
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(20 * time.Millisecond):
			return nil
		}
	}, WithTimeout[testMessage](10*time.Millisecond))

	err := h.Execute(context.Background(), testMessage{})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category for timeout, got %v", err)
	}
}

func TestHandlerMergesContextFields(t *testing.T) {
	var info TelemetryInfo
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		return nil
	}, WithTelemetry[testMessage](func(_ context.Context, _ testMessage, i TelemetryInfo) {
		info = i
	}))

	ctx := logging.ContextWithFields(context.Background(), map[string]any{
		"tool":   "docgen.generate",
		"run_id": "abc123",
	})
	if err := h.Execute(ctx, testMessage{}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if info.Fields["tool"] != "docgen.generate" || info.Fields["run_id"] != "abc123" {
		t.Fatalf("context fields must merge into handler fields, got %v", info.Fields)
	}
	if info.Fields["command"] != "docgen.test.message" {
		t.Fatalf("handler fields must survive the merge, got %v", info.Fields)
	}
}

func TestHandlerErrorsCarryDocgenRegister(t *testing.T) {
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		return errors.New("boom")
	})

	err := h.Execute(context.Background(), testMessage{})
	if err == nil {
		t.Fatal("expected execution error")
	}
	if !strings.Contains(err.Error(), "docgen command execution failed") {
		t.Fatalf("unexpected wrap message: %v", err)
	}

	hv := NewHandler[invalidMessage](func(ctx context.Context, msg invalidMessage) error {
		return nil
	})
	err = hv.Execute(context.Background(), invalidMessage{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "docgen command validation failed") {
		t.Fatalf("unexpected wrap message: %v", err)
	}
}

func TestHandlerInvokesTelemetry(t *testing.T) {
	var info TelemetryInfo
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		return nil
	},
		WithOperation[testMessage]("test.operation"),
		WithTelemetry[testMessage](func(_ context.Context, _ testMessage, i TelemetryInfo) {
			info = i
		}),
	)

	if err := h.Execute(context.Background(), testMessage{}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if info.Status != TelemetryStatusSuccess {
		t.Fatalf("expected success status, got %q", info.Status)
	}
	if info.Operation != "test.operation" {
		t.Fatalf("expected operation to propagate, got %q", info.Operation)
	}
	if info.Command != "docgen.test.message" {
		t.Fatalf("expected message type to propagate, got %q", info.Command)
	}
}

func TestHandlerTelemetryReportsFailure(t *testing.T) {
	var info TelemetryInfo
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		return errors.New("boom")
	}, WithTelemetry[testMessage](func(_ context.Context, _ testMessage, i TelemetryInfo) {
		info = i
	}))

	if err := h.Execute(context.Background(), testMessage{}); err == nil {
		t.Fatal("expected execution error")
	}
	if info.Status != TelemetryStatusFailed {
		t.Fatalf("expected failed status, got %q", info.Status)
	}
	if info.Error == nil {
		t.Fatal("expected telemetry to carry the error")
	}
}
