package di

import (
	"context"
	"testing"

	"github.com/goliatone/go-docgen/internal/logging/gologger"
	"github.com/goliatone/go-docgen/internal/runtimeconfig"
	"github.com/goliatone/go-docgen/pkg/interfaces"
)

func TestNewContainerWiresDefaults(t *testing.T) {
	container, err := NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	defer container.Close()

	if container.Interpreter() == nil {
		t.Fatal("expected a wired interpreter")
	}
	if container.Assembler() == nil {
		t.Fatal("expected a wired assembler")
	}
	if container.AnnotationService() == nil {
		t.Fatal("expected a wired annotation service")
	}
	if container.Renderer() == nil {
		t.Fatal("expected a wired renderer")
	}
	if container.ManifestStore() != nil {
		t.Fatal("manifest store must stay nil while the feature is disabled")
	}
}

func TestNewContainerRejectsInvalidConfig(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Generate.Pattern = "*.md"

	if _, err := NewContainer(cfg); err == nil {
		t.Fatal("expected invalid configuration to be rejected")
	}
}

func TestNewContainerUsesGoLoggerProvider(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "json"

	container, err := NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	defer container.Close()

	provider, ok := container.LoggerProvider().(*gologger.Provider)
	if !ok {
		t.Fatalf("expected go-logger provider, got %T", container.LoggerProvider())
	}
	if provider.GetLogger("docgen.test") == nil {
		t.Fatal("expected logger from go-logger provider, got nil")
	}
}

type stubAnnotationService struct{}

func (stubAnnotationService) ProcessSource(context.Context, string, []byte) (*interfaces.FileResult, error) {
	return nil, nil
}

func (stubAnnotationService) ProcessFile(context.Context, string) (*interfaces.FileResult, error) {
	return nil, nil
}

func (stubAnnotationService) GenerateDirectory(context.Context, string, interfaces.GenerateOptions) (*interfaces.GenerateResult, error) {
	return nil, nil
}

func TestNewContainerHonoursOverrides(t *testing.T) {
	override := stubAnnotationService{}
	container, err := NewContainer(runtimeconfig.DefaultConfig(), WithAnnotationService(override))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	defer container.Close()

	if _, ok := container.AnnotationService().(stubAnnotationService); !ok {
		t.Fatalf("expected the override to win, got %T", container.AnnotationService())
	}
}
