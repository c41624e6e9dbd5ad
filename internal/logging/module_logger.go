package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-docgen/pkg/interfaces"
)

const (
	rootModule        = "docgen"
	interpreterModule = "docgen.interpreter"
	assemblerModule   = "docgen.assembler"
	annotationModule  = "docgen.annotation"
	rendererModule    = "docgen.renderer"
	manifestModule    = "docgen.manifest"
)

const (
	fieldSourcePath = "source_path"
	fieldFunction   = "function"
	fieldDirective  = "directive_line"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// InterpreterLogger returns the logger namespace reserved for the argument interpreter.
func InterpreterLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, interpreterModule)
}

// AssemblerLogger returns the logger namespace reserved for documentation assembly.
func AssemblerLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, assemblerModule)
}

// AnnotationLogger returns the logger namespace reserved for source scanning and rewriting.
func AnnotationLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, annotationModule)
}

// RendererLogger returns the logger namespace reserved for HTML preview rendering.
func RendererLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, rendererModule)
}

// ManifestLogger returns the logger namespace reserved for the build manifest store.
func ManifestLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, manifestModule)
}

// WithSourceContext enriches the provided logger with common source-file
// fields such as path, function name, and the directive's line. Empty values
// are ignored.
func WithSourceContext(logger interfaces.Logger, path, function string, line int) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldSourcePath] = trimmed
	}
	if trimmed := strings.TrimSpace(function); trimmed != "" {
		fields[fieldFunction] = trimmed
	}
	if line > 0 {
		fields[fieldDirective] = line
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
