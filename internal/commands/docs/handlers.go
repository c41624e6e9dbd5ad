package docscmd

import (
	"context"
	"errors"
	"os"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-docgen/internal/commands"
	"github.com/goliatone/go-docgen/internal/logging"
	"github.com/goliatone/go-docgen/pkg/interfaces"
)

const (
	generateOperation = "docs.generate"
	previewOperation  = "docs.preview"
)

// ErrPreviewFeatureDisabled is returned when the preview feature flag is disabled at runtime.
var ErrPreviewFeatureDisabled = errors.New("docs command: preview feature disabled")

var (
	_ command.Commander[GenerateCommand] = (*GenerateHandler)(nil)
	_ command.Commander[PreviewCommand]  = (*PreviewHandler)(nil)
)

// GenerateHandler orchestrates documentation generation runs via the shared
// command handler foundation.
type GenerateHandler struct {
	inner *commands.Handler[GenerateCommand]
}

// NewGenerateHandler creates a handler bound to the supplied annotation service.
func NewGenerateHandler(service interfaces.AnnotationService, logger interfaces.Logger, opts ...commands.HandlerOption[GenerateCommand]) *GenerateHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg GenerateCommand) error {
		result, err := service.GenerateDirectory(ctx, msg.Directory, interfaces.GenerateOptions{
			Pattern:     msg.Pattern,
			Recursive:   msg.Recursive,
			DryRun:      msg.DryRun,
			UseManifest: msg.UseManifest,
		})
		if err != nil {
			return err
		}
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"run_id":          result.RunID,
				"processed_count": len(result.Processed),
				"rewritten_count": len(result.Rewritten),
				"skipped_count":   len(result.Skipped),
				"error_count":     len(result.Errors),
				"dry_run":         msg.DryRun,
			}).Info("docs.command.generate.completed")
			if len(result.Errors) > 0 {
				return result.Errors[0].Err
			}
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[GenerateCommand]{
		commands.WithLogger[GenerateCommand](baseLogger),
		commands.WithOperation[GenerateCommand](generateOperation),
		commands.WithMessageFields(func(msg GenerateCommand) map[string]any {
			fields := map[string]any{
				"directory": msg.Directory,
			}
			if msg.Pattern != "" {
				fields["pattern"] = msg.Pattern
			}
			if msg.Recursive {
				fields["recursive"] = true
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			if msg.UseManifest {
				fields["use_manifest"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[GenerateCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &GenerateHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[GenerateCommand].
func (h *GenerateHandler) Execute(ctx context.Context, msg GenerateCommand) error {
	return h.inner.Execute(ctx, msg)
}

// PreviewHandler renders annotated files to HTML via the shared command
// handler foundation. Source files are never rewritten.
type PreviewHandler struct {
	inner *commands.Handler[PreviewCommand]
}

// NewPreviewHandler creates a handler bound to the supplied annotation service
// and renderer.
func NewPreviewHandler(service interfaces.AnnotationService, renderer interfaces.DocRenderer, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[PreviewCommand]) *PreviewHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg PreviewCommand) error {
		if !gates.previewEnabled() {
			return ErrPreviewFeatureDisabled
		}

		result, err := service.ProcessFile(ctx, msg.Path)
		if err != nil {
			return err
		}

		html, err := renderer.RenderFile(ctx, result)
		if err != nil {
			return err
		}
		if err := os.WriteFile(msg.Output, html, 0o644); err != nil {
			return err
		}

		logging.WithFields(baseLogger, map[string]any{
			"path":           msg.Path,
			"output":         msg.Output,
			"function_count": len(result.Docs),
		}).Info("docs.command.preview.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[PreviewCommand]{
		commands.WithLogger[PreviewCommand](baseLogger),
		commands.WithOperation[PreviewCommand](previewOperation),
		commands.WithMessageFields(func(msg PreviewCommand) map[string]any {
			return map[string]any{
				"path":   msg.Path,
				"output": msg.Output,
			}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[PreviewCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PreviewHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[PreviewCommand].
func (h *PreviewHandler) Execute(ctx context.Context, msg PreviewCommand) error {
	return h.inner.Execute(ctx, msg)
}
