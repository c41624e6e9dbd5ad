package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-docgen/cmd/docgen/internal/bootstrap"
	docscmd "github.com/goliatone/go-docgen/internal/commands/docs"
	"github.com/goliatone/go-docgen/internal/logging"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runPreview(os.Args[1:]); err != nil {
		log.Fatalf("docgen preview: %v", err)
	}
}

func runPreview(args []string) error {
	fs := flag.NewFlagSet("docgen-preview", flag.ExitOnError)
	file := fs.String("file", "", "Go source file to preview")
	output := fs.String("output", "preview.html", "Path the rendered HTML is written to")
	configPath := fs.String("config", "", "Path to a docgen.json project configuration")
	logLevel := fs.String("log-level", "", "Log level (trace, debug, info, warn, error, fatal)")
	logFormat := fs.String("log-format", "", "Log format (json, console, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		ConfigPath: *configPath,
		Preview:    true,
		LogLevel:   *logLevel,
		LogFormat:  *logFormat,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	defer module.Module.Close()

	handler := docscmd.NewPreviewHandler(module.Service, module.Renderer, module.Logger, docscmd.FeatureGates{
		PreviewEnabled: func() bool { return true },
	})
	cmd := docscmd.PreviewCommand{
		Path:   *file,
		Output: *output,
	}
	ctx := logging.ContextWithFields(context.Background(), map[string]any{
		"tool": "docgen.preview",
	})
	if err := handler.Execute(ctx, cmd); err != nil {
		return fmt.Errorf("execute preview command: %w", err)
	}
	fmt.Fprintf(os.Stdout, "docgen preview written to %s\n", *output)

	return nil
}
