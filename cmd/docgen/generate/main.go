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
	if err := runGenerate(os.Args[1:]); err != nil {
		log.Fatalf("docgen generate: %v", err)
	}
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("docgen-generate", flag.ExitOnError)
	directory := fs.String("dir", ".", "Directory to scan for annotated Go files")
	pattern := fs.String("pattern", "", "Glob pattern applied when discovering Go files (defaults to *.go)")
	recursive := fs.Bool("recursive", true, "Walk nested directories")
	dryRun := fs.Bool("dry-run", false, "Report pending rewrites without touching files")
	useManifest := fs.Bool("manifest", false, "Skip files whose recorded checksum is unchanged")
	manifestDSN := fs.String("manifest-dsn", "", "SQLite DSN backing the build manifest")
	configPath := fs.String("config", "", "Path to a docgen.json project configuration")
	logLevel := fs.String("log-level", "", "Log level (trace, debug, info, warn, error, fatal)")
	logFormat := fs.String("log-format", "", "Log format (json, console, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		ConfigPath:  *configPath,
		Pattern:     *pattern,
		Recursive:   recursive,
		UseManifest: *useManifest,
		ManifestDSN: *manifestDSN,
		LogLevel:    *logLevel,
		LogFormat:   *logFormat,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	defer module.Module.Close()

	if module.Service == nil {
		return fmt.Errorf("annotation service not configured")
	}

	handler := docscmd.NewGenerateHandler(module.Service, module.Logger)
	cmd := docscmd.GenerateCommand{
		Directory:   *directory,
		Pattern:     *pattern,
		Recursive:   *recursive,
		DryRun:      *dryRun,
		UseManifest: *useManifest,
	}
	ctx := logging.ContextWithFields(context.Background(), map[string]any{
		"tool": "docgen.generate",
	})
	if err := handler.Execute(ctx, cmd); err != nil {
		return fmt.Errorf("execute generate command: %w", err)
	}
	fmt.Fprintln(os.Stdout, "docgen generate command executed successfully")

	return nil
}
