package validation

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/goliatone/go-docgen/internal/runtimeconfig"
)

// ProjectConfig mirrors the docgen.json document. Optional booleans use
// pointers so an absent field never overrides a configured default.
type ProjectConfig struct {
	Directive *struct {
		Marker string `json:"marker"`
	} `json:"directive,omitempty"`
	Generate *struct {
		Pattern   string `json:"pattern"`
		Recursive *bool  `json:"recursive"`
		DryRun    *bool  `json:"dry_run"`
	} `json:"generate,omitempty"`
	Renderer *struct {
		HardWraps *bool `json:"hard_wraps"`
		Unsafe    *bool `json:"unsafe"`
		CrossRef  *struct {
			Group       string `json:"group"`
			Route       string `json:"route"`
			SymbolParam string `json:"symbol_param"`
		} `json:"cross_ref"`
	} `json:"renderer,omitempty"`
	Manifest *struct {
		DSN string `json:"dsn"`
	} `json:"manifest,omitempty"`
	Logging *struct {
		Provider  string   `json:"provider"`
		Level     string   `json:"level"`
		Format    string   `json:"format"`
		AddSource *bool    `json:"add_source"`
		Focus     []string `json:"focus"`
	} `json:"logging,omitempty"`
	Features *struct {
		Manifest *bool `json:"manifest"`
		Preview  *bool `json:"preview"`
		Logger   *bool `json:"logger"`
	} `json:"features,omitempty"`
}

// LoadProject reads and validates a docgen.json document from disk.
func LoadProject(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := ValidateProjectDocument(data); err != nil {
		return nil, err
	}
	var project ProjectConfig
	if err := json.Unmarshal(data, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// Apply overlays the project document on top of cfg, leaving absent fields at
// their configured values.
func (p *ProjectConfig) Apply(cfg runtimeconfig.Config) runtimeconfig.Config {
	if p == nil {
		return cfg
	}
	if p.Directive != nil {
		if marker := strings.TrimSpace(p.Directive.Marker); marker != "" {
			cfg.Directive.Marker = marker
		}
	}
	if p.Generate != nil {
		if pattern := strings.TrimSpace(p.Generate.Pattern); pattern != "" {
			cfg.Generate.Pattern = pattern
		}
		applyBool(&cfg.Generate.Recursive, p.Generate.Recursive)
		applyBool(&cfg.Generate.DryRun, p.Generate.DryRun)
	}
	if p.Renderer != nil {
		applyBool(&cfg.Renderer.HardWraps, p.Renderer.HardWraps)
		applyBool(&cfg.Renderer.Unsafe, p.Renderer.Unsafe)
		if ref := p.Renderer.CrossRef; ref != nil {
			if group := strings.TrimSpace(ref.Group); group != "" {
				cfg.Renderer.CrossRef.Group = group
			}
			if route := strings.TrimSpace(ref.Route); route != "" {
				cfg.Renderer.CrossRef.Route = route
			}
			if param := strings.TrimSpace(ref.SymbolParam); param != "" {
				cfg.Renderer.CrossRef.SymbolParam = param
			}
		}
	}
	if p.Manifest != nil {
		if dsn := strings.TrimSpace(p.Manifest.DSN); dsn != "" {
			cfg.Manifest.DSN = dsn
		}
	}
	if p.Logging != nil {
		if provider := strings.TrimSpace(p.Logging.Provider); provider != "" {
			cfg.Logging.Provider = provider
		}
		if level := strings.TrimSpace(p.Logging.Level); level != "" {
			cfg.Logging.Level = level
		}
		if format := strings.TrimSpace(p.Logging.Format); format != "" {
			cfg.Logging.Format = format
		}
		applyBool(&cfg.Logging.AddSource, p.Logging.AddSource)
		if len(p.Logging.Focus) > 0 {
			cfg.Logging.Focus = append([]string(nil), p.Logging.Focus...)
		}
	}
	if p.Features != nil {
		applyBool(&cfg.Features.Manifest, p.Features.Manifest)
		applyBool(&cfg.Features.Preview, p.Features.Preview)
		applyBool(&cfg.Features.Logger, p.Features.Logger)
	}
	return cfg
}

func applyBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
