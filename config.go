package docgen

import "github.com/goliatone/go-docgen/internal/runtimeconfig"

var (
	ErrDirectiveMarkerInvalid  = runtimeconfig.ErrDirectiveMarkerInvalid
	ErrGeneratePatternInvalid  = runtimeconfig.ErrGeneratePatternInvalid
	ErrManifestDSNRequired     = runtimeconfig.ErrManifestDSNRequired
	ErrCrossRefRouteRequired   = runtimeconfig.ErrCrossRefRouteRequired
	ErrCommandTimeoutInvalid   = runtimeconfig.ErrCommandTimeoutInvalid
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config          = runtimeconfig.Config
	DirectiveConfig = runtimeconfig.DirectiveConfig
	GenerateConfig  = runtimeconfig.GenerateConfig
	RendererConfig  = runtimeconfig.RendererConfig
	CrossRefConfig  = runtimeconfig.CrossRefConfig
	ManifestConfig  = runtimeconfig.ManifestConfig
	CommandsConfig  = runtimeconfig.CommandsConfig
	LoggingConfig   = runtimeconfig.LoggingConfig
	Features        = runtimeconfig.Features
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
