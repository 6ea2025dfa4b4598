package owlrender

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Render ontology objects as text"
	MsgRenderShort     = "Render every object in one or more documents"
	MsgRenderersShort  = "List registered renderers"
	MsgRenderersLong   = "List every registered renderer identifier. The active one is marked with *."
	MsgConfigShort     = "Show the effective configuration"
	MsgConfigLong      = "Show the settings after defaults, config file, environment and flags are merged."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Output
	MsgDocumentHeader = "# %s\n"
	MsgConfigSource   = "# source: %s\n"
	MsgNoConfigFile   = "embedded defaults"
	MsgSettingFormat  = "%s = %v\n"
	MsgVersionFormat  = "owlrender version %s\n  commit: %s\n  built:  %s\n"
	MsgActiveMarker   = "*"
	MsgStatusOK       = "ok"

	// Table headers
	MsgColActive = "ACTIVE"
	MsgColName   = "RENDERER"
	MsgColStatus = "STATUS"

	// Errors
	MsgErrLoadConfig  = "failed to load configuration: %w"
	MsgErrSetRenderer = "failed to apply --renderer: %w"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Config file (default is $XDG_CONFIG_HOME/owlapi/owlapi.toml)"
	MsgFlagRenderer = "Renderer identifier, overrides to_string_renderer"
	MsgFlagDefaults = "Print the embedded default configuration instead"
	MsgFlagCheck    = "Build each renderer and report whether it is usable"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
