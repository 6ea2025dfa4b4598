package owlrender

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/yinjianfei/owlapi/internal/version"
	"github.com/yinjianfei/owlapi/pkg/config"
	"github.com/yinjianfei/owlapi/pkg/document"
	"github.com/yinjianfei/owlapi/pkg/errors"
	"github.com/yinjianfei/owlapi/pkg/logging"
	"github.com/yinjianfei/owlapi/pkg/render"
	"github.com/yinjianfei/owlapi/pkg/tostring"
)

// skipConfig marks commands that must work even with a broken config
const skipConfig = "owlrender/skip-config"

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity  int
		configPath string
		renderer   string
	)

	rootCmd := &cobra.Command{
		Use:     "owlrender",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			if !stdoutIsTerminal() {
				pterm.DisableStyling()
			}
			if cmd.Annotations[skipConfig] != "" {
				return nil
			}
			return initConfig(configPath, renderer, cmd.Flags().Changed("renderer"))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&renderer, "renderer", "r", "", MsgFlagRenderer)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newRenderersCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// initConfig loads options, applies the --renderer override and makes
// the result the process-wide configuration. The default renderer
// registry is reset so it picks the new options up.
func initConfig(path, renderer string, override bool) error {
	opts, err := config.Load(path)
	if err != nil {
		return fmt.Errorf(MsgErrLoadConfig, err)
	}

	if override {
		if err := opts.Set(config.KeyToStringRenderer, renderer); err != nil {
			return fmt.Errorf(MsgErrSetRenderer, err)
		}
	}

	config.Initialize(opts)
	tostring.Reset()
	return nil
}

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "render FILE...",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.render")
			out := cmd.OutOrStdout()
			registry := tostring.Default()

			for _, path := range args {
				done := logging.LogOperationStart(logger, "render "+path)

				doc, err := document.Load(path)
				if err != nil {
					return err
				}
				logger.Info().Str("path", path).Int("objects", len(doc.Objects)).Msg("Loaded document")

				if len(args) > 1 {
					fmt.Fprintf(out, MsgDocumentHeader, path)
				}
				for _, obj := range doc.Objects {
					s, err := registry.Render(obj)
					if err != nil {
						return err
					}
					fmt.Fprintln(out, s)
				}
				done()
			}
			return nil
		},
	}
}

func newRenderersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "renderers",
		Short:   MsgRenderersShort,
		Long:    MsgRenderersLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := tostring.Default()
			active, _ := registry.CurrentIdentifier()
			check, _ := cmd.Flags().GetBool("check")

			header := []string{MsgColActive, MsgColName}
			if check {
				header = append(header, MsgColStatus)
			}
			data := pterm.TableData{header}

			for _, name := range render.Names() {
				mark := ""
				if name == active {
					mark = MsgActiveMarker
				}
				row := []string{mark, name}
				if check {
					row = append(row, resolveStatus(registry, name))
				}
				data = append(data, row)
			}

			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}

	cmd.Flags().Bool("check", false, MsgFlagCheck)
	return cmd
}

// resolveStatus builds name once to report whether it can be used
func resolveStatus(registry *tostring.Registry, name string) string {
	if _, err := registry.Resolve(name); err != nil {
		return string(errors.GetErrorCode(err))
	}
	return MsgStatusOK
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if defaults, _ := cmd.Flags().GetBool("defaults"); defaults {
				fmt.Fprint(out, config.DefaultsContent())
				return nil
			}

			opts := config.Get()
			settings, err := opts.Settings()
			if err != nil {
				return err
			}

			source := opts.Path()
			if source == "" {
				source = MsgNoConfigFile
			}
			fmt.Fprintf(out, MsgConfigSource, source)
			fmt.Fprintf(out, MsgSettingFormat, config.KeyToStringRenderer, strconv.Quote(settings.ToStringRenderer))
			fmt.Fprintf(out, MsgSettingFormat, config.KeyRendererCacheSize, settings.RendererCacheSize)
			return nil
		},
	}

	cmd.Flags().Bool("defaults", false, MsgFlagDefaults)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       MsgVersionShort,
		GroupID:     "misc",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfig: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Annotations:           map[string]string{skipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
