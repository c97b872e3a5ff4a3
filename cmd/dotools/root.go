package dotools

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dotools/internal/version"
	"github.com/arthur-debert/dotools/pkg/config"
	"github.com/arthur-debert/dotools/pkg/datastore"
	"github.com/arthur-debert/dotools/pkg/errors"
	"github.com/arthur-debert/dotools/pkg/logging"
	"github.com/arthur-debert/dotools/pkg/paths"
	"github.com/arthur-debert/dotools/pkg/ui/render"
	"github.com/arthur-debert/dotools/pkg/ui/styles"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// annotationNoConfig marks commands that run without loading the config
const annotationNoConfig = "dotools/no-config"

// globalOptions holds the persistent flags and the state resolved from them
type globalOptions struct {
	verbosity  int
	configFile string
	dir        string
	format     string
	color      string

	cfg *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "dotools",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := cmd.Annotations[annotationNoConfig]; ok {
				logging.SetupConsoleLogger(opts.verbosity)
				return nil
			}
			if err := opts.load(); err != nil {
				return err
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVarP(&opts.dir, "dir", "d", "", MsgFlagDir)
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "", MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&opts.color, "color", "", MsgFlagColor)

	_ = rootCmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(config.OutputFormats, cobra.ShellCompDirectiveNoFileComp))
	_ = rootCmd.RegisterFlagCompletionFunc("color", cobra.FixedCompletions(config.ColorModes, cobra.ShellCompDirectiveNoFileComp))
	_ = rootCmd.MarkPersistentFlagDirname("dir")

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "store",
		Title: "STORE:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "locations",
		Title: "LOCATIONS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Add all commands
	rootCmd.AddCommand(newGetCmd(opts))
	rootCmd.AddCommand(newSetCmd(opts))
	rootCmd.AddCommand(newDeleteCmd(opts))
	rootCmd.AddCommand(newKeysCmd(opts))
	rootCmd.AddCommand(newDumpCmd(opts))
	rootCmd.AddCommand(newPathCmd(opts))
	rootCmd.AddCommand(newLocCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// load resolves paths and configuration, then sets up logging with the
// configured log file
func (o *globalOptions) load() error {
	logging.SetupConsoleLogger(o.verbosity)

	p, err := paths.New()
	if err != nil {
		return err
	}

	cfg, err := config.Load(config.Options{
		ConfigFile: o.configFile,
		Paths:      p,
		Overrides: map[string]interface{}{
			"store.dir":     o.dir,
			"output.format": o.format,
			"output.color":  o.color,
		},
	})
	if err != nil {
		return err
	}

	o.cfg = cfg
	logging.SetupLoggerWithFile(o.verbosity, cfg.Log.File)
	return nil
}

// ensureLoaded loads configuration unless PersistentPreRunE already did.
// Completion functions run after it for __complete and must not reopen
// the log file.
func (o *globalOptions) ensureLoaded() error {
	if o.cfg != nil {
		return nil
	}
	return o.load()
}

// openStore opens the configured store, creating it on first use
func (o *globalOptions) openStore() (*datastore.Store, error) {
	return datastore.New(o.cfg.Store.Dir)
}

// renderer returns a renderer for the command's stdout in the configured
// format and color mode
func (o *globalOptions) renderer(cmd *cobra.Command) (*render.Renderer, error) {
	out := cmd.OutOrStdout()
	return render.New(out, o.cfg.Output.Format, styles.New(out, o.cfg.Output.Color))
}

// textOutput reports whether results are printed for humans
func (o *globalOptions) textOutput() bool {
	return o.cfg.Output.Format == render.FormatText
}

// confirm prints a success line. Structured formats stay silent so their
// output remains machine-readable.
func (o *globalOptions) confirm(cmd *cobra.Command, format string, args ...any) {
	if !o.textOutput() {
		return
	}
	st := styles.New(cmd.OutOrStdout(), o.cfg.Output.Color)
	fmt.Fprintln(cmd.OutOrStdout(), st.Success.Render(fmt.Sprintf(format, args...)))
}

// PrintError writes err to w as a styled error line and logs its code
func PrintError(w io.Writer, err error) {
	log.Debug().
		Str("code", string(errors.GetErrorCode(err))).
		Interface("details", errors.GetErrorDetails(err)).
		Msg("Command failed")

	st := styles.New(w, styles.ColorAuto)
	fmt.Fprintln(w, st.Error.Render(fmt.Sprintf(MsgErrorFormat, err)))
}
