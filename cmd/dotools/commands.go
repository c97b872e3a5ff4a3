package dotools

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/dotools/internal/version"
	"github.com/arthur-debert/dotools/pkg/config"
	"github.com/arthur-debert/dotools/pkg/datastore"
	"github.com/arthur-debert/dotools/pkg/errors"
	"github.com/arthur-debert/dotools/pkg/filesystem"
	"github.com/arthur-debert/dotools/pkg/locations"
	"github.com/arthur-debert/dotools/pkg/paths"
	"github.com/spf13/cobra"
)

func newGetCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "get <key>",
		Short:             MsgGetShort,
		Args:              cobra.ExactArgs(1),
		GroupID:           "store",
		ValidArgsFunction: keysCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.openStore()
			if err != nil {
				return err
			}

			value, ok := store.Get(args[0])
			if !ok {
				return errors.Newf(errors.ErrNotFound, MsgErrKeyNotFound, args[0]).WithDetail("key", args[0])
			}

			r, err := opts.renderer(cmd)
			if err != nil {
				return err
			}
			return r.Value(value)
		},
	}
}

func newSetCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "set <key> <value>",
		Short:   MsgSetShort,
		Long:    MsgSetLong,
		Example: MsgSetExample,
		Args:    cobra.ExactArgs(2),
		GroupID: "store",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.openStore()
			if err != nil {
				return err
			}

			if err := store.Set(args[0], parseValue(args[1])); err != nil {
				return err
			}
			if err := store.Save(); err != nil {
				return err
			}

			opts.confirm(cmd, MsgSetFormat, args[0])
			return nil
		},
	}
}

func newDeleteCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "delete <key>",
		Aliases:           []string{"rm"},
		Short:             MsgDeleteShort,
		Args:              cobra.ExactArgs(1),
		GroupID:           "store",
		ValidArgsFunction: keysCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.openStore()
			if err != nil {
				return err
			}

			if !store.Delete(args[0]) {
				return errors.Newf(errors.ErrNotFound, MsgErrKeyNotFound, args[0]).WithDetail("key", args[0])
			}
			if err := store.Save(); err != nil {
				return err
			}

			opts.confirm(cmd, MsgDeletedFormat, args[0])
			return nil
		},
	}
}

func newKeysCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "keys",
		Short:   MsgKeysShort,
		Args:    cobra.NoArgs,
		GroupID: "store",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.openStore()
			if err != nil {
				return err
			}

			keys := store.Keys()
			if !opts.textOutput() {
				r, err := opts.renderer(cmd)
				if err != nil {
					return err
				}
				return r.Structured(keys)
			}

			for _, k := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		},
	}
}

func newDumpCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "dump",
		Short:   MsgDumpShort,
		Args:    cobra.NoArgs,
		GroupID: "store",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.openStore()
			if err != nil {
				return err
			}

			r, err := opts.renderer(cmd)
			if err != nil {
				return err
			}
			if store.Len() == 0 && opts.textOutput() {
				fmt.Fprintln(cmd.ErrOrStderr(), r.Styles().Muted.Render(MsgNoKeys))
				return nil
			}
			return r.Mapping(store.All())
		},
	}
}

func newPathCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "path",
		Short:   MsgPathShort,
		Args:    cobra.NoArgs,
		GroupID: "store",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(opts.cfg.Store.Dir, datastore.FileName))
			return nil
		},
	}
}

func newLocCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "loc",
		Aliases: []string{"location"},
		Short:   MsgLocShort,
		GroupID: "locations",
	}

	cmd.AddCommand(newLocAddCmd(opts))
	cmd.AddCommand(newLocShowCmd(opts))
	cmd.AddCommand(newLocRmCmd(opts))
	cmd.AddCommand(newLocListCmd(opts))

	return cmd
}

func newLocAddCmd(opts *globalOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "add <name> [path]",
		Short:   MsgLocAddShort,
		Example: MsgLocAddExample,
		Args:    cobra.RangeArgs(1, 2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 1 {
				return nil, cobra.ShellCompDirectiveFilterDirs
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 2 {
				dir = args[1]
			}

			locs, err := opts.openLocations()
			if err != nil {
				return err
			}

			loc, err := locs.Add(args[0], dir, force)
			if err != nil {
				return err
			}

			if !opts.textOutput() {
				r, err := opts.renderer(cmd)
				if err != nil {
					return err
				}
				return r.Structured(loc)
			}
			opts.confirm(cmd, MsgLocAddedFormat, loc.Name, loc.Path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)

	return cmd
}

func newLocShowCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "show <name>",
		Short:             MsgLocShowShort,
		Long:              MsgLocShowLong,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: locationNamesCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			locs, err := opts.openLocations()
			if err != nil {
				return err
			}

			loc, err := locs.Lookup(args[0])
			if err != nil {
				return err
			}

			if !opts.textOutput() {
				r, err := opts.renderer(cmd)
				if err != nil {
					return err
				}
				return r.Structured(loc)
			}
			// Bare path so the output can be fed to cd
			fmt.Fprintln(cmd.OutOrStdout(), loc.Path)
			return nil
		},
	}
}

func newLocRmCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "rm <name>",
		Aliases:           []string{"remove"},
		Short:             MsgLocRmShort,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: locationNamesCompletion(opts),
		RunE: func(cmd *cobra.Command, args []string) error {
			locs, err := opts.openLocations()
			if err != nil {
				return err
			}

			if err := locs.Remove(args[0]); err != nil {
				return err
			}

			opts.confirm(cmd, MsgLocRemovedFormat, args[0])
			return nil
		},
	}
}

func newLocListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgLocListShort,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			locs, err := opts.openLocations()
			if err != nil {
				return err
			}

			r, err := opts.renderer(cmd)
			if err != nil {
				return err
			}

			list := locs.List()
			if !opts.textOutput() {
				if list == nil {
					list = []locations.Location{}
				}
				return r.Structured(map[string]any{"locations": list})
			}

			if len(list) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), r.Styles().Muted.Render(MsgNoLocations))
				return nil
			}

			width := 0
			for _, loc := range list {
				width = max(width, len(loc.Name))
			}
			st := r.Styles()
			for _, loc := range list {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n",
					st.Key.Render(fmt.Sprintf("%-*s", width, loc.Name)), st.Path.Render(loc.Path))
			}
			return nil
		},
	}
}

func newConfigCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
	}

	cmd.AddCommand(newConfigInitCmd(opts))
	cmd.AddCommand(newConfigShowCmd(opts))

	return cmd
}

func newConfigInitCmd(opts *globalOptions) *cobra.Command {
	var (
		write bool
		force bool
	)

	cmd := &cobra.Command{
		Use:         "init",
		Short:       MsgConfigInitShort,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.GenerateConfigContent()
			if !write {
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}

			target, err := opts.configTarget()
			if err != nil {
				return err
			}

			fs := filesystem.NewOS()
			if _, err := fs.Stat(target); err == nil && !force {
				return errors.Newf(errors.ErrAlreadyExists, MsgErrConfigExists, target).WithDetail("path", target)
			}
			if err := fs.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return errors.Wrapf(err, errors.ErrIO, "failed to create %s", filepath.Dir(target))
			}
			if err := fs.WriteFile(target, []byte(content), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrIO, "failed to write %s", target).WithDetail("path", target)
			}

			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, target)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagWriteForce)

	return cmd
}

func newConfigShowCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: MsgConfigShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.renderer(cmd)
			if err != nil {
				return err
			}
			return r.Structured(opts.cfg)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       MsgVersionShort,
		Args:        cobra.NoArgs,
		GroupID:     "misc",
		Annotations: map[string]string{annotationNoConfig: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		Annotations:           map[string]string{annotationNoConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func (o *globalOptions) openLocations() (*locations.Locations, error) {
	store, err := o.openStore()
	if err != nil {
		return nil, err
	}
	return locations.Open(store), nil
}

// configTarget is the file "config init --write" creates
func (o *globalOptions) configTarget() (string, error) {
	if o.configFile != "" {
		return paths.NormalizePath(o.configFile)
	}
	p, err := paths.New()
	if err != nil {
		return "", err
	}
	return p.ConfigFile(), nil
}

// parseValue reads raw as JSON, falling back to the literal string
func parseValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		return v
	}
	return raw
}

type completionFunc func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective)

// keysCompletion provides shell completion for store keys
func keysCompletion(opts *globalOptions) completionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		if err := opts.ensureLoaded(); err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		store, err := opts.openStore()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return store.Keys(), cobra.ShellCompDirectiveNoFileComp
	}
}

// locationNamesCompletion provides shell completion for bookmark names
func locationNamesCompletion(opts *globalOptions) completionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		if err := opts.ensureLoaded(); err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		locs, err := opts.openLocations()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		var names []string
		for _, loc := range locs.List() {
			names = append(names, loc.Name)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}
