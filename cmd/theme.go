package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kastheco/codecolor/colorutil"
	"github.com/kastheco/codecolor/config/themestore"
	"github.com/kastheco/codecolor/internal/check"
	"github.com/kastheco/codecolor/internal/logging"
	"github.com/kastheco/codecolor/theme"
)

// themeOptions holds flags shared by the theme subcommands.
type themeOptions struct {
	*rootOptions
	remote string
}

func (o *themeOptions) loadState() (*theme.State, error) {
	return theme.Load(o.cfg.StateDir)
}

// openStore opens the library: the HTTP API when --remote is set, the local
// bbolt file otherwise.
func (o *themeOptions) openStore() (themestore.Store, error) {
	if o.remote != "" {
		s := themestore.NewHTTPStore(o.remote)
		if err := s.Ping(); err != nil {
			return nil, err
		}
		return s, nil
	}
	return themestore.NewBoltStore(o.cfg.LibraryPath)
}

func newThemeCmd(root *rootOptions) *cobra.Command {
	opts := &themeOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "inspect and edit the editor theme",
	}
	cmd.PersistentFlags().StringVar(&opts.remote, "remote", "", "theme library server URL (default is the local library file)")

	cmd.AddCommand(newThemeShowCmd(opts))
	cmd.AddCommand(newThemeAuditCmd(opts))
	cmd.AddCommand(newThemeExportCmd(opts))
	cmd.AddCommand(newThemeImportCmd(opts))
	cmd.AddCommand(newThemeResetCmd(opts))
	cmd.AddCommand(newThemeSetCmd(opts))
	cmd.AddCommand(newThemeMapCmd(opts))
	cmd.AddCommand(newThemeModeCmd(opts))
	cmd.AddCommand(newThemeSaveCmd(opts))
	cmd.AddCommand(newThemeLoadCmd(opts))
	cmd.AddCommand(newThemeListCmd(opts))
	cmd.AddCommand(newThemeDeleteCmd(opts))
	return cmd
}

// themeView is the structured form of `theme show`.
type themeView struct {
	Name   string                `json:"name" yaml:"name"`
	Dark   bool                  `json:"dark" yaml:"dark"`
	Mode   colorutil.Mode        `json:"mode" yaml:"mode"`
	Colors map[theme.Slot]string `json:"colors" yaml:"colors"`
	Roles  map[string]theme.Slot `json:"roles" yaml:"roles"`
}

func newThemeShowCmd(opts *themeOptions) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "print the active palette and role mappings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := opts.loadState()
			if err != nil {
				return err
			}
			m := opts.cfg.DefaultMode
			if mode != "" {
				if m, err = colorutil.ParseMode(mode); err != nil {
					return err
				}
			}

			active := st.Active()
			view := themeView{
				Name:   theme.LightThemeName,
				Dark:   st.DarkMode,
				Mode:   m,
				Colors: make(map[theme.Slot]string),
				Roles:  make(map[string]theme.Slot),
			}
			if st.DarkMode {
				view.Name = theme.DarkThemeName
			}
			for slot, hex := range active.Colors() {
				view.Colors[slot] = colorutil.FormatColor(hex, m)
			}
			for _, role := range theme.Roles() {
				slot, err := st.SlotFor(role)
				if err != nil {
					return err
				}
				view.Roles[role.String()] = slot
			}

			return opts.print(cmd, view, func(w io.Writer) {
				fmt.Fprintf(w, "%s (%s)\n\n", view.Name, darkLabel(view.Dark))
				for _, slot := range theme.AllSlots() {
					fmt.Fprintf(w, "%-8s %s\n", slot, view.Colors[slot])
				}
				fmt.Fprintln(w)
				for _, role := range theme.Roles() {
					slot := view.Roles[role.String()]
					fmt.Fprintf(w, "%-24s %-8s %s\n", role, slot, active.Get(slot))
				}
			})
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "color notation (default from config)")
	return cmd
}

func darkLabel(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}

func newThemeAuditCmd(opts *themeOptions) *cobra.Command {
	var (
		ratio  float64
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "check every role color against the theme background",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := opts.loadState()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("ratio") {
				ratio = opts.cfg.TargetRatio
			}
			res := check.Audit(st, ratio)
			ok, total := res.Summary()

			err = opts.print(cmd, res, func(w io.Writer) {
				for _, g := range res.Groups {
					fmt.Fprintf(w, "%s (on %s)\n", g.Name, g.Background)
					for _, e := range g.Entries {
						line := fmt.Sprintf("  %-10s %-20s %-8s %s %6.2f:1",
							e.Status, e.Role, e.Slot, e.Foreground, e.Result.Ratio)
						if e.Suggestion != "" {
							line += "  → " + e.Suggestion
						}
						fmt.Fprintln(w, line)
					}
				}
				fmt.Fprintf(w, "\n%d/%d pass %.1f:1\n", ok, total, res.Target)
			})
			if err != nil {
				return err
			}
			if strict && ok < total {
				return fmt.Errorf("%d of %d checks below %.1f:1", total-ok, total, res.Target)
			}
			return nil
		},
	}

	cmd.Flags().Float64VarP(&ratio, "ratio", "r", colorutil.DefaultTargetRatio, "target contrast ratio (default from config)")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any check fails")
	return cmd
}

func newThemeExportCmd(opts *themeOptions) *cobra.Command {
	var (
		format    string
		paletteOn bool
	)

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "write the theme state as json, toml or yaml",
		Long:  "Write the theme state to file (or stdout). The format defaults to the file extension, then json.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := opts.loadState()
			if err != nil {
				return err
			}
			f, err := resolveFormat(format, args)
			if err != nil {
				return err
			}

			var v any = st
			if paletteOn {
				v = st.Active()
			}

			if len(args) == 0 {
				return theme.Encode(cmd.OutOrStdout(), f, v)
			}
			out, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			if err := theme.Encode(out, f, v); err != nil {
				out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return err
			}
			logging.Info("CLI", "exported theme to %s", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "json, toml or yaml")
	cmd.Flags().BoolVar(&paletteOn, "palette", false, "export only the active palette")
	return cmd
}

func resolveFormat(flag string, args []string) (theme.Format, error) {
	if flag != "" {
		return theme.ParseFormat(flag)
	}
	if len(args) > 0 {
		return theme.FormatFromPath(args[0])
	}
	return theme.FormatJSON, nil
}

func newThemeImportCmd(opts *themeOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "replace the theme state with an exported file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := resolveFormat(format, args)
			if err != nil {
				return err
			}
			in, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open import file: %w", err)
			}
			defer in.Close()

			st, err := theme.DecodeState(in, f)
			if err != nil {
				return err
			}
			st.Dir = opts.cfg.StateDir
			if err := st.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "json, toml or yaml (default from extension)")
	return cmd
}

func newThemeResetCmd(opts *themeOptions) *cobra.Command {
	var (
		all      bool
		mappings bool
	)

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "restore the default palette",
		Long: `Restore the default palette of the active mode. With --mappings only the
role mappings are restored; with --all everything is reset and the state
file is removed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if all && mappings {
				return errors.New("--all and --mappings are mutually exclusive")
			}
			st, err := opts.loadState()
			if err != nil {
				return err
			}
			switch {
			case all:
				if err := st.ResetAll(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "reset everything to defaults")
				return nil
			case mappings:
				st.ResetMappings()
			default:
				st.ResetCurrentTheme(st.DarkMode)
			}
			if err := st.Save(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "reset to defaults")
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "reset both palettes, mappings and dark mode")
	cmd.Flags().BoolVar(&mappings, "mappings", false, "reset only the role mappings")
	return cmd
}

func newThemeSetCmd(opts *themeOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set <slot> <color>",
		Short: "set one slot of the active palette",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := theme.ParseSlot(args[0])
			if err != nil {
				return err
			}
			st, err := opts.loadState()
			if err != nil {
				return err
			}
			if err := st.SetColor(slot, args[1]); err != nil {
				return err
			}
			if err := st.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", slot, st.Active().Get(slot))
			return nil
		},
	}
}

func newThemeMapCmd(opts *themeOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "map <role> <slot>",
		Short: "map a syntax, diagnostic or status-line role to a slot",
		Long: "Map a role such as syntax.keyword, diagnostics.error or statusline.insert\n" +
			"(a bare name like keyword also works) to a palette slot.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := theme.ParseRole(args[0])
			if err != nil {
				return err
			}
			slot, err := theme.ParseSlot(args[1])
			if err != nil {
				return err
			}
			st, err := opts.loadState()
			if err != nil {
				return err
			}
			if err := st.SetRole(role, slot); err != nil {
				return err
			}
			if err := st.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s → %s\n", role, slot)
			return nil
		},
	}
}

func newThemeModeCmd(opts *themeOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "mode [dark|light]",
		Short:     "print or switch between the dark and light palettes",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"dark", "light"},
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := opts.loadState()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				switch strings.ToLower(args[0]) {
				case "dark":
					st.DarkMode = true
				case "light":
					st.DarkMode = false
				default:
					return fmt.Errorf("unknown mode %q (want dark or light)", args[0])
				}
				if err := st.Save(); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), darkLabel(st.DarkMode))
			return nil
		},
	}
}

func newThemeSaveCmd(opts *themeOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "save <name>",
		Short: "save the theme state into the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := themestore.ValidateName(args[0]); err != nil {
				return err
			}
			st, err := opts.loadState()
			if err != nil {
				return err
			}
			store, err := opts.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			entry, err := store.Save(args[0], *st)
			if err != nil {
				return err
			}
			return opts.print(cmd, entry, func(w io.Writer) {
				fmt.Fprintf(w, "saved %s\n", entry.Name)
			})
		},
	}
}

func newThemeLoadCmd(opts *themeOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "load <name>",
		Short: "replace the theme state with a library entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			entry, err := store.Get(args[0])
			if err != nil {
				return err
			}
			st := entry.State
			st.Dir = opts.cfg.StateDir
			if err := st.Merge(); err != nil {
				return err
			}
			if err := st.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "loaded %s\n", entry.Name)
			return nil
		},
	}
}

func newThemeListCmd(opts *themeOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list the saved themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.List()
			if err != nil {
				return err
			}
			return opts.print(cmd, entries, func(w io.Writer) {
				if len(entries) == 0 {
					fmt.Fprintln(w, "no saved themes")
					return
				}
				for _, e := range entries {
					fmt.Fprintf(w, "%-24s %-5s %s\n", e.Name, darkLabel(e.State.DarkMode), e.UpdatedAt.Local().Format("2006-01-02 15:04"))
				}
			})
		},
	}
}

func newThemeDeleteCmd(opts *themeOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "remove a theme from the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}
