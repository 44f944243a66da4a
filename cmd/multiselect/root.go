// ABOUTME: Root cobra command with persistent flags shared by every subcommand
// ABOUTME: open() wires logging, layered settings, the locale catalog and the theme for a run

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mauromedda/multiselect-go/internal/config"
	"github.com/mauromedda/multiselect-go/internal/keybindings"
	"github.com/mauromedda/multiselect-go/internal/locale"
	"github.com/mauromedda/multiselect-go/internal/log"
	"github.com/mauromedda/multiselect-go/internal/mode/interactive/btea"
	"github.com/mauromedda/multiselect-go/pkg/tui/component"
	"github.com/mauromedda/multiselect-go/pkg/tui/theme"
)

type rootFlags struct {
	configPath string
	lang       string
	rtl        bool
	theme      string
	verbose    bool
	logFile    string
	output     string
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	root := &cobra.Command{
		Use:           "multiselect",
		Short:         "Pick values or review a list of chips in the terminal",
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "settings file (default: global then project settings)")
	pf.StringVar(&f.lang, "lang", "", "message language: "+languages())
	pf.BoolVar(&f.rtl, "rtl", false, "right-to-left layout: Left and Right arrows swap")
	pf.StringVar(&f.theme, "theme", "", "builtin theme name or path to a YAML theme")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging to the log file")
	pf.StringVar(&f.logFile, "log-file", "", "log file (default with --verbose: ~/.config/multiselect/multiselect.log)")
	pf.StringVarP(&f.output, "output", "o", "names", "result format: names, values or yaml")

	root.AddCommand(newPickerCmd(f), newListCmd(f), newThemesCmd())
	return root
}

// session is everything a subcommand needs after flags are parsed.
type session struct {
	settings *config.Settings
	catalog  *locale.Catalog
	keys     *keybindings.Manager
	bus      *component.Bus
	closeLog io.Closer
}

func (s *session) Close() {
	if s.closeLog != nil {
		_ = s.closeLog.Close()
	}
}

// cliSettings converts the persistent flags the user set into a settings layer.
func (f *rootFlags) cliSettings(cmd *cobra.Command) *config.Settings {
	s := &config.Settings{}
	flags := cmd.Flags()
	if flags.Changed("lang") {
		s.Language = f.lang
	}
	if flags.Changed("rtl") {
		s.Direction = "ltr"
		if f.rtl {
			s.Direction = "rtl"
		}
	}
	if flags.Changed("theme") {
		s.Theme = f.theme
	}
	return s
}

// open sets up logging, loads and validates settings layered under cli, and
// applies the language and theme.
func (f *rootFlags) open(cmd *cobra.Command, cli *config.Settings) (*session, error) {
	if err := checkOutputFormat(f.output); err != nil {
		return nil, err
	}

	closer, err := f.setupLog()
	if err != nil {
		return nil, err
	}
	sess := &session{closeLog: closer, bus: component.NewBus()}

	cli = config.Merge(f.cliSettings(cmd), cli)
	if f.configPath != "" {
		base, err := config.LoadFile(f.configPath)
		if err != nil {
			sess.Close()
			return nil, err
		}
		sess.settings = config.Merge(base, cli)
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			sess.Close()
			return nil, fmt.Errorf("getwd: %w", err)
		}
		sess.settings, err = config.LoadAllWithHome(cwd, config.UserHome(), cli)
		if err != nil {
			sess.Close()
			return nil, err
		}
	}
	if err := sess.settings.Validate(); err != nil {
		sess.Close()
		return nil, err
	}

	sess.keys, err = sess.settings.KeyBindings()
	if err != nil {
		sess.Close()
		return nil, err
	}
	sess.catalog, err = locale.New(sess.settings.Language)
	if err != nil {
		sess.Close()
		return nil, err
	}
	if err := applyTheme(sess.settings.Theme); err != nil {
		sess.Close()
		return nil, err
	}

	log.Debug("multiselect: language=%s theme=%s direction=%v",
		sess.catalog.Language(), theme.Current().Name, sess.settings.TextDirection())
	return sess, nil
}

// setupLog routes logging to a rotating file when --verbose or --log-file is
// given, and discards it otherwise so nothing writes over the TUI.
func (f *rootFlags) setupLog() (io.Closer, error) {
	if f.verbose {
		log.SetLevel(log.LevelDebug)
	}
	path := f.logFile
	if path == "" && f.verbose {
		path = config.DefaultLogFile(config.UserHome())
	}
	if path == "" {
		log.SetOutput(nil)
		return nil, nil
	}
	if err := config.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	return log.OpenFile(path)
}

// applyTheme installs the named or file theme. With no theme configured, a
// light terminal background selects the light builtin.
func applyTheme(ref string) error {
	if ref == "" {
		if lipgloss.HasDarkBackground() {
			return nil
		}
		ref = "light"
	}
	t, err := theme.Resolve(ref)
	if err != nil {
		return err
	}
	theme.Set(t)
	return nil
}

// hostOptions returns the options every host model shares.
func (s *session) hostOptions(title string) btea.Options {
	return btea.Options{
		Title:    title,
		Localize: s.catalog.Lookup,
		Bus:      s.bus,
		Keys:     s.keys,
	}
}

// languages lists the tags with a built-in catalog, e.g. "en, ja".
func languages() string {
	tags := locale.Supported()
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the builtin themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range theme.BuiltinNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
