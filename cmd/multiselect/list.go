// ABOUTME: list subcommand: review chips given as arguments or preselected in settings, or type new ones with --input
// ABOUTME: Deleted chips are dropped; the remaining ones are printed in the --output format

package main

import (
	"github.com/spf13/cobra"

	"github.com/mauromedda/multiselect-go/internal/config"
	"github.com/mauromedda/multiselect-go/internal/mode/interactive/btea"
	"github.com/mauromedda/multiselect-go/pkg/tui/component"
)

type listFlags struct {
	title       string
	description string
	noCollapse  bool
	autoRemove  bool
	readOnly    bool
	maxChars    int
	input       bool
	placeholder string
}

func newListCmd(rf *rootFlags) *cobra.Command {
	lf := &listFlags{}
	cmd := &cobra.Command{
		Use:   "list [name[=value]...]",
		Short: "Show values as chips that collapse behind \"+N more\"",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := rf.open(cmd, lf.settings(cmd, args))
			if err != nil {
				return err
			}
			defer sess.Close()
			return runList(cmd, rf, lf, sess)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&lf.title, "title", "", "heading shown above the chips")
	fl.StringVar(&lf.description, "description", "", "label line above the chips")
	fl.BoolVar(&lf.noCollapse, "no-collapse", false, "always show every chip")
	fl.BoolVar(&lf.autoRemove, "autoremove", false, "chips remove themselves when deleted")
	fl.BoolVar(&lf.readOnly, "readonly", false, "chips cannot be deleted")
	fl.IntVar(&lf.maxChars, "max-chars", 0, "truncate chip text after this many characters, negative to disable")
	fl.BoolVar(&lf.input, "input", false, "add a text box; Enter turns the typed text into a chip")
	fl.StringVar(&lf.placeholder, "placeholder", "", "text box hint shown while empty (with --input)")
	return cmd
}

// settings converts the list flags the user set into a settings layer.
func (lf *listFlags) settings(cmd *cobra.Command, args []string) *config.Settings {
	s := &config.Settings{
		Description: lf.description,
		Selected:    parseAttributes(args),
	}
	flags := cmd.Flags()
	if flags.Changed("no-collapse") {
		s.Collapsible = config.Bool(!lf.noCollapse)
	}
	if flags.Changed("autoremove") {
		s.AutoRemove = config.Bool(lf.autoRemove)
	}
	return s
}

// items turns attributes into chips with the list flags applied.
func (lf *listFlags) items(attrs []component.Attribute) []component.Item {
	items := make([]component.Item, len(attrs))
	for i, a := range attrs {
		items[i] = component.Item{
			Name:      a.Name,
			Value:     a.Value,
			MaxChars:  lf.maxChars,
			Deletable: !lf.readOnly,
		}
	}
	return items
}

func runList(cmd *cobra.Command, rf *rootFlags, lf *listFlags, sess *session) error {
	opts := sess.settings.ChipListOptions(sess.catalog.Lookup, sess.bus)
	var m btea.ListModel
	if lf.input {
		ci := component.NewChipInput(component.ChipInputOptions{
			List:        opts,
			Placeholder: lf.placeholder,
			MaxChars:    lf.maxChars,
		})
		for _, it := range lf.items(sess.settings.Selected) {
			ci.List().Add(it)
		}
		m = btea.NewChipInputModel(ci, sess.hostOptions(lf.title), opts.AutoRemove)
	} else {
		cl := component.NewChipList(opts)
		for _, it := range lf.items(sess.settings.Selected) {
			cl.Add(it)
		}
		m = btea.NewListModel(cl, sess.hostOptions(lf.title), opts.AutoRemove)
	}

	m, err := btea.RunList(m)
	if err != nil {
		return err
	}

	remaining := m.Items()
	attrs := make([]component.Attribute, len(remaining))
	for i, it := range remaining {
		attrs[i] = component.Attribute{Name: it.Name, Value: it.Value}
	}
	return writeAttributes(cmd.OutOrStdout(), rf.output, attrs)
}
