// ABOUTME: picker subcommand: choose attributes from candidates given as arguments or in settings
// ABOUTME: Prints the confirmed selection in the --output format

package main

import (
	"github.com/spf13/cobra"

	"github.com/mauromedda/multiselect-go/internal/config"
	"github.com/mauromedda/multiselect-go/internal/mode/interactive/btea"
	"github.com/mauromedda/multiselect-go/pkg/tui/component"
)

type pickerFlags struct {
	title        string
	placeholder  string
	invalidText  string
	match        string
	limit        int
	freeform     bool
	required     bool
	hideDropdown bool
	selected     []string
}

func newPickerCmd(rf *rootFlags) *cobra.Command {
	pf := &pickerFlags{}
	cmd := &cobra.Command{
		Use:   "picker [name[=value]...]",
		Short: "Pick values from a list of candidates",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := rf.open(cmd, pf.settings(cmd, args))
			if err != nil {
				return err
			}
			defer sess.Close()
			return runPicker(cmd, rf, pf, sess)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&pf.title, "title", "", "heading shown above the picker (default: description setting)")
	fl.StringVar(&pf.placeholder, "placeholder", "", "input placeholder")
	fl.StringVar(&pf.invalidText, "invalid-text", "", "message shown when a required picker is empty")
	fl.StringVar(&pf.match, "match", "", "candidate matching: substring or fuzzy")
	fl.IntVar(&pf.limit, "limit", 0, "maximum number of values, 0 for no limit")
	fl.BoolVar(&pf.freeform, "freeform", false, "allow values that are not candidates")
	fl.BoolVar(&pf.required, "required", false, "refuse to finish with no values")
	fl.BoolVar(&pf.hideDropdown, "hide-dropdown", false, "never show the candidate dropdown")
	fl.StringSliceVar(&pf.selected, "selected", nil, "preselected name[=value] (repeatable)")
	return cmd
}

// settings converts the picker flags the user set into a settings layer.
func (pf *pickerFlags) settings(cmd *cobra.Command, args []string) *config.Settings {
	s := &config.Settings{
		Placeholder: pf.placeholder,
		InvalidText: pf.invalidText,
		Match:       pf.match,
		Candidates:  parseAttributes(args),
		Selected:    parseAttributes(pf.selected),
	}
	flags := cmd.Flags()
	if flags.Changed("limit") {
		s.Limit = config.Int(pf.limit)
	}
	if flags.Changed("freeform") {
		s.AllowFreeform = config.Bool(pf.freeform)
	}
	if flags.Changed("required") {
		s.Required = config.Bool(pf.required)
	}
	if flags.Changed("hide-dropdown") {
		s.HideDropdown = config.Bool(pf.hideDropdown)
	}
	return s
}

func runPicker(cmd *cobra.Command, rf *rootFlags, pf *pickerFlags, sess *session) error {
	s := sess.settings
	p := component.NewPicker(s.PickerOptions(sess.catalog.Lookup, sess.bus))
	p.SetCandidates(s.Candidates)
	p.SetSelected(s.Selected)

	title := pf.title
	if title == "" {
		title = s.Description
	}
	m, err := btea.RunPicker(btea.NewPickerModel(p, sess.hostOptions(title)))
	if err != nil {
		return err
	}
	return writeAttributes(cmd.OutOrStdout(), rf.output, m.Selected())
}
