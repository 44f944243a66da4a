// ABOUTME: Entry points that run a host model in a tea.Program and return the final model
// ABOUTME: Output goes to stderr so the selection printed on stdout stays pipeable

package btea

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// RunPicker runs m until the user confirms or cancels.
func RunPicker(m PickerModel, opts ...tea.ProgramOption) (PickerModel, error) {
	final, err := run(m, opts)
	if err != nil {
		return m, err
	}
	if final.Cancelled() {
		return final, ErrCancelled
	}
	return final, nil
}

// RunList runs m until the user confirms or cancels.
func RunList(m ListModel, opts ...tea.ProgramOption) (ListModel, error) {
	final, err := run(m, opts)
	if err != nil {
		return m, err
	}
	if final.Cancelled() {
		return final, ErrCancelled
	}
	return final, nil
}

func run[M tea.Model](m M, opts []tea.ProgramOption) (M, error) {
	p := tea.NewProgram(m, append([]tea.ProgramOption{tea.WithOutput(os.Stderr)}, opts...)...)
	final, err := p.Run()
	if err != nil {
		return m, fmt.Errorf("bubble tea: %w", err)
	}
	return final.(M), nil
}
