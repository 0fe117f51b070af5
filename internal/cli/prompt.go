package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// Prompter collects a missing connection setting from the user.
type Prompter interface {
	Ask(title, description, placeholder string) (string, error)
}

// huhPrompter renders a single-input form in the terminal.
type huhPrompter struct{}

func (huhPrompter) Ask(title, description, placeholder string) (string, error) {
	var value string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description(description).
				Placeholder(placeholder).
				Value(&value).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("a value is required")
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return "", err
	}

	return strings.TrimSpace(value), nil
}

// defaultPrompter returns the interactive prompter when stdin is a terminal,
// nil otherwise. A nil prompter makes missing config fields a hard error
// instead of hanging a non-interactive run.
func defaultPrompter() Prompter {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return huhPrompter{}
	}
	return nil
}
