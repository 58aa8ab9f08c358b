package cmd

import (
	"errors"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
)

// PromptCancel is appended to selection lists to leave without a choice.
const PromptCancel = "cancel"

var errNoTerminal = errors.New("this action needs an interactive terminal")

var errCancelled = errors.New("cancelled by user")

func isTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// confirm asks a yes/no question. Answering no is not an error.
func confirm(label string) (bool, error) {
	if !isTerminal() {
		return false, errNoTerminal
	}

	p := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	_, err := p.Run()
	if errors.Is(err, promptui.ErrAbort) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// choose shows a selection list and returns the selected index.
func choose(label string, items []string) (int, string, error) {
	if !isTerminal() {
		return -1, "", errNoTerminal
	}

	p := promptui.Select{
		Label: label,
		Items: items,
		Size:  10,
	}

	return p.Run()
}

// ask reads a single value, pre-filled with current.
func ask(label, current string, validate promptui.ValidateFunc) (string, error) {
	if !isTerminal() {
		return "", errNoTerminal
	}

	p := promptui.Prompt{
		Label:     label,
		Default:   current,
		AllowEdit: true,
		Validate:  validate,
	}

	return p.Run()
}
