package prompt

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=prompt.go -destination=mockprompt.gen.go -package=prompt

// LanguageChoice represents a selectable project language.
type LanguageChoice struct {
	Name        string
	Description string // optional label for display only
}

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// PromptForProjectName prompts the user for a project name with a default value.
	PromptForProjectName(defaultName string) (string, error)

	// PromptForConfirmation prompts the user for confirmation with a default value.
	PromptForConfirmation(message string, defaultYes bool) (bool, error)

	// PromptSelectLanguage prompts the user to select a project language from a list.
	PromptSelectLanguage(choices []LanguageChoice) (LanguageChoice, error)
}

type realPrompt struct {
	reader *bufio.Reader
}

// NewPrompt creates a new Prompt instance.
func NewPrompt() Prompter {
	return &realPrompt{
		reader: bufio.NewReader(os.Stdin),
	}
}

// PromptForProjectName prompts the user for a project name with a default value.
func (p *realPrompt) PromptForProjectName(defaultName string) (string, error) {
	if defaultName != "" {
		fmt.Printf("Project name [default: %s]: ", defaultName)
	} else {
		fmt.Print("Project name: ")
	}

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}

	// Trim whitespace and newlines
	input = strings.TrimSpace(input)

	// Use default if input is empty
	if input == "" {
		if defaultName == "" {
			return "", ErrEmptyInput
		}
		return defaultName, nil
	}

	return input, nil
}

// PromptForConfirmation prompts the user for confirmation with a default value.
func (p *realPrompt) PromptForConfirmation(message string, defaultYes bool) (bool, error) {
	var defaultText string
	if defaultYes {
		defaultText = "[Y/n]"
	} else {
		defaultText = "[y/N]"
	}

	fmt.Printf("%s %s: ", message, defaultText)

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	// Trim whitespace and newlines
	input = strings.TrimSpace(strings.ToLower(input))

	// Use default if input is empty
	if input == "" {
		return defaultYes, nil
	}

	// Check for yes/no responses
	switch input {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrInvalidConfirmationInput
	}
}

// PromptSelectLanguage prompts the user to select a project language from a list.
func (p *realPrompt) PromptSelectLanguage(choices []LanguageChoice) (LanguageChoice, error) {
	if len(choices) == 0 {
		return LanguageChoice{}, ErrNoChoices
	}

	// Use Bubble Tea selector for interactive selection
	return promptSelectLanguageBubbleTea(choices)
}
