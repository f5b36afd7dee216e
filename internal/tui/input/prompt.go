// Package input handles the TUI command prompt.
package input

import (
	"fmt"
	"strings"
)

// PromptCommand is a prompt command and the hint shown for it.
type PromptCommand struct {
	Name        string // "/goto"
	Usage       string // "/goto DATE"
	Description string
}

// Suggestion renders the command as its usage padded to width, then its
// description.
func (c PromptCommand) Suggestion(width int) string {
	usage := c.Usage
	if usage == "" {
		usage = c.Name
	}
	return fmt.Sprintf("%-*s %s", width, usage, c.Description)
}

// PromptMatchingCommands returns the commands the input is heading for.
// While the name is typed it matches by prefix. Once an argument has begun
// only the named command matches, so its usage stays on screen.
func PromptMatchingCommands(input string, commands []PromptCommand) []PromptCommand {
	name, _, hasArg := strings.Cut(strings.TrimLeft(input, " "), " ")
	if !strings.HasPrefix(name, "/") {
		return nil
	}
	name = strings.ToLower(name)

	var matches []PromptCommand
	for _, cmd := range commands {
		cmdName := strings.ToLower(cmd.Name)
		if cmdName == name || (!hasArg && strings.HasPrefix(cmdName, name)) {
			matches = append(matches, cmd)
		}
	}
	return matches
}

// PromptAutocomplete completes a partially typed command name. Input that
// already has an argument is left alone.
func PromptAutocomplete(input string, commands []PromptCommand) (string, bool) {
	if strings.Contains(strings.TrimLeft(input, " "), " ") {
		return "", false
	}
	matches := PromptMatchingCommands(input, commands)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Name + " ", true
}

// ParsePrompt splits a submitted prompt into a lowercased command name and
// its argument. Input without a leading slash has no command.
func ParsePrompt(input string) (name, arg string) {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "/") {
		return "", input
	}
	name, arg, _ = strings.Cut(input, " ")
	return strings.ToLower(name), strings.TrimSpace(arg)
}
