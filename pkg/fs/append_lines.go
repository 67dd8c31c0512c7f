package fs

import (
	"os"
	"strings"
)

// AppendLines appends the lines that are not already present in the file.
// Scaffolded files (pre-commit scripts, requirements files, .gitignore) are
// re-boxable: running create twice must not duplicate their contents.
func (f *realFS) AppendLines(filename string, lines []string) error {
	existing := make(map[string]struct{})
	prependNewline := false

	exists, err := f.Exists(filename)
	if err != nil {
		return err
	}
	if exists {
		data, err := f.ReadFile(filename)
		if err != nil {
			return err
		}
		text := string(data)
		if text != "" && !strings.HasSuffix(text, "\n") {
			prependNewline = true
		}
		for _, line := range strings.Split(text, "\n") {
			existing[line] = struct{}{}
		}
	}

	var toAppend []string
	for _, line := range lines {
		if _, ok := existing[line]; !ok {
			toAppend = append(toAppend, line)
		}
	}
	if len(toAppend) == 0 {
		return nil
	}

	file, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	if prependNewline {
		if _, err := file.WriteString("\n"); err != nil {
			return err
		}
	}
	for _, line := range toAppend {
		if _, err := file.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return nil
}
