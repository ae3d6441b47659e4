package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bmatcuk/doublestar/v4"
)

// input is one piece of content to display.
type input struct {
	name   string
	source string
}

// collectInputs expands the arguments as doublestar glob patterns and reads
// the matching files. Arguments that match nothing are treated as literal
// paths so a missing file errors clearly. With no arguments, everything is
// read from stdin.
func collectInputs(args []string, stdin io.Reader) ([]input, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return []input{{name: "stdin", source: string(data)}}, nil
	}

	var inputs []input
	for _, arg := range args {
		if !doublestar.ValidatePattern(arg) {
			return nil, fmt.Errorf("invalid glob pattern: %s", arg)
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", arg, err)
		}
		if len(matches) == 0 {
			matches = []string{arg}
		}
		for _, path := range matches {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", path, err)
			}
			inputs = append(inputs, input{name: path, source: string(data)})
		}
	}
	return inputs, nil
}
