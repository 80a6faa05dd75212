// wordcount is an example brim plugin. It contributes a single "count"
// action that reports the word count of the file named by BRIM_WORDCOUNT_FILE.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rfhold/brim/pkg/plugin"
)

type wordCount struct{}

func (wordCount) Actions() ([]plugin.ActionSpec, error) {
	return []plugin.ActionSpec{
		{ID: "count", Label: "Word count", Icon: "#"},
	}, nil
}

func (wordCount) Invoke(id string) (string, error) {
	if id != "count" {
		return "", fmt.Errorf("unknown action %q", id)
	}

	path := os.Getenv("BRIM_WORDCOUNT_FILE")
	if path == "" {
		return "no file configured", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	return fmt.Sprintf("%d words", len(strings.Fields(string(data)))), nil
}

func main() {
	plugin.Serve(wordCount{})
}
