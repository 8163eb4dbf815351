// Package docs holds the embedded user documentation topics served by the
// `xp topic` command.
package docs

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed *.md
var topics embed.FS

// GetTopic returns the markdown content of a single topic.
func GetTopic(name string) (string, error) {
	content, err := topics.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("unknown topic %q", name)
	}
	return string(content), nil
}

// GetTopics concatenates several topics into a single document.
func GetTopics(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		doc, err := GetTopic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(doc)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// Topics lists the available topic names.
func Topics() []string {
	entries, err := topics.ReadDir(".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".md"))
	}
	return names
}
