package pipeline

import (
	"fmt"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/doc2md/pkg/types"
)

// Meta describes one conversion run for the optional YAML frontmatter.
type Meta struct {
	Source      string `yaml:"source"`
	Model       string `yaml:"model"`
	Pages       int    `yaml:"pages"`
	ConvertedAt string `yaml:"converted_at"`
}

// WithFrontmatter prepends a YAML frontmatter block describing the run to
// the joined Markdown. The body itself is never touched.
func WithFrontmatter(result types.DocumentResult, source, model string, now time.Time) (string, error) {
	meta := Meta{
		Source:      source,
		Model:       model,
		Pages:       result.Pages,
		ConvertedAt: now.UTC().Format(time.RFC3339),
	}

	out, err := yaml.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("marshaling frontmatter: %w", err)
	}

	return "---\n" + string(out) + "---\n\n" + result.Markdown, nil
}
