package sdk

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// markdownInstance is initialized once and reused. The converter
// configuration never changes and goldmark.Markdown is safe to share.
var (
	markdownInstance goldmark.Markdown
	markdownOnce     sync.Once
)

func markdownConverter() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdownInstance = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return markdownInstance
}

// RenderAnswer converts a model answer from markdown to HTML. Raw HTML in
// the source is dropped, not passed through, so the output is safe to embed
// without a separate sanitization pass.
func RenderAnswer(answer string) (string, error) {
	var buf bytes.Buffer
	if err := markdownConverter().Convert([]byte(answer), &buf); err != nil {
		return "", fmt.Errorf("render answer markdown: %w", err)
	}
	return buf.String(), nil
}
