package report

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlightStyle is the chroma style used for report CSS
const highlightStyle = "github"

var (
	highlightCSS     string
	highlightCSSErr  error
	highlightCSSOnce sync.Once
)

// HighlightCSS returns the class-based stylesheet for highlighted code.
// Rules are scoped under the .chroma wrapper class.
func HighlightCSS() (string, error) {
	highlightCSSOnce.Do(func() {
		style := styles.Get(highlightStyle)
		if style == nil {
			style = styles.Fallback
		}

		var buf bytes.Buffer
		formatter := chromahtml.New(chromahtml.WithClasses(true))
		if err := formatter.WriteCSS(&buf, style); err != nil {
			highlightCSSErr = fmt.Errorf("failed to generate highlight CSS: %w", err)
			return
		}
		highlightCSS = buf.String()
	})
	return highlightCSS, highlightCSSErr
}

// highlighter tokenizes single lines of one file. A nil highlighter only escapes.
type highlighter struct {
	language string
	lexer    chroma.Lexer
}

// newHighlighter picks a lexer by file name; returns nil when none matches
func newHighlighter(filename string) *highlighter {
	if filename == "" {
		return nil
	}
	lexer := lexers.Match(filepath.Base(filename))
	if lexer == nil {
		return nil
	}
	return &highlighter{
		language: strings.ToLower(lexer.Config().Name),
		lexer:    chroma.Coalesce(lexer),
	}
}

func (h *highlighter) Language() string {
	if h == nil {
		return ""
	}
	return h.language
}

// Line returns text as HTML, wrapping tokens in chroma class spans
func (h *highlighter) Line(text string) template.HTML {
	escaped := template.HTML(template.HTMLEscapeString(text))
	if h == nil || text == "" {
		return escaped
	}

	iter, err := h.lexer.Tokenise(nil, text)
	if err != nil {
		return escaped
	}

	var b strings.Builder
	for tok := iter(); tok != chroma.EOF; tok = iter() {
		// Lexers may append a trailing newline; lines never contain one
		value := strings.TrimRight(tok.Value, "\n")
		if value == "" {
			continue
		}
		class := chroma.StandardTypes[tok.Type]
		if class == "" {
			b.WriteString(template.HTMLEscapeString(value))
			continue
		}
		fmt.Fprintf(&b, `<span class="%s">%s</span>`, class, template.HTMLEscapeString(value))
	}
	return template.HTML(b.String())
}
