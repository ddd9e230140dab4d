// Package highlight renders code snippets as HTML markup. It wraps
// alecthomas/chroma behind a small Highlighter interface so every supported
// language gets a real lexer and everything else gets a guaranteed
// plain-text fallback. Rendering is best effort: callers never see an error,
// they see the fallback wrapper instead.
package highlight

import (
	"html"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Supported language identifiers. These are the only values the content
// model accepts; LanguageText is the catch-all.
const (
	LanguagePython     = "python"
	LanguageJavaScript = "javascript"
	LanguageHTML       = "html"
	LanguageCSS        = "css"
	LanguageSQL        = "sql"
	LanguageBash       = "bash"
	LanguageText       = "text"
)

const styleName = "friendly"

var supported = map[string]bool{
	LanguagePython:     true,
	LanguageJavaScript: true,
	LanguageHTML:       true,
	LanguageCSS:        true,
	LanguageSQL:        true,
	LanguageBash:       true,
	LanguageText:       true,
}

var (
	style     = styles.Get(styleName)
	formatter = chromahtml.New(chromahtml.WithClasses(true))
)

// Supported returns the language identifiers accepted by IsSupported, in
// declaration order.
func Supported() []string {
	return []string{
		LanguagePython,
		LanguageJavaScript,
		LanguageHTML,
		LanguageCSS,
		LanguageSQL,
		LanguageBash,
		LanguageText,
	}
}

func IsSupported(language string) bool {
	return supported[language]
}

// Highlighter turns raw code into HTML markup for one language.
type Highlighter interface {
	Language() string
	Highlight(code string) (string, error)
}

type lexerHighlighter struct {
	language string
	lexer    chroma.Lexer
}

func (h lexerHighlighter) Language() string { return h.language }

func (h lexerHighlighter) Highlight(code string) (string, error) {
	iterator, err := h.lexer.Tokenise(nil, code)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := formatter.Format(&sb, style, iterator); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// plainHighlighter is the fallback: the escaped snippet inside a
// preformatted code block. It never fails.
type plainHighlighter struct {
	language string
}

func (h plainHighlighter) Language() string { return h.language }

func (h plainHighlighter) Highlight(code string) (string, error) {
	return "<pre><code>" + html.EscapeString(code) + "</code></pre>", nil
}

// ForLanguage returns the Highlighter for a language. Unknown or generic
// languages get the plain fallback, so the result is always usable.
func ForLanguage(language string) Highlighter {
	if language == LanguageText || !IsSupported(language) {
		return plainHighlighter{language: language}
	}
	lexer := lexers.Get(language)
	if lexer == nil {
		return plainHighlighter{language: language}
	}
	return lexerHighlighter{language: language, lexer: chroma.Coalesce(lexer)}
}

// Render highlights code for display. An empty snippet renders to the empty
// string. Any highlighting failure falls back to the plain wrapper; the
// returned markup is always safe to embed verbatim.
func Render(code, language string) string {
	if code == "" {
		return ""
	}
	out, err := ForLanguage(language).Highlight(code)
	if err != nil {
		out, _ = plainHighlighter{language: language}.Highlight(code)
	}
	return out
}

// Stylesheet returns the CSS for the highlighting theme. It is independent
// of any snippet and meant to be included once per rendered page.
func Stylesheet() string {
	var sb strings.Builder
	if err := formatter.WriteCSS(&sb, style); err != nil {
		return ""
	}
	return sb.String()
}

// Detect guesses the language of a snippet. It returns one of the supported
// identifiers, or "" when the guess is missing or outside the supported set.
func Detect(code string) string {
	lexer := lexers.Analyse(code)
	if lexer == nil {
		return ""
	}
	cfg := lexer.Config()
	candidates := append([]string{cfg.Name}, cfg.Aliases...)
	for _, candidate := range candidates {
		candidate = strings.ToLower(candidate)
		if IsSupported(candidate) {
			return candidate
		}
	}
	return ""
}
