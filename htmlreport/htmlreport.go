// Package htmlreport renders a positional line diff as a standalone,
// syntax-highlighted HTML page.
package htmlreport

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/tdewolff/minify/v2"
	minifyhtml "github.com/tdewolff/minify/v2/html"

	"github.com/seqdiff/seqdiff"
	"github.com/seqdiff/seqdiff/textdiff"
)

var style = map[chroma.TokenType]string{
	chroma.Keyword:           "hl-b",
	chroma.KeywordPseudo:     "",
	chroma.KeywordType:       "",
	chroma.NameClass:         "hl-b",
	chroma.NameEntity:        "hl-b",
	chroma.NameException:     "hl-b",
	chroma.NameNamespace:     "hl-b",
	chroma.NameTag:           "hl-b",
	chroma.NameBuiltin:       "hl-bl",
	chroma.LiteralString:     "hl-i",
	chroma.OperatorWord:      "hl-b",
	chroma.Comment:           "hl-ii",
	chroma.CommentPreproc:    "",
	chroma.GenericEmph:       "hl-i",
	chroma.GenericHeading:    "hl-b",
	chroma.GenericStrong:     "hl-b",
	chroma.GenericSubheading: "hl-b",
}

type Option func(*renderer)

// Lang selects the lexer used for syntax highlighting.
func Lang(lang string) Option {
	return func(r *renderer) {
		r.lexer = lexers.Get(lang)
	}
}

// LangFromFilename selects the lexer based on a filename.
func LangFromFilename(filename string) Option {
	return func(r *renderer) {
		r.lexer = lexers.Match(filename)
	}
}

// Row is a single rendered line of the report.
type Row struct {
	Op      seqdiff.Op
	XLineNo int // line number in the left document, -1 if absent
	YLineNo int // line number in the right document, -1 if absent
	Content template.HTML
}

func (r Row) Class() string {
	switch r.Op {
	case seqdiff.Change:
		return "change"
	case seqdiff.Remove:
		return "remove"
	case seqdiff.Add:
		return "add"
	default:
		return "keep"
	}
}

func (r Row) Marker() string {
	switch r.Op {
	case seqdiff.Change:
		return "~"
	case seqdiff.Remove:
		return "-"
	case seqdiff.Add:
		return "+"
	default:
		return ""
	}
}

func (r Row) XNo() string {
	if r.XLineNo < 0 {
		return ""
	}
	return fmt.Sprint(r.XLineNo)
}

func (r Row) YNo() string {
	if r.YLineNo < 0 {
		return ""
	}
	return fmt.Sprint(r.YLineNo)
}

// Render compares x and y line by line and returns the diff as a minified,
// self-contained HTML page titled name.
func Render(name, x, y string, opts ...Option) ([]byte, error) {
	r := fromOptions(opts)

	rows, err := r.rows(textdiff.Edits(x, y))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, &pageData{Name: name, Rows: rows}); err != nil {
		return nil, fmt.Errorf("rendering report: %v", err)
	}

	minifier := minify.New()
	minifier.AddFunc("text/html", minifyhtml.Minify)
	b, err := minifier.Bytes("text/html", buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("minifying report: %v", err)
	}
	return b, nil
}

type renderer struct {
	lexer chroma.Lexer
}

func fromOptions(opts []Option) *renderer {
	r := &renderer{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.lexer == nil {
		r.lexer = lexers.Fallback
	}
	r.lexer = chroma.Coalesce(r.lexer)
	return r
}

func (r *renderer) rows(edits []textdiff.Edit) ([]Row, error) {
	rows := make([]Row, 0, len(edits))
	s, t := 0, 0
	for _, edit := range edits {
		content, err := r.highlight(edit.Line)
		if err != nil {
			return nil, err
		}
		switch edit.Op {
		case seqdiff.Keep, seqdiff.Change:
			rows = append(rows, Row{edit.Op, s + 1, t + 1, content})
			s++
			t++
		case seqdiff.Remove:
			rows = append(rows, Row{edit.Op, s + 1, -1, content})
			s++
		case seqdiff.Add:
			rows = append(rows, Row{edit.Op, -1, t + 1, content})
			t++
		}
	}
	return rows, nil
}

func (r *renderer) highlight(line string) (template.HTML, error) {
	it, err := r.lexer.Tokenise(nil, line)
	if err != nil {
		return "", fmt.Errorf("tokenizing line: %v", err)
	}

	var sb strings.Builder
	for _, token := range it.Tokens() {
		class := class(token.Type)
		if class != "" {
			fmt.Fprintf(&sb, "<span class=\"%s\">", class)
		}
		sb.WriteString(html.EscapeString(token.Value))
		if class != "" {
			fmt.Fprintf(&sb, "</span>")
		}
	}
	return template.HTML(sb.String()), nil
}

func class(t chroma.TokenType) string {
	s, ok := style[t]
	if ok {
		return s
	}
	s, ok = style[t.SubCategory()]
	if ok {
		return s
	}
	s, ok = style[t.Category()]
	if ok {
		return s
	}
	return ""
}

type pageData struct {
	Name string
	Rows []Row
}

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Name}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table.diff { border-collapse: collapse; font-family: monospace; white-space: pre; }
table.diff td { padding: 0 0.5rem; }
td.ln { color: #999; text-align: right; user-select: none; }
tr.change { background: #fff3c4; }
tr.remove { background: #ffd9d9; }
tr.add { background: #d9ffd9; }
.hl-b { font-weight: bold; }
.hl-i { font-style: italic; }
.hl-ii { font-style: italic; color: #777; }
.hl-bl { color: #335; }
</style>
</head>
<body>
<h1>{{.Name}}</h1>
<table class="diff">
{{range .Rows}}<tr class="{{.Class}}"><td class="ln">{{.XNo}}</td><td class="ln">{{.YNo}}</td><td>{{.Marker}}</td><td>{{.Content}}</td></tr>
{{end}}</table>
</body>
</html>
`))
