// Package analyzer is the deterministic recognizer behind the emulator. It
// reads the text layer of a document (plain text or PDF) and derives the
// block graph, expense, identity and lending results from its layout.
// Images are accepted but carry no text layer.
package analyzer

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/gabriel-vasile/mimetype"
)

var (
	// ErrUnsupportedDocument reports a format the analyzer cannot read.
	ErrUnsupportedDocument = errors.New("unsupported document format")
	// ErrBadDocument reports a document that could not be parsed.
	ErrBadDocument = errors.New("unable to read document")
)

// Formats the analyzer accepts.
const (
	FormatPDF  = "application/pdf"
	FormatText = "text/plain"
	FormatPNG  = "image/png"
	FormatJPEG = "image/jpeg"
	FormatTIFF = "image/tiff"
)

// Box is a page-relative rectangle; all values lie in [0,1].
type Box struct {
	Left, Top, Width, Height float32
}

func (b Box) right() float32  { return b.Left + b.Width }
func (b Box) bottom() float32 { return b.Top + b.Height }

func union(boxes ...Box) Box {
	if len(boxes) == 0 {
		return Box{}
	}
	l, t, r, bt := boxes[0].Left, boxes[0].Top, boxes[0].right(), boxes[0].bottom()
	for _, b := range boxes[1:] {
		l = min(l, b.Left)
		t = min(t, b.Top)
		r = max(r, b.right())
		bt = max(bt, b.bottom())
	}
	return Box{Left: l, Top: t, Width: r - l, Height: bt - t}
}

// Line is one row of text on a page.
type Line struct {
	Text string
	Box  Box
	// Row is the visual row number on the page; a gap between the rows of
	// two consecutive lines means blank space between them.
	Row    int
	tokens []token
}

type tokenKind int

const (
	tokenWord tokenKind = iota
	tokenSelected
	tokenUnselected
)

type token struct {
	Text       string
	Start, End int
	Kind       tokenKind
	Box        Box
}

// Page is the text layer of one page.
type Page struct {
	Number int32
	Lines  []Line
}

// Doc is a loaded document.
type Doc struct {
	Format string
	Size   int
	Pages  []Page
	key    string
}

// Text returns the text of a page, lines separated by newlines.
func (p *Page) Text() string {
	parts := make([]string, len(p.Lines))
	for i := range p.Lines {
		parts[i] = p.Lines[i].Text
	}
	return strings.Join(parts, "\n")
}

// Load detects the format of data and reads its text layer.
func Load(data []byte) (*Doc, error) {
	if len(data) == 0 {
		return nil, ErrBadDocument
	}
	mt := mimetype.Detect(data)
	doc := &Doc{Size: len(data), key: strconv.FormatUint(xxhash.Sum64(data), 16)}
	switch {
	case mt.Is(FormatPDF):
		doc.Format = FormatPDF
		pages, err := loadPDF(data)
		if err != nil {
			return nil, err
		}
		doc.Pages = pages
	case isText(mt):
		if !utf8.Valid(data) {
			return nil, ErrBadDocument
		}
		doc.Format = FormatText
		doc.Pages = loadText(string(data))
	case mt.Is(FormatPNG), mt.Is(FormatJPEG), mt.Is(FormatTIFF):
		doc.Format = mt.String()
		doc.Pages = []Page{{Number: 1}}
	default:
		return nil, ErrUnsupportedDocument
	}
	if len(doc.Pages) == 0 {
		return nil, ErrBadDocument
	}
	for i := range doc.Pages {
		for j := range doc.Pages[i].Lines {
			doc.Pages[i].Lines[j].tokenize()
		}
	}
	return doc, nil
}

// loadText splits pages on form feeds and lays lines out on a fixed grid.
func loadText(s string) []Page {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	raw := strings.Split(s, "\f")
	pages := make([]Page, 0, len(raw))
	for i, body := range raw {
		rows := strings.Split(strings.TrimRight(body, "\n"), "\n")
		cols := 80
		for _, r := range rows {
			cols = max(cols, utf8.RuneCountInString(r))
		}
		lineH := 0.9 / float32(max(len(rows), 40))
		charW := 0.9 / float32(cols)
		p := Page{Number: int32(i + 1)}
		for row, r := range rows {
			r = strings.TrimRight(r, " \t")
			text := strings.TrimLeft(r, " \t")
			if text == "" {
				continue
			}
			indent := utf8.RuneCountInString(r) - utf8.RuneCountInString(text)
			p.Lines = append(p.Lines, Line{
				Text: text,
				Row:  row,
				Box: Box{
					Left:   0.05 + float32(indent)*charW,
					Top:    0.05 + float32(row)*lineH,
					Width:  float32(utf8.RuneCountInString(text)) * charW,
					Height: lineH * 0.8,
				},
			})
		}
		pages = append(pages, p)
	}
	return pages
}

// tokenize splits a line into words and selection marks. Spaces and table
// rulings separate tokens and are not part of any.
func (l *Line) tokenize() {
	rs := []rune(l.Text)
	n := len(rs)
	if n == 0 {
		return
	}
	charW := l.Box.Width / float32(n)
	add := func(start, end int, kind tokenKind) {
		l.tokens = append(l.tokens, token{
			Text:  string(rs[start:end]),
			Start: start,
			End:   end,
			Kind:  kind,
			Box: Box{
				Left:   l.Box.Left + float32(start)*charW,
				Top:    l.Box.Top,
				Width:  float32(end-start) * charW,
				Height: l.Box.Height,
			},
		})
	}
	for i := 0; i < n; {
		if i+2 < n && rs[i] == '[' && rs[i+2] == ']' {
			switch rs[i+1] {
			case 'x', 'X':
				add(i, i+3, tokenSelected)
				i += 3
				continue
			case ' ':
				add(i, i+3, tokenUnselected)
				i += 3
				continue
			}
		}
		if isSeparator(rs[i]) {
			i++
			continue
		}
		start := i
		for i < n && !isSeparator(rs[i]) {
			i++
		}
		add(start, i, tokenWord)
	}
}

// isText reports whether mt is plain text or a text format derived from it
// such as CSV or JSON.
func isText(mt *mimetype.MIME) bool {
	for m := mt; m != nil; m = m.Parent() {
		if m.Is(FormatText) {
			return true
		}
	}
	return false
}

func isSeparator(r rune) bool {
	return r == ' ' || r == '\t' || r == '|'
}

func (l *Line) words() []token {
	var out []token
	for _, t := range l.tokens {
		if t.Kind == tokenWord {
			out = append(out, t)
		}
	}
	return out
}
