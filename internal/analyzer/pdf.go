package analyzer

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// loadPDF reads the text rows of every page. The PDF reader panics on some
// malformed inputs; those surface as ErrBadDocument.
func loadPDF(data []byte) (pages []Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages, err = nil, fmt.Errorf("%w: %v", ErrBadDocument, r)
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	n := r.NumPage()
	for i := 1; i <= n; i++ {
		p := r.Page(i)
		page := Page{Number: int32(i)}
		if p.V.IsNull() {
			pages = append(pages, page)
			continue
		}
		w, h := mediaBox(p)
		rows, err := p.GetTextByRow()
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", ErrBadDocument, i, err)
		}
		page.Lines = pdfLines(rows, w, h)
		pages = append(pages, page)
	}
	return pages, nil
}

func mediaBox(p pdf.Page) (float64, float64) {
	mb := p.V.Key("MediaBox")
	if mb.IsNull() || mb.Len() < 4 {
		return defaultPageWidth, defaultPageHeight
	}
	w := mb.Index(2).Float64() - mb.Index(0).Float64()
	h := mb.Index(3).Float64() - mb.Index(1).Float64()
	if w <= 0 || h <= 0 {
		return defaultPageWidth, defaultPageHeight
	}
	return w, h
}

// pdfLines turns glyph rows into lines, top of the page first. Glyph runs
// further apart than a fraction of the font size are separated by a space.
func pdfLines(rows pdf.Rows, w, h float64) []Line {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Position > rows[j].Position })
	var out []Line
	row := 0
	var prevY, prevSize float64
	for idx, r := range rows {
		texts := append([]pdf.Text(nil), r.Content...)
		if len(texts) == 0 {
			continue
		}
		sort.SliceStable(texts, func(i, j int) bool { return texts[i].X < texts[j].X })
		var sb strings.Builder
		minX, maxX, size := texts[0].X, texts[0].X, 0.0
		prevEnd := -1.0
		for _, t := range texts {
			if prevEnd >= 0 && t.X-prevEnd > t.FontSize*0.2 {
				sb.WriteByte(' ')
			}
			sb.WriteString(t.S)
			prevEnd = t.X + t.W
			maxX = max(maxX, prevEnd)
			size = max(size, t.FontSize)
		}
		text := strings.TrimSpace(sb.String())
		if text == "" {
			continue
		}
		if size <= 0 {
			size = 10
		}
		y := float64(r.Position)
		if idx > 0 {
			row++
			if prevY-y > 1.8*max(size, prevSize) {
				row++
			}
		}
		prevY, prevSize = y, size
		out = append(out, Line{
			Text: text,
			Row:  row,
			Box: Box{
				Left:   clamp(minX / w),
				Top:    clamp(1 - (y+size)/h),
				Width:  clamp((maxX - minX) / w),
				Height: clamp(size / h),
			},
		})
	}
	return out
}

func clamp(v float64) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return float32(v)
}
