package analyzer

import (
	"regexp"
	"strings"
	"unicode"
)

// structure is the layout recognized on one page, shared by every result
// kind built from it.
type structure struct {
	page       *Page
	tables     []table
	kvs        []keyValue
	signatures []int
	inTable    map[int]bool
	kvLine     map[int]bool
}

type table struct {
	lines []int
	rows  []tableRow
}

type tableRow struct {
	line  int
	cells []cell
}

type cell struct {
	text   string
	box    Box
	tokens []int
}

type keyValue struct {
	line      int
	key       string
	value     string
	keyTok    []int
	valueTok  []int
	selection int
}

var (
	separatorCell = regexp.MustCompile(`^:?-{2,}:?$`)
	pageNumber    = regexp.MustCompile(`(?i)^(page\s+)?\d+(\s+of\s+\d+)?$`)
)

func analyze(p *Page) *structure {
	s := &structure{page: p, inTable: map[int]bool{}, kvLine: map[int]bool{}}
	s.findTables()
	for i := range p.Lines {
		if s.inTable[i] {
			continue
		}
		line := &p.Lines[i]
		if strings.HasPrefix(line.Text, "/s/") {
			s.signatures = append(s.signatures, i)
			continue
		}
		if kv, ok := parseKeyValue(line, i); ok {
			s.kvs = append(s.kvs, kv)
			s.kvLine[i] = true
		}
	}
	return s
}

// findTables groups runs of two or more adjacent ruled lines.
func (s *structure) findTables() {
	lines := s.page.Lines
	for i := 0; i < len(lines); {
		if !isRuled(lines[i].Text) {
			i++
			continue
		}
		j := i + 1
		for j < len(lines) && isRuled(lines[j].Text) && lines[j].Row == lines[j-1].Row+1 {
			j++
		}
		if j-i >= 2 {
			t := table{}
			for k := i; k < j; k++ {
				s.inTable[k] = true
				t.lines = append(t.lines, k)
				cells := splitCells(&lines[k])
				if isSeparatorRow(cells) {
					continue
				}
				t.rows = append(t.rows, tableRow{line: k, cells: cells})
			}
			if len(t.rows) > 0 {
				s.tables = append(s.tables, t)
			}
		}
		i = j
	}
}

func isRuled(text string) bool {
	if !strings.Contains(text, "|") {
		return false
	}
	if strings.HasPrefix(text, "|") && strings.HasSuffix(text, "|") && len(text) > 2 {
		return true
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(text, "|"), "|")
	return strings.Contains(inner, "|")
}

func isSeparatorRow(cells []cell) bool {
	for _, c := range cells {
		if !separatorCell.MatchString(strings.ReplaceAll(c.text, " ", "")) {
			return false
		}
	}
	return true
}

// splitCells cuts a ruled line at its pipes. Outer pipes open and close the
// row rather than delimiting empty cells.
func splitCells(l *Line) []cell {
	rs := []rune(l.Text)
	bounds := []int{-1}
	for i, r := range rs {
		if r == '|' {
			bounds = append(bounds, i)
		}
	}
	bounds = append(bounds, len(rs))
	charW := float32(0)
	if len(rs) > 0 {
		charW = l.Box.Width / float32(len(rs))
	}
	var cells []cell
	for k := 0; k+1 < len(bounds); k++ {
		start, end := bounds[k]+1, bounds[k+1]
		if (k == 0 && start == end && bounds[1] == 0) || (k == len(bounds)-2 && start == end && end == len(rs)) {
			continue
		}
		c := cell{
			text: strings.TrimSpace(string(rs[start:end])),
			box: Box{
				Left:   l.Box.Left + float32(start)*charW,
				Top:    l.Box.Top,
				Width:  float32(end-start) * charW,
				Height: l.Box.Height,
			},
		}
		for ti, t := range l.tokens {
			if t.Start >= start && t.Start < end {
				c.tokens = append(c.tokens, ti)
			}
		}
		cells = append(cells, c)
	}
	return cells
}

// parseKeyValue recognizes "Key: value" and "[x] Label" lines.
func parseKeyValue(l *Line, idx int) (keyValue, bool) {
	kv := keyValue{line: idx, selection: -1}
	if len(l.tokens) >= 2 && l.tokens[0].Kind != tokenWord {
		kv.selection = 0
		kv.valueTok = []int{0}
		var words []string
		for ti := 1; ti < len(l.tokens); ti++ {
			if l.tokens[ti].Kind == tokenWord {
				kv.keyTok = append(kv.keyTok, ti)
				words = append(words, l.tokens[ti].Text)
			}
		}
		kv.key = strings.Join(words, " ")
		return kv, kv.key != ""
	}
	rs := []rune(l.Text)
	colon := -1
	for i, r := range rs {
		if r == ':' {
			colon = i
			break
		}
	}
	if colon <= 0 {
		return kv, false
	}
	key := strings.TrimSpace(string(rs[:colon]))
	if key == "" || len(key) > 60 || len(strings.Fields(key)) > 6 {
		return kv, false
	}
	if rest := string(rs[colon:]); strings.HasPrefix(rest, "://") {
		return kv, false
	}
	kv.key = key
	var value []string
	for ti, t := range l.tokens {
		switch {
		case t.Start <= colon:
			kv.keyTok = append(kv.keyTok, ti)
		case t.Kind == tokenWord:
			kv.valueTok = append(kv.valueTok, ti)
			value = append(value, t.Text)
		default:
			kv.valueTok = append(kv.valueTok, ti)
			if kv.selection < 0 {
				kv.selection = ti
			}
		}
	}
	kv.value = strings.Join(value, " ")
	return kv, true
}

// normWords lowercases s and keeps its alphanumeric words.
func normWords(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// matchScore is the share of key words found in the query.
func matchScore(key string, query map[string]bool) float64 {
	words := normWords(key)
	if len(words) == 0 {
		return 0
	}
	hit := 0
	for _, w := range words {
		if query[w] {
			hit++
		}
	}
	return float64(hit) / float64(len(words))
}

func wordSet(s string) map[string]bool {
	set := map[string]bool{}
	for _, w := range normWords(s) {
		set[w] = true
	}
	return set
}
