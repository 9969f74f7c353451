package analyzer

import (
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"docanalysis/sdk/go/types"
)

const (
	confWord      = 99.2
	confKey       = 95.0
	confValue     = 92.0
	confEmpty     = 35.0
	confSelection = 98.0
	confCell      = 90.0
	confSignature = 90.0
	confLayout    = 95.0
	confAnswer    = 88.0
	confAdapted   = 97.0
)

// Options selects the features of an analysis.
type Options struct {
	Features []types.FeatureType
	Queries  []types.Query
	// AdapterPages reports the pages a custom adapter applies to. Query
	// answers on those pages carry a higher confidence.
	AdapterPages func(page int32) bool
}

func (o Options) has(f types.FeatureType) bool { return slices.Contains(o.Features, f) }

func ptr[T any](v T) *T { return &v }

// builder appends blocks with ids derived from the document content, so the
// same document always yields the same ids.
type builder struct {
	ns     uuid.UUID
	n      int
	blocks []types.Block
}

func newBuilder(doc *Doc, salt string) *builder {
	return &builder{ns: uuid.NewSHA1(uuid.NameSpaceOID, []byte(doc.key+"/"+salt))}
}

func (b *builder) id() string {
	b.n++
	return uuid.NewSHA1(b.ns, []byte(strconv.Itoa(b.n))).String()
}

func (b *builder) add(blk types.Block) int {
	b.blocks = append(b.blocks, blk)
	return len(b.blocks) - 1
}

func (b *builder) addChildren(idx int, rt types.RelationshipType, ids []string) {
	if len(ids) == 0 {
		return
	}
	blk := &b.blocks[idx]
	for i := range blk.Relationships {
		if blk.Relationships[i].Type == rt {
			blk.Relationships[i].WithIds(ids...)
			return
		}
	}
	blk.Relationships = append(blk.Relationships, types.Relationship{Type: rt, Ids: slices.Clone(ids)})
}

func point(x, y float32) types.Point {
	return types.Point{X: ptr(x), Y: ptr(y)}
}

func geometry(box Box) *types.Geometry {
	g := (&types.Geometry{}).SetBoundingBox(&types.BoundingBox{
		Width:  ptr(box.Width),
		Height: ptr(box.Height),
		Left:   ptr(box.Left),
		Top:    ptr(box.Top),
	})
	return g.WithPolygon(
		point(box.Left, box.Top),
		point(box.right(), box.Top),
		point(box.right(), box.bottom()),
		point(box.Left, box.bottom()),
	)
}

// pageIDs records the ids given to the text blocks of a page.
type pageIDs struct {
	page  int
	lines []string
	// tokens holds the WORD id of each token, empty for selection marks.
	tokens [][]string
}

// text emits the PAGE, LINE and WORD blocks of p.
func (b *builder) text(p *Page) pageIDs {
	ids := pageIDs{}
	pageID := b.id()
	ids.page = b.add(types.Block{
		BlockType: types.BlockTypePage,
		Geometry:  geometry(Box{Width: 1, Height: 1}),
		Id:        ptr(pageID),
		Page:      ptr(p.Number),
	})
	for li := range p.Lines {
		l := &p.Lines[li]
		lineID := b.id()
		ids.lines = append(ids.lines, lineID)
		lineIdx := b.add(types.Block{
			BlockType:  types.BlockTypeLine,
			Confidence: ptr(float32(confWord)),
			Text:       ptr(l.Text),
			Geometry:   geometry(l.Box),
			Id:         ptr(lineID),
			Page:       ptr(p.Number),
		})
		toks := make([]string, len(l.tokens))
		var words []string
		for ti, t := range l.tokens {
			if t.Kind != tokenWord {
				continue
			}
			toks[ti] = b.id()
			words = append(words, toks[ti])
			b.add(types.Block{
				BlockType:  types.BlockTypeWord,
				Confidence: ptr(float32(confWord)),
				Text:       ptr(t.Text),
				TextType:   types.TextTypePrinted,
				Geometry:   geometry(t.Box),
				Id:         ptr(toks[ti]),
				Page:       ptr(p.Number),
			})
		}
		ids.tokens = append(ids.tokens, toks)
		b.addChildren(lineIdx, types.RelationshipTypeChild, words)
	}
	b.addChildren(ids.page, types.RelationshipTypeChild, ids.lines)
	return ids
}

// DetectText returns the PAGE, LINE and WORD blocks of doc.
func DetectText(doc *Doc) []types.Block {
	b := newBuilder(doc, "text")
	for i := range doc.Pages {
		b.text(&doc.Pages[i])
	}
	return b.blocks
}

// Analyze returns the text blocks of doc plus the blocks of the requested
// features.
func Analyze(doc *Doc, opts Options) []types.Block {
	b := newBuilder(doc, "analyze")
	queries := opts.has(types.FeatureTypeQueries)
	for pi := range doc.Pages {
		p := &doc.Pages[pi]
		ids := b.text(p)
		st := analyze(p)
		var sel map[[2]int]string
		if opts.has(types.FeatureTypeForms) || opts.has(types.FeatureTypeTables) {
			sel = b.selections(p, ids)
		}
		if opts.has(types.FeatureTypeForms) {
			b.forms(st, ids, sel)
		}
		if opts.has(types.FeatureTypeTables) {
			b.tables(st, ids, sel)
		}
		if opts.has(types.FeatureTypeSignatures) {
			b.signatures(st)
		}
		if opts.has(types.FeatureTypeLayout) {
			b.addChildren(ids.page, types.RelationshipTypeChild, b.layout(st, ids, pi == 0))
		}
		if queries {
			for _, q := range opts.Queries {
				if PageSet(q.Pages, int32(len(doc.Pages)))[p.Number] {
					b.query(st, q, opts.AdapterPages)
				}
			}
		}
	}
	return b.blocks
}

func (b *builder) selections(p *Page, ids pageIDs) map[[2]int]string {
	sel := map[[2]int]string{}
	for li := range p.Lines {
		for ti, t := range p.Lines[li].tokens {
			if t.Kind == tokenWord {
				continue
			}
			status := types.SelectionStatusNotSelected
			if t.Kind == tokenSelected {
				status = types.SelectionStatusSelected
			}
			id := b.id()
			sel[[2]int{li, ti}] = id
			b.add(types.Block{
				BlockType:       types.BlockTypeSelectionElement,
				Confidence:      ptr(float32(confSelection)),
				Geometry:        geometry(t.Box),
				Id:              ptr(id),
				SelectionStatus: status,
				Page:            ptr(p.Number),
			})
		}
	}
	return sel
}

func tokenIDs(line int, toks []int, ids pageIDs, sel map[[2]int]string) []string {
	var out []string
	for _, ti := range toks {
		if id := ids.tokens[line][ti]; id != "" {
			out = append(out, id)
		} else if id := sel[[2]int{line, ti}]; id != "" {
			out = append(out, id)
		}
	}
	return out
}

func tokenBox(l *Line, toks []int) (Box, bool) {
	if len(toks) == 0 {
		return Box{}, false
	}
	boxes := make([]Box, len(toks))
	for i, ti := range toks {
		boxes[i] = l.tokens[ti].Box
	}
	return union(boxes...), true
}

func (kv keyValue) confidence() float32 {
	switch {
	case kv.selection >= 0:
		return confSelection
	case kv.value == "":
		return confEmpty
	}
	return confValue
}

func (b *builder) forms(st *structure, ids pageIDs, sel map[[2]int]string) {
	num := st.page.Number
	for _, kv := range st.kvs {
		l := &st.page.Lines[kv.line]
		keyID, valueID := b.id(), b.id()
		keyBox, _ := tokenBox(l, kv.keyTok)
		valueBox, ok := tokenBox(l, kv.valueTok)
		if !ok {
			valueBox = Box{Left: keyBox.right(), Top: keyBox.Top, Height: keyBox.Height}
		}
		key := types.Block{
			BlockType:   types.BlockTypeKeyValueSet,
			Confidence:  ptr(float32(confKey)),
			Geometry:    geometry(keyBox),
			Id:          ptr(keyID),
			EntityTypes: []types.EntityType{types.EntityTypeKey},
			Page:        ptr(num),
		}
		key.Relationships = append(key.Relationships, *(&types.Relationship{Type: types.RelationshipTypeValue}).WithIds(valueID))
		if children := tokenIDs(kv.line, kv.keyTok, ids, sel); len(children) > 0 {
			key.Relationships = append(key.Relationships, *(&types.Relationship{Type: types.RelationshipTypeChild}).WithIds(children...))
		}
		b.add(key)
		value := types.Block{
			BlockType:   types.BlockTypeKeyValueSet,
			Confidence:  ptr(kv.confidence()),
			Geometry:    geometry(valueBox),
			Id:          ptr(valueID),
			EntityTypes: []types.EntityType{types.EntityTypeValue},
			Page:        ptr(num),
		}
		if children := tokenIDs(kv.line, kv.valueTok, ids, sel); len(children) > 0 {
			value.Relationships = append(value.Relationships, *(&types.Relationship{Type: types.RelationshipTypeChild}).WithIds(children...))
		}
		b.add(value)
	}
}

func (b *builder) tables(st *structure, ids pageIDs, sel map[[2]int]string) {
	num := st.page.Number
	for _, t := range st.tables {
		boxes := make([]Box, len(t.lines))
		for i, li := range t.lines {
			boxes[i] = st.page.Lines[li].Box
		}
		tableIdx := b.add(types.Block{
			BlockType:   types.BlockTypeTable,
			Confidence:  ptr(float32(confCell)),
			Geometry:    geometry(union(boxes...)),
			Id:          ptr(b.id()),
			EntityTypes: []types.EntityType{types.EntityTypeStructuredTable},
			Page:        ptr(num),
		})
		cols := 0
		for _, r := range t.rows {
			cols = max(cols, len(r.cells))
		}
		var cellIDs []string
		for ri, r := range t.rows {
			for ci := 0; ci < cols; ci++ {
				c := cell{box: st.page.Lines[r.line].Box}
				if ci < len(r.cells) {
					c = r.cells[ci]
				} else {
					c.box.Left, c.box.Width = c.box.right(), 0
				}
				id := b.id()
				cellIDs = append(cellIDs, id)
				blk := types.Block{
					BlockType:   types.BlockTypeCell,
					Confidence:  ptr(float32(confCell)),
					RowIndex:    ptr(int32(ri + 1)),
					ColumnIndex: ptr(int32(ci + 1)),
					RowSpan:     ptr(int32(1)),
					ColumnSpan:  ptr(int32(1)),
					Geometry:    geometry(c.box),
					Id:          ptr(id),
					Page:        ptr(num),
				}
				if ri == 0 && len(t.rows) > 1 {
					blk.EntityTypes = []types.EntityType{types.EntityTypeColumnHeader}
				}
				if children := tokenIDs(r.line, c.tokens, ids, sel); len(children) > 0 {
					blk.Relationships = []types.Relationship{{Type: types.RelationshipTypeChild, Ids: children}}
				}
				b.add(blk)
			}
		}
		b.addChildren(tableIdx, types.RelationshipTypeChild, cellIDs)
	}
}

func (b *builder) signatures(st *structure) {
	for _, li := range st.signatures {
		b.add(types.Block{
			BlockType:  types.BlockTypeSignature,
			Confidence: ptr(float32(confSignature)),
			Geometry:   geometry(st.page.Lines[li].Box),
			Id:         ptr(b.id()),
			Page:       ptr(st.page.Number),
		})
	}
}

// layout groups adjacent lines of the same kind into layout blocks and
// returns their ids. The first line of the document is its title.
func (b *builder) layout(st *structure, ids pageIDs, first bool) []string {
	lines := st.page.Lines
	kind := func(i int) types.BlockType {
		switch {
		case first && i == 0:
			return types.BlockTypeLayoutTitle
		case st.inTable[i]:
			return types.BlockTypeLayoutTable
		case st.kvLine[i]:
			return types.BlockTypeLayoutKeyValue
		case i == len(lines)-1 && pageNumber.MatchString(lines[i].Text):
			return types.BlockTypeLayoutPageNumber
		}
		return types.BlockTypeLayoutText
	}
	var out []string
	for i := 0; i < len(lines); {
		k := kind(i)
		j := i + 1
		if k != types.BlockTypeLayoutTitle && k != types.BlockTypeLayoutPageNumber {
			for j < len(lines) && kind(j) == k && lines[j].Row == lines[j-1].Row+1 {
				j++
			}
		}
		boxes := make([]Box, 0, j-i)
		for x := i; x < j; x++ {
			boxes = append(boxes, lines[x].Box)
		}
		id := b.id()
		out = append(out, id)
		b.add(types.Block{
			BlockType:     k,
			Confidence:    ptr(float32(confLayout)),
			Geometry:      geometry(union(boxes...)),
			Id:            ptr(id),
			Relationships: []types.Relationship{{Type: types.RelationshipTypeChild, Ids: slices.Clone(ids.lines[i:j])}},
			Page:          ptr(st.page.Number),
		})
		i = j
	}
	return out
}

// PageSet expands query or adapter page selectors for an n-page document.
// No selector means the first page; "*" means every page and may end a
// range.
func PageSet(selectors []string, n int32) map[int32]bool {
	pages := map[int32]bool{}
	if len(selectors) == 0 {
		pages[1] = true
		return pages
	}
	parse := func(s string) int32 {
		if s == "*" {
			return n
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0
		}
		return int32(v)
	}
	for _, sel := range selectors {
		lo, hi, found := strings.Cut(sel, "-")
		from := parse(lo)
		to := from
		if found {
			to = parse(hi)
		}
		if lo == "*" {
			from = 1
		}
		for p := max(from, 1); p <= min(to, n); p++ {
			pages[p] = true
		}
	}
	return pages
}

// answer finds the best value for a question on the page: the form field
// whose key shares most words with it, else the first cell under the best
// matching column header.
func (st *structure) answer(question string) (string, Box, bool) {
	qw := wordSet(question)
	best, bestScore := -1, 0.5
	for i, kv := range st.kvs {
		if kv.value == "" && kv.selection < 0 {
			continue
		}
		if s := matchScore(kv.key, qw); s >= bestScore && (best < 0 || s > bestScore) {
			best, bestScore = i, s
		}
	}
	if best >= 0 {
		kv := st.kvs[best]
		l := &st.page.Lines[kv.line]
		box, _ := tokenBox(l, kv.valueTok)
		if kv.selection >= 0 && kv.value == "" {
			status := types.SelectionStatusNotSelected
			if l.tokens[kv.selection].Kind == tokenSelected {
				status = types.SelectionStatusSelected
			}
			return string(status), box, true
		}
		return kv.value, box, true
	}
	for _, t := range st.tables {
		if len(t.rows) < 2 {
			continue
		}
		for ci, h := range t.rows[0].cells {
			if matchScore(h.text, qw) < 0.5 || ci >= len(t.rows[1].cells) {
				continue
			}
			c := t.rows[1].cells[ci]
			if c.text != "" {
				return c.text, c.box, true
			}
		}
	}
	return "", Box{}, false
}

func (b *builder) query(st *structure, q types.Query, adapted func(int32) bool) {
	num := st.page.Number
	qc := types.Query{Text: q.Text, Alias: q.Alias}
	if q.Pages != nil {
		qc.Pages = slices.Clone(q.Pages)
	}
	blk := types.Block{
		BlockType: types.BlockTypeQuery,
		Id:        ptr(b.id()),
		Page:      ptr(num),
		Query:     &qc,
	}
	text, box, ok := st.answer(q.GetText())
	if !ok {
		b.add(blk)
		return
	}
	conf := float32(confAnswer)
	if adapted != nil && adapted(num) {
		conf = confAdapted
	}
	resultID := b.id()
	blk.Relationships = []types.Relationship{{Type: types.RelationshipTypeAnswer, Ids: []string{resultID}}}
	b.add(blk)
	b.add(types.Block{
		BlockType:  types.BlockTypeQueryResult,
		Confidence: ptr(conf),
		Text:       ptr(text),
		Geometry:   geometry(box),
		Id:         ptr(resultID),
		Page:       ptr(num),
	})
}
