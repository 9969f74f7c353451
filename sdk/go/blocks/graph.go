// Package blocks indexes the flat block list of an analysis result so it
// can be traversed by relationship.
//
// Blocks live in one ordered slice and relationships are resolved through
// an Id to position map built once in New. No block points at another
// block, so the graph mirrors the wire format and has no cycles to manage.
package blocks

import (
	"slices"
	"sort"
	"strings"

	"docanalysis/sdk/go/types"
)

// Graph is an index over a private copy of a block list. The blocks
// returned by its methods point into that copy and must be treated as
// read-only: changing an Id or a relationship invalidates the index.
type Graph struct {
	blocks []types.Block
	index  map[string]int
}

// New indexes a deep copy of bs, so later changes to bs do not reach the
// graph. When two blocks share an Id the first one wins; blocks without an
// Id are kept but cannot be referenced.
func New(bs []types.Block) *Graph {
	g := &Graph{
		blocks: make([]types.Block, len(bs)),
		index:  make(map[string]int, len(bs)),
	}
	for i := range bs {
		g.blocks[i] = cloneBlock(bs[i])
	}
	for i := range g.blocks {
		id := g.blocks[i].Id
		if id == nil {
			continue
		}
		if _, dup := g.index[*id]; !dup {
			g.index[*id] = i
		}
	}
	return g
}

func cloneBlock(b types.Block) types.Block {
	b.Confidence = clonePtr(b.Confidence)
	b.Text = clonePtr(b.Text)
	b.RowIndex = clonePtr(b.RowIndex)
	b.ColumnIndex = clonePtr(b.ColumnIndex)
	b.RowSpan = clonePtr(b.RowSpan)
	b.ColumnSpan = clonePtr(b.ColumnSpan)
	b.Id = clonePtr(b.Id)
	b.Page = clonePtr(b.Page)
	b.EntityTypes = slices.Clone(b.EntityTypes)
	if b.Relationships != nil {
		rels := make([]types.Relationship, len(b.Relationships))
		for i, r := range b.Relationships {
			rels[i] = types.Relationship{Type: r.Type, Ids: slices.Clone(r.Ids)}
		}
		b.Relationships = rels
	}
	if g := b.Geometry; g != nil {
		geo := types.Geometry{RotationAngle: clonePtr(g.RotationAngle)}
		if bb := g.BoundingBox; bb != nil {
			geo.BoundingBox = &types.BoundingBox{
				Width: clonePtr(bb.Width), Height: clonePtr(bb.Height),
				Left: clonePtr(bb.Left), Top: clonePtr(bb.Top),
			}
		}
		if g.Polygon != nil {
			geo.Polygon = make([]types.Point, len(g.Polygon))
			for i, p := range g.Polygon {
				geo.Polygon[i] = types.Point{X: clonePtr(p.X), Y: clonePtr(p.Y)}
			}
		}
		b.Geometry = &geo
	}
	if q := b.Query; q != nil {
		b.Query = &types.Query{Text: clonePtr(q.Text), Alias: clonePtr(q.Alias), Pages: slices.Clone(q.Pages)}
	}
	return b
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Merge indexes the concatenation of several result pages, as returned by
// successive calls of a paginated Get operation.
func Merge(pages ...[]types.Block) *Graph {
	n := 0
	for _, p := range pages {
		n += len(p)
	}
	all := make([]types.Block, 0, n)
	for _, p := range pages {
		all = append(all, p...)
	}
	return New(all)
}

// Len returns the number of blocks.
func (g *Graph) Len() int { return len(g.blocks) }

// At returns the i-th block in result order.
func (g *Graph) At(i int) *types.Block { return &g.blocks[i] }

// Lookup returns the block with the given Id.
func (g *Graph) Lookup(id string) (*types.Block, bool) {
	i, ok := g.index[id]
	if !ok {
		return nil, false
	}
	return &g.blocks[i], true
}

// Related returns the blocks b links to with relationship type rt, in
// relationship order. Ids that do not resolve are skipped.
func (g *Graph) Related(b *types.Block, rt types.RelationshipType) []*types.Block {
	var out []*types.Block
	for _, rel := range b.Relationships {
		if rel.Type != rt {
			continue
		}
		for _, id := range rel.Ids {
			if target, ok := g.Lookup(id); ok {
				out = append(out, target)
			}
		}
	}
	return out
}

// Children returns the CHILD blocks of b.
func (g *Graph) Children(b *types.Block) []*types.Block {
	return g.Related(b, types.RelationshipTypeChild)
}

// Dangling returns the sorted Ids referenced by a relationship that no block
// carries. A complete result has none; a partial page of a paginated result
// usually has some.
func (g *Graph) Dangling() []string {
	seen := map[string]bool{}
	for i := range g.blocks {
		for _, rel := range g.blocks[i].Relationships {
			for _, id := range rel.Ids {
				if _, ok := g.index[id]; !ok {
					seen[id] = true
				}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// ByType returns the blocks of type t in result order.
func (g *Graph) ByType(t types.BlockType) []*types.Block {
	var out []*types.Block
	for i := range g.blocks {
		if g.blocks[i].BlockType == t {
			out = append(out, &g.blocks[i])
		}
	}
	return out
}

// Pages returns the PAGE blocks.
func (g *Graph) Pages() []*types.Block {
	return g.ByType(types.BlockTypePage)
}

// Lines returns the LINE blocks of a 1-based page. Blocks without a Page
// belong to page 1.
func (g *Graph) Lines(page int32) []*types.Block {
	var out []*types.Block
	for _, b := range g.ByType(types.BlockTypeLine) {
		p := b.Page
		if (p == nil && page == 1) || (p != nil && *p == page) {
			out = append(out, b)
		}
	}
	return out
}

// Text returns the text of b: its own Text when set, otherwise the words
// and selection marks of its children joined by spaces.
func (g *Graph) Text(b *types.Block) string {
	if b.Text != nil {
		return *b.Text
	}
	var parts []string
	for _, c := range g.Children(b) {
		switch {
		case c.BlockType == types.BlockTypeSelectionElement:
			parts = append(parts, string(c.SelectionStatus))
		case c.Text != nil:
			parts = append(parts, *c.Text)
		}
	}
	return strings.Join(parts, " ")
}
