package blocks

import (
	"slices"

	"docanalysis/sdk/go/types"
)

// KeyValue is a form field: a KEY block and the VALUE block it points to.
type KeyValue struct {
	Key      *types.Block
	Value    *types.Block
	KeyText  string
	Text     string
	Selected *bool
}

// Table is a TABLE block with its cells laid out by row and column.
type Table struct {
	Block *types.Block
	// Rows holds cell text, Rows[r][c] for the 1-based cell (r+1, c+1).
	Rows    [][]string
	Headers []string
}

// QueryAnswer pairs a QUERY block with its QUERY_RESULT blocks.
type QueryAnswer struct {
	Query   *types.Block
	Answers []*types.Block
}

// KeyValues returns the form fields in result order. Selected is set when
// the value is a selection element.
func (g *Graph) KeyValues() []KeyValue {
	var out []KeyValue
	for _, b := range g.ByType(types.BlockTypeKeyValueSet) {
		if !slices.Contains(b.EntityTypes, types.EntityTypeKey) {
			continue
		}
		kv := KeyValue{Key: b, KeyText: g.Text(b)}
		if values := g.Related(b, types.RelationshipTypeValue); len(values) > 0 {
			kv.Value = values[0]
			kv.Text = g.Text(values[0])
			for _, c := range g.Children(values[0]) {
				if c.BlockType == types.BlockTypeSelectionElement {
					sel := c.SelectionStatus == types.SelectionStatusSelected
					kv.Selected = &sel
				}
			}
		}
		out = append(out, kv)
	}
	return out
}

// Tables returns every table with its cell grid. Cells spanning several
// rows or columns fill only their anchor position.
func (g *Graph) Tables() []Table {
	var out []Table
	for _, b := range g.ByType(types.BlockTypeTable) {
		t := Table{Block: b}
		cells := g.Children(b)
		var rows, cols int32
		for _, c := range cells {
			rows = max(rows, c.GetRowIndex())
			cols = max(cols, c.GetColumnIndex())
		}
		t.Rows = make([][]string, rows)
		for r := range t.Rows {
			t.Rows[r] = make([]string, cols)
		}
		for _, c := range cells {
			r, col := c.GetRowIndex(), c.GetColumnIndex()
			if r < 1 || col < 1 {
				continue
			}
			t.Rows[r-1][col-1] = g.Text(c)
			if slices.Contains(c.EntityTypes, types.EntityTypeColumnHeader) {
				if t.Headers == nil {
					t.Headers = make([]string, cols)
				}
				t.Headers[col-1] = g.Text(c)
			}
		}
		out = append(out, t)
	}
	return out
}

// QueryAnswers returns each QUERY block with its ANSWER results.
func (g *Graph) QueryAnswers() []QueryAnswer {
	var out []QueryAnswer
	for _, b := range g.ByType(types.BlockTypeQuery) {
		out = append(out, QueryAnswer{Query: b, Answers: g.Related(b, types.RelationshipTypeAnswer)})
	}
	return out
}

// Answer returns the text of the first answer to the query with the given
// alias, or the given text when no alias matches.
func (g *Graph) Answer(aliasOrText string) (string, bool) {
	for _, qa := range g.QueryAnswers() {
		q := qa.Query.Query
		if q == nil || (q.GetAlias() != aliasOrText && q.GetText() != aliasOrText) {
			continue
		}
		if len(qa.Answers) == 0 {
			return "", false
		}
		return g.Text(qa.Answers[0]), true
	}
	return "", false
}
