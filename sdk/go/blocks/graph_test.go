package blocks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docanalysis/sdk/go/blocks"
	"docanalysis/sdk/go/types"
)

func block(id string, bt types.BlockType) *types.Block {
	b := &types.Block{BlockType: bt}
	return b.SetId(id).SetPage(1)
}

func word(id, text string) types.Block {
	return *block(id, types.BlockTypeWord).SetText(text)
}

func child(ids ...string) types.Relationship {
	return *(&types.Relationship{Type: types.RelationshipTypeChild}).WithIds(ids...)
}

func sampleForm() []types.Block {
	key := block("k1", types.BlockTypeKeyValueSet).
		WithEntityTypes(types.EntityTypeKey).
		WithRelationships(child("w1"), *(&types.Relationship{Type: types.RelationshipTypeValue}).WithIds("v1"))
	value := block("v1", types.BlockTypeKeyValueSet).
		WithEntityTypes(types.EntityTypeValue).
		WithRelationships(child("w2", "w3"))
	line := block("l1", types.BlockTypeLine).SetText("Name: Jane Doe").WithRelationships(child("w1", "w2", "w3"))
	page := block("p1", types.BlockTypePage).WithRelationships(child("l1"))
	return []types.Block{*page, *line, word("w1", "Name:"), word("w2", "Jane"), word("w3", "Doe"), *key, *value}
}

func TestLookupAndChildren(t *testing.T) {
	g := blocks.New(sampleForm())
	require.Equal(t, 7, g.Len())

	line, ok := g.Lookup("l1")
	require.True(t, ok)
	var texts []string
	for _, w := range g.Children(line) {
		texts = append(texts, w.GetText())
	}
	assert.Equal(t, []string{"Name:", "Jane", "Doe"}, texts)

	_, ok = g.Lookup("missing")
	assert.False(t, ok)
	assert.Empty(t, g.Dangling())
	assert.Len(t, g.Pages(), 1)
	assert.Len(t, g.Lines(1), 1)
	assert.Empty(t, g.Lines(2))
}

func TestKeyValues(t *testing.T) {
	g := blocks.New(sampleForm())
	kvs := g.KeyValues()
	require.Len(t, kvs, 1)
	assert.Equal(t, "Name:", kvs[0].KeyText)
	assert.Equal(t, "Jane Doe", kvs[0].Text)
	assert.Nil(t, kvs[0].Selected)
}

func TestNewCopiesInput(t *testing.T) {
	in := sampleForm()
	g := blocks.New(in)
	in[0].SetId("changed")
	_, ok := g.Lookup("p1")
	assert.True(t, ok)
}

func TestNewDeepCopiesNestedFields(t *testing.T) {
	in := sampleForm()
	g := blocks.New(in)
	before := g.At(0).String()
	for i := range in {
		for j := range in[i].Relationships {
			for k := range in[i].Relationships[j].Ids {
				in[i].Relationships[j].Ids[k] = "gone"
			}
		}
		if in[i].Text != nil {
			*in[i].Text = "mutated"
		}
		if in[i].Id != nil {
			*in[i].Id = "mutated-" + *in[i].Id
		}
	}
	assert.Equal(t, before, g.At(0).String())
	assert.Empty(t, g.Dangling())
	_, ok := g.Lookup("p1")
	assert.True(t, ok)
	for i := 0; i < g.Len(); i++ {
		if txt := g.At(i).Text; txt != nil {
			assert.NotEqual(t, "mutated", *txt)
		}
	}
}

func TestMergeResolvesAcrossPages(t *testing.T) {
	all := sampleForm()
	first, second := all[:3], all[3:]

	partial := blocks.New(first)
	assert.Equal(t, []string{"w2", "w3"}, partial.Dangling())

	merged := blocks.Merge(first, second)
	assert.Empty(t, merged.Dangling())
	line, ok := merged.Lookup("l1")
	require.True(t, ok)
	assert.Len(t, merged.Children(line), 3)
}

func TestTables(t *testing.T) {
	cell := func(id string, row, col int32, text string, header bool) types.Block {
		c := block(id, types.BlockTypeCell).SetRowIndex(row).SetColumnIndex(col).SetRowSpan(1).SetColumnSpan(1).SetText(text)
		if header {
			c.WithEntityTypes(types.EntityTypeColumnHeader)
		}
		return *c
	}
	table := block("t1", types.BlockTypeTable).WithRelationships(child("c11", "c12", "c21", "c22"))
	g := blocks.New([]types.Block{
		*table,
		cell("c11", 1, 1, "Item", true),
		cell("c12", 1, 2, "Price", true),
		cell("c21", 2, 1, "Coffee", false),
		cell("c22", 2, 2, "3.50", false),
	})

	tables := g.Tables()
	require.Len(t, tables, 1)
	assert.Equal(t, []string{"Item", "Price"}, tables[0].Headers)
	assert.Equal(t, [][]string{{"Item", "Price"}, {"Coffee", "3.50"}}, tables[0].Rows)
}

func TestQueryAnswers(t *testing.T) {
	q := block("q1", types.BlockTypeQuery).
		SetQuery((&types.Query{}).SetText("What is the total?").SetAlias("TOTAL")).
		WithRelationships(*(&types.Relationship{Type: types.RelationshipTypeAnswer}).WithIds("r1"))
	r := block("r1", types.BlockTypeQueryResult).SetText("42.00")
	g := blocks.New([]types.Block{*q, *r})

	ans, ok := g.Answer("TOTAL")
	require.True(t, ok)
	assert.Equal(t, "42.00", ans)

	ans, ok = g.Answer("What is the total?")
	assert.True(t, ok)
	assert.Equal(t, "42.00", ans)

	_, ok = g.Answer("other")
	assert.False(t, ok)
}

func TestSelectionElementValue(t *testing.T) {
	key := block("k", types.BlockTypeKeyValueSet).WithEntityTypes(types.EntityTypeKey).
		WithRelationships(child("kw"), *(&types.Relationship{Type: types.RelationshipTypeValue}).WithIds("v"))
	value := block("v", types.BlockTypeKeyValueSet).WithEntityTypes(types.EntityTypeValue).WithRelationships(child("s"))
	sel := block("s", types.BlockTypeSelectionElement)
	sel.SelectionStatus = types.SelectionStatusSelected

	g := blocks.New([]types.Block{*key, *value, word("kw", "Married"), *sel})
	kvs := g.KeyValues()
	require.Len(t, kvs, 1)
	require.NotNil(t, kvs[0].Selected)
	assert.True(t, *kvs[0].Selected)
	assert.Equal(t, "SELECTED", kvs[0].Text)
}
