package types_test

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docanalysis/sdk/go/types"
)

func TestUnsetFieldsReadAsAbsent(t *testing.T) {
	var b types.Block
	assert.Nil(t, b.Confidence)
	assert.Nil(t, b.Relationships)
	assert.Nil(t, b.GetGeometry())
	assert.Equal(t, float32(0), b.GetConfidence())
	assert.Equal(t, types.BlockType(""), b.BlockType)

	var nilBlock *types.Block
	assert.Equal(t, "", nilBlock.GetText())
	assert.Nil(t, nilBlock.GetQuery())
}

func TestDocumentWithOnlyS3Object(t *testing.T) {
	doc := (&types.Document{}).SetS3Object((&types.S3Object{}).SetBucket("my-bucket").SetName("invoice.png"))

	assert.Nil(t, doc.Bytes)
	assert.Equal(t, "my-bucket", doc.GetS3Object().GetBucket())
	assert.Nil(t, doc.GetS3Object().Version)
	require.NoError(t, doc.Validate())

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"S3Object":{"Bucket":"my-bucket","Name":"invoice.png"}}`, string(raw))
}

func TestBuilderChainMatchesSetters(t *testing.T) {
	chained := (&types.Geometry{}).
		SetBoundingBox((&types.BoundingBox{}).SetWidth(0.2).SetHeight(0.1)).
		WithPolygon(types.Point{}, types.Point{}).
		SetRotationAngle(1.5)

	var stepwise types.Geometry
	stepwise.SetBoundingBox((&types.BoundingBox{}).SetWidth(0.2).SetHeight(0.1))
	stepwise.SetPolygon([]types.Point{{}, {}})
	stepwise.SetRotationAngle(1.5)

	assert.True(t, chained.Equal(&stepwise))
	assert.Equal(t, chained.Hash(), stepwise.Hash())
}

func TestPointEqualityAndHash(t *testing.T) {
	a := (&types.Point{}).SetX(0.5).SetY(0.75)
	b := (&types.Point{}).SetX(0.5).SetY(0.75)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(nil))

	var none *types.Point
	assert.True(t, none.Equal(nil))
	assert.Equal(t, uint64(0), none.Hash())

	b.SetY(0.7)
	assert.False(t, a.Equal(b))
}

func TestEqualityTreatsNaNByBits(t *testing.T) {
	nan := float32(math.NaN())
	a := (&types.Point{}).SetX(nan)
	b := (&types.Point{}).SetX(nan)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestEqualityOfTimesIgnoresLocation(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	a := (&types.AdapterOverview{}).SetCreationTime(at)
	b := (&types.AdapterOverview{}).SetCreationTime(at.In(time.FixedZone("X", 3600)))
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestRelationshipWithIds(t *testing.T) {
	rel := (&types.Relationship{Type: types.RelationshipTypeChild}).WithIds("id1", "id2")
	assert.Equal(t, []string{"id1", "id2"}, rel.Ids)

	rel.WithIds("id3")
	assert.Equal(t, []string{"id1", "id2", "id3"}, rel.Ids)

	empty := (&types.Relationship{}).WithIds()
	assert.NotNil(t, empty.Ids)
	assert.Empty(t, empty.Ids)
}

func TestListSetterCopiesInput(t *testing.T) {
	ids := []string{"a", "b"}
	rel := (&types.Relationship{}).SetIds(ids)
	ids[0] = "z"
	assert.Equal(t, []string{"a", "b"}, rel.Ids)

	raw := []byte("%PDF")
	doc := (&types.Document{}).SetBytes(raw)
	raw[0] = 'x'
	assert.Equal(t, []byte("%PDF"), doc.Bytes)

	pages := []string{"1"}
	adapter := (&types.Adapter{}).SetPages(pages)
	pages[0] = "2"
	assert.Equal(t, []string{"1"}, adapter.Pages)
}

func TestNilSetterClearsList(t *testing.T) {
	rel := (&types.Relationship{}).WithIds("a")
	rel.SetIds(nil)
	assert.Nil(t, rel.Ids)

	rel.SetIds([]string{})
	assert.NotNil(t, rel.Ids)
	assert.Empty(t, rel.Ids)

	emptyRel := (&types.Relationship{}).SetIds([]string{})
	nilRel := &types.Relationship{}
	assert.False(t, emptyRel.Equal(nilRel))
}

func TestEmptyAndAbsentListsSurviveJSON(t *testing.T) {
	rel := (&types.Relationship{Type: types.RelationshipTypeChild}).SetIds([]string{})
	raw, err := json.Marshal(rel)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Type":"CHILD","Ids":[]}`, string(raw))

	raw, err = json.Marshal(&types.Relationship{Type: types.RelationshipTypeChild})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Type":"CHILD"}`, string(raw))

	var back types.Relationship
	require.NoError(t, json.Unmarshal([]byte(`{"Ids":[]}`), &back))
	assert.NotNil(t, back.Ids)
}

func TestBoundingBoxString(t *testing.T) {
	box := (&types.BoundingBox{}).SetWidth(0.1).SetHeight(0.05).SetLeft(0.5).SetTop(0.25)
	assert.Equal(t, "{Width: 0.1,Height: 0.05,Left: 0.5,Top: 0.25}", box.String())
}

func TestStringOmitsUnsetFields(t *testing.T) {
	p := (&types.Point{}).SetX(1)
	s := p.String()
	assert.Equal(t, "{X: 1}", s)
	assert.NotContains(t, s, "Y")

	b := types.Block{BlockType: types.BlockTypeWord}
	b.SetGeometry((&types.Geometry{}).SetBoundingBox((&types.BoundingBox{}).SetWidth(1)))
	assert.Equal(t, "{BlockType: WORD,Geometry: {BoundingBox: {Width: 1}}}", b.String())

	doc := (&types.Document{}).SetBytes(make([]byte, 3))
	assert.Equal(t, "{Bytes: <3 bytes>}", doc.String())
}

func TestUnknownEnumValuesPassThrough(t *testing.T) {
	var b types.Block
	require.NoError(t, json.Unmarshal([]byte(`{"BlockType":"HOLOGRAM","SelectionStatus":"MAYBE"}`), &b))
	assert.Equal(t, types.BlockType("HOLOGRAM"), b.BlockType)
	assert.NotContains(t, types.BlockType("").Values(), b.BlockType)

	raw, err := json.Marshal(&b)
	require.NoError(t, err)
	assert.JSONEq(t, `{"BlockType":"HOLOGRAM","SelectionStatus":"MAYBE"}`, string(raw))
}

func TestJobStatusTerminal(t *testing.T) {
	assert.False(t, types.JobStatusInProgress.Terminal())
	for _, s := range []types.JobStatus{types.JobStatusSucceeded, types.JobStatusFailed, types.JobStatusPartialSuccess} {
		assert.True(t, s.Terminal(), s)
	}
}

func TestDocumentValidation(t *testing.T) {
	neither := &types.Document{}
	both := (&types.Document{}).SetBytes([]byte("x")).SetS3Object((&types.S3Object{}).SetBucket("bkt").SetName("a"))
	tooBig := (&types.Document{}).SetBytes(make([]byte, types.MaxDocumentBytes+1))

	for name, doc := range map[string]*types.Document{"neither": neither, "both": both, "too big": tooBig} {
		err := doc.Validate()
		require.Error(t, err, name)
		var inv *types.InvalidParamsError
		require.True(t, errors.As(err, &inv), name)
		assert.Equal(t, types.ErrCodeInvalidParameter, inv.ErrorCode())
		assert.Equal(t, 1, inv.Len(), name)
	}

	ok := (&types.Document{}).SetBytes([]byte("hello"))
	assert.NoError(t, ok.Validate())
}

func TestNestedValidationPrefixesFields(t *testing.T) {
	doc := (&types.Document{}).SetS3Object(&types.S3Object{})
	err := doc.Validate()
	require.Error(t, err)

	var inv *types.InvalidParamsError
	require.True(t, errors.As(err, &inv))
	var fields []string
	for _, pe := range inv.Errors() {
		fields = append(fields, pe.Field)
	}
	assert.Equal(t, []string{"S3Object.Bucket", "S3Object.Name"}, fields)
	assert.True(t, strings.HasPrefix(err.Error(), "2 validation error(s) detected in Document"))
}

func TestNewAPIError(t *testing.T) {
	err := types.NewAPIError(types.ErrCodeInvalidJobId, "no such job")
	var typed *types.InvalidJobIdException
	require.True(t, errors.As(err, &typed))
	assert.Equal(t, "no such job", typed.ErrorMessage())
	assert.Equal(t, types.FaultClient, typed.ErrorFault())

	unknown := types.NewAPIError("QuantumException", "odd")
	var generic *types.GenericAPIError
	require.True(t, errors.As(unknown, &generic))
	assert.Equal(t, "QuantumException", types.ErrorCodeOf(unknown))
	assert.Equal(t, "", types.ErrorCodeOf(errors.New("plain")))

	assert.Equal(t, types.FaultServer, types.NewAPIError(types.ErrCodeInternalServer, "").ErrorFault())
}
