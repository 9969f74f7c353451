package types

// Block is one element of an analysis result: a page, line, word, table,
// cell, key-value set, selection element, query, signature or layout element.
// Blocks reference each other only through Relationships by Id.
type Block struct {
	BlockType BlockType `json:"BlockType,omitzero"`

	// Confidence score in the range 0-100.
	Confidence *float32 `json:"Confidence,omitzero"`

	Text     *string  `json:"Text,omitzero"`
	TextType TextType `json:"TextType,omitzero"`

	// 1-based row of a CELL or MERGED_CELL in its table.
	RowIndex *int32 `json:"RowIndex,omitzero"`

	// 1-based column of a CELL or MERGED_CELL in its table.
	ColumnIndex *int32 `json:"ColumnIndex,omitzero"`

	RowSpan         *int32          `json:"RowSpan,omitzero"`
	ColumnSpan      *int32          `json:"ColumnSpan,omitzero"`
	Geometry        *Geometry       `json:"Geometry,omitzero"`
	Id              *string         `json:"Id,omitzero"`
	Relationships   []Relationship  `json:"Relationships,omitzero"`
	EntityTypes     []EntityType    `json:"EntityTypes,omitzero"`
	SelectionStatus SelectionStatus `json:"SelectionStatus,omitzero"`

	// 1-based page the block was detected on.
	Page *int32 `json:"Page,omitzero"`

	Query *Query `json:"Query,omitzero"`
}

// Relationship links a block to other blocks of the same result by Id.
type Relationship struct {
	Type RelationshipType `json:"Type,omitzero"`
	Ids  []string         `json:"Ids,omitzero"`
}

// Geometry locates an element on its page.
type Geometry struct {
	BoundingBox *BoundingBox `json:"BoundingBox,omitzero"`

	// Fine-grained outline, clockwise from the top-left corner.
	Polygon []Point `json:"Polygon,omitzero"`

	RotationAngle *float32 `json:"RotationAngle,omitzero"`
}

// BoundingBox is an axis-aligned box. All values are ratios of the page
// width or height, in [0,1], with the origin at the top-left corner.
type BoundingBox struct {
	Width  *float32 `json:"Width,omitzero"`
	Height *float32 `json:"Height,omitzero"`
	Left   *float32 `json:"Left,omitzero"`
	Top    *float32 `json:"Top,omitzero"`
}

// Point is a page-relative coordinate: X as a ratio of the page width, Y as
// a ratio of the page height.
type Point struct {
	X *float32 `json:"X,omitzero"`
	Y *float32 `json:"Y,omitzero"`
}

// Query asks a natural-language question of the document.
type Query struct {
	Text *string `json:"Text,omitzero"`

	// Returned in the QUERY block so callers can match answers to questions.
	Alias *string `json:"Alias,omitzero"`

	// Pages to search: page numbers, ranges such as "2-4", or "*". Absent means the first page.
	Pages []string `json:"Pages,omitzero"`
}

type QueriesConfig struct {
	Queries []Query `json:"Queries,omitzero"`
}
