package types

// Enumerations are open string sets: the service may return values this
// package does not know yet, and those decode and round-trip unchanged.
// Values lists the known members for convenience.

type AdapterVersionStatus string

const (
	AdapterVersionStatusActive             AdapterVersionStatus = "ACTIVE"
	AdapterVersionStatusAtRisk             AdapterVersionStatus = "AT_RISK"
	AdapterVersionStatusDeprecated         AdapterVersionStatus = "DEPRECATED"
	AdapterVersionStatusCreationError      AdapterVersionStatus = "CREATION_ERROR"
	AdapterVersionStatusCreationInProgress AdapterVersionStatus = "CREATION_IN_PROGRESS"
)

// Values returns the known values of AdapterVersionStatus.
func (AdapterVersionStatus) Values() []AdapterVersionStatus {
	return []AdapterVersionStatus{
		"ACTIVE",
		"AT_RISK",
		"DEPRECATED",
		"CREATION_ERROR",
		"CREATION_IN_PROGRESS",
	}
}

type AutoUpdate string

const (
	AutoUpdateEnabled  AutoUpdate = "ENABLED"
	AutoUpdateDisabled AutoUpdate = "DISABLED"
)

// Values returns the known values of AutoUpdate.
func (AutoUpdate) Values() []AutoUpdate {
	return []AutoUpdate{
		"ENABLED",
		"DISABLED",
	}
}

type BlockType string

const (
	BlockTypeKeyValueSet         BlockType = "KEY_VALUE_SET"
	BlockTypePage                BlockType = "PAGE"
	BlockTypeLine                BlockType = "LINE"
	BlockTypeWord                BlockType = "WORD"
	BlockTypeTable               BlockType = "TABLE"
	BlockTypeCell                BlockType = "CELL"
	BlockTypeSelectionElement    BlockType = "SELECTION_ELEMENT"
	BlockTypeMergedCell          BlockType = "MERGED_CELL"
	BlockTypeTitle               BlockType = "TITLE"
	BlockTypeQuery               BlockType = "QUERY"
	BlockTypeQueryResult         BlockType = "QUERY_RESULT"
	BlockTypeSignature           BlockType = "SIGNATURE"
	BlockTypeTableTitle          BlockType = "TABLE_TITLE"
	BlockTypeTableFooter         BlockType = "TABLE_FOOTER"
	BlockTypeLayoutText          BlockType = "LAYOUT_TEXT"
	BlockTypeLayoutTitle         BlockType = "LAYOUT_TITLE"
	BlockTypeLayoutHeader        BlockType = "LAYOUT_HEADER"
	BlockTypeLayoutFooter        BlockType = "LAYOUT_FOOTER"
	BlockTypeLayoutSectionHeader BlockType = "LAYOUT_SECTION_HEADER"
	BlockTypeLayoutPageNumber    BlockType = "LAYOUT_PAGE_NUMBER"
	BlockTypeLayoutList          BlockType = "LAYOUT_LIST"
	BlockTypeLayoutFigure        BlockType = "LAYOUT_FIGURE"
	BlockTypeLayoutTable         BlockType = "LAYOUT_TABLE"
	BlockTypeLayoutKeyValue      BlockType = "LAYOUT_KEY_VALUE"
)

// Values returns the known values of BlockType.
func (BlockType) Values() []BlockType {
	return []BlockType{
		"KEY_VALUE_SET",
		"PAGE",
		"LINE",
		"WORD",
		"TABLE",
		"CELL",
		"SELECTION_ELEMENT",
		"MERGED_CELL",
		"TITLE",
		"QUERY",
		"QUERY_RESULT",
		"SIGNATURE",
		"TABLE_TITLE",
		"TABLE_FOOTER",
		"LAYOUT_TEXT",
		"LAYOUT_TITLE",
		"LAYOUT_HEADER",
		"LAYOUT_FOOTER",
		"LAYOUT_SECTION_HEADER",
		"LAYOUT_PAGE_NUMBER",
		"LAYOUT_LIST",
		"LAYOUT_FIGURE",
		"LAYOUT_TABLE",
		"LAYOUT_KEY_VALUE",
	}
}

type ContentClassifier string

const (
	ContentClassifierFreeOfPersonallyIdentifiableInformation ContentClassifier = "FreeOfPersonallyIdentifiableInformation"
	ContentClassifierFreeOfAdultContent                      ContentClassifier = "FreeOfAdultContent"
)

// Values returns the known values of ContentClassifier.
func (ContentClassifier) Values() []ContentClassifier {
	return []ContentClassifier{
		"FreeOfPersonallyIdentifiableInformation",
		"FreeOfAdultContent",
	}
}

type EntityType string

const (
	EntityTypeKey                 EntityType = "KEY"
	EntityTypeValue               EntityType = "VALUE"
	EntityTypeColumnHeader        EntityType = "COLUMN_HEADER"
	EntityTypeTableTitle          EntityType = "TABLE_TITLE"
	EntityTypeTableFooter         EntityType = "TABLE_FOOTER"
	EntityTypeTableSectionTitle   EntityType = "TABLE_SECTION_TITLE"
	EntityTypeTableSummary        EntityType = "TABLE_SUMMARY"
	EntityTypeStructuredTable     EntityType = "STRUCTURED_TABLE"
	EntityTypeSemiStructuredTable EntityType = "SEMI_STRUCTURED_TABLE"
)

// Values returns the known values of EntityType.
func (EntityType) Values() []EntityType {
	return []EntityType{
		"KEY",
		"VALUE",
		"COLUMN_HEADER",
		"TABLE_TITLE",
		"TABLE_FOOTER",
		"TABLE_SECTION_TITLE",
		"TABLE_SUMMARY",
		"STRUCTURED_TABLE",
		"SEMI_STRUCTURED_TABLE",
	}
}

type FeatureType string

const (
	FeatureTypeTables     FeatureType = "TABLES"
	FeatureTypeForms      FeatureType = "FORMS"
	FeatureTypeQueries    FeatureType = "QUERIES"
	FeatureTypeSignatures FeatureType = "SIGNATURES"
	FeatureTypeLayout     FeatureType = "LAYOUT"
)

// Values returns the known values of FeatureType.
func (FeatureType) Values() []FeatureType {
	return []FeatureType{
		"TABLES",
		"FORMS",
		"QUERIES",
		"SIGNATURES",
		"LAYOUT",
	}
}

type JobStatus string

const (
	JobStatusInProgress     JobStatus = "IN_PROGRESS"
	JobStatusSucceeded      JobStatus = "SUCCEEDED"
	JobStatusFailed         JobStatus = "FAILED"
	JobStatusPartialSuccess JobStatus = "PARTIAL_SUCCESS"
)

// Values returns the known values of JobStatus.
func (JobStatus) Values() []JobStatus {
	return []JobStatus{
		"IN_PROGRESS",
		"SUCCEEDED",
		"FAILED",
		"PARTIAL_SUCCESS",
	}
}

// Terminal reports whether a job in status s will not change anymore.
func (s JobStatus) Terminal() bool {
	return s == JobStatusSucceeded || s == JobStatusFailed || s == JobStatusPartialSuccess
}

type RelationshipType string

const (
	RelationshipTypeValue           RelationshipType = "VALUE"
	RelationshipTypeChild           RelationshipType = "CHILD"
	RelationshipTypeComplexFeatures RelationshipType = "COMPLEX_FEATURES"
	RelationshipTypeMergedCell      RelationshipType = "MERGED_CELL"
	RelationshipTypeTitle           RelationshipType = "TITLE"
	RelationshipTypeAnswer          RelationshipType = "ANSWER"
	RelationshipTypeTable           RelationshipType = "TABLE"
	RelationshipTypeTableTitle      RelationshipType = "TABLE_TITLE"
	RelationshipTypeTableFooter     RelationshipType = "TABLE_FOOTER"
)

// Values returns the known values of RelationshipType.
func (RelationshipType) Values() []RelationshipType {
	return []RelationshipType{
		"VALUE",
		"CHILD",
		"COMPLEX_FEATURES",
		"MERGED_CELL",
		"TITLE",
		"ANSWER",
		"TABLE",
		"TABLE_TITLE",
		"TABLE_FOOTER",
	}
}

type SelectionStatus string

const (
	SelectionStatusSelected    SelectionStatus = "SELECTED"
	SelectionStatusNotSelected SelectionStatus = "NOT_SELECTED"
)

// Values returns the known values of SelectionStatus.
func (SelectionStatus) Values() []SelectionStatus {
	return []SelectionStatus{
		"SELECTED",
		"NOT_SELECTED",
	}
}

type TextType string

const (
	TextTypeHandwriting TextType = "HANDWRITING"
	TextTypePrinted     TextType = "PRINTED"
)

// Values returns the known values of TextType.
func (TextType) Values() []TextType {
	return []TextType{
		"HANDWRITING",
		"PRINTED",
	}
}

type ValueType string

const (
	ValueTypeDate ValueType = "DATE"
)

// Values returns the known values of ValueType.
func (ValueType) Values() []ValueType {
	return []ValueType{
		"DATE",
	}
}
