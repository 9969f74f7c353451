package types

// LendingResult is the classification and extraction for one page of a
// lending package.
type LendingResult struct {
	Page               *int32              `json:"Page,omitzero"`
	PageClassification *PageClassification `json:"PageClassification,omitzero"`
	Extractions        []Extraction        `json:"Extractions,omitzero"`
}

type PageClassification struct {
	PageType []Prediction `json:"PageType,omitzero"`

	// Page number printed on the page, or "undetected".
	PageNumber []Prediction `json:"PageNumber,omitzero"`
}

type Prediction struct {
	Value      *string  `json:"Value,omitzero"`
	Confidence *float32 `json:"Confidence,omitzero"`
}

// Extraction holds exactly one of the typed extraction results of a page.
type Extraction struct {
	LendingDocument  *LendingDocument  `json:"LendingDocument,omitzero"`
	ExpenseDocument  *ExpenseDocument  `json:"ExpenseDocument,omitzero"`
	IdentityDocument *IdentityDocument `json:"IdentityDocument,omitzero"`
}

type LendingDocument struct {
	LendingFields       []LendingField       `json:"LendingFields,omitzero"`
	SignatureDetections []SignatureDetection `json:"SignatureDetections,omitzero"`
}

type LendingField struct {
	Type            *string            `json:"Type,omitzero"`
	KeyDetection    *LendingDetection  `json:"KeyDetection,omitzero"`
	ValueDetections []LendingDetection `json:"ValueDetections,omitzero"`
}

type LendingDetection struct {
	Text            *string         `json:"Text,omitzero"`
	SelectionStatus SelectionStatus `json:"SelectionStatus,omitzero"`
	Geometry        *Geometry       `json:"Geometry,omitzero"`
	Confidence      *float32        `json:"Confidence,omitzero"`
}

type SignatureDetection struct {
	Confidence *float32  `json:"Confidence,omitzero"`
	Geometry   *Geometry `json:"Geometry,omitzero"`
}

// LendingSummary groups the pages of a lending package into documents.
type LendingSummary struct {
	DocumentGroups []DocumentGroup `json:"DocumentGroups,omitzero"`

	// Known document types that were not found in the package.
	UndetectedDocumentTypes []string `json:"UndetectedDocumentTypes,omitzero"`
}

// DocumentGroup collects the documents of one type.
type DocumentGroup struct {
	Type                 *string               `json:"Type,omitzero"`
	SplitDocuments       []SplitDocument       `json:"SplitDocuments,omitzero"`
	DetectedSignatures   []DetectedSignature   `json:"DetectedSignatures,omitzero"`
	UndetectedSignatures []UndetectedSignature `json:"UndetectedSignatures,omitzero"`
}

// SplitDocument is one logical document inside a DocumentGroup, made of the
// listed input pages.
type SplitDocument struct {
	Index *int32  `json:"Index,omitzero"`
	Pages []int32 `json:"Pages,omitzero"`
}

type DetectedSignature struct {
	Page *int32 `json:"Page,omitzero"`
}

type UndetectedSignature struct {
	Page *int32 `json:"Page,omitzero"`
}
