package types

// IdentityDocument is the result for one identity document page.
type IdentityDocument struct {
	// 1-based position of the page in the request.
	DocumentIndex *int32 `json:"DocumentIndex,omitzero"`

	IdentityDocumentFields []IdentityDocumentField `json:"IdentityDocumentFields,omitzero"`
	Blocks                 []Block                 `json:"Blocks,omitzero"`
}

type IdentityDocumentField struct {
	Type           *AnalyzeIDDetections `json:"Type,omitzero"`
	ValueDetection *AnalyzeIDDetections `json:"ValueDetection,omitzero"`
}

type AnalyzeIDDetections struct {
	Text            *string          `json:"Text,omitzero"`
	NormalizedValue *NormalizedValue `json:"NormalizedValue,omitzero"`
	Confidence      *float32         `json:"Confidence,omitzero"`
}

// NormalizedValue is a field value rewritten in a standard format, such as
// dates as 2006-01-02T15:04:05.
type NormalizedValue struct {
	Value     *string   `json:"Value,omitzero"`
	ValueType ValueType `json:"ValueType,omitzero"`
}
