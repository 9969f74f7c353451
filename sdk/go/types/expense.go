package types

// ExpenseDocument is the result for one invoice or receipt.
type ExpenseDocument struct {
	// 1-based position of this expense in the input.
	ExpenseIndex *int32 `json:"ExpenseIndex,omitzero"`

	SummaryFields  []ExpenseField  `json:"SummaryFields,omitzero"`
	LineItemGroups []LineItemGroup `json:"LineItemGroups,omitzero"`
	Blocks         []Block         `json:"Blocks,omitzero"`
}

// ExpenseField is a detected label/value pair with its normalized type.
type ExpenseField struct {
	Type            *ExpenseType           `json:"Type,omitzero"`
	LabelDetection  *ExpenseDetection      `json:"LabelDetection,omitzero"`
	ValueDetection  *ExpenseDetection      `json:"ValueDetection,omitzero"`
	PageNumber      *int32                 `json:"PageNumber,omitzero"`
	Currency        *ExpenseCurrency       `json:"Currency,omitzero"`
	GroupProperties []ExpenseGroupProperty `json:"GroupProperties,omitzero"`
}

type ExpenseType struct {
	Text       *string  `json:"Text,omitzero"`
	Confidence *float32 `json:"Confidence,omitzero"`
}

type ExpenseDetection struct {
	Text       *string   `json:"Text,omitzero"`
	Geometry   *Geometry `json:"Geometry,omitzero"`
	Confidence *float32  `json:"Confidence,omitzero"`
}

// ExpenseCurrency is the currency of a monetary field, as an ISO 4217 code
// when recognized.
type ExpenseCurrency struct {
	Code       *string  `json:"Code,omitzero"`
	Confidence *float32 `json:"Confidence,omitzero"`
}

// ExpenseGroupProperty ties fields that belong together, such as the parts of
// a vendor address.
type ExpenseGroupProperty struct {
	Types []string `json:"Types,omitzero"`
	Id    *string  `json:"Id,omitzero"`
}

// LineItemGroup holds the line items of one detected table.
type LineItemGroup struct {
	// 1-based index of the table this group came from.
	LineItemGroupIndex *int32 `json:"LineItemGroupIndex,omitzero"`

	LineItems []LineItemFields `json:"LineItems,omitzero"`
}

type LineItemFields struct {
	LineItemExpenseFields []ExpenseField `json:"LineItemExpenseFields,omitzero"`
}
