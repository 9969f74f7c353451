package docanalysis

import (
	"context"

	"docanalysis/sdk/go/types"
)

// AnalyzeExpense extracts summary fields and line items from an invoice or receipt.
func (c *Client) AnalyzeExpense(ctx context.Context, params *AnalyzeExpenseInput) (*AnalyzeExpenseOutput, error) {
	if params == nil {
		params = &AnalyzeExpenseInput{}
	}
	out := &AnalyzeExpenseOutput{}
	if err := c.invoke(ctx, "AnalyzeExpense", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

type AnalyzeExpenseInput struct {
	Document *types.Document `json:"Document,omitzero"`
}

type AnalyzeExpenseOutput struct {
	DocumentMetadata *types.DocumentMetadata `json:"DocumentMetadata,omitzero"`
	ExpenseDocuments []types.ExpenseDocument `json:"ExpenseDocuments,omitzero"`
}
