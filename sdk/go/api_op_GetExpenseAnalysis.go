package docanalysis

import (
	"context"

	"docanalysis/sdk/go/types"
)

// GetExpenseAnalysis returns the status and a page of expense documents of an expense analysis job.
func (c *Client) GetExpenseAnalysis(ctx context.Context, params *GetExpenseAnalysisInput) (*GetExpenseAnalysisOutput, error) {
	if params == nil {
		params = &GetExpenseAnalysisInput{}
	}
	out := &GetExpenseAnalysisOutput{}
	if err := c.invoke(ctx, "GetExpenseAnalysis", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

type GetExpenseAnalysisInput struct {
	JobId      *string `json:"JobId,omitzero"`
	MaxResults *int32  `json:"MaxResults,omitzero"`
	NextToken  *string `json:"NextToken,omitzero"`
}

type GetExpenseAnalysisOutput struct {
	DocumentMetadata           *types.DocumentMetadata `json:"DocumentMetadata,omitzero"`
	JobStatus                  types.JobStatus         `json:"JobStatus,omitzero"`
	NextToken                  *string                 `json:"NextToken,omitzero"`
	ExpenseDocuments           []types.ExpenseDocument `json:"ExpenseDocuments,omitzero"`
	Warnings                   []types.Warning         `json:"Warnings,omitzero"`
	StatusMessage              *string                 `json:"StatusMessage,omitzero"`
	AnalyzeExpenseModelVersion *string                 `json:"AnalyzeExpenseModelVersion,omitzero"`
}
