package docanalysis

import (
	"context"

	"docanalysis/sdk/go/types"
)

// GetLendingAnalysisSummary returns the document grouping of a lending analysis job.
func (c *Client) GetLendingAnalysisSummary(ctx context.Context, params *GetLendingAnalysisSummaryInput) (*GetLendingAnalysisSummaryOutput, error) {
	if params == nil {
		params = &GetLendingAnalysisSummaryInput{}
	}
	out := &GetLendingAnalysisSummaryOutput{}
	if err := c.invoke(ctx, "GetLendingAnalysisSummary", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

type GetLendingAnalysisSummaryInput struct {
	JobId *string `json:"JobId,omitzero"`
}

type GetLendingAnalysisSummaryOutput struct {
	DocumentMetadata           *types.DocumentMetadata `json:"DocumentMetadata,omitzero"`
	JobStatus                  types.JobStatus         `json:"JobStatus,omitzero"`
	Summary                    *types.LendingSummary   `json:"Summary,omitzero"`
	Warnings                   []types.Warning         `json:"Warnings,omitzero"`
	StatusMessage              *string                 `json:"StatusMessage,omitzero"`
	AnalyzeLendingModelVersion *string                 `json:"AnalyzeLendingModelVersion,omitzero"`
}
