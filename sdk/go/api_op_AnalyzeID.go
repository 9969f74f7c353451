package docanalysis

import (
	"context"

	"docanalysis/sdk/go/types"
)

// AnalyzeID extracts normalized fields from one or two identity document pages.
func (c *Client) AnalyzeID(ctx context.Context, params *AnalyzeIDInput) (*AnalyzeIDOutput, error) {
	if params == nil {
		params = &AnalyzeIDInput{}
	}
	out := &AnalyzeIDOutput{}
	if err := c.invoke(ctx, "AnalyzeID", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

type AnalyzeIDInput struct {
	DocumentPages []types.Document `json:"DocumentPages,omitzero"`
}

type AnalyzeIDOutput struct {
	IdentityDocuments     []types.IdentityDocument `json:"IdentityDocuments,omitzero"`
	DocumentMetadata      *types.DocumentMetadata  `json:"DocumentMetadata,omitzero"`
	AnalyzeIDModelVersion *string                  `json:"AnalyzeIDModelVersion,omitzero"`
}
