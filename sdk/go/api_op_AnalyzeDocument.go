package docanalysis

import (
	"context"

	"docanalysis/sdk/go/types"
)

// AnalyzeDocument analyzes a single-page document for forms, tables, queries, signatures and layout.
func (c *Client) AnalyzeDocument(ctx context.Context, params *AnalyzeDocumentInput) (*AnalyzeDocumentOutput, error) {
	if params == nil {
		params = &AnalyzeDocumentInput{}
	}
	out := &AnalyzeDocumentOutput{}
	if err := c.invoke(ctx, "AnalyzeDocument", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

type AnalyzeDocumentInput struct {
	Document        *types.Document        `json:"Document,omitzero"`
	FeatureTypes    []types.FeatureType    `json:"FeatureTypes,omitzero"`
	HumanLoopConfig *types.HumanLoopConfig `json:"HumanLoopConfig,omitzero"`
	QueriesConfig   *types.QueriesConfig   `json:"QueriesConfig,omitzero"`
	AdaptersConfig  *types.AdaptersConfig  `json:"AdaptersConfig,omitzero"`
}

type AnalyzeDocumentOutput struct {
	DocumentMetadata            *types.DocumentMetadata          `json:"DocumentMetadata,omitzero"`
	Blocks                      []types.Block                    `json:"Blocks,omitzero"`
	HumanLoopActivationOutput   *types.HumanLoopActivationOutput `json:"HumanLoopActivationOutput,omitzero"`
	AnalyzeDocumentModelVersion *string                          `json:"AnalyzeDocumentModelVersion,omitzero"`
}
