package docanalysis

import (
	"context"

	"docanalysis/sdk/go/types"
)

// DetectDocumentText detects the lines and words of a single-page document.
func (c *Client) DetectDocumentText(ctx context.Context, params *DetectDocumentTextInput) (*DetectDocumentTextOutput, error) {
	if params == nil {
		params = &DetectDocumentTextInput{}
	}
	out := &DetectDocumentTextOutput{}
	if err := c.invoke(ctx, "DetectDocumentText", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

type DetectDocumentTextInput struct {
	Document *types.Document `json:"Document,omitzero"`
}

type DetectDocumentTextOutput struct {
	DocumentMetadata               *types.DocumentMetadata `json:"DocumentMetadata,omitzero"`
	Blocks                         []types.Block           `json:"Blocks,omitzero"`
	DetectDocumentTextModelVersion *string                 `json:"DetectDocumentTextModelVersion,omitzero"`
}
