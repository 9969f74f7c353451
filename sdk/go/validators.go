package docanalysis

import (
	"fmt"

	"docanalysis/sdk/go/types"
)

// validator is implemented by every operation input.
type validator interface {
	Validate() error
}

func validatePage(inv *types.InvalidParamsError, maxResults *int32, nextToken *string) {
	inv.Min("MaxResults", maxResults, 1)
	inv.Length("NextToken", nextToken, 1, 255)
}

func validateJobID(inv *types.InvalidParamsError, jobID *string) {
	inv.Required("JobId", jobID != nil)
	inv.Identifier("JobId", jobID, 1, 64)
}

func validateFeatureTypes(inv *types.InvalidParamsError, features []types.FeatureType) {
	inv.Required("FeatureTypes", features != nil)
	inv.Items("FeatureTypes", len(features), features != nil, 1, len(types.FeatureType("").Values()))
	seen := map[types.FeatureType]bool{}
	for _, f := range features {
		if seen[f] {
			inv.Add("FeatureTypes", types.ParamConflict, fmt.Sprintf("duplicate feature %s", f))
		}
		seen[f] = true
	}
}

type asyncCommon struct {
	DocumentLocation    *types.DocumentLocation
	ClientRequestToken  *string
	JobTag              *string
	NotificationChannel *types.NotificationChannel
	OutputConfig        *types.OutputConfig
	KMSKeyId            *string
}

func (a asyncCommon) validate(inv *types.InvalidParamsError) {
	inv.Required("DocumentLocation", a.DocumentLocation != nil)
	if a.DocumentLocation != nil {
		inv.AddNested("DocumentLocation", a.DocumentLocation.Validate())
	}
	inv.Identifier("ClientRequestToken", a.ClientRequestToken, 1, 64)
	inv.Length("JobTag", a.JobTag, 1, 64)
	inv.Length("KMSKeyId", a.KMSKeyId, 1, 2048)
	if a.NotificationChannel != nil {
		inv.AddNested("NotificationChannel", a.NotificationChannel.Validate())
	}
	if a.OutputConfig != nil {
		inv.AddNested("OutputConfig", a.OutputConfig.Validate())
	}
}

func (s *AnalyzeDocumentInput) Validate() error {
	inv := &types.InvalidParamsError{Context: "AnalyzeDocumentInput"}
	inv.Required("Document", s.Document != nil)
	if s.Document != nil {
		inv.AddNested("Document", s.Document.Validate())
	}
	validateFeatureTypes(inv, s.FeatureTypes)
	if s.HumanLoopConfig != nil {
		inv.AddNested("HumanLoopConfig", s.HumanLoopConfig.Validate())
	}
	if s.QueriesConfig != nil {
		inv.AddNested("QueriesConfig", s.QueriesConfig.Validate())
	}
	if s.AdaptersConfig != nil {
		inv.AddNested("AdaptersConfig", s.AdaptersConfig.Validate())
	}
	return inv.Err()
}

func (s *AnalyzeExpenseInput) Validate() error {
	inv := &types.InvalidParamsError{Context: "AnalyzeExpenseInput"}
	inv.Required("Document", s.Document != nil)
	if s.Document != nil {
		inv.AddNested("Document", s.Document.Validate())
	}
	return inv.Err()
}

func (s *AnalyzeIDInput) Validate() error {
	inv := &types.InvalidParamsError{Context: "AnalyzeIDInput"}
	inv.Required("DocumentPages", s.DocumentPages != nil)
	inv.Items("DocumentPages", len(s.DocumentPages), s.DocumentPages != nil, 1, 2)
	for i := range s.DocumentPages {
		inv.AddNested(fmt.Sprintf("DocumentPages[%d]", i), s.DocumentPages[i].Validate())
	}
	return inv.Err()
}

func (s *DetectDocumentTextInput) Validate() error {
	inv := &types.InvalidParamsError{Context: "DetectDocumentTextInput"}
	inv.Required("Document", s.Document != nil)
	if s.Document != nil {
		inv.AddNested("Document", s.Document.Validate())
	}
	return inv.Err()
}

func (s *StartDocumentAnalysisInput) Validate() error {
	inv := &types.InvalidParamsError{Context: "StartDocumentAnalysisInput"}
	asyncCommon{s.DocumentLocation, s.ClientRequestToken, s.JobTag, s.NotificationChannel, s.OutputConfig, s.KMSKeyId}.validate(inv)
	validateFeatureTypes(inv, s.FeatureTypes)
	if s.QueriesConfig != nil {
		inv.AddNested("QueriesConfig", s.QueriesConfig.Validate())
	}
	if s.AdaptersConfig != nil {
		inv.AddNested("AdaptersConfig", s.AdaptersConfig.Validate())
	}
	return inv.Err()
}

func (s *StartDocumentTextDetectionInput) Validate() error {
	inv := &types.InvalidParamsError{Context: "StartDocumentTextDetectionInput"}
	asyncCommon{s.DocumentLocation, s.ClientRequestToken, s.JobTag, s.NotificationChannel, s.OutputConfig, s.KMSKeyId}.validate(inv)
	return inv.Err()
}

func (s *StartExpenseAnalysisInput) Validate() error {
	inv := &types.InvalidParamsError{Context: "StartExpenseAnalysisInput"}
	asyncCommon{s.DocumentLocation, s.ClientRequestToken, s.JobTag, s.NotificationChannel, s.OutputConfig, s.KMSKeyId}.validate(inv)
	return inv.Err()
}

func (s *StartLendingAnalysisInput) Validate() error {
	inv := &types.InvalidParamsError{Context: "StartLendingAnalysisInput"}
	asyncCommon{s.DocumentLocation, s.ClientRequestToken, s.JobTag, s.NotificationChannel, s.OutputConfig, s.KMSKeyId}.validate(inv)
	return inv.Err()
}

func (s *GetDocumentAnalysisInput) Validate() error {
	inv := &types.InvalidParamsError{Context: "GetDocumentAnalysisInput"}
	validateJobID(inv, s.JobId)
	validatePage(inv, s.MaxResults, s.NextToken)
	return inv.Err()
}

func (s *GetDocumentTextDetectionInput) Validate() error {
	inv := &types.InvalidParamsError{Context: "GetDocumentTextDetectionInput"}
	validateJobID(inv, s.JobId)
	validatePage(inv, s.MaxResults, s.NextToken)
	return inv.Err()
}

func (s *GetExpenseAnalysisInput) Validate() error {
	inv := &types.InvalidParamsError{Context: "GetExpenseAnalysisInput"}
	validateJobID(inv, s.JobId)
	validatePage(inv, s.MaxResults, s.NextToken)
	return inv.Err()
}

func (s *GetLendingAnalysisInput) Validate() error {
	inv := &types.InvalidParamsError{Context: "GetLendingAnalysisInput"}
	validateJobID(inv, s.JobId)
	validatePage(inv, s.MaxResults, s.NextToken)
	return inv.Err()
}

func (s *GetLendingAnalysisSummaryInput) Validate() error {
	inv := &types.InvalidParamsError{Context: "GetLendingAnalysisSummaryInput"}
	validateJobID(inv, s.JobId)
	return inv.Err()
}

func (s *CreateAdapterInput) Validate() error {
	inv := &types.InvalidParamsError{Context: "CreateAdapterInput"}
	inv.Required("AdapterName", s.AdapterName != nil)
	inv.Identifier("AdapterName", s.AdapterName, 1, 128)
	inv.Identifier("ClientRequestToken", s.ClientRequestToken, 1, 64)
	inv.Length("Description", s.Description, 1, 256)
	validateFeatureTypes(inv, s.FeatureTypes)
	inv.Tags("Tags", s.Tags)
	return inv.Err()
}

func (s *CreateAdapterVersionInput) Validate() error {
	inv := &types.InvalidParamsError{Context: "CreateAdapterVersionInput"}
	inv.Required("AdapterId", s.AdapterId != nil)
	inv.AdapterID("AdapterId", s.AdapterId)
	inv.Identifier("ClientRequestToken", s.ClientRequestToken, 1, 64)
	inv.Required("DatasetConfig", s.DatasetConfig != nil)
	if s.DatasetConfig != nil {
		inv.AddNested("DatasetConfig", s.DatasetConfig.Validate())
	}
	inv.Length("KMSKeyId", s.KMSKeyId, 1, 2048)
	inv.Required("OutputConfig", s.OutputConfig != nil)
	if s.OutputConfig != nil {
		inv.AddNested("OutputConfig", s.OutputConfig.Validate())
	}
	inv.Tags("Tags", s.Tags)
	return inv.Err()
}

func (s *DeleteAdapterInput) Validate() error {
	inv := &types.InvalidParamsError{Context: "DeleteAdapterInput"}
	inv.Required("AdapterId", s.AdapterId != nil)
	inv.AdapterID("AdapterId", s.AdapterId)
	return inv.Err()
}

func (s *DeleteAdapterVersionInput) Validate() error {
	inv := &types.InvalidParamsError{Context: "DeleteAdapterVersionInput"}
	inv.Required("AdapterId", s.AdapterId != nil)
	inv.AdapterID("AdapterId", s.AdapterId)
	inv.Required("AdapterVersion", s.AdapterVersion != nil)
	inv.AdapterVersion("AdapterVersion", s.AdapterVersion)
	return inv.Err()
}

func (s *GetAdapterInput) Validate() error {
	inv := &types.InvalidParamsError{Context: "GetAdapterInput"}
	inv.Required("AdapterId", s.AdapterId != nil)
	inv.AdapterID("AdapterId", s.AdapterId)
	return inv.Err()
}

func (s *GetAdapterVersionInput) Validate() error {
	inv := &types.InvalidParamsError{Context: "GetAdapterVersionInput"}
	inv.Required("AdapterId", s.AdapterId != nil)
	inv.AdapterID("AdapterId", s.AdapterId)
	inv.Required("AdapterVersion", s.AdapterVersion != nil)
	inv.AdapterVersion("AdapterVersion", s.AdapterVersion)
	return inv.Err()
}

func (s *ListAdaptersInput) Validate() error {
	inv := &types.InvalidParamsError{Context: "ListAdaptersInput"}
	validatePage(inv, s.MaxResults, s.NextToken)
	return inv.Err()
}

func (s *ListAdapterVersionsInput) Validate() error {
	inv := &types.InvalidParamsError{Context: "ListAdapterVersionsInput"}
	inv.AdapterID("AdapterId", s.AdapterId)
	validatePage(inv, s.MaxResults, s.NextToken)
	return inv.Err()
}

func (s *UpdateAdapterInput) Validate() error {
	inv := &types.InvalidParamsError{Context: "UpdateAdapterInput"}
	inv.Required("AdapterId", s.AdapterId != nil)
	inv.AdapterID("AdapterId", s.AdapterId)
	inv.Identifier("AdapterName", s.AdapterName, 1, 128)
	inv.Length("Description", s.Description, 1, 256)
	return inv.Err()
}

func (s *ListTagsForResourceInput) Validate() error {
	inv := &types.InvalidParamsError{Context: "ListTagsForResourceInput"}
	inv.Required("ResourceARN", s.ResourceARN != nil)
	inv.ARN("ResourceARN", s.ResourceARN, 1, 1011)
	return inv.Err()
}

func (s *TagResourceInput) Validate() error {
	inv := &types.InvalidParamsError{Context: "TagResourceInput"}
	inv.Required("ResourceARN", s.ResourceARN != nil)
	inv.ARN("ResourceARN", s.ResourceARN, 1, 1011)
	inv.Required("Tags", s.Tags != nil)
	inv.Tags("Tags", s.Tags)
	return inv.Err()
}

func (s *UntagResourceInput) Validate() error {
	inv := &types.InvalidParamsError{Context: "UntagResourceInput"}
	inv.Required("ResourceARN", s.ResourceARN != nil)
	inv.ARN("ResourceARN", s.ResourceARN, 1, 1011)
	inv.Required("TagKeys", s.TagKeys != nil)
	inv.Items("TagKeys", len(s.TagKeys), s.TagKeys != nil, 0, 200)
	for i := range s.TagKeys {
		inv.Length(fmt.Sprintf("TagKeys[%d]", i), &s.TagKeys[i], 1, 128)
	}
	return inv.Err()
}
