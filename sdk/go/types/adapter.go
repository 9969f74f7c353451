package types

import "time"

// Adapter selects one version of a custom adapter for an analysis.
type Adapter struct {
	AdapterId *string  `json:"AdapterId,omitzero"`
	Pages     []string `json:"Pages,omitzero"`
	Version   *string  `json:"Version,omitzero"`
}

type AdaptersConfig struct {
	Adapters []Adapter `json:"Adapters,omitzero"`
}

// AdapterOverview is the list view of an adapter.
type AdapterOverview struct {
	AdapterId    *string       `json:"AdapterId,omitzero"`
	AdapterName  *string       `json:"AdapterName,omitzero"`
	CreationTime *time.Time    `json:"CreationTime,omitzero"`
	FeatureTypes []FeatureType `json:"FeatureTypes,omitzero"`
}

// AdapterVersionOverview is the list view of an adapter version.
type AdapterVersionOverview struct {
	AdapterId      *string              `json:"AdapterId,omitzero"`
	AdapterVersion *string              `json:"AdapterVersion,omitzero"`
	CreationTime   *time.Time           `json:"CreationTime,omitzero"`
	FeatureTypes   []FeatureType        `json:"FeatureTypes,omitzero"`
	Status         AdapterVersionStatus `json:"Status,omitzero"`
	StatusMessage  *string              `json:"StatusMessage,omitzero"`
}

// AdapterVersionDatasetConfig points at the manifest of the training dataset.
type AdapterVersionDatasetConfig struct {
	ManifestS3Object *S3Object `json:"ManifestS3Object,omitzero"`
}

// AdapterVersionEvaluationMetric compares an adapter version with the base
// model for one feature.
type AdapterVersionEvaluationMetric struct {
	Baseline       *EvaluationMetric `json:"Baseline,omitzero"`
	AdapterVersion *EvaluationMetric `json:"AdapterVersion,omitzero"`
	FeatureType    FeatureType       `json:"FeatureType,omitzero"`
}

type EvaluationMetric struct {
	F1Score   *float32 `json:"F1Score,omitzero"`
	Precision *float32 `json:"Precision,omitzero"`
	Recall    *float32 `json:"Recall,omitzero"`
}
