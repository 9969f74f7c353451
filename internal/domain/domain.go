package domain

import "time"

// TimeFormat is the fixed-width UTC layout stored in sqlite so that
// timestamps sort lexically.
const TimeFormat = "2006-01-02T15:04:05.000000Z"

// Stamp formats t for storage.
func Stamp(t time.Time) string { return t.UTC().Format(TimeFormat) }

// ParseStamp parses a stored timestamp.
func ParseStamp(s string) (time.Time, error) { return time.Parse(TimeFormat, s) }

const (
	JobKindDocumentAnalysis = "DOCUMENT_ANALYSIS"
	JobKindTextDetection    = "TEXT_DETECTION"
	JobKindExpenseAnalysis  = "EXPENSE_ANALYSIS"
	JobKindLendingAnalysis  = "LENDING_ANALYSIS"
)

type Job struct {
	ID                 string `json:"id"`
	Kind               string `json:"kind" enum:"DOCUMENT_ANALYSIS,TEXT_DETECTION,EXPENSE_ANALYSIS,LENDING_ANALYSIS"`
	Status             string `json:"status" enum:"IN_PROGRESS,SUCCEEDED,FAILED,PARTIAL_SUCCESS"`
	StatusMessage      string `json:"status_message,omitempty"`
	ClientRequestToken string `json:"client_request_token,omitempty"`
	RequestHash        string `json:"request_hash"`
	RequestJSON        string `json:"request_json"`
	JobTag             string `json:"job_tag,omitempty"`
	SNSTopicArn        string `json:"sns_topic_arn,omitempty"`
	OutputBucket       string `json:"output_bucket,omitempty"`
	OutputPrefix       string `json:"output_prefix,omitempty"`
	KMSKeyID           string `json:"kms_key_id,omitempty"`
	ModelVersion       string `json:"model_version"`
	Pages              int    `json:"pages"`
	WarningsJSON       string `json:"warnings_json,omitempty"`
	SummaryJSON        string `json:"summary_json,omitempty"`
	ActorID            string `json:"actor_id"`
	CreatedAt          string `json:"created_at" format:"date-time"`
	CompletedAt        string `json:"completed_at,omitempty" format:"date-time"`
}

type Adapter struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description,omitempty"`
	AutoUpdate         string   `json:"auto_update"`
	FeatureTypes       []string `json:"feature_types"`
	ClientRequestToken string   `json:"client_request_token,omitempty"`
	CreatedAt          string   `json:"created_at" format:"date-time"`
}

type AdapterVersion struct {
	AdapterID          string   `json:"adapter_id"`
	Version            string   `json:"version"`
	Status             string   `json:"status"`
	StatusMessage      string   `json:"status_message,omitempty"`
	FeatureTypes       []string `json:"feature_types"`
	DatasetJSON        string   `json:"dataset_json"`
	OutputBucket       string   `json:"output_bucket"`
	OutputPrefix       string   `json:"output_prefix,omitempty"`
	KMSKeyID           string   `json:"kms_key_id,omitempty"`
	MetricsJSON        string   `json:"metrics_json,omitempty"`
	ClientRequestToken string   `json:"client_request_token,omitempty"`
	CreatedAt          string   `json:"created_at" format:"date-time"`
}

type HumanLoop struct {
	ARN               string   `json:"arn"`
	Name              string   `json:"name"`
	FlowDefinitionARN string   `json:"flow_definition_arn"`
	Status            string   `json:"status"`
	Reasons           []string `json:"reasons"`
	CreatedAt         string   `json:"created_at" format:"date-time"`
}

type Event struct {
	ID         int64  `json:"id"`
	TS         string `json:"ts" format:"date-time"`
	Type       string `json:"type"`
	EntityKind string `json:"entity_kind"`
	EntityID   string `json:"entity_id,omitempty"`
	ActorID    string `json:"actor_id"`
	Payload    string `json:"payload_json"`
}

type APIKey struct {
	ID        string   `json:"id"`
	ActorID   string   `json:"actor_id"`
	Name      string   `json:"name,omitempty"`
	KeyHash   string   `json:"key_hash"`
	Roles     []string `json:"roles,omitempty"`
	CreatedAt string   `json:"created_at" format:"date-time"`
}
