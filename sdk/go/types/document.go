package types

// Document is the input document: either base64 encoded bytes or an object
// in an S3-compatible store. Exactly one of Bytes and S3Object must be set.
// The service rejects requests that set both or neither.
type Document struct {
	// Raw document bytes, at most 10 MiB for synchronous operations.
	Bytes []byte `json:"Bytes,omitzero"`

	S3Object *S3Object `json:"S3Object,omitzero"`
}

// S3Object identifies a stored object. Version selects a specific object
// version when the bucket has versioning enabled.
type S3Object struct {
	Bucket  *string `json:"Bucket,omitzero"`
	Name    *string `json:"Name,omitzero"`
	Version *string `json:"Version,omitzero"`
}

// DocumentLocation points an asynchronous operation at a stored document.
type DocumentLocation struct {
	S3Object *S3Object `json:"S3Object,omitzero"`
}

// DocumentMetadata describes the analyzed input.
type DocumentMetadata struct {
	// Number of pages detected in the document.
	Pages *int32 `json:"Pages,omitzero"`
}

// OutputConfig makes an asynchronous job also write its result pages to
// S3Bucket under S3Prefix/JobId/.
type OutputConfig struct {
	S3Bucket *string `json:"S3Bucket,omitzero"`
	S3Prefix *string `json:"S3Prefix,omitzero"`
}

// NotificationChannel names the topic that receives the job completion
// status of an asynchronous operation.
type NotificationChannel struct {
	SNSTopicArn *string `json:"SNSTopicArn,omitzero"`
	RoleArn     *string `json:"RoleArn,omitzero"`
}

// Warning reports a non-fatal problem during an asynchronous job, with the
// pages it applies to.
type Warning struct {
	ErrorCode *string `json:"ErrorCode,omitzero"`
	Pages     []int32 `json:"Pages,omitzero"`
}
