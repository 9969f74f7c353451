package types

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"go.uber.org/multierr"
)

// MaxDocumentBytes is the largest inline document a synchronous operation
// accepts.
const MaxDocumentBytes = 10485760

// Parameter error codes.
const (
	ParamRequired = "required"
	ParamLength   = "length"
	ParamPattern  = "pattern"
	ParamRange    = "range"
	ParamConflict = "conflict"
)

var (
	bucketPattern        = regexp.MustCompile(`^[0-9A-Za-z.\-_]*$`)
	queryPagePattern     = regexp.MustCompile(`^[0-9*\-]+$`)
	identifierPattern    = regexp.MustCompile(`^[a-zA-Z0-9-_]+$`)
	humanLoopNamePattern = regexp.MustCompile(`^[a-z0-9](-*[a-z0-9])*$`)
	arnPattern           = regexp.MustCompile(`^arn:[a-z0-9-]+:[a-z0-9-]*:[a-z0-9-]*:[0-9]*:.+$`)
)

// ParamError describes one invalid request field.
type ParamError struct {
	Field   string
	Code    string
	Message string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// InvalidParamsError collects every field error found while validating one
// input. It reports the InvalidParameterException code so that callers
// handle client-side and service-side rejections the same way.
type InvalidParamsError struct {
	Context string
	err     error
}

// Add records a failure of field.
func (e *InvalidParamsError) Add(field, code, message string) {
	e.err = multierr.Append(e.err, &ParamError{Field: field, Code: code, Message: message})
}

// AddNested merges the failures of a nested shape, prefixing their fields.
func (e *InvalidParamsError) AddNested(prefix string, err error) {
	if err == nil {
		return
	}
	var nested *InvalidParamsError
	if !errors.As(err, &nested) {
		e.Add(prefix, ParamPattern, err.Error())
		return
	}
	for _, pe := range nested.Errors() {
		e.err = multierr.Append(e.err, &ParamError{Field: prefix + "." + pe.Field, Code: pe.Code, Message: pe.Message})
	}
}

// Len returns the number of recorded failures.
func (e *InvalidParamsError) Len() int {
	return len(multierr.Errors(e.err))
}

// Errors returns the recorded failures in the order they were found.
func (e *InvalidParamsError) Errors() []*ParamError {
	var out []*ParamError
	for _, err := range multierr.Errors(e.err) {
		var pe *ParamError
		if errors.As(err, &pe) {
			out = append(out, pe)
		}
	}
	return out
}

// Err returns e when it holds failures and nil otherwise.
func (e *InvalidParamsError) Err() error {
	if e.Len() == 0 {
		return nil
	}
	return e
}

func (e *InvalidParamsError) Error() string {
	parts := make([]string, 0, e.Len())
	for _, pe := range e.Errors() {
		parts = append(parts, pe.Error())
	}
	return fmt.Sprintf("%d validation error(s) detected in %s: %s", len(parts), e.Context, strings.Join(parts, "; "))
}

func (e *InvalidParamsError) ErrorCode() string      { return ErrCodeInvalidParameter }
func (e *InvalidParamsError) ErrorMessage() string   { return e.Error() }
func (e *InvalidParamsError) ErrorFault() ErrorFault { return FaultClient }

// Required records field as missing when set is false.
func (e *InvalidParamsError) Required(field string, set bool) {
	if !set {
		e.Add(field, ParamRequired, "missing required field")
	}
}

// Length checks the rune length of an optional string.
func (e *InvalidParamsError) Length(field string, v *string, lo, hi int) {
	if v == nil {
		return
	}
	if n := utf8.RuneCountInString(*v); n < lo || n > hi {
		e.Add(field, ParamLength, fmt.Sprintf("length %d outside [%d, %d]", n, lo, hi))
	}
}

// Match checks an optional string against re.
func (e *InvalidParamsError) Match(field string, v *string, re *regexp.Regexp) {
	if v != nil && !re.MatchString(*v) {
		e.Add(field, ParamPattern, fmt.Sprintf("value does not match %s", re.String()))
	}
}

// Min checks that an optional integer is at least lo.
func (e *InvalidParamsError) Min(field string, v *int32, lo int32) {
	if v != nil && *v < lo {
		e.Add(field, ParamRange, fmt.Sprintf("value %d is less than %d", *v, lo))
	}
}

// Items checks the number of elements of a list that is present.
func (e *InvalidParamsError) Items(field string, n int, present bool, lo, hi int) {
	if present && (n < lo || n > hi) {
		e.Add(field, ParamLength, fmt.Sprintf("%d items outside [%d, %d]", n, lo, hi))
	}
}

// Tags checks a tag map against the service limits.
func (e *InvalidParamsError) Tags(field string, tags map[string]string) {
	if tags == nil {
		return
	}
	if len(tags) > 200 {
		e.Add(field, ParamLength, fmt.Sprintf("%d tags exceed the limit of 200", len(tags)))
	}
	for k, v := range tags {
		key := k
		e.Length(field+"["+k+"].key", &key, 1, 128)
		if utf8.RuneCountInString(v) > 256 {
			e.Add(field+"["+k+"]", ParamLength, "tag value longer than 256")
		}
	}
}

// ARN checks the shape of a resource ARN.
func (e *InvalidParamsError) ARN(field string, v *string, lo, hi int) {
	e.Length(field, v, lo, hi)
	e.Match(field, v, arnPattern)
}

// AdapterID checks the shape of an adapter id.
func (e *InvalidParamsError) AdapterID(field string, v *string) {
	e.Length(field, v, 12, 1011)
	e.Match(field, v, identifierPattern)
}

// Identifier checks an optional token made of letters, digits, '-' and '_',
// such as a JobId, ClientRequestToken or adapter name.
func (e *InvalidParamsError) Identifier(field string, v *string, lo, hi int) {
	e.Length(field, v, lo, hi)
	e.Match(field, v, identifierPattern)
}

// AdapterVersion checks the shape of an adapter version name.
func (e *InvalidParamsError) AdapterVersion(field string, v *string) {
	e.Length(field, v, 1, 128)
	e.Match(field, v, identifierPattern)
}

// Validate checks the exclusivity and size of the document. Exactly one of
// Bytes and S3Object must be set.
func (s *Document) Validate() error {
	inv := &InvalidParamsError{Context: "Document"}
	switch {
	case s.Bytes == nil && s.S3Object == nil:
		inv.Add("Bytes", ParamRequired, "one of Bytes or S3Object must be set")
	case s.Bytes != nil && s.S3Object != nil:
		inv.Add("Bytes", ParamConflict, "Bytes and S3Object are mutually exclusive")
	}
	if s.Bytes != nil && (len(s.Bytes) < 1 || len(s.Bytes) > MaxDocumentBytes) {
		inv.Add("Bytes", ParamLength, fmt.Sprintf("size %d outside [1, %d]", len(s.Bytes), MaxDocumentBytes))
	}
	if s.S3Object != nil {
		inv.AddNested("S3Object", s.S3Object.Validate())
	}
	return inv.Err()
}

// Validate checks the bucket and object name of s.
func (s *S3Object) Validate() error {
	inv := &InvalidParamsError{Context: "S3Object"}
	inv.Required("Bucket", s.Bucket != nil)
	inv.Required("Name", s.Name != nil)
	inv.Length("Bucket", s.Bucket, 3, 255)
	inv.Match("Bucket", s.Bucket, bucketPattern)
	inv.Length("Name", s.Name, 1, 1024)
	inv.Length("Version", s.Version, 1, 1024)
	return inv.Err()
}

func (s *DocumentLocation) Validate() error {
	inv := &InvalidParamsError{Context: "DocumentLocation"}
	inv.Required("S3Object", s.S3Object != nil)
	if s.S3Object != nil {
		inv.AddNested("S3Object", s.S3Object.Validate())
	}
	return inv.Err()
}

func (s *OutputConfig) Validate() error {
	inv := &InvalidParamsError{Context: "OutputConfig"}
	inv.Required("S3Bucket", s.S3Bucket != nil)
	inv.Length("S3Bucket", s.S3Bucket, 3, 255)
	inv.Match("S3Bucket", s.S3Bucket, bucketPattern)
	inv.Length("S3Prefix", s.S3Prefix, 1, 1024)
	return inv.Err()
}

func (s *NotificationChannel) Validate() error {
	inv := &InvalidParamsError{Context: "NotificationChannel"}
	inv.Required("SNSTopicArn", s.SNSTopicArn != nil)
	inv.Required("RoleArn", s.RoleArn != nil)
	inv.ARN("SNSTopicArn", s.SNSTopicArn, 20, 1024)
	inv.ARN("RoleArn", s.RoleArn, 20, 2048)
	return inv.Err()
}

func (s *Query) Validate() error {
	inv := &InvalidParamsError{Context: "Query"}
	inv.Required("Text", s.Text != nil)
	inv.Length("Text", s.Text, 1, 200)
	inv.Length("Alias", s.Alias, 1, 100)
	inv.Items("Pages", len(s.Pages), s.Pages != nil, 1, 100)
	for i := range s.Pages {
		inv.Match(fmt.Sprintf("Pages[%d]", i), &s.Pages[i], queryPagePattern)
	}
	return inv.Err()
}

func (s *QueriesConfig) Validate() error {
	inv := &InvalidParamsError{Context: "QueriesConfig"}
	inv.Required("Queries", s.Queries != nil)
	inv.Items("Queries", len(s.Queries), s.Queries != nil, 1, 100)
	for i := range s.Queries {
		inv.AddNested(fmt.Sprintf("Queries[%d]", i), s.Queries[i].Validate())
	}
	return inv.Err()
}

func (s *Adapter) Validate() error {
	inv := &InvalidParamsError{Context: "Adapter"}
	inv.Required("AdapterId", s.AdapterId != nil)
	inv.Required("Version", s.Version != nil)
	inv.AdapterID("AdapterId", s.AdapterId)
	inv.AdapterVersion("Version", s.Version)
	for i := range s.Pages {
		inv.Match(fmt.Sprintf("Pages[%d]", i), &s.Pages[i], queryPagePattern)
	}
	return inv.Err()
}

func (s *AdaptersConfig) Validate() error {
	inv := &InvalidParamsError{Context: "AdaptersConfig"}
	inv.Required("Adapters", s.Adapters != nil)
	inv.Items("Adapters", len(s.Adapters), s.Adapters != nil, 1, 100)
	for i := range s.Adapters {
		inv.AddNested(fmt.Sprintf("Adapters[%d]", i), s.Adapters[i].Validate())
	}
	return inv.Err()
}

func (s *HumanLoopConfig) Validate() error {
	inv := &InvalidParamsError{Context: "HumanLoopConfig"}
	inv.Required("HumanLoopName", s.HumanLoopName != nil)
	inv.Required("FlowDefinitionArn", s.FlowDefinitionArn != nil)
	inv.Length("HumanLoopName", s.HumanLoopName, 1, 63)
	inv.Match("HumanLoopName", s.HumanLoopName, humanLoopNamePattern)
	inv.Length("FlowDefinitionArn", s.FlowDefinitionArn, 1, 256)
	return inv.Err()
}

func (s *AdapterVersionDatasetConfig) Validate() error {
	inv := &InvalidParamsError{Context: "AdapterVersionDatasetConfig"}
	if s.ManifestS3Object != nil {
		inv.AddNested("ManifestS3Object", s.ManifestS3Object.Validate())
	}
	return inv.Err()
}
