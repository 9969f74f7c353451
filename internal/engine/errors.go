package engine

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"docanalysis/internal/analyzer"
	"docanalysis/internal/objectstore"
	"docanalysis/internal/repo"
	"docanalysis/sdk/go/types"
)

const (
	errBadDocument           = types.ErrCodeBadDocument
	errConflict              = types.ErrCodeConflict
	errDocumentTooLarge      = types.ErrCodeDocumentTooLarge
	errHumanLoopQuota        = types.ErrCodeHumanLoopQuotaExceeded
	errIdempotentMismatch    = types.ErrCodeIdempotentParameterMismatch
	errInternal              = types.ErrCodeInternalServer
	errInvalidJobID          = types.ErrCodeInvalidJobId
	errInvalidKMSKey         = types.ErrCodeInvalidKMSKey
	errInvalidParameter      = types.ErrCodeInvalidParameter
	errInvalidS3Object       = types.ErrCodeInvalidS3Object
	errLimitExceeded         = types.ErrCodeLimitExceeded
	errProvisionedThroughput = types.ErrCodeProvisionedThroughputExceeded
	errResourceNotFound      = types.ErrCodeResourceNotFound
	errServiceQuota          = types.ErrCodeServiceQuotaExceeded
	errThrottling            = types.ErrCodeThrottling
	errUnsupportedDocument   = types.ErrCodeUnsupportedDocument
	errValidation            = types.ErrCodeValidation
)

// apiError builds the typed service error for a wire code.
func apiError(code, format string, args ...any) error {
	return types.NewAPIError(code, fmt.Sprintf(format, args...))
}

// IsServiceError reports whether err is a typed service error that can be
// returned to callers as is.
func IsServiceError(err error) bool {
	var apiErr types.APIError
	return errors.As(err, &apiErr)
}

// storageError maps failures of the sqlite layer. A locked database means
// the request can be retried.
func storageError(err error) error {
	if err == nil || IsServiceError(err) {
		return err
	}
	msg := err.Error()
	if strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked") {
		return apiError(errThrottling, "the service is busy, retry the request")
	}
	return err
}

// objectError maps an object store failure on a request location.
func objectError(err error, bucket, name string) error {
	switch {
	case errors.Is(err, objectstore.ErrNotFound),
		errors.Is(err, objectstore.ErrNoSuchBucket),
		errors.Is(err, objectstore.ErrInvalidObject):
		return apiError(errInvalidS3Object, "unable to get object %s/%s: %v", bucket, name, err)
	}
	return fmt.Errorf("object store: %w", err)
}

// documentError maps a failure to read document content.
func documentError(err error) error {
	switch {
	case errors.Is(err, analyzer.ErrUnsupportedDocument):
		return apiError(errUnsupportedDocument, "document format is not supported")
	case errors.Is(err, analyzer.ErrBadDocument):
		return apiError(errBadDocument, "unable to read document: %v", err)
	}
	return err
}

func tooLarge(size, limit int64) error {
	return apiError(errDocumentTooLarge, "document size %d exceeds the limit of %d bytes", size, limit)
}

func notFound(kind, id string, err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return apiError(errResourceNotFound, "%s %s not found", kind, id)
	}
	return storageError(err)
}

func conflict(err error, format string, args ...any) error {
	if errors.Is(err, repo.ErrConflict) {
		return apiError(errConflict, format, args...)
	}
	return storageError(err)
}

var kmsKeyPattern = regexp.MustCompile(`^(` +
	`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}` +
	`|alias/[A-Za-z0-9/_-]+` +
	`|arn:[a-z0-9-]+:kms:[a-z0-9-]+:[0-9]{12}:(key/[0-9a-fA-F-]{36}|alias/[A-Za-z0-9/_-]+)` +
	`)$`)

// checkKMSKey accepts a key id, an alias or their ARNs.
func checkKMSKey(key *string) error {
	if key == nil || kmsKeyPattern.MatchString(*key) {
		return nil
	}
	return apiError(errInvalidKMSKey, "KMS key %q is not a key id, alias or key ARN", *key)
}
