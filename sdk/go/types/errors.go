package types

import (
	"errors"
	"fmt"
)

// ErrorFault tells whether an error was caused by the request or by the
// service.
type ErrorFault int

const (
	FaultUnknown ErrorFault = iota
	FaultClient
	FaultServer
)

func (f ErrorFault) String() string {
	switch f {
	case FaultClient:
		return "client"
	case FaultServer:
		return "server"
	default:
		return "unknown"
	}
}

// APIError is implemented by every error the service returns.
type APIError interface {
	error
	ErrorCode() string
	ErrorMessage() string
	ErrorFault() ErrorFault
}

// Wire error codes.
const (
	ErrCodeAccessDenied                  = "AccessDeniedException"
	ErrCodeBadDocument                   = "BadDocumentException"
	ErrCodeConflict                      = "ConflictException"
	ErrCodeDocumentTooLarge              = "DocumentTooLargeException"
	ErrCodeHumanLoopQuotaExceeded        = "HumanLoopQuotaExceededException"
	ErrCodeIdempotentParameterMismatch   = "IdempotentParameterMismatchException"
	ErrCodeInternalServer                = "InternalServerError"
	ErrCodeInvalidJobId                  = "InvalidJobIdException"
	ErrCodeInvalidKMSKey                 = "InvalidKMSKeyException"
	ErrCodeInvalidParameter              = "InvalidParameterException"
	ErrCodeInvalidS3Object               = "InvalidS3ObjectException"
	ErrCodeLimitExceeded                 = "LimitExceededException"
	ErrCodeProvisionedThroughputExceeded = "ProvisionedThroughputExceededException"
	ErrCodeResourceNotFound              = "ResourceNotFoundException"
	ErrCodeServiceQuotaExceeded          = "ServiceQuotaExceededException"
	ErrCodeThrottling                    = "ThrottlingException"
	ErrCodeUnsupportedDocument           = "UnsupportedDocumentException"
	ErrCodeValidation                    = "ValidationException"
)

// AccessDeniedException means the caller is not allowed to perform the operation.
type AccessDeniedException struct {
	Message *string
}

func (e *AccessDeniedException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *AccessDeniedException) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *AccessDeniedException) ErrorCode() string      { return ErrCodeAccessDenied }
func (e *AccessDeniedException) ErrorFault() ErrorFault { return FaultClient }

// BadDocumentException means the document could not be read, for example a corrupt PDF.
type BadDocumentException struct {
	Message *string
}

func (e *BadDocumentException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *BadDocumentException) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *BadDocumentException) ErrorCode() string      { return ErrCodeBadDocument }
func (e *BadDocumentException) ErrorFault() ErrorFault { return FaultClient }

// ConflictException means the request conflicts with the current state of a resource.
type ConflictException struct {
	Message *string
}

func (e *ConflictException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *ConflictException) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *ConflictException) ErrorCode() string      { return ErrCodeConflict }
func (e *ConflictException) ErrorFault() ErrorFault { return FaultClient }

// DocumentTooLargeException means the document exceeds the size limit of the operation.
type DocumentTooLargeException struct {
	Message *string
}

func (e *DocumentTooLargeException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *DocumentTooLargeException) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *DocumentTooLargeException) ErrorCode() string      { return ErrCodeDocumentTooLarge }
func (e *DocumentTooLargeException) ErrorFault() ErrorFault { return FaultClient }

// HumanLoopQuotaExceededException means too many human review loops are active.
type HumanLoopQuotaExceededException struct {
	Message *string
}

func (e *HumanLoopQuotaExceededException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *HumanLoopQuotaExceededException) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *HumanLoopQuotaExceededException) ErrorCode() string      { return ErrCodeHumanLoopQuotaExceeded }
func (e *HumanLoopQuotaExceededException) ErrorFault() ErrorFault { return FaultClient }

// IdempotentParameterMismatchException means a ClientRequestToken was reused with different parameters.
type IdempotentParameterMismatchException struct {
	Message *string
}

func (e *IdempotentParameterMismatchException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *IdempotentParameterMismatchException) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *IdempotentParameterMismatchException) ErrorCode() string      { return ErrCodeIdempotentParameterMismatch }
func (e *IdempotentParameterMismatchException) ErrorFault() ErrorFault { return FaultClient }

// InternalServerError means the service failed to handle the request.
type InternalServerError struct {
	Message *string
}

func (e *InternalServerError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *InternalServerError) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *InternalServerError) ErrorCode() string      { return ErrCodeInternalServer }
func (e *InternalServerError) ErrorFault() ErrorFault { return FaultServer }

// InvalidJobIdException means no job exists with the given JobId.
type InvalidJobIdException struct {
	Message *string
}

func (e *InvalidJobIdException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *InvalidJobIdException) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *InvalidJobIdException) ErrorCode() string      { return ErrCodeInvalidJobId }
func (e *InvalidJobIdException) ErrorFault() ErrorFault { return FaultClient }

// InvalidKMSKeyException means the KMS key id is malformed or unusable.
type InvalidKMSKeyException struct {
	Message *string
}

func (e *InvalidKMSKeyException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *InvalidKMSKeyException) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *InvalidKMSKeyException) ErrorCode() string      { return ErrCodeInvalidKMSKey }
func (e *InvalidKMSKeyException) ErrorFault() ErrorFault { return FaultClient }

// InvalidParameterException means a request parameter violates a constraint.
type InvalidParameterException struct {
	Message *string
}

func (e *InvalidParameterException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *InvalidParameterException) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *InvalidParameterException) ErrorCode() string      { return ErrCodeInvalidParameter }
func (e *InvalidParameterException) ErrorFault() ErrorFault { return FaultClient }

// InvalidS3ObjectException means the referenced object does not exist or cannot be read.
type InvalidS3ObjectException struct {
	Message *string
}

func (e *InvalidS3ObjectException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *InvalidS3ObjectException) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *InvalidS3ObjectException) ErrorCode() string      { return ErrCodeInvalidS3Object }
func (e *InvalidS3ObjectException) ErrorFault() ErrorFault { return FaultClient }

// LimitExceededException means too many asynchronous jobs are in progress.
type LimitExceededException struct {
	Message *string
}

func (e *LimitExceededException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *LimitExceededException) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *LimitExceededException) ErrorCode() string      { return ErrCodeLimitExceeded }
func (e *LimitExceededException) ErrorFault() ErrorFault { return FaultClient }

// ProvisionedThroughputExceededException means the request rate exceeds the provisioned throughput.
type ProvisionedThroughputExceededException struct {
	Message *string
}

func (e *ProvisionedThroughputExceededException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *ProvisionedThroughputExceededException) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *ProvisionedThroughputExceededException) ErrorCode() string      { return ErrCodeProvisionedThroughputExceeded }
func (e *ProvisionedThroughputExceededException) ErrorFault() ErrorFault { return FaultClient }

// ResourceNotFoundException means the adapter, adapter version or resource does not exist.
type ResourceNotFoundException struct {
	Message *string
}

func (e *ResourceNotFoundException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *ResourceNotFoundException) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *ResourceNotFoundException) ErrorCode() string      { return ErrCodeResourceNotFound }
func (e *ResourceNotFoundException) ErrorFault() ErrorFault { return FaultClient }

// ServiceQuotaExceededException means creating the resource would exceed a service quota.
type ServiceQuotaExceededException struct {
	Message *string
}

func (e *ServiceQuotaExceededException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *ServiceQuotaExceededException) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *ServiceQuotaExceededException) ErrorCode() string      { return ErrCodeServiceQuotaExceeded }
func (e *ServiceQuotaExceededException) ErrorFault() ErrorFault { return FaultClient }

// ThrottlingException means the service is temporarily unable to handle the request.
type ThrottlingException struct {
	Message *string
}

func (e *ThrottlingException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *ThrottlingException) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *ThrottlingException) ErrorCode() string      { return ErrCodeThrottling }
func (e *ThrottlingException) ErrorFault() ErrorFault { return FaultServer }

// UnsupportedDocumentException means the document format or page count is not supported by the operation.
type UnsupportedDocumentException struct {
	Message *string
}

func (e *UnsupportedDocumentException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *UnsupportedDocumentException) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *UnsupportedDocumentException) ErrorCode() string      { return ErrCodeUnsupportedDocument }
func (e *UnsupportedDocumentException) ErrorFault() ErrorFault { return FaultClient }

// ValidationException means the request failed validation of its structure.
type ValidationException struct {
	Message *string
}

func (e *ValidationException) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode(), e.ErrorMessage())
}

func (e *ValidationException) ErrorMessage() string {
	if e.Message == nil {
		return e.ErrorCode()
	}
	return *e.Message
}

func (e *ValidationException) ErrorCode() string      { return ErrCodeValidation }
func (e *ValidationException) ErrorFault() ErrorFault { return FaultClient }

// GenericAPIError carries a wire error code this package has no type for.
type GenericAPIError struct {
	Code    string
	Message string
	Fault   ErrorFault
}

func (e *GenericAPIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *GenericAPIError) ErrorCode() string      { return e.Code }
func (e *GenericAPIError) ErrorMessage() string   { return e.Message }
func (e *GenericAPIError) ErrorFault() ErrorFault { return e.Fault }

var errorConstructors = map[string]func(*string) APIError{
	ErrCodeAccessDenied:                  func(m *string) APIError { return &AccessDeniedException{Message: m} },
	ErrCodeBadDocument:                   func(m *string) APIError { return &BadDocumentException{Message: m} },
	ErrCodeConflict:                      func(m *string) APIError { return &ConflictException{Message: m} },
	ErrCodeDocumentTooLarge:              func(m *string) APIError { return &DocumentTooLargeException{Message: m} },
	ErrCodeHumanLoopQuotaExceeded:        func(m *string) APIError { return &HumanLoopQuotaExceededException{Message: m} },
	ErrCodeIdempotentParameterMismatch:   func(m *string) APIError { return &IdempotentParameterMismatchException{Message: m} },
	ErrCodeInternalServer:                func(m *string) APIError { return &InternalServerError{Message: m} },
	ErrCodeInvalidJobId:                  func(m *string) APIError { return &InvalidJobIdException{Message: m} },
	ErrCodeInvalidKMSKey:                 func(m *string) APIError { return &InvalidKMSKeyException{Message: m} },
	ErrCodeInvalidParameter:              func(m *string) APIError { return &InvalidParameterException{Message: m} },
	ErrCodeInvalidS3Object:               func(m *string) APIError { return &InvalidS3ObjectException{Message: m} },
	ErrCodeLimitExceeded:                 func(m *string) APIError { return &LimitExceededException{Message: m} },
	ErrCodeProvisionedThroughputExceeded: func(m *string) APIError { return &ProvisionedThroughputExceededException{Message: m} },
	ErrCodeResourceNotFound:              func(m *string) APIError { return &ResourceNotFoundException{Message: m} },
	ErrCodeServiceQuotaExceeded:          func(m *string) APIError { return &ServiceQuotaExceededException{Message: m} },
	ErrCodeThrottling:                    func(m *string) APIError { return &ThrottlingException{Message: m} },
	ErrCodeUnsupportedDocument:           func(m *string) APIError { return &UnsupportedDocumentException{Message: m} },
	ErrCodeValidation:                    func(m *string) APIError { return &ValidationException{Message: m} },
}

// NewAPIError returns the typed error for a wire code. Unknown codes yield a
// *GenericAPIError so that new service errors still surface their code.
func NewAPIError(code, message string) APIError {
	if ctor, ok := errorConstructors[code]; ok {
		return ctor(&message)
	}
	return &GenericAPIError{Code: code, Message: message, Fault: FaultUnknown}
}

// ErrorCodeOf returns the wire code of err, or "" if err is not an APIError.
func ErrorCodeOf(err error) string {
	var apiErr APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}
