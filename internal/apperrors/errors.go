package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an application error so callers can branch on it
// instead of parsing messages.
type Kind string

const (
	KindMemberNotFound      Kind = "member_not_found"
	KindItemNotFound        Kind = "item_not_found"
	KindLoanNotFound        Kind = "loan_not_found"
	KindItemUnavailable     Kind = "item_unavailable"
	KindLoanLimitExceeded   Kind = "loan_limit_exceeded"
	KindAlreadyReturned     Kind = "already_returned"
	KindReferentialConflict Kind = "referential_conflict"
	KindValidation          Kind = "validation"
	KindDuplicate           Kind = "duplicate"
	KindStorage             Kind = "storage"
)

// AppError is the single error type returned by services and repositories.
type AppError struct {
	Kind    Kind
	Message string

	// Field and Reason are set for validation errors.
	Field  string
	Reason string

	// Count is the number of dependent loans for referential conflicts.
	Count int

	Err error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches on Kind, so wrapped errors of the same kind compare equal to the
// package sentinels. ErrNotFound matches every not-found kind.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	if t == ErrNotFound {
		return e.Kind.IsNotFound()
	}
	return t.Kind == e.Kind
}

// IsNotFound reports whether the kind is one of the not-found kinds.
func (k Kind) IsNotFound() bool {
	return k == KindMemberNotFound || k == KindItemNotFound || k == KindLoanNotFound
}

// IsClientError reports whether errors of this kind are caused by the caller
// (bad input or a business rule) rather than by the system.
func (k Kind) IsClientError() bool {
	return k != KindStorage && k != ""
}

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = &AppError{Kind: "not_found", Message: "resource not found"}

var (
	ErrMemberNotFound      = &AppError{Kind: KindMemberNotFound, Message: "member not found"}
	ErrItemNotFound        = &AppError{Kind: KindItemNotFound, Message: "item not found"}
	ErrLoanNotFound        = &AppError{Kind: KindLoanNotFound, Message: "loan not found"}
	ErrItemUnavailable     = &AppError{Kind: KindItemUnavailable, Message: "item not available"}
	ErrLoanLimitExceeded   = &AppError{Kind: KindLoanLimitExceeded, Message: "active loan limit reached"}
	ErrAlreadyReturned     = &AppError{Kind: KindAlreadyReturned, Message: "loan already returned"}
	ErrReferentialConflict = &AppError{Kind: KindReferentialConflict, Message: "referential conflict"}
	ErrValidation          = &AppError{Kind: KindValidation, Message: "validation error"}
	ErrDuplicate           = &AppError{Kind: KindDuplicate, Message: "resource already exists"}
	ErrStorage             = &AppError{Kind: KindStorage, Message: "storage failure"}
)

// NewValidationError builds a validation error for a single field.
func NewValidationError(field, reason string) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Message: fmt.Sprintf("invalid %s: %s", field, reason),
		Field:   field,
		Reason:  reason,
	}
}

// NewReferentialConflict reports that an entity cannot be deleted because
// count loans still reference it.
func NewReferentialConflict(entity string, count int) *AppError {
	return &AppError{
		Kind:    KindReferentialConflict,
		Message: fmt.Sprintf("cannot delete %s: %d loan(s) reference it", entity, count),
		Count:   count,
	}
}

// NewStorageError wraps an underlying database failure.
func NewStorageError(msg string, err error) *AppError {
	return &AppError{Kind: KindStorage, Message: msg, Err: err}
}

// Wrap returns a copy of the sentinel carrying a more specific message.
func Wrap(sentinel *AppError, msg string) *AppError {
	return &AppError{Kind: sentinel.Kind, Message: msg}
}

// KindOf extracts the Kind of err. Errors that are not AppErrors are
// reported as storage failures.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStorage
}

// As returns the first AppError in err's chain, if any.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
