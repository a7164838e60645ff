package domain

import "errors"

// FailureKind clasifica un error de dominio para que los llamadores manejen todos los fallos igual.
type FailureKind string

const (
	KindNone                FailureKind = ""
	KindNotFound            FailureKind = "NOT_FOUND"
	KindDuplicateCode       FailureKind = "DUPLICATE_CODE"
	KindDuplicateEmail      FailureKind = "DUPLICATE_EMAIL"
	KindInvalidQuantity     FailureKind = "INVALID_QUANTITY"
	KindInsufficientStock   FailureKind = "INSUFFICIENT_STOCK"
	KindReferentialConflict FailureKind = "REFERENTIAL_CONFLICT"
	KindInvalidInput        FailureKind = "INVALID_INPUT"
	KindUnauthorized        FailureKind = "UNAUTHORIZED"
	KindForbidden           FailureKind = "FORBIDDEN"
	KindInternal            FailureKind = "INTERNAL"
)

// KindOf devuelve el tipo de fallo de err. Cualquier error ajeno al dominio es KindInternal.
func KindOf(err error) FailureKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrDuplicateCode):
		return KindDuplicateCode
	case errors.Is(err, ErrEmailAlreadyExists):
		return KindDuplicateEmail
	case errors.Is(err, ErrInvalidQuantity):
		return KindInvalidQuantity
	case errors.Is(err, ErrInsufficientStock):
		return KindInsufficientStock
	case errors.Is(err, ErrConflict):
		return KindReferentialConflict
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	default:
		return KindInternal
	}
}
