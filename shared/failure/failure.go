package failure

import (
	"errors"
	"fmt"
)

// Kind classifies a Failure so callers can branch on the outcome of an operation.
type Kind string

const (
	KindBadRequest         Kind = "bad_request"
	KindDuplicateKey       Kind = "duplicate_key"
	KindNotFound           Kind = "not_found"
	KindExhausted          Kind = "exhausted"
	KindInvalidCustomer    Kind = "invalid_customer"
	KindInvalidHotel       Kind = "invalid_hotel"
	KindStorageUnavailable Kind = "storage_unavailable"
	KindInternal           Kind = "internal"
)

// Failure is a wrapper for error messages and their kind.
type Failure struct {
	Code    Kind   `json:"code"`
	Message string `json:"message"`
}

var EmptyUpdateError = &Failure{Code: KindBadRequest, Message: "update request cannot be empty"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequestFromString returns a new Failure for invalid input with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    KindBadRequest,
		Message: msg,
	}
}

// DuplicateKey returns a new Failure for a create whose id already exists.
func DuplicateKey(entityName, id string) error {
	return &Failure{
		Code:    KindDuplicateKey,
		Message: fmt.Sprintf("%s %s already exists", entityName, id),
	}
}

// NotFound returns a new Failure for an entity that does not exist.
func NotFound(entityName, id string) error {
	return &Failure{
		Code:    KindNotFound,
		Message: fmt.Sprintf("%s %s not found", entityName, id),
	}
}

// Exhausted returns a new Failure for a hotel without available rooms.
func Exhausted(hotelID string) error {
	return &Failure{
		Code:    KindExhausted,
		Message: fmt.Sprintf("no rooms available in hotel %s", hotelID),
	}
}

func InvalidCustomer(customerID string) error {
	return &Failure{
		Code:    KindInvalidCustomer,
		Message: fmt.Sprintf("customer %s is not valid for a reservation", customerID),
	}
}

func InvalidHotel(hotelID string, cause error) error {
	msg := fmt.Sprintf("hotel %s is not valid for a reservation", hotelID)
	if cause != nil {
		msg = fmt.Sprintf("%s: %s", msg, cause.Error())
	}

	return &Failure{
		Code:    KindInvalidHotel,
		Message: msg,
	}
}

// StorageUnavailable returns a new Failure for a collection that could not be read or written.
func StorageUnavailable(collection string, err error) error {
	if err == nil {
		return nil
	}

	return &Failure{
		Code:    KindStorageUnavailable,
		Message: fmt.Sprintf("collection %s unavailable: %s", collection, err.Error()),
	}
}

// InternalError returns a new Failure with message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    KindInternal,
			Message: err.Error(),
		}
	}

	return nil
}

// GetCode returns the kind of an error interface.
func GetCode(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return KindInternal
}

// Is reports whether err carries a Failure of the given kind.
func Is(err error, kind Kind) bool {
	if err == nil {
		return false
	}

	return GetCode(err) == kind
}
