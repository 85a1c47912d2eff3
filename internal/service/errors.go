package service

import "errors"

// Sentinel errors returned by the services. Messages are caller-facing; the
// HTTP layer maps them onto status codes with errors.Is and never invents its
// own detail for unexpected failures.
var (
	ErrFieldsRequired      = errors.New("business_type and business_name are required")
	ErrUnknownBusinessType = errors.New("business_type must be one of the supported values")
	ErrClientExists        = errors.New("Client already exists for this user")
	ErrInvalidStatus       = errors.New("Valid status is required (pending or completed)")
	ErrClientNotFound      = errors.New("Client not found")
	ErrTaskNotFound        = errors.New("Task not found")
)

// IsValidation reports whether err is input the caller can correct.
func IsValidation(err error) bool {
	return errors.Is(err, ErrFieldsRequired) ||
		errors.Is(err, ErrUnknownBusinessType) ||
		errors.Is(err, ErrInvalidStatus)
}

// IsNotFound reports whether err hides a resource from the caller, either
// because it does not exist or because the caller does not own it.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrClientNotFound) || errors.Is(err, ErrTaskNotFound)
}
