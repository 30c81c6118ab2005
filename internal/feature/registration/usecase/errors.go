// Package usecase implements the business logic for the registration feature.
package usecase

import "errors"

var (
	// ErrPendingNotFound is returned when a one-time id does not resolve
	// to a pending registration. This covers ids that never existed, were
	// already consumed, or were removed by the sweeper.
	ErrPendingNotFound = errors.New("pending registration not found")

	// ErrUserNotFound is returned when no confirmed user matches a lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser is returned when promotion hits a uniqueness
	// constraint, i.e. the name or email was taken between the original
	// request and its confirmation.
	ErrDuplicateUser = errors.New("user name or email already exists")
)

// Symbolic validation codes returned by Request. The exact strings are part
// of the API contract with existing clients.
const (
	// CodeNameDuplicated indicates the requested name is already taken.
	CodeNameDuplicated = "userId_duplicated"

	// CodeEmailDuplicated indicates the requested email is already registered.
	CodeEmailDuplicated = "email_duplicated"

	// CodeCaptchaFailed indicates the captcha token did not verify.
	CodeCaptchaFailed = "reCAPTCHA failed"

	// CodeMailFailed indicates the confirmation mail could not be sent.
	CodeMailFailed = "confirmation mail failed"
)
