package httperr

import "errors"

// Business error codes shared across usecases and handlers. Token and
// credential failures are deliberately coarse: the caller can never
// tell a bad password from an unknown email, or an expired token from
// a tampered one.
const (
	CodeInvalidCredentials  = "invalid_credentials"
	CodeDuplicateEmail      = "duplicate_email"
	CodeForbidden           = "forbidden"
	CodeNotFound            = "not_found"
	CodeSelfDeletionDenied  = "self_deletion_denied"
	CodeReferentialConflict = "referential_conflict"
	CodeInvalidToken        = "invalid_token"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code from a business error, or "" when err
// is not one.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
