package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInternalServer     = errors.New("internal server error")
	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// UserErrors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrCannotDeleteAdmin = errors.New("cannot delete an administrator account")
	ErrNotImplemented    = errors.New("operation not implemented")
)

// DocumentErrors
var (
	ErrDocumentNotFound   = errors.New("document not found")
	ErrClientNotFound     = errors.New("client not found")
	ErrInvalidStatus      = errors.New("invalid document status")
	ErrStatusNotAvailable = errors.New("status not available for document type")
	ErrInvalidDocType     = errors.New("invalid document type")
)
