package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyPlatform       = errors.New("platform is required")
	ErrEmptyAccountName    = errors.New("account name is required")
	ErrEmptySecretPhrase   = errors.New("secret phrase is required")
	ErrEmptyName           = errors.New("name is required")
	ErrInvalidDID          = errors.New("invalid DID")
	ErrEmptyCredentialType = errors.New("credential type is required")
	ErrEmptyTitle          = errors.New("title is required")
	ErrEmptyMessage        = errors.New("message is required")
)
