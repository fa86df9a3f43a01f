package template

import "errors"

// Sentinel errors for stub rendering.
var (
	// ErrTemplateNotFound indicates the named template does not exist.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates the template referenced a key the
	// context does not provide.
	ErrMissingTemplateKey = errors.New("template: missing key")

	// ErrUnexpandedToken indicates template syntax survived rendering.
	ErrUnexpandedToken = errors.New("template: unexpanded token")

	// ErrUnsupportedSuffix indicates no stub exists for the file suffix.
	ErrUnsupportedSuffix = errors.New("template: unsupported file suffix, use vue, jsx or tsx")
)
