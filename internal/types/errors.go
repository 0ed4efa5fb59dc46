package types

import "strings"

// InvalidURIError reports a URI whose scheme/host/path shape does not match
// the pattern expected by a backend. The raw input is embedded verbatim.
type InvalidURIError struct {
	URI      string // the offending input, unmodified
	Expected string // human-readable pattern, e.g. "s3://<bucket>/<key> URL"
}

// Error returns the string representation of the InvalidURIError.
func (e *InvalidURIError) Error() string {
	var sb strings.Builder
	sb.WriteString("expected ")
	sb.WriteString(e.Expected)
	sb.WriteString(", got: ")
	sb.WriteString(e.URI)

	return sb.String()
}

// InvalidConfigError reports a configuration value of the wrong shape, or one
// containing unrecognized or malformed keys.
type InvalidConfigError struct {
	Message string
	Key     string // offending key, when the failure is key-specific
	Err     error
}

// Error returns the string representation of the InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid config")

	if e.Key != "" {
		sb.WriteString(" (key '")
		sb.WriteString(e.Key)
		sb.WriteString("')")
	}

	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}

	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}

	return sb.String()
}

// Unwrap returns the underlying error.
func (e *InvalidConfigError) Unwrap() error {
	return e.Err
}

// MissingFieldError reports a required credential or region field that is
// empty after normalization. EnvVar names the environment variable that
// would have supplied the field.
type MissingFieldError struct {
	Field  string // e.g. "access_key_id"
	EnvVar string // e.g. "AWS_ACCESS_KEY_ID"
}

// Error returns the string representation of the MissingFieldError.
func (e *MissingFieldError) Error() string {
	var sb strings.Builder
	sb.WriteString("missing required field '")
	sb.WriteString(e.Field)
	sb.WriteString("'")

	if e.EnvVar != "" {
		sb.WriteString(" (set ")
		sb.WriteString(e.EnvVar)
		sb.WriteString(" or pass it explicitly)")
	}

	return sb.String()
}

// MissingEndpointError reports a resolved configuration with neither a
// bucket nor an endpoint, leaving no usable network target.
type MissingEndpointError struct{}

// Error returns the string representation of the MissingEndpointError.
func (e *MissingEndpointError) Error() string {
	return "endpoint is required when bucket is nil"
}

// UnresolvableBucketError reports a bucket-root URL that matches no known
// AWS host pattern and is not being treated as a custom endpoint.
type UnresolvableBucketError struct {
	URL string // the offending input, unmodified
}

// Error returns the string representation of the UnresolvableBucketError.
func (e *UnresolvableBucketError) Error() string {
	var sb strings.Builder
	sb.WriteString("cannot extract bucket name from URL: ")
	sb.WriteString(e.URL)

	return sb.String()
}
