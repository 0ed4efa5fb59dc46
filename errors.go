package entrykit

import "github.com/entrykit/entrykit/internal/types"

// InvalidURIError reports a URI whose shape does not match the expected
// pattern for the backend.
type InvalidURIError = types.InvalidURIError

// InvalidConfigError reports a supplied configuration value of the wrong
// shape or containing unrecognized or malformed keys.
type InvalidConfigError = types.InvalidConfigError

// MissingFieldError reports a required credential or region field that is
// empty after normalization.
type MissingFieldError = types.MissingFieldError

// MissingEndpointError reports a configuration with neither bucket nor
// endpoint, leaving no usable network target.
type MissingEndpointError = types.MissingEndpointError

// UnresolvableBucketError reports a bucket-root URL that matches no known
// AWS host pattern and is not treated as a custom endpoint.
type UnresolvableBucketError = types.UnresolvableBucketError
