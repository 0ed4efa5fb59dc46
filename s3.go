package entrykit

import (
	"net/url"
	"strings"
)

const s3ExpectedShape = "s3://<bucket>/<key> URL"

// S3Entry describes a single S3 object: the bucket-relative key plus the
// fully-resolved access configuration. Key is the URI path with the leading
// slash stripped; it may be empty (the bucket root).
type S3Entry struct {
	Key    string
	Config S3Config
}

func (*S3Entry) entry() {}

// URI renders the entry back into s3://<bucket>/<key> form.
func (e *S3Entry) URI() string {
	u := url.URL{
		Scheme: "s3",
		Host:   e.Config.Bucket,
		Path:   "/" + e.Key,
	}

	return u.String()
}

// ParseS3 resolves an s3://<bucket>/<key> URI into an S3Entry.
//
// The configuration is resolved in a single pass: validate the URI shape,
// normalize the configuration (environment defaults overridden by an
// explicit config or mapping, see WithConfig and WithConfigMap), validate
// required fields, then derive the endpoint.
//
// When no endpoint is configured the default is derived from the bucket
// name and region: virtual-host style for plain bucket names, path-style
// for dotted ones (see deriveEndpoint). The bucket name always remains
// populated on the returned configuration. An empty bucket with no
// configured endpoint fails with MissingEndpointError.
func ParseS3(uri string, opts ...Option) (*S3Entry, error) {
	bucket, key, err := splitS3URI(uri)
	if err != nil {
		return nil, err
	}

	o := applyOptions(opts)

	cfg, err := normalizeS3Config(o)
	if err != nil {
		return nil, err
	}

	// Required-field validation runs before the bucket from the URI is
	// merged in, so region is demanded even when an explicit endpoint
	// would make it redundant. See S3Config.Validate.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	resolved := *cfg
	resolved.Bucket = bucket

	if resolved.Endpoint == "" && bucket != "" {
		endpointOpts, err := resolveEndpointOptions(o.endpoint)
		if err != nil {
			return nil, err
		}

		resolved.Endpoint = deriveEndpoint(bucket, resolved.Region, endpointOpts)
	}

	if resolved.Endpoint == "" {
		return nil, &MissingEndpointError{}
	}

	return &S3Entry{Key: key, Config: resolved}, nil
}

// splitS3URI validates the s3://<bucket>/<key> shape and returns the bucket
// (the URI host, possibly empty) and key (the path without its leading
// slash, possibly empty).
func splitS3URI(uri string) (bucket, key string, err error) {
	u, parseErr := url.Parse(uri)
	if parseErr != nil {
		return "", "", &InvalidURIError{URI: uri, Expected: s3ExpectedShape}
	}

	if u.Scheme != "s3" || !strings.HasPrefix(u.Path, "/") {
		return "", "", &InvalidURIError{URI: uri, Expected: s3ExpectedShape}
	}

	return u.Host, strings.TrimPrefix(u.Path, "/"), nil
}
