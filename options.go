package entrykit

// parseOptions collects per-call settings for the parse functions.
type parseOptions struct {
	s3Config      *S3Config
	s3ConfigMap   map[string]any
	httpConfig    *HTTPConfig
	httpConfigMap map[string]any
	envFiles      []string
	endpoint      *EndpointOptions
}

// Option configures a parse call.
type Option func(*parseOptions)

// WithConfig supplies an explicit S3 configuration. The value is used as-is;
// no environment merging takes place.
//
// Example:
//
//	entrykit.ParseS3(uri, entrykit.WithConfig(entrykit.S3Config{
//	    AccessKeyID:     "AKIA...",
//	    SecretAccessKey: "...",
//	    Region:          "us-west-2",
//	}))
func WithConfig(cfg S3Config) Option {
	return func(o *parseOptions) {
		c := cfg
		o.s3Config = &c
	}
}

// WithConfigMap supplies S3 configuration as a weakly-typed mapping, e.g.
// parsed from untyped external data. Environment defaults form the base and
// every key present in the mapping overrides the corresponding field.
// Recognized keys: access_key_id, secret_access_key, region, endpoint,
// token, bucket. Unrecognized keys fail with InvalidConfigError.
func WithConfigMap(m map[string]any) Option {
	return func(o *parseOptions) {
		o.s3ConfigMap = m
	}
}

// WithHTTPConfig supplies an explicit HTTP configuration, used unchanged.
func WithHTTPConfig(cfg HTTPConfig) Option {
	return func(o *parseOptions) {
		c := cfg
		o.httpConfig = &c
	}
}

// WithHTTPConfigMap supplies HTTP configuration as a weakly-typed mapping.
// The only recognized key is "headers", whose value must be a sequence of
// two-element (string, string) pairs. Unrecognized keys fail with
// InvalidConfigError.
func WithHTTPConfigMap(m map[string]any) Option {
	return func(o *parseOptions) {
		o.httpConfigMap = m
	}
}

// WithEnvFiles layers dotenv files beneath the process environment for this
// call. Files are read through DefaultFs; missing files are skipped, and
// within the file layer earlier files win. Process variables always take
// precedence over file values.
func WithEnvFiles(paths ...string) Option {
	return func(o *parseOptions) {
		o.envFiles = append(o.envFiles, paths...)
	}
}

// WithEndpointOptions overrides how default S3 endpoints are derived from
// the bucket name and region. Zero fields fall back to the standard AWS
// values (https scheme, "s3" service label, "amazonaws.com" suffix).
func WithEndpointOptions(opts EndpointOptions) Option {
	return func(o *parseOptions) {
		e := opts
		o.endpoint = &e
	}
}

func applyOptions(opts []Option) *parseOptions {
	o := &parseOptions{}
	for _, opt := range opts {
		opt(o)
	}

	return o
}
