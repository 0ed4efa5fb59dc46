package entrykit

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	sigyaml "sigs.k8s.io/yaml"

	"github.com/entrykit/entrykit/internal/awsenv"
	"github.com/entrykit/entrykit/internal/types"
)

// S3Config is the credential/region/endpoint bundle for reaching an S3 or
// S3-compatible object store. Empty string means unset.
//
// Bucket and Endpoint are mutually informative: when Endpoint is empty the
// bucket name drives endpoint derivation during ParseS3; when the bucket
// name contains a dot the derived endpoint uses path-style addressing
// (embedding the bucket as a subdomain would break TLS wildcard certificate
// matching), and the bucket stays populated either way.
type S3Config struct {
	AccessKeyID     string `json:"access_key_id,omitempty" mapstructure:"access_key_id" validate:"required"`
	SecretAccessKey string `json:"secret_access_key,omitempty" mapstructure:"secret_access_key" validate:"required"`
	Region          string `json:"region,omitempty" mapstructure:"region" validate:"required"`
	Endpoint        string `json:"endpoint,omitempty" mapstructure:"endpoint"`
	SessionToken    string `json:"token,omitempty" mapstructure:"token"`
	Bucket          string `json:"bucket,omitempty" mapstructure:"bucket"`
}

// validate instances cache struct metadata and are safe for concurrent use.
var validate = validator.New()

// requiredFields fixes the order in which missing required fields are
// reported, and maps each to its environment variable.
var requiredFields = []struct {
	structField string
	field       string
	envVar      string
}{
	{"AccessKeyID", "access_key_id", awsenv.AccessKeyIDVar},
	{"SecretAccessKey", "secret_access_key", awsenv.SecretAccessKeyVar},
	{"Region", "region", awsenv.RegionVar},
}

// Validate checks that the required credential and region fields are
// populated, reporting the first missing one in fixed order as a
// MissingFieldError.
//
// Region is required here unconditionally, even though an explicit Endpoint
// makes it irrelevant for addressing. ParseS3 runs this validator on the
// pre-bucket-merge configuration, so callers relying on an explicit
// endpoint must still supply a region. This is long-standing observable
// behavior; relaxing it would change the error surface.
func (c S3Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	failed := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		failed[fe.StructField()] = true
	}

	for _, f := range requiredFields {
		if failed[f.structField] {
			return &types.MissingFieldError{Field: f.field, EnvVar: f.envVar}
		}
	}

	return err
}

// ConfigFromEnvironment builds an S3Config from the process environment:
// AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, AWS_REGION (falling back to
// AWS_DEFAULT_REGION) and AWS_SESSION_TOKEN. Unset variables yield empty
// fields; no validation is performed.
//
// WithEnvFiles layers dotenv files beneath the process environment.
// Repeated calls re-read the environment; if it changes between calls the
// results may differ, which is accepted behavior.
func ConfigFromEnvironment(opts ...Option) (S3Config, error) {
	return configFromEnvFiles(applyOptions(opts).envFiles)
}

func configFromEnvFiles(files []string) (S3Config, error) {
	env, err := awsenv.Load(DefaultFs, files...)
	if err != nil {
		return S3Config{}, err
	}

	vals := env.Read()

	return S3Config{
		AccessKeyID:     vals.AccessKeyID,
		SecretAccessKey: vals.SecretAccessKey,
		Region:          vals.Region,
		SessionToken:    vals.SessionToken,
	}, nil
}

// normalizeS3Config resolves the configuration union for a parse call:
// an explicit S3Config is used unchanged, a mapping overrides environment
// defaults key by key, and absence of both means pure environment.
func normalizeS3Config(o *parseOptions) (*S3Config, error) {
	if o.s3Config != nil {
		return o.s3Config, nil
	}

	base, err := configFromEnvFiles(o.envFiles)
	if err != nil {
		return nil, err
	}

	if o.s3ConfigMap == nil {
		return &base, nil
	}

	if err := decodeConfigMap(o.s3ConfigMap, &base); err != nil {
		return nil, err
	}

	return &base, nil
}

// decodeConfigMap applies a weakly-typed mapping onto base, field by field.
// Keys absent from the mapping leave the base value untouched; unrecognized
// keys are rejected.
func decodeConfigMap(m map[string]any, base *S3Config) error {
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:   base,
		Metadata: &md,
	})
	if err != nil {
		return err
	}

	if err := dec.Decode(m); err != nil {
		return &types.InvalidConfigError{Message: "expected string values for config keys", Err: err}
	}

	if len(md.Unused) > 0 {
		return &types.InvalidConfigError{Key: md.Unused[0], Message: "unrecognized key"}
	}

	return nil
}

// S3ConfigFromYAML decodes S3 configuration overrides from YAML or JSON
// bytes and merges them onto environment defaults, with the same key set
// and unrecognized-key rejection as WithConfigMap:
//
//	region: eu-central-1
//	endpoint: https://minio.internal:9000
func S3ConfigFromYAML(data []byte, opts ...Option) (*S3Config, error) {
	var m map[string]any
	if err := sigyaml.Unmarshal(data, &m); err != nil {
		return nil, &types.InvalidConfigError{Message: "malformed YAML", Err: err}
	}

	o := applyOptions(opts)
	o.s3ConfigMap = m

	return normalizeS3Config(o)
}
