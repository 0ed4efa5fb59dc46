package entrykit

import (
	"net/url"
	"strings"
)

const bucketURLExpectedShape = "URL in the format https://s3.[region].amazonaws.com/[bucket]"

// ParseBucketURL recovers bucket, region and endpoint from a bucket-root
// URL, the reverse of endpoint derivation. Three shapes are recognized:
//
//   - AWS virtual-host style: https://<bucket>.s3.<region>.amazonaws.com/
//     yields bucket and region, with no explicit endpoint.
//   - AWS path-style: https://s3.<region>.amazonaws.com/<bucket> likewise.
//   - Anything else with a single-segment path is treated as a third-party
//     S3-compatible endpoint: the bucket is the path segment and the
//     endpoint is scheme://host with the path stripped.
//
// A host-style URL that does not match the AWS pattern exactly fails with
// UnresolvableBucketError (a dotted or third-party subdomain cannot be
// split into bucket and region unambiguously).
//
// Credentials, token and the region default come from the normalized
// configuration options; strict field validation is deliberately skipped so
// a caller can discover bucket/region/endpoint before supplying
// credentials elsewhere.
func ParseBucketURL(rawURL string, opts ...Option) (*S3Config, error) {
	o := applyOptions(opts)

	cfg, err := normalizeS3Config(o)
	if err != nil {
		return nil, err
	}

	u, parseErr := url.Parse(rawURL)
	if parseErr != nil || u.Host == "" {
		return nil, &InvalidURIError{URI: rawURL, Expected: bucketURLExpectedShape}
	}

	labels := strings.Split(u.Hostname(), ".")
	path := strings.TrimSuffix(u.Path, "/")

	if path == "" {
		// Host-style: <bucket>.s3.<region>.amazonaws.com with a bare root.
		if len(labels) == 5 && labels[1] == "s3" && labels[3] == "amazonaws" && labels[4] == "com" {
			cfg.Bucket = labels[0]
			cfg.Region = labels[2]
			cfg.Endpoint = ""

			return cfg, nil
		}

		return nil, &UnresolvableBucketError{URL: rawURL}
	}

	bucket := strings.TrimPrefix(path, "/")
	if bucket == "" || strings.Contains(bucket, "/") {
		// Multi-segment paths are object keys, not bucket roots.
		return nil, &InvalidURIError{URI: rawURL, Expected: bucketURLExpectedShape}
	}

	if len(labels) == 4 && labels[0] == "s3" && labels[2] == "amazonaws" && labels[3] == "com" {
		// AWS path-style: s3.<region>.amazonaws.com/<bucket>.
		cfg.Bucket = bucket
		cfg.Region = labels[1]
		cfg.Endpoint = ""

		return cfg, nil
	}

	// Custom S3-compatible endpoint; region is left as configured.
	cfg.Bucket = bucket
	cfg.Endpoint = u.Scheme + "://" + u.Host

	return cfg, nil
}
