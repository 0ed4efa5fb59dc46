package entrykit

import (
	"strings"

	"github.com/creasty/defaults"
)

// EndpointOptions controls how a default S3 endpoint is derived from the
// bucket name and region. The zero value resolves standard AWS endpoints;
// override Suffix for alternate partitions (e.g. "amazonaws.com.cn").
type EndpointOptions struct {
	Scheme  string `default:"https"`
	Service string `default:"s3"`
	Suffix  string `default:"amazonaws.com"`
}

// hostSuffix returns the regional service host, e.g.
// "s3.us-west-2.amazonaws.com".
func (o *EndpointOptions) hostSuffix(region string) string {
	return o.Service + "." + region + "." + o.Suffix
}

func resolveEndpointOptions(opts *EndpointOptions) (*EndpointOptions, error) {
	resolved := &EndpointOptions{}
	if opts != nil {
		*resolved = *opts
	}

	if err := defaults.Set(resolved); err != nil {
		return nil, err
	}

	return resolved, nil
}

// deriveEndpoint returns the default endpoint URL for bucket in region.
//
// Buckets without dots use virtual-host style addressing, embedding the
// bucket as a DNS subdomain of the regional host. A dotted bucket name
// cannot appear as a host segment: the wildcard certificate for
// *.s3.<region>.amazonaws.com matches only a single label, so path-style
// addressing is used instead, with the bucket as the first path segment.
func deriveEndpoint(bucket, region string, opts *EndpointOptions) string {
	suffix := opts.hostSuffix(region)

	if strings.Contains(bucket, ".") {
		return opts.Scheme + "://" + suffix + "/" + bucket
	}

	return opts.Scheme + "://" + bucket + "." + suffix
}
