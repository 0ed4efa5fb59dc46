// Package entrykit normalizes references to files living in different
// storage backends into uniform, strongly-typed descriptors.
//
// It accepts a single URI-like string plus a set of access options and
// returns an unambiguous, fully-resolved description of where the resource
// lives and what credentials or headers are needed to reach it. It performs
// no network or disk I/O itself: a downstream I/O layer is expected to
// accept the resulting Entry variant and dispatch to the matching
// implementation.
//
// Basic usage:
//
//	entry, err := entrykit.Parse("s3://my-bucket/backups/db.tar.gz")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	switch e := entry.(type) {
//	case *entrykit.S3Entry:
//	    // e.Config carries resolved credentials, region and endpoint
//	case *entrykit.HTTPEntry:
//	    // e.URL, e.Config.Headers
//	case *entrykit.LocalEntry:
//	    // e.Path
//	}
//
// S3 configuration is merged from explicit options and process environment
// variables (AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, AWS_REGION with
// AWS_DEFAULT_REGION fallback, AWS_SESSION_TOKEN):
//
//	entry, err := entrykit.ParseS3("s3://my-bucket/key",
//	    entrykit.WithConfigMap(map[string]any{"region": "eu-west-1"}))
package entrykit

import (
	"strings"
)

// Entry is the resolved, typed descriptor of a single accessible resource.
// It is a closed sum over the supported backends: *LocalEntry, *HTTPEntry
// and *S3Entry. Entries are immutable once constructed and safe to share
// across goroutines.
type Entry interface {
	entry()
}

// Parse resolves uri into the Entry variant matching its scheme:
// "s3" URIs resolve to *S3Entry, "http" and "https" to *HTTPEntry, and
// "file" URIs or schemeless strings to *LocalEntry.
//
// Options apply to the backend they belong to; options for other backends
// are ignored, so a caller can pass a full option set without first
// sniffing the scheme.
func Parse(uri string, opts ...Option) (Entry, error) {
	scheme, rest, ok := strings.Cut(uri, "://")
	if !ok {
		return FromPath(uri), nil
	}

	switch scheme {
	case "s3":
		return ParseS3(uri, opts...)
	case "http", "https":
		return ParseHTTP(uri, opts...)
	case "file":
		// file:///abs/path yields "/abs/path"; file://rel/path yields
		// "rel/path", mirroring lenient file URI handling.
		return FromPath(rest), nil
	default:
		return nil, &InvalidURIError{
			URI:      uri,
			Expected: "a s3://, http(s):// or file:// URL, or a local path",
		}
	}
}
