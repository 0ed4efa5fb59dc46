// Package awsenv reads AWS credential and region settings from the process
// environment, optionally layered over values parsed from dotenv files.
package awsenv

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

// Environment variable names recognized by this package.
const (
	AccessKeyIDVar     = "AWS_ACCESS_KEY_ID"
	SecretAccessKeyVar = "AWS_SECRET_ACCESS_KEY"
	RegionVar          = "AWS_REGION"
	DefaultRegionVar   = "AWS_DEFAULT_REGION"
	SessionTokenVar    = "AWS_SESSION_TOKEN"
)

// Values holds the environment-derived S3 settings. An empty string means
// the corresponding variable was not set.
type Values struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	SessionToken    string
}

// Env is a layered variable source: the process environment first, then
// dotenv file values in the order the files were given.
type Env struct {
	fileVars map[string]string
}

// Load builds an Env from the process environment plus the given dotenv
// files, read through fs. Missing files are silently skipped to support
// optional .env.local patterns; unreadable or malformed files are errors.
func Load(fs afero.Fs, files ...string) (*Env, error) {
	e := &Env{fileVars: make(map[string]string)}

	for _, path := range files {
		if _, err := fs.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}

			return nil, fmt.Errorf("stat env file %s: %w", path, err)
		}

		f, err := fs.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open env file %s: %w", path, err)
		}

		vars, err := godotenv.Parse(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("parse env file %s: %w", path, err)
		}

		// Earlier files win within the file layer.
		for k, v := range vars {
			if _, ok := e.fileVars[k]; !ok {
				e.fileVars[k] = v
			}
		}
	}

	return e, nil
}

// Lookup returns the value of name. The process environment takes
// precedence over file values, matching godotenv.Load semantics.
func (e *Env) Lookup(name string) (string, bool) {
	if v, ok := os.LookupEnv(name); ok {
		return v, true
	}

	if e == nil || e.fileVars == nil {
		return "", false
	}

	v, ok := e.fileVars[name]

	return v, ok
}

// Region returns the region setting, falling back from AWS_REGION to
// AWS_DEFAULT_REGION.
func (e *Env) Region() string {
	if v, ok := e.Lookup(RegionVar); ok {
		return v
	}

	v, _ := e.Lookup(DefaultRegionVar)

	return v
}

// Read collects all recognized variables into a Values snapshot.
func (e *Env) Read() Values {
	get := func(name string) string {
		v, _ := e.Lookup(name)
		return v
	}

	return Values{
		AccessKeyID:     get(AccessKeyIDVar),
		SecretAccessKey: get(SecretAccessKeyVar),
		Region:          e.Region(),
		SessionToken:    get(SessionTokenVar),
	}
}
