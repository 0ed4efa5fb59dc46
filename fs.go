package entrykit

import "github.com/spf13/afero"

// DefaultFs is the filesystem used to read dotenv files passed via
// WithEnvFiles. It defaults to the OS filesystem but can be overridden for
// testing.
//
// Example usage for testing:
//
//	func TestEnvFile(t *testing.T) {
//	    memFs := afero.NewMemMapFs()
//	    afero.WriteFile(memFs, "/.env", []byte("AWS_REGION=us-west-2"), 0644)
//	    entrykit.SetDefaultFs(memFs)
//	    defer entrykit.ResetDefaultFs()
//	    // ... test code ...
//	}
var DefaultFs afero.Fs = afero.NewOsFs()

// SetDefaultFs sets the global default filesystem.
//
// WARNING: This modifies global state and is NOT thread-safe.
// Do not use with t.Parallel() tests.
func SetDefaultFs(fs afero.Fs) {
	DefaultFs = fs
}

// ResetDefaultFs resets the global filesystem to the OS filesystem.
// Call this in test cleanup to restore default behavior.
func ResetDefaultFs() {
	DefaultFs = afero.NewOsFs()
}
