package entrykit

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFromEnvironment(t *testing.T) {
	t.Run("all variables set", func(t *testing.T) {
		clearAWSEnv(t)
		t.Setenv("AWS_ACCESS_KEY_ID", "AKIAEXAMPLE")
		t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
		t.Setenv("AWS_REGION", "us-east-1")
		t.Setenv("AWS_SESSION_TOKEN", "tok")

		cfg, err := ConfigFromEnvironment()
		require.NoError(t, err)

		assert.Equal(t, "AKIAEXAMPLE", cfg.AccessKeyID)
		assert.Equal(t, "secret", cfg.SecretAccessKey)
		assert.Equal(t, "us-east-1", cfg.Region)
		assert.Equal(t, "tok", cfg.SessionToken)
		assert.Empty(t, cfg.Bucket)
		assert.Empty(t, cfg.Endpoint)
	})

	t.Run("region falls back to AWS_DEFAULT_REGION", func(t *testing.T) {
		clearAWSEnv(t)
		t.Setenv("AWS_DEFAULT_REGION", "eu-central-1")

		cfg, err := ConfigFromEnvironment()
		require.NoError(t, err)
		assert.Equal(t, "eu-central-1", cfg.Region)
	})

	t.Run("AWS_REGION wins over AWS_DEFAULT_REGION", func(t *testing.T) {
		clearAWSEnv(t)
		t.Setenv("AWS_REGION", "us-west-2")
		t.Setenv("AWS_DEFAULT_REGION", "eu-central-1")

		cfg, err := ConfigFromEnvironment()
		require.NoError(t, err)
		assert.Equal(t, "us-west-2", cfg.Region)
	})
}

func TestConfigFromEnvironmentWithEnvFiles(t *testing.T) {
	clearAWSEnv(t)

	memFs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(memFs, "/first.env",
		[]byte("AWS_REGION=ap-northeast-1\nAWS_ACCESS_KEY_ID=file-key\n"), 0o644))
	require.NoError(t, afero.WriteFile(memFs, "/second.env",
		[]byte("AWS_REGION=eu-west-3\nAWS_SECRET_ACCESS_KEY=file-secret\n"), 0o644))

	SetDefaultFs(memFs)
	defer ResetDefaultFs()

	t.Run("earlier file wins within the file layer", func(t *testing.T) {
		cfg, err := ConfigFromEnvironment(WithEnvFiles("/first.env", "/second.env"))
		require.NoError(t, err)

		assert.Equal(t, "ap-northeast-1", cfg.Region)
		assert.Equal(t, "file-key", cfg.AccessKeyID)
		assert.Equal(t, "file-secret", cfg.SecretAccessKey)
	})

	t.Run("process environment beats files", func(t *testing.T) {
		t.Setenv("AWS_REGION", "us-west-1")

		cfg, err := ConfigFromEnvironment(WithEnvFiles("/first.env"))
		require.NoError(t, err)
		assert.Equal(t, "us-west-1", cfg.Region)
	})

	t.Run("missing files are skipped", func(t *testing.T) {
		cfg, err := ConfigFromEnvironment(WithEnvFiles("/does-not-exist.env", "/first.env"))
		require.NoError(t, err)
		assert.Equal(t, "file-key", cfg.AccessKeyID)
	})
}

func TestS3ConfigValidate(t *testing.T) {
	valid := S3Config{
		AccessKeyID:     "k",
		SecretAccessKey: "s",
		Region:          "us-west-2",
	}

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, valid.Validate())
	})

	t.Run("fixed reporting order", func(t *testing.T) {
		cases := []struct {
			name  string
			cfg   S3Config
			field string
		}{
			{"all missing reports access_key_id", S3Config{}, "access_key_id"},
			{"missing secret", S3Config{AccessKeyID: "k"}, "secret_access_key"},
			{"missing region", S3Config{AccessKeyID: "k", SecretAccessKey: "s"}, "region"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				err := tc.cfg.Validate()
				var missing *MissingFieldError
				require.ErrorAs(t, err, &missing)
				assert.Equal(t, tc.field, missing.Field)
			})
		}
	})

	t.Run("endpoint does not relax region", func(t *testing.T) {
		cfg := S3Config{AccessKeyID: "k", SecretAccessKey: "s", Endpoint: "https://minio:9000"}

		err := cfg.Validate()
		var missing *MissingFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "region", missing.Field)
	})
}

func TestS3ConfigFromYAML(t *testing.T) {
	t.Run("overrides environment defaults", func(t *testing.T) {
		clearAWSEnv(t)
		t.Setenv("AWS_ACCESS_KEY_ID", "env-key")

		cfg, err := S3ConfigFromYAML([]byte("region: eu-central-1\nbucket: backups\n"))
		require.NoError(t, err)

		assert.Equal(t, "eu-central-1", cfg.Region)
		assert.Equal(t, "backups", cfg.Bucket)
		assert.Equal(t, "env-key", cfg.AccessKeyID)
	})

	t.Run("JSON input", func(t *testing.T) {
		clearAWSEnv(t)

		cfg, err := S3ConfigFromYAML([]byte(`{"endpoint": "https://minio:9000"}`))
		require.NoError(t, err)
		assert.Equal(t, "https://minio:9000", cfg.Endpoint)
	})

	t.Run("unrecognized key", func(t *testing.T) {
		clearAWSEnv(t)

		_, err := S3ConfigFromYAML([]byte("regin: typo\n"))
		var cfgErr *InvalidConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "regin", cfgErr.Key)
	})

	t.Run("malformed YAML", func(t *testing.T) {
		_, err := S3ConfigFromYAML([]byte("regio: [unterminated"))
		var cfgErr *InvalidConfigError
		require.ErrorAs(t, err, &cfgErr)
	})

	t.Run("non-string value", func(t *testing.T) {
		clearAWSEnv(t)

		_, err := S3ConfigFromYAML([]byte("region: [a, b]\n"))
		var cfgErr *InvalidConfigError
		require.ErrorAs(t, err, &cfgErr)
	})
}
