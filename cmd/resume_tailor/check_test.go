package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-tailor/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_Valid(t *testing.T) {
	clearEnv(t)

	stdout, _, err := runCLI(t, "", append([]string{"check"}, referenceFlags()...)...)
	require.NoError(t, err)

	assert.Contains(t, stdout, "REFERENCE FILES")
	assert.Contains(t, stdout, "4 candidate bullets")
	assert.Contains(t, stdout, "Ada Lovelace")
}

func TestCheck_DoesNotNeedAPIKey(t *testing.T) {
	clearEnv(t)
	stub, _ := useStubClient(t, "")

	_, _, err := runCLI(t, "", append([]string{"check"}, referenceFlags()...)...)
	require.NoError(t, err)
	assert.Equal(t, 0, stub.calls)
}

func TestCheck_PathsFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("MASTER_RESUME_PATH", filepath.Join("testdata", "master_resume.json"))
	t.Setenv("USER_PROFILE_PATH", filepath.Join("testdata", "user_profile.json"))

	stdout, _, err := runCLI(t, "", "check")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Ada Lovelace")
}

func TestCheck_InvalidBullets(t *testing.T) {
	clearEnv(t)
	bad := filepath.Join(t.TempDir(), "bullets.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[{"text": "no bullet key"}]`), 0644))

	_, _, err := runCLI(t, "", "check", "--bullets", bad, "--profile", filepath.Join("testdata", "user_profile.json"))
	require.Error(t, err)

	var formatErr *profile.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Contains(t, err.Error(), "master_resume schema")
}
