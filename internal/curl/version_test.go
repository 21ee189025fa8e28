package curl

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want Version
	}{
		{"release", "curl 8.5.0 (x86_64-pc-linux-gnu) libcurl/8.5.0 OpenSSL/3.0.13\nRelease-Date: 2023-12-06\n", Version{8, 5}},
		{"old", "curl 7.68.0 (x86_64-pc-linux-gnu)\n", Version{7, 68}},
		{"dev build", "curl 8.16.1-DEV (aarch64-apple-darwin)", Version{8, 16}},
		{"two components", "curl 9.0", Version{9, 0}},
		{"leading whitespace", "   curl   7.83.1  ", Version{7, 83}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseVersion([]byte(tt.out))
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestParseVersionErrors(t *testing.T) {
	tests := []struct {
		name string
		out  string
	}{
		{"empty", ""},
		{"one token", "curl\n"},
		{"single component", "curl 8\n"},
		{"non numeric major", "curl x.5.0\n"},
		{"non numeric minor", "curl 8.y.0\n"},
		{"negative", "curl -1.2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseVersion([]byte(tt.out))
			assert.Error(t, err)
		})
	}
}

func TestVersionAtLeast(t *testing.T) {
	assert.True(t, Version{7, 66}.AtLeast(Version{7, 66}))
	assert.True(t, Version{8, 0}.AtLeast(Version{7, 83}))
	assert.True(t, Version{9, 1}.AtLeast(Version{8, 16}))
	assert.False(t, Version{7, 65}.AtLeast(Version{7, 66}))
	assert.False(t, Version{8, 15}.AtLeast(Version{8, 16}))
	assert.False(t, Version{6, 99}.AtLeast(Version{7, 0}))
	assert.Equal(t, "8.16", Version{8, 16}.String())
}

// fakeCurl writes an executable shell script that behaves like curl for tests.
func fakeCurl(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake curl is a shell script")
	}

	path := filepath.Join(t.TempDir(), "curl")
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0755)
	require.NoError(t, err)
	return path
}

func TestProbe(t *testing.T) {
	exe := fakeCurl(t, `echo "curl 8.16.0 (x86_64-pc-linux-gnu) libcurl/8.16.0"; echo "Protocols: http https"`)

	v, err := Probe(context.Background(), exe)
	require.NoError(t, err)
	assert.Equal(t, Version{8, 16}, v)
}

func TestProbeNoOutput(t *testing.T) {
	exe := fakeCurl(t, `exit 0`)

	_, err := Probe(context.Background(), exe)
	assert.EqualError(t, err, "no version output")
}

func TestProbeMissingExecutable(t *testing.T) {
	_, err := Probe(context.Background(), filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute")
}
