package manifest_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/libpack/internal/adapters/manifest"
	"go.trai.ch/libpack/internal/core/domain"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dep.manifest.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReader_Read(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    domain.Manifest
	}{
		{
			name:    "canonical",
			content: "name: foo\nversion: 1.2.3\nschema: 1.0.0\ndependencies:\n  bar: 2.0.0\n",
			want: domain.Manifest{
				Name: "foo", Version: "1.2.3", Schema: "1.0.0",
				Dependencies: map[string]string{"bar": "2.0.0"},
			},
		},
		{
			name:    "schema defaults",
			content: "name: foo\nversion: 1.2.3\n",
			want:    domain.Manifest{Name: "foo", Version: "1.2.3", Schema: "1.0.0"},
		},
		{
			name:    "legacy schema_version and dependences",
			content: "name: highlight.js\nversion: 11.11.1\nschema_version: 0.9.0\ndependences:\n  lodash: 4.17.21\n",
			want: domain.Manifest{
				Name: "highlight.js", Version: "11.11.1", Schema: "0.9.0",
				Dependencies: map[string]string{"lodash": "4.17.21"},
			},
		},
		{
			name:    "legacy libs",
			content: "name: foo\nversion: 1.0.0\nlibs:\n  react: 18.3.1\n",
			want: domain.Manifest{
				Name: "foo", Version: "1.0.0", Schema: "1.0.0",
				Dependencies: map[string]string{"react": "18.3.1"},
			},
		},
		{
			name:    "canonical keys win over legacy",
			content: "name: foo\nversion: 1.0.0\nschema: 2.0.0\nschema_version: 1.0.0\ndependencies:\n  a: 1.0.0\nlibs:\n  b: 1.0.0\n",
			want: domain.Manifest{
				Name: "foo", Version: "1.0.0", Schema: "2.0.0",
				Dependencies: map[string]string{"a": "1.0.0"},
			},
		},
		{
			name:    "json",
			content: `{"name": "@scope/pkg", "version": "3.0.0-beta.1", "dependencies": {}}`,
			want:    domain.Manifest{Name: "@scope/pkg", Version: "3.0.0-beta.1", Schema: "1.0.0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := manifest.NewReader().Read(writeManifest(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReader_Read_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "missing name", content: "version: 1.0.0\n"},
		{name: "missing version", content: "name: foo\n"},
		{name: "range version", content: "name: foo\nversion: ^1.2.0\n"},
		{name: "partial version", content: "name: foo\nversion: \"1.2\"\n"},
		{name: "range dependency", content: "name: foo\nversion: 1.0.0\ndependencies:\n  bar: ~2.0.0\n"},
		{name: "parent segment", content: "name: ../foo\nversion: 1.0.0\n"},
		{name: "absolute name", content: "name: /tmp/foo\nversion: 1.0.0\n"},
		{name: "nested name", content: "name: foo/bar\nversion: 1.0.0\n"},
		{name: "scope escape", content: "name: '@scope/..'\nversion: 1.0.0\n"},
		{name: "bare scope", content: "name: '@scope'\nversion: 1.0.0\n"},
		{name: "backslash name", content: "name: 'foo\\bar'\nversion: 1.0.0\n"},
		{name: "parent dependency", content: "name: foo\nversion: 1.0.0\ndependencies:\n  ../bar: 2.0.0\n"},
		{name: "malformed", content: "name: [foo\n"},
		{name: "wrong shape", content: "- foo\n- bar\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := manifest.NewReader().Read(writeManifest(t, tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrManifestParse), "got %v", err)
		})
	}
}

func TestReader_Read_MissingFile(t *testing.T) {
	_, err := manifest.NewReader().Read(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrManifestParse))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReader_Read_NoCaching(t *testing.T) {
	path := writeManifest(t, "name: foo\nversion: 1.0.0\n")
	reader := manifest.NewReader()

	first, err := reader.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", first.Version)

	require.NoError(t, os.WriteFile(path, []byte("name: foo\nversion: 1.0.1\n"), 0o600))
	second, err := reader.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "1.0.1", second.Version)
}

func TestEncode_RoundTrip(t *testing.T) {
	m := domain.Manifest{Name: "foo", Version: "1.2.3", Schema: "1.0.0", Dependencies: map[string]string{"bar": "2.0.0"}}

	data, err := manifest.Encode(m)
	require.NoError(t, err)
	assert.Equal(t, "name: foo\nversion: 1.2.3\nschema: 1.0.0\ndependencies:\n    bar: 2.0.0\n", string(data))

	decoded, err := manifest.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, m, decoded)
}
