package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFileSystem_Walk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.templ"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "b.templ"), []byte("b"), 0o644))

	p := NewOSFileSystem()
	d, err := p.Open(dir)
	require.NoError(t, err)

	found := map[string]string{}
	err = d.Walk(func(f File, err error) error {
		require.NoError(t, err)
		if f.Info().IsDir() {
			return nil
		}
		content, readErr := f.ReadContent()
		require.NoError(t, readErr)
		found[filepath.ToSlash(f.RelativePath())] = string(content)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"a.templ": "a", "sub/b.templ": "b"}, found)
}

func TestOSFileSystem_Open_Errors(t *testing.T) {
	p := NewOSFileSystem()

	_, err := p.Open(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	_, err = p.Open(file)
	assert.ErrorContains(t, err, "not a directory")
}
