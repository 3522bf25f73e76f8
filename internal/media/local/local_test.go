package local_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NARAYANASWAMY-ACHINTYA/welding-workshop-app/internal/media/local"
)

func TestNew_CreatesCategoryDirs(t *testing.T) {
	base := filepath.Join(t.TempDir(), "media")
	s, err := local.New(base)
	require.NoError(t, err)

	for _, c := range []string{"portfolio", "catalogue"} {
		info, err := os.Stat(filepath.Join(base, c))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
	assert.Equal(t, base, s.Dir())
}

func TestSave(t *testing.T) {
	s, err := local.New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	name, err := s.Save(ctx, "portfolio", ".jpg", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".jpg"))
	assert.NotContains(t, name, "/")

	b, err := os.ReadFile(filepath.Join(s.Dir(), "portfolio", name))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(b))

	// filenames must not collide
	name2, err := s.Save(ctx, "portfolio", ".jpg", strings.NewReader("other"))
	require.NoError(t, err)
	assert.NotEqual(t, name, name2)
}

func TestSave_ExtensionWithoutDot(t *testing.T) {
	s, err := local.New(t.TempDir())
	require.NoError(t, err)

	name, err := s.Save(context.Background(), "catalogue", "png", strings.NewReader("x"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".png"))
}

func TestSave_UnknownCategory(t *testing.T) {
	s, err := local.New(t.TempDir())
	require.NoError(t, err)

	_, err = s.Save(context.Background(), "secrets", ".jpg", strings.NewReader("x"))
	require.Error(t, err)
}

func TestSave_RejectsPathEscapingExtension(t *testing.T) {
	s, err := local.New(t.TempDir())
	require.NoError(t, err)

	_, err = s.Save(context.Background(), "portfolio", "../../etc/passwd", strings.NewReader("x"))
	require.Error(t, err)
}

func TestRemove(t *testing.T) {
	s, err := local.New(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	name, err := s.Save(ctx, "portfolio", ".jpg", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, "portfolio", name))
	_, err = os.Stat(filepath.Join(s.Dir(), "portfolio", name))
	assert.True(t, os.IsNotExist(err))

	// path traversal is rejected
	require.Error(t, s.Remove(ctx, "portfolio", "../storage.json"))
}
