package storage_test

import (
	"os"
	"strings"
	"testing"

	"staffmis_backend/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveFileAndPath(t *testing.T) {
	s := storage.NewLocalStorage(t.TempDir())

	name, err := s.SaveFile([]byte("fake-jpeg-bytes"), "jpeg")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".jpg"))

	data, err := os.ReadFile(s.Path(name))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake-jpeg-bytes"), data)
}

func TestSaveFileUnknownExtension(t *testing.T) {
	s := storage.NewLocalStorage(t.TempDir())

	name, err := s.SaveFile([]byte{0x00}, "exe")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".bin"))
}

func TestSaveFileUniqueNames(t *testing.T) {
	s := storage.NewLocalStorage(t.TempDir())

	a, err := s.SaveFile([]byte("a"), "png")
	require.NoError(t, err)
	b, err := s.SaveFile([]byte("b"), "png")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestPathIgnoresTraversal(t *testing.T) {
	s := storage.NewLocalStorage("/var/data/uploads")
	assert.Equal(t, "/var/data/uploads/x.png", s.Path("../../etc/x.png"))
}
