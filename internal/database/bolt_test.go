package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoltKVStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := NewBoltKVStore(path, "commits")
	require.NoError(t, err)

	data, err := s.ReadKey([]byte("missing"))
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, s.UpdateKey([]byte("ca/r1/c1"), []byte("one")))
	require.NoError(t, s.UpdateKey([]byte("ca/r1/c2"), []byte("two")))
	require.NoError(t, s.UpdateKey([]byte("ca/r1/c1"), []byte("uno")))

	data, err = s.ReadKey([]byte("ca/r1/c1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("uno"), data)

	n, err := s.Keys()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.NoError(t, s.Close())

	// Data survives reopening.
	s, err = NewBoltKVStore(path, "commits")
	require.NoError(t, err)
	defer s.Close()

	data, err = s.ReadKey([]byte("ca/r1/c2"))
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), data)
}
