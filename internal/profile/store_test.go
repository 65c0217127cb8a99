package profile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	for _, name := range []string{"profile.json", "profile.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			store := NewStore(path)

			want := Default().Apply(func(p *ProfileData) {
				p.Languages = Languages{{"Go", 70}, {"Shell", 30}}
				p.Repositories = []Repository{{Name: "tool", Stars: 3}}
				p.GitHubDataFetched = true
			})
			require.NoError(t, store.Save(want))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

			got, err := store.Load()
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestStoreLoadMissing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.json"))
	_, err := store.Load()
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestStoreMigratesLegacyProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.json")
	legacy := `{"name":"Ann","bio":"old bio","skills":["Go"],"stats":true,"languages":{"Go":100}}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0600))

	got, err := NewStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Name)
	assert.Equal(t, "old bio", got.About)
	assert.Equal(t, []string{"Go"}, got.Skills)
	assert.True(t, got.Stats)
	assert.Equal(t, Languages{{"Go", 100}}, got.Languages)
}

func TestStoreRejectsFutureVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "future.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":99,"profile":{}}`), 0600))

	_, err := NewStore(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "99")
}
