package records

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/infinisweep/game"
)

func TestFileStoreMissingFileHasNoRecords(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "records.yaml"))

	best, err := store.LoadBest(game.Infinite)

	require.NoError(t, err)
	assert.Equal(t, game.BestRecord{}, best)
}

func TestFileStoreSavesPerMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "records.yaml")
	store := NewFileStore(path)
	score, millis := 420, int64(95000)
	normalMillis := int64(61000)

	require.NoError(t, store.SaveBest(game.Infinite, game.BestRecord{Score: &score, TimeMillis: &millis}))
	require.NoError(t, store.SaveBest(game.Normal, game.BestRecord{TimeMillis: &normalMillis}))

	reopened := NewFileStore(path)
	infinite, err := reopened.LoadBest(game.Infinite)
	require.NoError(t, err)
	assert.Equal(t, 420, *infinite.Score)
	assert.Equal(t, int64(95000), *infinite.TimeMillis)

	normal, err := reopened.LoadBest(game.Normal)
	require.NoError(t, err)
	assert.Nil(t, normal.Score)
	assert.Equal(t, int64(61000), *normal.TimeMillis)

	raw, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "time_ms: 61000")
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte("infinite: [not, a, record"), 0644))
	store := NewFileStore(path)

	_, err := store.LoadBest(game.Infinite)
	assert.Error(t, err)
	assert.Error(t, store.SaveBest(game.Infinite, game.BestRecord{}))
}

func TestFileStoreWithSession(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "records.yaml"))
	config := game.NewGameConfig()
	config.Layout = "*#"
	config.Records = store
	session, err := game.NewSession(config)
	require.NoError(t, err)

	session.Click(game.Pos(1, 0))

	require.Equal(t, game.Won, session.State())
	best, err := store.LoadBest(game.Normal)
	require.NoError(t, err)
	require.NotNil(t, best.TimeMillis)
	assert.Equal(t, session.Elapsed().Milliseconds(), *best.TimeMillis)
}
