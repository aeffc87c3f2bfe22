package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/infinisweep/game"
)

type memoryItems map[string]string

func (items memoryItems) GetItem(key string) (string, bool) {
	value, ok := items[key]
	return value, ok
}

func (items memoryItems) SetItem(key, value string) {
	items[key] = value
}

func TestKeyValueStore(t *testing.T) {
	items := memoryItems{}
	store := NewKeyValueStore(items)

	best, err := store.LoadBest(game.Infinite)
	require.NoError(t, err)
	assert.Nil(t, best.Score)
	assert.Nil(t, best.TimeMillis)

	score, millis := 420, int64(95000)
	require.NoError(t, store.SaveBest(game.Infinite, game.BestRecord{Score: &score, TimeMillis: &millis}))
	assert.JSONEq(t, `{"score": 420, "time_ms": 95000}`, items["infinisweep.best.infinite"])

	best, err = store.LoadBest(game.Infinite)
	require.NoError(t, err)
	require.NotNil(t, best.Score)
	assert.Equal(t, 420, *best.Score)
	assert.Equal(t, int64(95000), *best.TimeMillis)

	best, err = store.LoadBest(game.Normal)
	require.NoError(t, err)
	assert.Nil(t, best.TimeMillis)
}

func TestKeyValueStoreCorruptRecord(t *testing.T) {
	store := NewKeyValueStore(memoryItems{"infinisweep.best.normal": "{nope"})

	_, err := store.LoadBest(game.Normal)
	assert.Error(t, err)
}
