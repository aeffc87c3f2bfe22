package records

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/they4kman/infinisweep/game"
)

// KeyValue is a string store such as a browser's localStorage.
type KeyValue interface {
	GetItem(key string) (string, bool)
	SetItem(key, value string)
}

const keyPrefix = "infinisweep.best."

// KeyValueStore keeps one JSON encoded best record per mode under
// "infinisweep.best.<mode>".
type KeyValueStore struct {
	items KeyValue
}

func NewKeyValueStore(items KeyValue) *KeyValueStore {
	return &KeyValueStore{items: items}
}

func (store *KeyValueStore) LoadBest(mode game.Mode) (game.BestRecord, error) {
	var record game.BestRecord

	value, ok := store.items.GetItem(keyPrefix + mode.String())
	if !ok || value == "" {
		return record, nil
	}
	if err := json.Unmarshal([]byte(value), &record); err != nil {
		return game.BestRecord{}, errors.Wrapf(err, "parsing %s record", mode)
	}
	return record, nil
}

func (store *KeyValueStore) SaveBest(mode game.Mode, record game.BestRecord) error {
	out, err := json.Marshal(record)
	if err != nil {
		return errors.Wrapf(err, "encoding %s record", mode)
	}
	store.items.SetItem(keyPrefix+mode.String(), string(out))
	return nil
}
