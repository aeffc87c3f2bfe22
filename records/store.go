package records

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/they4kman/infinisweep/game"
	"gopkg.in/yaml.v2"
)

// FileStore keeps best records in a YAML file, keyed by mode name:
//
//	infinite:
//	  score: 420
//	  time_ms: 95000
//	normal:
//	  time_ms: 61000
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (store *FileStore) Path() string {
	return store.path
}

func (store *FileStore) LoadBest(mode game.Mode) (game.BestRecord, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	records, err := store.read()
	if err != nil {
		return game.BestRecord{}, err
	}
	return records[mode.String()], nil
}

func (store *FileStore) SaveBest(mode game.Mode, record game.BestRecord) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	records, err := store.read()
	if err != nil {
		return err
	}
	records[mode.String()] = record
	return store.write(records)
}

func (store *FileStore) read() (map[string]game.BestRecord, error) {
	records := make(map[string]game.BestRecord)

	in, err := ioutil.ReadFile(store.path)
	if os.IsNotExist(err) {
		return records, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading records from %s", store.path)
	}

	if err := yaml.Unmarshal(in, &records); err != nil {
		return nil, errors.Wrapf(err, "parsing records in %s", store.path)
	}
	if records == nil {
		records = make(map[string]game.BestRecord)
	}
	return records, nil
}

func (store *FileStore) write(records map[string]game.BestRecord) error {
	out, err := yaml.Marshal(records)
	if err != nil {
		return errors.Wrap(err, "encoding records")
	}

	if dir := filepath.Dir(store.path); dir != "" {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return errors.Wrapf(err, "creating %s", dir)
		}
	}

	// Write next to the target and rename, so a failed write keeps the old file
	tmp := store.path + ".tmp"
	if err := ioutil.WriteFile(tmp, out, 0644); err != nil {
		return errors.Wrapf(err, "writing records to %s", tmp)
	}
	return errors.Wrapf(os.Rename(tmp, store.path), "replacing %s", store.path)
}

// DefaultPath is where records live when no path is configured.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "infinisweep", "records.yaml")
}
