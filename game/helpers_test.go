package game

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (clock *fakeClock) Now() time.Time {
	return clock.now
}

func (clock *fakeClock) Advance(d time.Duration) {
	clock.now = clock.now.Add(d)
}

// unboundedFromLayout copies a layout onto an unbounded board, so that
// everything outside the layout is ungenerated territory.
func unboundedFromLayout(t *testing.T, layout string) *Board {
	t.Helper()
	bounded, err := ParseLayout(layout, true)
	require.NoError(t, err)

	board := NewInfiniteBoard()
	for _, pos := range bounded.Positions() {
		cell, _ := bounded.CellAt(pos)
		board.place(pos, cell.Value())
	}
	return board
}

type memoryStore struct {
	records map[Mode]BestRecord
	loadErr error
	saveErr error
	saves   int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{records: make(map[Mode]BestRecord)}
}

func (store *memoryStore) LoadBest(mode Mode) (BestRecord, error) {
	if store.loadErr != nil {
		return BestRecord{}, store.loadErr
	}
	return store.records[mode], nil
}

func (store *memoryStore) SaveBest(mode Mode, record BestRecord) error {
	if store.saveErr != nil {
		return store.saveErr
	}
	store.saves++
	store.records[mode] = record
	return nil
}

type recordingReporter struct {
	mu      sync.Mutex
	results []Result
	err     error
}

func (reporter *recordingReporter) Report(_ context.Context, result Result) error {
	reporter.mu.Lock()
	defer reporter.mu.Unlock()
	reporter.results = append(reporter.results, result)
	return reporter.err
}

func (reporter *recordingReporter) Results() []Result {
	reporter.mu.Lock()
	defer reporter.mu.Unlock()
	return append([]Result(nil), reporter.results...)
}

var errUnavailable = errors.New("unavailable")

func intPtr(v int) *int {
	return &v
}

func int64Ptr(v int64) *int64 {
	return &v
}

func randWithSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func sortedPositions(result RevealResult) []Position {
	return result.Revealed.Sorted(func(a, b Position) bool {
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
}
