package game

import (
	"context"
	"time"
)

// BestRecord is the stored best result for a mode. Nil fields mean nothing
// has been recorded yet.
type BestRecord struct {
	Score      *int   `yaml:"score,omitempty" json:"score"`
	TimeMillis *int64 `yaml:"time_ms,omitempty" json:"time_ms"`
}

// Result describes a finished session.
type Result struct {
	SessionID string
	Mode      Mode
	State     State
	Score     int
	Elapsed   time.Duration
	PlayedAt  time.Time
}

// HasRecord reports whether a result is worth keeping: a loss in infinite
// mode, or a win in normal mode.
func (result Result) HasRecord() bool {
	switch result.Mode {
	case Infinite:
		return result.State == Lost
	case Normal:
		return result.State == Won
	}
	return false
}

// Improves reports whether result beats best. Infinite mode wants a higher
// score, or the same score in less time; normal mode wants a lower time.
func (result Result) Improves(best BestRecord) bool {
	if !result.HasRecord() {
		return false
	}
	millis := result.Elapsed.Milliseconds()

	switch result.Mode {
	case Infinite:
		if best.Score == nil || result.Score > *best.Score {
			return true
		}
		return result.Score == *best.Score && (best.TimeMillis == nil || millis < *best.TimeMillis)
	default:
		return best.TimeMillis == nil || millis < *best.TimeMillis
	}
}

// Record converts the result into the BestRecord that would be stored.
func (result Result) Record() BestRecord {
	millis := result.Elapsed.Milliseconds()
	record := BestRecord{TimeMillis: &millis}
	if result.Mode == Infinite {
		score := result.Score
		record.Score = &score
	}
	return record
}

// RecordStore persists best records per mode.
type RecordStore interface {
	LoadBest(mode Mode) (BestRecord, error)
	SaveBest(mode Mode, record BestRecord) error
}

// Reporter submits finished games somewhere remote, such as a leaderboard.
type Reporter interface {
	Report(ctx context.Context, result Result) error
}
