package game

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Session is one game from start to restart. It is not safe for concurrent
// use; callers feed it one player action at a time.
type Session struct {
	config GameConfig

	id       uuid.UUID
	rand     *rand.Rand
	board    *Board
	viewport *Viewport

	state              State
	score              int
	startTime, endTime time.Time
	isFlaggingMode     bool
	best               BestRecord

	reports sync.WaitGroup
}

func NewSession(config GameConfig) (*Session, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	if config.Clock == nil {
		config.Clock = time.Now
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session := &Session{
		config: config,
		rand:   rand.New(rand.NewSource(seed)),
	}
	if err := session.reset(); err != nil {
		return nil, err
	}
	return session, nil
}

func (session *Session) reset() error {
	switch session.config.Mode {
	case Infinite:
		session.board = NewInfiniteBoard()
		session.viewport = NewViewport(Position{}, int(session.config.ViewportWidth), int(session.config.ViewportHeight))
		session.viewport.Fill(session.board, session.config.MineProbability, session.rand)
	default:
		board, err := session.createBoundedBoard()
		if err != nil {
			return err
		}
		session.board = board
		session.viewport = NewViewport(Position{}, board.Width(), board.Height())
	}

	session.id = uuid.New()
	session.state = NotStarted
	session.score = 0
	session.startTime, session.endTime = time.Time{}, time.Time{}
	session.best = session.loadBest()

	session.logger().Debug("session started")
	return nil
}

func (session *Session) createBoundedBoard() (*Board, error) {
	if session.config.Layout != "" {
		return ParseLayout(session.config.Layout, true)
	}
	size := int(session.config.Size)
	return NewFilledBoard(size, size, int(session.config.NumMines), session.rand)
}

func (session *Session) logger() logrus.FieldLogger {
	return log.WithFields(logrus.Fields{
		"session": session.id.String(),
		"mode":    session.config.Mode.String(),
	})
}

func (session *Session) now() time.Time {
	return session.config.Clock()
}

func (session *Session) ID() string {
	return session.id.String()
}

func (session *Session) Mode() Mode {
	return session.config.Mode
}

func (session *Session) State() State {
	return session.state
}

// Score counts in infinite mode only.
func (session *Session) Score() int {
	return session.score
}

func (session *Session) IsFlaggingMode() bool {
	return session.isFlaggingMode
}

func (session *Session) Best() BestRecord {
	return session.best
}

// Board is exposed for reading; mutate it through the session.
func (session *Session) Board() *Board {
	return session.board
}

func (session *Session) Viewport() *Viewport {
	return session.viewport
}

// Elapsed is the time since the first click, frozen once the game ends.
func (session *Session) Elapsed() time.Duration {
	switch {
	case session.state == NotStarted:
		return 0
	case session.state.IsTerminal():
		return session.endTime.Sub(session.startTime)
	default:
		return session.now().Sub(session.startTime)
	}
}

// Click is the primary action on pos. In flagging mode it toggles the flag;
// otherwise it reveals the cell, ending the game on a mine.
func (session *Session) Click(pos Position) {
	if session.state.IsTerminal() {
		return
	}
	cell := session.board.cellAt(pos)
	if cell == nil {
		return
	}

	if session.state == NotStarted {
		session.state = InProgress
		session.startTime = session.now()
	}

	if session.isFlaggingMode {
		session.board.ToggleFlag(pos)
		return
	}
	if cell.isFlagged || cell.isRevealed {
		return
	}

	result := Reveal(session.board, pos)
	if result.HitMine {
		session.finish(Lost)
		return
	}

	switch session.config.Mode {
	case Infinite:
		session.addScore(result)
	case Normal:
		if session.board.IsCleared() {
			session.finish(Won)
		}
	}
}

func (session *Session) addScore(result RevealResult) {
	for pos := range result.Revealed {
		if session.board.cellAt(pos).value > 0 {
			session.score += minRevealScore + session.rand.Intn(maxRevealScore-minRevealScore+1)
		}
	}
}

// Flag toggles the flag on pos, whatever the flagging mode.
func (session *Session) Flag(pos Position) {
	if session.state.IsTerminal() {
		return
	}
	session.board.ToggleFlag(pos)
}

func (session *Session) ToggleFlaggingMode() {
	session.isFlaggingMode = !session.isFlaggingMode
}

// Move shifts the infinite mode viewport by MoveStep cells and generates the
// area it now covers. Normal mode boards do not move.
func (session *Session) Move(direction Direction) {
	if session.config.Mode != Infinite {
		return
	}
	offset, ok := directionOffsets[direction]
	if !ok {
		return
	}
	session.viewport.Move(session.board, offset.X*MoveStep, offset.Y*MoveStep, session.config.MineProbability, session.rand)
}

// Restart throws the board away and starts over with a fresh one.
func (session *Session) Restart() {
	if err := session.reset(); err != nil {
		session.logger().WithError(err).Error("could not restart session")
	}
}

// Result describes the session as it stands.
func (session *Session) Result() Result {
	return Result{
		SessionID: session.ID(),
		Mode:      session.config.Mode,
		State:     session.state,
		Score:     session.score,
		Elapsed:   session.Elapsed(),
		PlayedAt:  session.endTime,
	}
}

func (session *Session) finish(state State) {
	session.state = state
	session.endTime = session.now()

	result := session.Result()
	session.logger().WithFields(logrus.Fields{
		"state":   state.String(),
		"score":   result.Score,
		"elapsed": result.Elapsed,
	}).Info("game ended")

	if !result.HasRecord() {
		return
	}
	session.saveBest(result)
	session.report(result)
}

func (session *Session) loadBest() BestRecord {
	if session.config.Records == nil {
		return BestRecord{}
	}
	best, err := session.config.Records.LoadBest(session.config.Mode)
	if err != nil {
		session.logger().WithError(err).Warn("could not load best record")
		return BestRecord{}
	}
	return best
}

func (session *Session) saveBest(result Result) {
	store := session.config.Records
	if store == nil {
		return
	}

	best, err := store.LoadBest(result.Mode)
	if err != nil {
		session.logger().WithError(err).Warn("could not load best record")
		return
	}
	if !result.Improves(best) {
		return
	}

	record := result.Record()
	if err := store.SaveBest(result.Mode, record); err != nil {
		session.logger().WithError(err).Warn("could not save best record")
		return
	}
	session.best = record
}

// report submits the result in the background; failures are only logged.
func (session *Session) report(result Result) {
	reporter := session.config.Reporter
	if reporter == nil {
		return
	}

	logger := session.logger()
	timeout := session.config.ReportTimeout

	session.reports.Add(1)
	go func() {
		defer session.reports.Done()

		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		if err := reporter.Report(ctx, result); err != nil {
			logger.WithError(err).Warn("could not submit result")
		}
	}()
}

// WaitReports blocks until background submissions have finished.
func (session *Session) WaitReports() {
	session.reports.Wait()
}

// Snapshot is a read-only copy of what the player can see.
type Snapshot struct {
	SessionID    string
	Mode         Mode
	State        State
	Score        int
	Elapsed      time.Duration
	FlaggingMode bool
	Best         BestRecord

	Origin        Position
	Width, Height int
	// Visible cells, row by row
	Cells [][]Cell

	// Mines minus flags, normal mode only
	RemainingMines int
}

func (session *Session) Snapshot() Snapshot {
	snapshot := Snapshot{
		SessionID:    session.ID(),
		Mode:         session.config.Mode,
		State:        session.state,
		Score:        session.score,
		Elapsed:      session.Elapsed(),
		FlaggingMode: session.isFlaggingMode,
		Best:         session.best,
		Origin:       session.viewport.Origin(),
		Width:        session.viewport.Width(),
		Height:       session.viewport.Height(),
		Cells:        session.viewport.Cells(session.board),
	}
	if session.board.IsBounded() {
		snapshot.RemainingMines = session.board.NumMines() - session.board.NumFlags()
	}
	return snapshot
}
