package records

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/infinisweep/game"
)

const recordPath = "/api/game/record"

// Entry is the body submitted for a finished game.
type Entry struct {
	GameType      string    `json:"game_type"`
	Score         int       `json:"score"`
	TimeInSeconds int       `json:"time_in_seconds"`
	PlayedAt      time.Time `json:"played_at"`
}

func NewEntry(result game.Result) Entry {
	return Entry{
		GameType:      result.Mode.String(),
		Score:         result.Score,
		TimeInSeconds: int(result.Elapsed / time.Second),
		PlayedAt:      result.PlayedAt.UTC(),
	}
}

// Leaderboard submits results to the leaderboard service on behalf of a
// signed-in player. Without a token it does nothing.
type Leaderboard struct {
	BaseURL string
	Token   string
	Client  *http.Client
}

func NewLeaderboard(baseURL, token string) *Leaderboard {
	return &Leaderboard{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (leaderboard *Leaderboard) Report(ctx context.Context, result game.Result) error {
	if leaderboard.Token == "" || leaderboard.BaseURL == "" {
		return nil
	}

	body, err := json.Marshal(NewEntry(result))
	if err != nil {
		return errors.Wrap(err, "encoding leaderboard entry")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, leaderboard.BaseURL+recordPath, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "building leaderboard request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+leaderboard.Token)

	client := leaderboard.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrap(err, "submitting leaderboard entry")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := ioutil.ReadAll(io.LimitReader(resp.Body, 512))
		return errors.Errorf("leaderboard responded %s: %s", resp.Status, strings.TrimSpace(string(msg)))
	}

	logrus.WithFields(logrus.Fields{
		"game_type": result.Mode.String(),
		"score":     result.Score,
	}).Debug("submitted leaderboard entry")
	return nil
}
