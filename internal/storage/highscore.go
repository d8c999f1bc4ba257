package storage

import (
	"github.com/charmbracelet/log"
)

// HighScoreKeeper adapts a Store to the game's high-score interface:
// Load returns the best persisted score (0 when none or on failure) and
// Save records a new one. Persistence failures are logged and otherwise
// swallowed; the in-memory high score stays authoritative for the session.
type HighScoreKeeper struct {
	store  *Store
	gameID string
	logger *log.Logger
}

// NewHighScoreKeeper creates a keeper for the given game ID.
// A nil store yields a keeper that loads 0 and drops saves, which keeps
// the game playable when the database cannot be opened.
func NewHighScoreKeeper(store *Store, gameID string, logger *log.Logger) *HighScoreKeeper {
	return &HighScoreKeeper{store: store, gameID: gameID, logger: logger}
}

// Load returns the persisted high score, defaulting to 0.
func (k *HighScoreKeeper) Load() int {
	if k.store == nil {
		return 0
	}
	best, err := k.store.HighScore(k.gameID)
	if err != nil {
		if k.logger != nil {
			k.logger.Warn("could not load high score", "game", k.gameID, "error", err)
		}
		return 0
	}
	return best
}

// Save records a new score.
func (k *HighScoreKeeper) Save(score int) error {
	if k.store == nil {
		return nil
	}
	if _, err := k.store.SaveScore(k.gameID, score); err != nil {
		if k.logger != nil {
			k.logger.Warn("could not save score", "game", k.gameID, "error", err)
		}
		return err
	}
	return nil
}
