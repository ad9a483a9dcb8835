package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/quasilyte/gdata"
)

// ItemStore is a flat key-value blob store. *gdata.Manager implements it.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Prefs keeps the best score per name and the last chosen difficulty,
// outside the score history database.
type Prefs struct {
	items ItemStore
}

// HighScoreRecord is the stored best score for one name.
type HighScoreRecord struct {
	Score     int       `json:"score"`
	Player    string    `json:"player"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type settingsRecord struct {
	Difficulty string `json:"difficulty"`
}

const settingsKey = "settings"

// OpenPrefs opens the per-user item store for appName.
func OpenPrefs(appName string) (*Prefs, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open prefs: %w", err)
	}
	return NewPrefs(m), nil
}

// NewPrefs wraps an existing item store.
func NewPrefs(items ItemStore) *Prefs {
	return &Prefs{items: items}
}

func highScoreKey(name string) string {
	return "highscore_" + name
}

// HighScore returns the stored record for name. A missing record is the
// zero value, not an error.
func (p *Prefs) HighScore(name string) (HighScoreRecord, error) {
	var rec HighScoreRecord
	ok, err := p.load(highScoreKey(name), &rec)
	if err != nil || !ok {
		return HighScoreRecord{}, err
	}
	return rec, nil
}

// SubmitScore stores score for name if it beats the current record.
// It reports whether the record changed.
func (p *Prefs) SubmitScore(name, player string, score int) (bool, error) {
	current, err := p.HighScore(name)
	if err != nil {
		return false, err
	}
	if score <= current.Score {
		return false, nil
	}

	rec := HighScoreRecord{Score: score, Player: player, UpdatedAt: time.Now().UTC()}
	if err := p.save(highScoreKey(name), rec); err != nil {
		return false, err
	}
	return true, nil
}

// LastDifficulty returns the last saved difficulty preset, or "".
func (p *Prefs) LastDifficulty() (string, error) {
	var s settingsRecord
	if _, err := p.load(settingsKey, &s); err != nil {
		return "", err
	}
	return s.Difficulty, nil
}

// SetLastDifficulty remembers the chosen difficulty preset.
func (p *Prefs) SetLastDifficulty(preset string) error {
	return p.save(settingsKey, settingsRecord{Difficulty: preset})
}

func (p *Prefs) load(key string, v any) (bool, error) {
	data, err := p.items.LoadItem(key)
	if err != nil {
		return false, fmt.Errorf("storage: cannot load %s: %w", key, err)
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("storage: cannot parse %s: %w", key, err)
	}
	return true, nil
}

func (p *Prefs) save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("storage: cannot encode %s: %w", key, err)
	}
	if err := p.items.SaveItem(key, data); err != nil {
		return fmt.Errorf("storage: cannot save %s: %w", key, err)
	}
	return nil
}
