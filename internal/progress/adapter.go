package progress

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/abhisek/sworddrill/internal/drill"
	"github.com/abhisek/sworddrill/internal/scoring"
	"github.com/abhisek/sworddrill/internal/store"
)

// Adapter loads and persists progression records through a StorageAdapter.
// Reads are tolerant: missing keys, storage errors, and malformed JSON all
// degrade to defaults so the app stays usable without saved data.
type Adapter struct {
	storage store.StorageAdapter
	clock   Clock
	log     *slog.Logger
}

// NewAdapter wires an adapter over the given storage. A nil clock uses the
// system clock; a nil logger discards.
func NewAdapter(storage store.StorageAdapter, clock Clock, log *slog.Logger) *Adapter {
	if clock == nil {
		clock = SystemClock{}
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Adapter{storage: storage, clock: clock, log: log}
}

// LoadProgress returns the stored progress merged onto defaults. Unknown
// fields in the stored blob are ignored and absent fields keep their default,
// so older or partial records still load. Never fails.
func (a *Adapter) LoadProgress(ctx context.Context) UserProgress {
	p := DefaultProgress()
	if !a.loadInto(ctx, KeyProgress, &p) {
		p = DefaultProgress()
	}
	if p.BookStats == nil {
		p.BookStats = make(map[string]BookStat)
	}
	if p.Achievements == nil {
		p.Achievements = []string{}
	}
	// Level is derived from XP; recompute in case the stored record drifted.
	p.Level = scoring.LevelFromXP(p.XP)
	return p
}

// LoadSettings returns the stored settings merged onto defaults. Never fails.
func (a *Adapter) LoadSettings(ctx context.Context) UserSettings {
	s := DefaultSettings()
	if !a.loadInto(ctx, KeySettings, &s) {
		s = DefaultSettings()
	}
	return s
}

// SaveSettings persists the settings record. Failures are logged, not raised.
func (a *Adapter) SaveSettings(ctx context.Context, s UserSettings) {
	a.save(ctx, KeySettings, s)
}

// LoadHistory returns the drill history, newest first. Never fails.
func (a *Adapter) LoadHistory(ctx context.Context) []DrillResult {
	var h []DrillResult
	a.loadInto(ctx, KeyHistory, &h)
	return h
}

// ApplyResult folds a settled drill session into the progress record and
// builds its history entry. Pure with respect to storage: nothing is written
// until Persist. The input progress is not mutated.
func (a *Adapter) ApplyResult(p UserProgress, res drill.Result) (UserProgress, DrillResult) {
	now := a.clock.Now()

	total := res.Total
	if total < 1 {
		total = 1
	}
	reward := scoring.Reward(res.Correct, total, res.Elapsed)

	prev := statsOf(p)

	updated := p
	updated.XP = p.XP + reward
	updated.Level = scoring.LevelFromXP(updated.XP)
	updated.TotalDrills = p.TotalDrills + 1
	updated.CorrectAnswers = p.CorrectAnswers + res.Correct
	updated.TotalAnswers = p.TotalAnswers + res.Total

	today := dayString(now)
	yesterday := dayString(now.AddDate(0, 0, -1))
	outcome := scoring.EvaluateStreak(p.LastPlayedDate, today, yesterday)
	updated.Streak = scoring.NextStreak(p.Streak, outcome)
	updated.LastPlayedDate = today

	if res.Elapsed > 0 && (p.FastestTime == 0 || res.Elapsed < p.FastestTime) {
		updated.FastestTime = res.Elapsed
	}
	updated.AverageTime = (p.AverageTime*p.TotalDrills + res.Elapsed) / updated.TotalDrills

	updated.BookStats = make(map[string]BookStat, len(p.BookStats)+len(res.BookStats))
	for name, bs := range p.BookStats {
		updated.BookStats[name] = bs
	}
	for name, sc := range res.BookStats {
		bs := updated.BookStats[name]
		bs.Correct += sc.Correct
		bs.Total += sc.Total
		updated.BookStats[name] = bs
	}

	updated.Achievements = append([]string(nil), p.Achievements...)
	updated.Achievements = append(updated.Achievements,
		scoring.CheckUnlocks(p.Achievements, prev, statsOf(updated))...)

	entry := DrillResult{
		ID:             strconv.FormatInt(now.UnixMilli(), 10),
		Date:           now.Format(time.RFC3339),
		Mode:           res.Mode,
		Difficulty:     res.Difficulty,
		CorrectAnswers: res.Correct,
		TotalAnswers:   res.Total,
		TimeSeconds:    res.Elapsed,
		XPEarned:       reward,
	}
	return updated, entry
}

// Persist writes the updated progress and prepends the history entry, capped
// at HistoryCap. Re-persisting the same entry is a no-op on the history, so a
// retried write cannot duplicate it. Failures are logged, not raised.
func (a *Adapter) Persist(ctx context.Context, p UserProgress, entry DrillResult) {
	a.save(ctx, KeyProgress, p)

	history := a.LoadHistory(ctx)
	if len(history) > 0 && history[0].ID == entry.ID {
		return
	}
	history = append([]DrillResult{entry}, history...)
	if len(history) > HistoryCap {
		history = history[:HistoryCap]
	}
	a.save(ctx, KeyHistory, history)
}

// ResetAll removes progress, settings, and history in one shot.
func (a *Adapter) ResetAll(ctx context.Context) error {
	return a.storage.RemoveItems(ctx, KeyProgress, KeySettings, KeyHistory)
}

// statsOf projects a progress record onto the achievement inputs.
func statsOf(p UserProgress) scoring.Stats {
	return scoring.Stats{
		TotalDrills:    p.TotalDrills,
		CorrectAnswers: p.CorrectAnswers,
		TotalAnswers:   p.TotalAnswers,
		Streak:         p.Streak,
		Level:          p.Level,
	}
}

// loadInto unmarshals the value at key into dst. A malformed blob may leave
// dst partially written; the false return tells the caller to fall back to
// defaults.
func (a *Adapter) loadInto(ctx context.Context, key string, dst any) bool {
	raw, ok, err := a.storage.GetItem(ctx, key)
	if err != nil {
		a.log.Warn("load failed, using defaults", "key", key, "error", err)
		return true
	}
	if !ok {
		return true
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		a.log.Warn("corrupt record, using defaults", "key", key, "error", err)
		return false
	}
	return true
}

// save marshals v and writes it under key, logging any failure.
func (a *Adapter) save(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		a.log.Error("marshal failed", "key", key, "error", err)
		return
	}
	if err := a.storage.SetItem(ctx, key, string(raw)); err != nil {
		a.log.Warn("save failed", "key", key, "error", err)
	}
}
