// Package challenge implements the random challenge panel: a uniform
// pick from a configured list, with its own persisted pick log.
package challenge

import (
	"github.com/classroom-tools/classpick/internal/utils"
	"github.com/classroom-tools/classpick/pkg/spinner"
	"github.com/classroom-tools/classpick/pkg/store"
)

const historyKey = "challenge.history"

type Picker struct {
	items []string
	store store.Store
	rng   spinner.Source
}

func NewPicker(items []string, st store.Store, rng spinner.Source) *Picker {
	return &Picker{items: items, store: st, rng: rng}
}

// Pick returns a uniformly random challenge and records it. ok is false
// when no challenges are configured.
func (p *Picker) Pick() (string, bool) {
	if len(p.items) == 0 {
		return "", false
	}
	picked := p.items[p.rng.IntN(len(p.items))]

	var log []string
	if _, err := p.store.Get(historyKey, &log); err != nil {
		utils.Log.WithError(err).Warnf("could not read %s", historyKey)
	}
	log = append(log, picked)
	if err := p.store.Set(historyKey, log); err != nil {
		utils.Log.WithError(err).Warnf("could not persist %s", historyKey)
	}
	return picked, true
}

// History returns past challenge picks, oldest first.
func (p *Picker) History() []string {
	var log []string
	if _, err := p.store.Get(historyKey, &log); err != nil {
		utils.Log.WithError(err).Warnf("could not read %s", historyKey)
	}
	return log
}

// ClearHistory drops the challenge pick log.
func (p *Picker) ClearHistory() {
	if err := p.store.Remove(historyKey); err != nil {
		utils.Log.WithError(err).Warnf("could not remove %s", historyKey)
	}
}
