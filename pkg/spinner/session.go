package spinner

import (
	"fmt"

	"github.com/classroom-tools/classpick/internal/utils"
	"github.com/classroom-tools/classpick/pkg/store"
)

// BaseCategory is one configured category: a name plus its immutable base
// item labels, in configuration order.
type BaseCategory struct {
	Name  string
	Items []string
}

// Category is the live state of one category within a session. Pool is
// the current spinnable set; spin, shuffle and add mutate it directly
// without re-running the exclusion filter.
type Category struct {
	Name string
	Base []string
	Pool []string
}

// Settings are the process-wide persisted spinner flags.
type Settings struct {
	ExcludePicked bool
	ShowHistory   bool
}

// Session owns the category → pool mapping, the active category and the
// persisted settings, and exposes every operation the command layer
// consumes. All persistence is synchronous and best-effort: a store
// failure is logged and swallowed, the in-memory state stays
// authoritative for the rest of the session.
type Session struct {
	store store.Store
	rng   Source

	categories map[string]*Category
	order      []string

	active     string
	settings   Settings
	additions  map[string][]string
	exclusions map[string][]string
	history    map[string][]string
}

// New builds a session from the configured categories, merging in
// persisted additions, exclusions, history and settings from the store.
// Pools are derived once here; an invalid persisted active category falls
// back to the first configured one.
func New(cats []BaseCategory, st store.Store, rng Source) *Session {
	s := &Session{
		store:      st,
		rng:        rng,
		categories: make(map[string]*Category, len(cats)),
		settings:   Settings{ExcludePicked: false, ShowHistory: true},
		additions:  make(map[string][]string),
		exclusions: make(map[string][]string),
		history:    make(map[string][]string),
	}
	s.loadPersisted()

	for _, c := range cats {
		base := make([]string, len(c.Items))
		copy(base, c.Items)
		s.categories[c.Name] = &Category{
			Name: c.Name,
			Base: base,
			Pool: DerivePool(base, s.additions[c.Name], s.exclusions[c.Name]),
		}
		s.order = append(s.order, c.Name)
	}

	// Persisted keys referencing categories gone from the configuration
	// are tolerated: they simply never resolve to a live category.
	if _, ok := s.categories[s.active]; !ok {
		s.active = ""
		if len(s.order) > 0 {
			s.active = s.order[0]
		}
	}
	return s
}

func (s *Session) loadPersisted() {
	s.readInto(keyAdditions, &s.additions)
	s.readInto(keyExclusions, &s.exclusions)
	s.readInto(keyHistory, &s.history)
	s.readInto(keyActiveCategory, &s.active)

	var b bool
	if found := s.readInto(keyExcludePicked, &b); found {
		s.settings.ExcludePicked = b
	}
	if found := s.readInto(keyShowHistory, &b); found {
		s.settings.ShowHistory = b
	}

	if s.additions == nil {
		s.additions = make(map[string][]string)
	}
	if s.exclusions == nil {
		s.exclusions = make(map[string][]string)
	}
	if s.history == nil {
		s.history = make(map[string][]string)
	}
}

// readInto reads one persisted key, substituting the current value on
// failure so a corrupt or unreadable store never takes the session down.
func (s *Session) readInto(key string, out any) bool {
	found, err := s.store.Get(key, out)
	if err != nil {
		utils.Log.WithError(err).Warnf("could not read %s, using defaults", key)
		return false
	}
	return found
}

func (s *Session) persist(key string, value any) {
	if err := s.store.Set(key, value); err != nil {
		utils.Log.WithError(err).Warnf("could not persist %s", key)
	}
}

// Categories returns the live categories in configuration order.
func (s *Session) Categories() []*Category {
	out := make([]*Category, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.categories[name])
	}
	return out
}

// Category returns the live category with the given name.
func (s *Session) Category(name string) (*Category, bool) {
	c, ok := s.categories[name]
	return c, ok
}

// ActiveName returns the name of the currently selected category. Empty
// only when no categories are configured.
func (s *Session) ActiveName() string {
	return s.active
}

// Settings returns the current persisted spinner flags.
func (s *Session) Settings() Settings {
	return s.settings
}

func (s *Session) SetExcludePicked(v bool) {
	s.settings.ExcludePicked = v
	s.persist(keyExcludePicked, v)
}

func (s *Session) SetShowHistory(v bool) {
	s.settings.ShowHistory = v
	s.persist(keyShowHistory, v)
}

// SelectCategory switches the active category and persists the
// selection. Pools are not touched.
func (s *Session) SelectCategory(name string) error {
	if _, ok := s.categories[name]; !ok {
		return fmt.Errorf("unknown category: %s", name)
	}
	s.active = name
	s.persist(keyActiveCategory, name)
	return nil
}

// Spin spins the active category.
func (s *Session) Spin() (string, bool) {
	label, ok, _ := s.SpinCategory(s.active)
	return label, ok
}

// SpinCategory picks one item uniformly at random from the category's
// pool and appends it to the category's history. With exclude-on-pick
// active, the instance at the picked index is removed from the live pool
// and the label is added to the persisted exclusion set; removal is
// positional, exclusion is by value, so after a rebuild every occurrence
// of a duplicated label is gone even though only one was removed live.
// An empty pool yields ok=false rather than an error.
func (s *Session) SpinCategory(name string) (label string, ok bool, err error) {
	c, found := s.categories[name]
	if !found {
		return "", false, fmt.Errorf("unknown category: %s", name)
	}
	if len(c.Pool) == 0 {
		return "", false, nil
	}

	i := s.rng.IntN(len(c.Pool))
	label = c.Pool[i]

	if s.settings.ExcludePicked {
		c.Pool = append(c.Pool[:i], c.Pool[i+1:]...)
		s.exclude(name, label)
	}

	s.history[name] = append(s.history[name], label)
	s.persist(keyHistory, s.history)
	return label, true, nil
}

// exclude adds a label to a category's persisted exclusion set.
func (s *Session) exclude(name, label string) {
	for _, x := range s.exclusions[name] {
		if x == label {
			return
		}
	}
	s.exclusions[name] = append(s.exclusions[name], label)
	s.persist(keyExclusions, s.exclusions)
}

// ShuffleCategory permutes the category's live pool in place. Membership,
// history and exclusions are untouched.
func (s *Session) ShuffleCategory(name string) error {
	c, ok := s.categories[name]
	if !ok {
		return fmt.Errorf("unknown category: %s", name)
	}
	ShufflePool(c.Pool, s.rng)
	return nil
}

// Reset resets the active category.
func (s *Session) Reset() {
	_ = s.ResetCategory(s.active)
}

// ResetCategory discards the category's persisted exclusions and history
// and rebuilds its pool from base plus current additions. Additions are
// intentionally retained. Other categories are unaffected.
func (s *Session) ResetCategory(name string) error {
	c, ok := s.categories[name]
	if !ok {
		return fmt.Errorf("unknown category: %s", name)
	}
	delete(s.exclusions, name)
	delete(s.history, name)
	s.persist(keyExclusions, s.exclusions)
	s.persist(keyHistory, s.history)
	c.Pool = DerivePool(c.Base, s.additions[name], nil)
	return nil
}

// AddItem appends a label to the category's persisted additions and to
// the live pool, so it is immediately spinnable. A label that trims to
// the empty string is rejected as a no-op (added=false). Duplicates are
// permitted and treated as distinct pool entries.
func (s *Session) AddItem(name, label string) (added bool, err error) {
	c, ok := s.categories[name]
	if !ok {
		return false, fmt.Errorf("unknown category: %s", name)
	}
	label = utils.TrimLabel(label)
	if label == "" {
		return false, nil
	}
	s.additions[name] = append(s.additions[name], label)
	s.persist(keyAdditions, s.additions)
	c.Pool = append(c.Pool, label)
	return true, nil
}

// Additions returns the persisted additions for a category, oldest first.
func (s *Session) Additions(name string) []string {
	return s.copyLabels(s.additions[name])
}

// History returns the category's past picks, oldest first. Reversing for
// most-recent-first display is the caller's concern.
func (s *Session) History(name string) []string {
	return s.copyLabels(s.history[name])
}

func (s *Session) copyLabels(src []string) []string {
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// ClearHistory removes the category's entire history log. The key is
// dropped from the mapping rather than left as an empty list; readers
// treat both the same.
func (s *Session) ClearHistory(name string) error {
	if _, ok := s.categories[name]; !ok {
		return fmt.Errorf("unknown category: %s", name)
	}
	delete(s.history, name)
	s.persist(keyHistory, s.history)
	return nil
}

// ExportSnapshot returns base plus additions for every category in
// configuration order. Exclusions and live-pool divergence are ignored:
// the snapshot is the sharable configuration, not the session state.
func (s *Session) ExportSnapshot() []BaseCategory {
	out := make([]BaseCategory, 0, len(s.order))
	for _, name := range s.order {
		c := s.categories[name]
		items := make([]string, 0, len(c.Base)+len(s.additions[name]))
		items = append(items, c.Base...)
		items = append(items, s.additions[name]...)
		out = append(out, BaseCategory{Name: name, Items: items})
	}
	return out
}
