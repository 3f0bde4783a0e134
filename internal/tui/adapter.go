package tui

import (
	"grimm.is/palisade/internal/history"
	"grimm.is/palisade/internal/ufw"
)

// LocalBackend serves the console from an in-process repository.
type LocalBackend struct {
	repo     *ufw.Repository
	profiles []ufw.Profile
	store    *history.Store // nil when history is disabled
}

func NewLocalBackend(repo *ufw.Repository, profiles []ufw.Profile, store *history.Store) *LocalBackend {
	return &LocalBackend{repo: repo, profiles: profiles, store: store}
}

func (b *LocalBackend) Snapshot() (ufw.Snapshot, bool)   { return b.repo.Snapshot() }
func (b *LocalBackend) Refresh() (ufw.Snapshot, error)   { return b.repo.Refresh() }
func (b *LocalBackend) SetEnabled(enabled bool) error    { return b.repo.SetEnabled(enabled) }
func (b *LocalBackend) AddRule(spec ufw.RuleSpec) error  { return b.repo.AddRule(spec) }
func (b *LocalBackend) DeleteRule(ordinal int) error     { return b.repo.DeleteRule(ordinal) }
func (b *LocalBackend) ApplyProfile(p ufw.Profile) error { return b.repo.ApplyProfile(p) }

func (b *LocalBackend) Profiles() []ufw.Profile { return b.profiles }

func (b *LocalBackend) History(limit int) ([]history.Record, error) {
	if b.store == nil {
		return nil, nil
	}
	return b.store.List(limit)
}
