package ufw

import (
	"strconv"
	"strings"
	"sync"

	"grimm.is/palisade/internal/clock"
	"grimm.is/palisade/internal/logging"
	"grimm.is/palisade/internal/privexec"
)

// Recorder receives a record of every mutating tool invocation. The history
// store implements this; a nil recorder disables recording.
type Recorder interface {
	Record(op string, args []string, exitCode int, output string)
}

// Repository owns the one cached Snapshot of firewall state and keeps it in
// sync with the live tool. All operations are serialized by an internal
// mutex: ufw is not safe for concurrent invocation, and callers must never
// observe a half-updated status/ruleset pair.
//
// Mutating operations never retry and never commit a partial refresh: on any
// failure the previous snapshot stays in place, so the displayed state can
// only ever lag, never silently diverge.
type Repository struct {
	mu       sync.Mutex
	exec     privexec.Executor
	log      *logging.Logger
	recorder Recorder

	snap    Snapshot
	hasSnap bool
}

// NewRepository creates a repository backed by the given executor.
func NewRepository(exec privexec.Executor, log *logging.Logger) *Repository {
	if log == nil {
		log = logging.Default()
	}
	return &Repository{
		exec: exec,
		log:  log.WithComponent("repo"),
	}
}

// WithRecorder attaches an operation recorder.
func (r *Repository) WithRecorder(rec Recorder) *Repository {
	r.recorder = rec
	return r
}

// Snapshot returns the last committed snapshot. ok is false before the
// first successful refresh.
func (r *Repository) Snapshot() (snap Snapshot, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snap, r.hasSnap
}

// Refresh re-reads status and rule listing from the tool and replaces the
// cached snapshot atomically.
func (r *Repository) Refresh() (Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.refreshLocked(); err != nil {
		return Snapshot{}, err
	}
	return r.snap, nil
}

// refreshLocked performs the two read queries and commits both parses
// together, or nothing.
func (r *Repository) refreshLocked() error {
	verbose, err := r.exec.Read("status", "verbose")
	if err != nil {
		return err
	}
	if !verbose.OK() {
		return &ToolError{Args: []string{"status", "verbose"}, ExitCode: verbose.ExitCode, Stderr: verbose.Stderr, Stdout: verbose.Stdout}
	}

	numbered, err := r.exec.Read("status", "numbered")
	if err != nil {
		return err
	}
	if !numbered.OK() {
		return &ToolError{Args: []string{"status", "numbered"}, ExitCode: numbered.ExitCode, Stderr: numbered.Stderr, Stdout: numbered.Stdout}
	}

	next := Snapshot{
		Status: ParseStatus(verbose.Stdout),
		Rules:  ParseRules(numbered.Stdout),
		Taken:  clock.Now(),
	}
	if r.hasSnap && r.log.GetLevel() <= logging.LevelDebug {
		if diff, err := DiffRules(r.snap.Rules, next.Rules); err == nil && diff != "" {
			r.log.Debug("ruleset changed", "diff", diff)
		}
	}
	r.snap = next
	r.hasSnap = true
	r.log.Debug("snapshot refreshed", "enabled", r.snap.Status.Enabled, "rules", len(r.snap.Rules))
	return nil
}

// SetEnabled enables or disables the firewall, then refreshes.
func (r *Repository) SetEnabled(enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	args := []string{"disable"}
	op := "disable"
	if enabled {
		// --force skips ufw's "may disrupt ssh" confirmation prompt
		args = []string{"--force", "enable"}
		op = "enable"
	}
	return r.mutateLocked(op, args)
}

// AddRule validates the spec client-side and, only if it is well formed,
// issues the privileged add followed by a refresh.
func (r *Repository) AddRule(spec RuleSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mutateLocked("add_rule", spec.Args())
}

// DeleteRule deletes the rule at the given 1-based ordinal. The ordinal is
// checked against the last refreshed snapshot; refresh first if staleness is
// a concern.
func (r *Repository) DeleteRule(ordinal int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// The tool's numbering can have gaps, so membership is what matters,
	// not the 1..len range.
	found := false
	for _, rule := range r.snap.Rules {
		if rule.Ordinal == ordinal {
			found = true
			break
		}
	}
	if !found {
		return &NotFoundError{Ordinal: ordinal, Count: len(r.snap.Rules)}
	}
	return r.mutateLocked("delete_rule", []string{"--force", "delete", strconv.Itoa(ordinal)})
}

// ApplyProfile applies a quick profile: its specs in declared order, or the
// reset command. All specs are validated before the first privileged call.
func (r *Repository) ApplyProfile(p Profile) error {
	if p.Reset {
		return r.Reset()
	}

	for _, spec := range p.Specs {
		if err := spec.Validate(); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, spec := range p.Specs {
		res, err := r.exec.Privileged(spec.Args()...)
		if err != nil {
			r.record("profile:"+p.Name, spec.Args(), -1, err.Error())
			return err
		}
		r.record("profile:"+p.Name, spec.Args(), res.ExitCode, res.Combined())
		if !res.OK() {
			return &ToolError{Args: spec.Args(), ExitCode: res.ExitCode, Stderr: res.Stderr, Stdout: res.Stdout}
		}
	}

	r.log.Audit("apply_profile", "ufw", map[string]any{"profile": p.Name, "rules": len(p.Specs)})
	return r.refreshLocked()
}

// Reset wipes all rules and disables the firewall, then refreshes.
func (r *Repository) Reset() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mutateLocked("reset", []string{"--force", "reset"})
}

// mutateLocked runs one privileged command and refreshes on success. The
// caller holds the mutex. On failure the cached snapshot is untouched.
func (r *Repository) mutateLocked(op string, args []string) error {
	res, err := r.exec.Privileged(args...)
	if err != nil {
		r.record(op, args, -1, err.Error())
		return err
	}
	r.record(op, args, res.ExitCode, res.Combined())

	if !res.OK() {
		return &ToolError{Args: args, ExitCode: res.ExitCode, Stderr: res.Stderr, Stdout: res.Stdout}
	}

	r.log.Audit(op, "ufw", map[string]any{"argv": strings.Join(args, " ")})
	return r.refreshLocked()
}

func (r *Repository) record(op string, args []string, exitCode int, output string) {
	if r.recorder == nil {
		return
	}
	r.recorder.Record(op, args, exitCode, output)
}
