package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Spok95/yard-terminal/internal/infra/storage"
)

type EventKind string

const (
	EventGateIn      EventKind = "gate_in"
	EventGateOut     EventKind = "gate_out"
	EventRelocation  EventKind = "relocation"
	EventCorrection  EventKind = "correction"
	EventRemoved     EventKind = "container_removed"
	EventMasterData  EventKind = "master_data"
	EventSettings    EventKind = "settings"
	EventDocuments   EventKind = "documents"
	EventAuth        EventKind = "auth"
	EventSnapshot    EventKind = "snapshot"
	EventSnapshotErr EventKind = "snapshot_failed"
)

// Event — уведомление наблюдателям после изменения состояния.
type Event struct {
	Kind    EventKind
	Key     Key
	Err     error
	GateIn  *GateInResult
	GateOut *GateOutResult
	Payload any
}

type Observer func(Event)

type Options struct {
	Defaults Defaults
	Location *time.Location
	Now      func() time.Time
}

// Session владеет состоянием площадки: один писатель, снапшоты после каждой мутации.
type Session struct {
	mu        sync.Mutex
	st        *State
	store     storage.Store
	log       *slog.Logger
	now       func() time.Time
	loc       *time.Location
	obsMu     sync.RWMutex
	observers []Observer
}

func Open(ctx context.Context, store storage.Store, log *slog.Logger, opts Options) *Session {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Defaults.Yard.Blocks == nil {
		opts.Defaults = DefaultDefaults()
	}
	st := Load(ctx, store, opts.Defaults, log)
	log.Info("yard state loaded",
		"containers", len(st.Containers),
		"movements", len(st.Movements),
		"blocks", st.Yard.Blocks)
	return &Session{st: st, store: store, log: log, now: opts.Now, loc: opts.Location}
}

func (s *Session) Subscribe(o Observer) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	s.observers = append(s.observers, o)
}

func (s *Session) notify(events []Event) {
	s.obsMu.RLock()
	obs := append([]Observer(nil), s.observers...)
	s.obsMu.RUnlock()
	for _, e := range events {
		for _, o := range obs {
			o(e)
		}
	}
}

func (s *Session) Now() time.Time           { return s.now().In(s.loc) }
func (s *Session) Location() *time.Location { return s.loc }

// mutate выполняет сценарий под замком и сохраняет изменённые снапшоты.
// Ошибка записи не откатывает состояние: она логируется и уходит наблюдателям.
func (s *Session) mutate(ctx context.Context, keys []Key, fn func(st *State) (Event, error)) error {
	s.mu.Lock()
	ev, err := fn(s.st)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	events := []Event{ev}
	for _, k := range keys {
		if werr := saveKey(ctx, s.store, s.st, k); werr != nil {
			s.log.Error("snapshot write failed", "key", k, "err", werr)
			events = append(events, Event{Kind: EventSnapshotErr, Key: k, Err: werr})
			continue
		}
		events = append(events, Event{Kind: EventSnapshot, Key: k})
	}
	s.mu.Unlock()
	s.notify(events)
	return nil
}

// View даёт читателю копию состояния.
func (s *Session) View() *State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.Clone()
}
