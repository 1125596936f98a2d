package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Spok95/yard-terminal/internal/domain/yard"
	"github.com/Spok95/yard-terminal/internal/infra/storage"
)

// Load читает все снапшоты. Отсутствующий или битый снапшот заменяется значением по умолчанию.
func Load(ctx context.Context, store storage.Store, d Defaults, log *slog.Logger) *State {
	st := NewState(d)
	def := NewState(d)
	for _, k := range AllKeys {
		raw, ok, err := store.Load(ctx, string(k))
		if err != nil {
			log.Warn("snapshot load failed, using default", "key", k, "err", err)
			continue
		}
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, st.field(k)); err != nil {
			log.Warn("corrupt snapshot, using default", "key", k, "err", err)
			st.resetKey(k, def)
		}
	}
	st.Yard = yard.Normalize(st.Yard, d.Yard)
	if st.EIR.EIRPrefix == "" {
		st.EIR.EIRPrefix = d.EIR.EIRPrefix
	}
	return st
}

// saveKey — полная перезапись одного снапшота.
func saveKey(ctx context.Context, store storage.Store, st *State, k Key) error {
	raw, err := json.Marshal(st.field(k))
	if err != nil {
		return fmt.Errorf("marshal %s: %w", k, err)
	}
	if err := store.Save(ctx, string(k), raw); err != nil {
		return fmt.Errorf("save %s: %w", k, err)
	}
	return nil
}
