package dialog

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Spok95/yard-terminal/internal/infra/storage"
)

// Repo хранит состояние диалогов в том же хранилище снапшотов, что и площадка.
type Repo struct {
	store storage.Store
}

func NewRepo(store storage.Store) *Repo { return &Repo{store: store} }

func key(chatID int64) string { return "dialog:" + strconv.FormatInt(chatID, 10) }

func (r *Repo) Get(ctx context.Context, chatID int64) (*Item, error) {
	raw, ok, err := r.store.Load(ctx, key(chatID))
	if err != nil {
		return nil, err
	}
	item := &Item{ChatID: chatID, State: StateIdle, Payload: Payload{}}
	if !ok {
		return item, nil
	}
	// битое состояние считаем пустым
	if err := json.Unmarshal(raw, item); err != nil || item.State == "" {
		return &Item{ChatID: chatID, State: StateIdle, Payload: Payload{}}, nil
	}
	if item.Payload == nil {
		item.Payload = Payload{}
	}
	return item, nil
}

func (r *Repo) Set(ctx context.Context, chatID int64, state State, payload Payload) error {
	raw, err := json.Marshal(Item{ChatID: chatID, State: state, Payload: payload})
	if err != nil {
		return fmt.Errorf("marshal dialog: %w", err)
	}
	return r.store.Save(ctx, key(chatID), raw)
}

func (r *Repo) Reset(ctx context.Context, chatID int64) error {
	return r.store.Delete(ctx, key(chatID))
}

// GetString Helper для безопасного чтения строк из payload
func GetString(p Payload, key string) (string, bool) {
	v, ok := p[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Decode перекладывает значение payload (после JSON это map/slice) в типизированную структуру.
func Decode(p Payload, key string, dst any) bool {
	v, ok := p[key]
	if !ok {
		return false
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}
