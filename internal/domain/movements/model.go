package movements

import (
	"slices"
	"time"

	"github.com/Spok95/yard-terminal/internal/domain/drivers"
)

type Kind string

const (
	KindGateIn     Kind = "Gate-In"
	KindGateOut    Kind = "Gate-Out"
	KindRelocation Kind = "Relocation"
	KindCorrection Kind = "Correction"
)

// Movement — запись журнала. Журнал хранится от новых к старым.
type Movement struct {
	ID          string    `json:"id"`
	ContainerID string    `json:"containerId"`
	Type        Kind      `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
	Details     Details   `json:"details"`
}

// Prepend добавляет запись в начало журнала.
func Prepend(log []Movement, m Movement) []Movement {
	return append([]Movement{m}, log...)
}

// ForContainer — движения контейнера в хронологическом порядке.
func ForContainer(log []Movement, containerID string) []Movement {
	var out []Movement
	for _, m := range log {
		if m.ContainerID == containerID {
			out = append(out, m)
		}
	}
	slices.Reverse(out)
	slices.SortStableFunc(out, func(a, b Movement) int { return a.Timestamp.Compare(b.Timestamp) })
	return out
}

// On — движения за календарный день в часовом поясе loc.
func On(log []Movement, day time.Time, loc *time.Location) []Movement {
	y, m, d := day.In(loc).Date()
	var out []Movement
	for _, mv := range log {
		yy, mm, dd := mv.Timestamp.In(loc).Date()
		if yy == y && mm == m && dd == d {
			out = append(out, mv)
		}
	}
	return out
}

func Transport(id, containerID string, kind Kind, ts time.Time, t drivers.TransportInfo) Movement {
	return Movement{ID: id, ContainerID: containerID, Type: kind, Timestamp: ts, Details: TransportDetails(t)}
}
