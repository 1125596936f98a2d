package app

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Spok95/yard-terminal/internal/domain/containers"
	"github.com/Spok95/yard-terminal/internal/domain/movements"
	"github.com/Spok95/yard-terminal/internal/domain/yard"
)

type Stats struct {
	InStock        int     `json:"inStock"`
	Capacity       int     `json:"capacity"`
	OccupancyPct   float64 `json:"occupancyPct"`
	Occupancy      string  `json:"occupancy"` // "%.1f"
	MovementsToday int     `json:"movementsToday"`
	AvgStayDays    float64 `json:"avgStayDays"`
}

func ComputeStats(st *State, now time.Time, loc *time.Location) Stats {
	if loc == nil {
		loc = time.UTC
	}
	in := containers.InYard(st.Containers)
	capacity := len(st.Slots())
	s := Stats{
		InStock:        len(in),
		Capacity:       capacity,
		Occupancy:      "0.0",
		MovementsToday: len(movements.On(st.Movements, now, loc)),
	}
	if capacity > 0 {
		s.OccupancyPct = float64(len(in)) / float64(capacity) * 100
		s.Occupancy = fmt.Sprintf("%.1f", s.OccupancyPct)
	}
	if len(in) > 0 {
		var total time.Duration
		for _, c := range in {
			total += containers.StayDuration(c.EntryDate, now)
		}
		avg := total.Hours() / 24 / float64(len(in))
		s.AvgStayDays = math.Round(avg*10) / 10
	}
	return s
}

// StorageRow — строка операционного отчёта по хранению.
type StorageRow struct {
	Container containers.Container `json:"container"`
	Position  string               `json:"position"`
	Days      int                  `json:"days"`
	Overdue   bool                 `json:"overdue"`
	Weight    float64              `json:"weight"`
}

// Storage — контейнеры в площадке с днями хранения, фильтр по id/клиенту/BL.
func Storage(st *State, q string, now time.Time, loc *time.Location) []StorageRow {
	list := containers.Search(containers.InYard(st.Containers), q)
	out := make([]StorageRow, 0, len(list))
	for _, c := range list {
		days := containers.DaysInYard(c.EntryDate, now, loc)
		out = append(out, StorageRow{
			Container: c,
			Position:  yard.Position(c.Location),
			Days:      days,
			Overdue:   containers.Overdue(days),
			Weight:    c.DisplayWeight(),
		})
	}
	return out
}

// History — журнал, опционально по подстроке id контейнера и типу.
func History(st *State, q string, kind movements.Kind) []movements.Movement {
	q = strings.ToUpper(strings.TrimSpace(q))
	var out []movements.Movement
	for _, m := range st.Movements {
		if kind != "" && m.Type != kind {
			continue
		}
		if q != "" && !strings.Contains(strings.ToUpper(m.ContainerID), q) {
			continue
		}
		out = append(out, m)
	}
	return out
}
