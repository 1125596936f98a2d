package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spok95/yard-terminal/internal/domain/movements"
)

func TestComputeStats(t *testing.T) {
	st := NewState(DefaultDefaults())
	s := ComputeStats(st, t0, time.UTC)
	assert.Equal(t, 450, s.Capacity)
	assert.Equal(t, "0.0", s.Occupancy)
	assert.Zero(t, s.AvgStayDays)

	mustGateIn(t, st, fclRequest("MSKU", "305438", "8"))
	mustGateIn(t, st, lclRequest("RN-1", "Acme"))

	s = ComputeStats(st, t0.Add(36*time.Hour), time.UTC)
	assert.Equal(t, 2, s.InStock)
	assert.Equal(t, "0.4", s.Occupancy)
	assert.InDelta(t, 0.444, s.OccupancyPct, 0.001)
	assert.Equal(t, 1.5, s.AvgStayDays)
	assert.Equal(t, 0, s.MovementsToday, "gate-ins happened the day before")

	s = ComputeStats(st, t0.Add(time.Hour), time.UTC)
	assert.Equal(t, 2, s.MovementsToday)
}

func TestStorageReport(t *testing.T) {
	st := NewState(DefaultDefaults())
	mustGateIn(t, st, fclRequest("MSKU", "305438", "8"))
	mustGateIn(t, st, lclRequest("RN-1", "Globex"))

	rows := Storage(st, "", t0.Add(10*24*time.Hour), time.UTC)
	require.Len(t, rows, 2)
	assert.Equal(t, 11, rows[0].Days)
	assert.True(t, rows[0].Overdue)
	assert.Equal(t, "A-01-1-1", rows[0].Position)
	assert.Equal(t, 24500.0, rows[0].Weight)
	assert.Equal(t, 850.0, rows[1].Weight, "part loads report cargo weight")

	rows = Storage(st, "globex", t0, time.UTC)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Days)
	assert.False(t, rows[0].Overdue)
}

func TestHistoryFilters(t *testing.T) {
	st := NewState(DefaultDefaults())
	in := mustGateIn(t, st, fclRequest("MSKU", "305438", "8"))
	mustGateIn(t, st, fclRequest("CSQU", "305438", "3"))
	_, err := GateOut(st, GateOutRequest{ContainerID: in.Container.ID, Transport: transport(), ExitDate: t0.Add(time.Hour)})
	require.NoError(t, err)

	assert.Len(t, History(st, "", ""), 3)
	assert.Len(t, History(st, "msku", ""), 2)
	out := History(st, "", movements.KindGateOut)
	require.Len(t, out, 1)
	assert.Equal(t, in.Container.ID, out[0].ContainerID)
}
