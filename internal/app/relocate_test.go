package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spok95/yard-terminal/internal/domain/containers"
	"github.com/Spok95/yard-terminal/internal/domain/movements"
	"github.com/Spok95/yard-terminal/internal/domain/yard"
)

func TestRelocateToEmptySlot(t *testing.T) {
	st := NewState(DefaultDefaults())
	req := fclRequest("MSKU", "305438", "8")
	req.Slot = at("A", "01", 1, 1)
	in := mustGateIn(t, st, req)

	now := t0.Add(2 * time.Hour)
	mv, err := Relocate(st, RelocateRequest{ContainerID: in.Container.ID, To: *at("B", "03", 2, 1)}, now)
	require.NoError(t, err)

	assert.Equal(t, movements.KindRelocation, mv.Type)
	assert.Equal(t, now, mv.Timestamp)
	require.NotNil(t, mv.Details.Relocation)
	assert.Equal(t, "A-01-1-1", mv.Details.Relocation.From)
	assert.Equal(t, "B-03-2-1", mv.Details.Relocation.To)
	assert.Equal(t, DefaultRelocationReason, mv.Details.Relocation.Reason)
	assert.Nil(t, mv.Details.Transport)

	i := containers.FindIn(st.Containers, in.Container.ID)
	assert.Equal(t, yard.Location{Block: "B", Bay: "03", Row: 2, Tier: 1}, st.Containers[i].Location)
	assert.Equal(t, in.Container.Client, st.Containers[i].Client)

	assert.Len(t, st.Movements, 2)
	assert.Equal(t, movements.KindRelocation, st.Movements[0].Type)
}

func TestRelocateRejectsOccupiedSlot(t *testing.T) {
	st := NewState(DefaultDefaults())
	a := fclRequest("MSKU", "305438", "8")
	a.Slot = at("A", "01", 1, 1)
	b := fclRequest("CSQU", "305438", "3")
	b.Slot = at("B", "03", 2, 1)
	mustGateIn(t, st, a)
	mustGateIn(t, st, b)

	_, err := Relocate(st, RelocateRequest{ContainerID: "MSKU305438-8", To: *b.Slot}, t0)
	require.ErrorIs(t, err, ErrSlotOccupied)

	i := containers.FindIn(st.Containers, "MSKU305438-8")
	assert.Equal(t, *a.Slot, st.Containers[i].Location)
	assert.Len(t, st.Movements, 2, "no relocation is logged")
}

func TestRelocateErrors(t *testing.T) {
	st := NewState(DefaultDefaults())
	_, err := Relocate(st, RelocateRequest{ContainerID: "X", To: *at("A", "01", 1, 1)}, t0)
	assert.ErrorIs(t, err, ErrNotInYard)

	in := mustGateIn(t, st, fclRequest("MSKU", "305438", "8"))
	_, err = Relocate(st, RelocateRequest{ContainerID: in.Container.ID, To: *at("Z", "01", 1, 1)}, t0)
	assert.ErrorIs(t, err, ErrUnknownSlot)

	mv, err := Relocate(st, RelocateRequest{ContainerID: in.Container.ID, To: *at("A", "03", 1, 1), Reason: "Consolidación"}, t0)
	require.NoError(t, err)
	assert.Equal(t, "Consolidación", mv.Details.Relocation.Reason)
}
