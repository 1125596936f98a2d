package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spok95/yard-terminal/internal/domain/movements"
)

func TestUpdateContainerLogsCorrection(t *testing.T) {
	st := NewState(DefaultDefaults())
	in := mustGateIn(t, st, fclRequest("MSKU", "305438", "8"))

	client := "  Globex  "
	tare := 2300.0
	c, mv, err := UpdateContainer(st, in.Container.ID, ContainerPatch{Client: &client, Tare: &tare}, t0)
	require.NoError(t, err)
	assert.Equal(t, "Globex", c.Client)
	assert.Equal(t, 2300.0, c.Tare)
	assert.Equal(t, in.Container.Location, c.Location)
	assert.Equal(t, movements.KindCorrection, mv.Type)
	assert.Equal(t, movements.KindCorrection, st.Movements[0].Type)

	neg := -1.0
	_, _, err = UpdateContainer(st, in.Container.ID, ContainerPatch{Weight: &neg}, t0)
	assert.ErrorIs(t, err, ErrInvalid)

	_, _, err = UpdateContainer(st, "NOPE", ContainerPatch{}, t0)
	assert.ErrorIs(t, err, ErrNotInYard)
}

func TestRemoveContainer(t *testing.T) {
	st := NewState(DefaultDefaults())
	in := mustGateIn(t, st, fclRequest("MSKU", "305438", "8"))

	require.NoError(t, RemoveContainer(st, in.Container.ID))
	assert.Empty(t, st.Containers)
	assert.Len(t, st.Movements, 1, "history survives manual removal")
	assert.ErrorIs(t, RemoveContainer(st, in.Container.ID), ErrNotFound)
}
