package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spok95/yard-terminal/internal/domain/containers"
	"github.com/Spok95/yard-terminal/internal/domain/internments"
	"github.com/Spok95/yard-terminal/internal/domain/movements"
	"github.com/Spok95/yard-terminal/internal/domain/yard"
)

func TestGateInThenGateOut(t *testing.T) {
	st := NewState(DefaultDefaults())
	req := fclRequest("MSKU", "305438", "8")
	req.Slot = at("B", "03", 2, 1)
	in := mustGateIn(t, st, req)

	exit := t0.Add(50*time.Hour + 5*time.Minute)
	out, err := GateOut(st, GateOutRequest{ContainerID: in.Container.ID, Transport: transport(), ExitDate: exit})
	require.NoError(t, err)

	assert.Equal(t, containers.StatusOut, out.Container.Status)
	require.NotNil(t, out.Container.ExitDate)
	assert.Equal(t, exit, *out.Container.ExitDate)
	assert.Equal(t, "2d 2h 5m", out.Stay)

	hist := movements.ForContainer(st.Movements, in.Container.ID)
	require.Len(t, hist, 2)
	assert.Equal(t, movements.KindGateIn, hist[0].Type)
	assert.Equal(t, movements.KindGateOut, hist[1].Type)

	slot, ok := yard.At(st.Slots(), *req.Slot)
	require.True(t, ok)
	assert.True(t, slot.Free(), "slot is released once the container leaves")
	assert.Len(t, st.Drivers, 1)
}

func TestGateOutRequiresContainerInYard(t *testing.T) {
	st := NewState(DefaultDefaults())
	_, err := GateOut(st, GateOutRequest{ContainerID: "NOPE", Transport: transport(), ExitDate: t0})
	assert.ErrorIs(t, err, ErrNotInYard)

	in := mustGateIn(t, st, fclRequest("MSKU", "305438", "8"))
	_, err = GateOut(st, GateOutRequest{ContainerID: in.Container.ID, Transport: transport(), ExitDate: t0})
	require.NoError(t, err)
	_, err = GateOut(st, GateOutRequest{ContainerID: in.Container.ID, Transport: transport(), ExitDate: t0})
	assert.ErrorIs(t, err, ErrNotInYard, "a gated-out container cannot leave twice")
}

func TestGateOutValidationSkipsCompany(t *testing.T) {
	st := NewState(DefaultDefaults())
	in := mustGateIn(t, st, fclRequest("MSKU", "305438", "8"))

	tr := transport()
	tr.Company = ""
	_, err := GateOut(st, GateOutRequest{ContainerID: in.Container.ID, Transport: tr, ExitDate: t0.Add(time.Hour)})
	require.NoError(t, err)

	in2 := mustGateIn(t, st, fclRequest("CSQU", "305438", "3"))
	tr.TruckPlate = "X"
	_, err = GateOut(st, GateOutRequest{ContainerID: in2.Container.ID, Transport: tr})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"truckPlate", "exitDate"}, verr.Fields)
}

func TestGateOutReleasesInternmentOnExactMatchOnly(t *testing.T) {
	st := NewState(DefaultDefaults())
	st.Internments = []internments.Internment{{ID: "int-1", ContainerID: "MSKU305438", Status: internments.Scheduled}}

	in := mustGateIn(t, st, fclRequest("MSKU", "305438", "8"))
	assert.Equal(t, internments.InYard, st.Internments[0].Status)

	out, err := GateOut(st, GateOutRequest{ContainerID: in.Container.ID, Transport: transport(), ExitDate: t0.Add(time.Hour)})
	require.NoError(t, err)
	assert.Empty(t, out.Internment, "prefix match is not enough on gate-out")
	assert.Equal(t, internments.InYard, st.Internments[0].Status)

	st.Internments = append(st.Internments, internments.Internment{ID: "int-2", ContainerID: "CSQU305438-3", Status: internments.InYard})
	in2 := mustGateIn(t, st, fclRequest("CSQU", "305438", "3"))
	out, err = GateOut(st, GateOutRequest{ContainerID: in2.Container.ID, Transport: transport(), ExitDate: t0.Add(time.Hour)})
	require.NoError(t, err)
	assert.Equal(t, "int-2", out.Internment)
	assert.Equal(t, internments.Released, st.Internments[1].Status)
}

func TestGateOutAppliesCorrections(t *testing.T) {
	st := NewState(DefaultDefaults())
	in := mustGateIn(t, st, fclRequest("MSKU", "305438", "8"))

	bl := "BL-CORR"
	w := 25000.0
	out, err := GateOut(st, GateOutRequest{
		ContainerID: in.Container.ID, Transport: transport(), ExitDate: t0.Add(time.Hour),
		Corrections: &ContainerPatch{BL: &bl, Weight: &w},
	})
	require.NoError(t, err)
	assert.Equal(t, "BL-CORR", out.Container.BL)
	assert.Equal(t, 25000.0, out.Container.Weight)
	assert.Equal(t, in.Container.Location, out.Container.Location)
}

func TestReEntryAfterGateOut(t *testing.T) {
	st := NewState(DefaultDefaults())
	in := mustGateIn(t, st, fclRequest("MSKU", "305438", "8"))
	_, err := GateOut(st, GateOutRequest{ContainerID: in.Container.ID, Transport: transport(), ExitDate: t0.Add(time.Hour)})
	require.NoError(t, err)

	again := fclRequest("MSKU", "305438", "8")
	again.EntryDate = t0.Add(48 * time.Hour)
	mustGateIn(t, st, again)
	assert.Len(t, st.Containers, 2)
	assert.Len(t, movements.ForContainer(st.Movements, "MSKU305438-8"), 3)
}
