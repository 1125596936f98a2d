package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spok95/yard-terminal/internal/domain/eir"
	"github.com/Spok95/yard-terminal/internal/domain/yard"
)

func TestUpdateYardRequiresConfirmWithContainers(t *testing.T) {
	st := NewState(DefaultDefaults())
	next := st.Yard
	next.RowsCount = 3

	_, err := UpdateYard(st, next, false)
	require.NoError(t, err, "an empty yard changes freely")
	assert.Equal(t, 3, st.Yard.RowsCount)

	mustGateIn(t, st, fclRequest("MSKU", "305438", "8"))
	next.RowsCount = 4
	_, err = UpdateYard(st, next, false)
	require.ErrorIs(t, err, ErrConfirmRequired)
	assert.Equal(t, 3, st.Yard.RowsCount)

	cfg, err := UpdateYard(st, next, true)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.RowsCount)
	assert.Equal(t, 6*4*5*3, len(st.Slots()))
}

func TestUpdateYardNormalizesBlocks(t *testing.T) {
	st := NewState(DefaultDefaults())
	cfg, err := UpdateYard(st, yard.Config{Blocks: []string{"c", " a ", ""}, BaysCount: 2, RowsCount: 2, TiersCount: 2, LCLBlock: "x"}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, cfg.Blocks)
	assert.Equal(t, "C", cfg.LCLBlock, "unknown LCL block falls back to the last one")

	_, err = UpdateYard(st, yard.Config{Blocks: []string{"A", "a"}, BaysCount: 1, RowsCount: 1, TiersCount: 1}, false)
	assert.ErrorIs(t, err, yard.ErrDuplicateBlock)

	_, err = UpdateYard(st, yard.Config{Blocks: []string{"A"}, BaysCount: 0, RowsCount: 1, TiersCount: 1}, false)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"baysCount"}, verr.Fields)
}

func TestBlockOperations(t *testing.T) {
	st := NewState(DefaultDefaults())

	_, err := AddBlock(st, "b")
	assert.ErrorIs(t, err, yard.ErrDuplicateBlock)

	cfg, err := AddBlock(st, "d")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, cfg.Blocks)

	cfg, err = RemoveBlock(st, "c", false)
	require.NoError(t, err)
	assert.Equal(t, "D", cfg.LCLBlock, "removing the LCL block reassigns it")

	cfg, err = SetLCLBlock(st, "a")
	require.NoError(t, err)
	assert.Equal(t, "A", cfg.LCLBlock)
	_, err = SetLCLBlock(st, "Z")
	assert.ErrorIs(t, err, yard.ErrUnknownBlock)

	for _, b := range []string{"B", "D"} {
		_, err = RemoveBlock(st, b, false)
		require.NoError(t, err)
	}
	_, err = RemoveBlock(st, "A", true)
	assert.ErrorIs(t, err, yard.ErrLastBlock)
}

func TestRemoveBlockWithContainersNeedsConfirm(t *testing.T) {
	st := NewState(DefaultDefaults())
	res := mustGateIn(t, st, fclRequest("MSKU", "305438", "8"))
	require.Equal(t, "A", res.Container.Location.Block)

	_, err := RemoveBlock(st, "A", false)
	require.ErrorIs(t, err, ErrConfirmRequired)
	_, err = SetDimensions(st, 2, 2, 2, false)
	require.ErrorIs(t, err, ErrConfirmRequired)
	_, err = SetDimensions(st, 0, 2, 2, true)
	require.ErrorIs(t, err, yard.ErrBadDimensions)

	cfg, err := RemoveBlock(st, "B", false)
	require.NoError(t, err, "an empty block goes without confirmation")
	assert.Equal(t, []string{"A", "C"}, cfg.Blocks)

	cfg, err = RemoveBlock(st, "A", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, cfg.Blocks)
}

func TestUpdateYardBlockSwapNeedsConfirm(t *testing.T) {
	st := NewState(DefaultDefaults())
	res := mustGateIn(t, st, lclRequest("GR-7", "Frutera Sur"))
	require.Equal(t, "C", res.Container.Location.Block)

	swap := st.Yard
	swap.Blocks = []string{"A", "B", "D"}
	swap.LCLBlock = "D"
	_, err := UpdateYard(st, swap, false)
	require.ErrorIs(t, err, ErrConfirmRequired, "block C still holds a container")
	assert.Equal(t, []string{"A", "B", "C"}, st.Yard.Blocks)
	assert.Equal(t, 1, yard.Occupied(st.Slots()))

	// Новый блок без потери занятых позиций проходит без подтверждения.
	grow := st.Yard
	grow.Blocks = []string{"A", "B", "C", "D"}
	_, err = UpdateYard(st, grow, false)
	require.NoError(t, err)
	assert.Equal(t, 1, yard.Occupied(st.Slots()))
}

func TestUpdateYardRejectsDashInBlockName(t *testing.T) {
	st := NewState(DefaultDefaults())
	bad := st.Yard
	bad.Blocks = []string{"A", "B-1"}
	_, err := UpdateYard(st, bad, false)
	require.ErrorIs(t, err, yard.ErrBadBlockName)

	_, err = AddBlock(st, "c-2")
	require.ErrorIs(t, err, yard.ErrBadBlockName)
	assert.Equal(t, []string{"A", "B", "C"}, st.Yard.Blocks)
}

func TestUpdateEIRDefaultsPrefix(t *testing.T) {
	st := NewState(DefaultDefaults())
	cfg := UpdateEIR(st, eir.Config{CompanyName: "Puerto Sur", EIRPrefix: " ps "})
	assert.Equal(t, "PS", cfg.EIRPrefix)

	cfg = UpdateEIR(st, eir.Config{CompanyName: "Puerto Sur"})
	assert.Equal(t, eir.DefaultConfig().EIRPrefix, cfg.EIRPrefix)
	assert.Equal(t, "Puerto Sur", st.EIR.CompanyName)

	res := mustGateIn(t, st, fclRequest("MSKU", "305438", "8"))
	assert.Regexp(t, `^`+cfg.EIRPrefix+`-\d{6}$`, res.Container.EIRNumber)
}
