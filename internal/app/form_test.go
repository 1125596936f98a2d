package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spok95/yard-terminal/internal/domain/containers"
	"github.com/Spok95/yard-terminal/internal/domain/drivers"
	"github.com/Spok95/yard-terminal/internal/domain/preloads"
	"github.com/Spok95/yard-terminal/internal/domain/yard"
)

func TestFormAutoCheckDigit(t *testing.T) {
	f := NewGateInForm(containers.LoadFCL, t0)
	f.SetOwnerCode("msku")
	assert.Empty(t, f.Req.CheckDigit)
	f.SetSerial("305438")
	assert.Equal(t, "8", f.Req.CheckDigit)
	assert.True(t, f.AutoDigit())

	f.SetCheckDigit("5")
	assert.False(t, f.AutoDigit())
	f.SetSerial("123456")
	assert.Equal(t, "5", f.Req.CheckDigit, "manual digit survives serial edits")

	f.SetAutoDigit(true)
	assert.Equal(t, "5", f.Req.CheckDigit, "MSKU123456 computes to 5")
	f.SetOwnerCode("CSQU")
	f.SetSerial("305438")
	assert.Equal(t, "3", f.Req.CheckDigit)
}

func TestFormInputMasks(t *testing.T) {
	f := NewGateInForm(containers.LoadFCL, t0)
	f.SetOwnerCode("ms1k-uu")
	assert.Equal(t, "MSKU", f.Req.OwnerCode)
	f.SetSerial("30a54389")
	assert.Equal(t, "305438", f.Req.Serial)
	f.SetCheckDigit("x7")
	assert.Equal(t, "7", f.Req.CheckDigit)
}

func TestFormPreloadAutofill(t *testing.T) {
	list := []preloads.Preload{{
		ID: "p1", ReceptionNote: "GR-2002", Client: "Globex", Vessel: "Maersk Line", Voyage: "7E",
		BL: "BL-77", ShippingLine: "Maersk", Weight: 18000, ContainerID: "CSQU3054383",
	}}
	f := NewGateInForm(containers.LoadFCL, t0)

	assert.False(t, f.SetReceptionNote("GR", list), "short notes are not looked up")
	assert.False(t, f.Preloaded())

	require.True(t, f.SetReceptionNote("gr-2002", list))
	assert.True(t, f.Preloaded())
	assert.Equal(t, "Globex", f.Req.Client)
	assert.Equal(t, "BL-77", f.Req.BL)
	assert.Equal(t, 18000.0, f.Req.Weight)
	assert.Equal(t, "CSQU", f.Req.OwnerCode)
	assert.Equal(t, "305438", f.Req.Serial)
	assert.Equal(t, "3", f.Req.CheckDigit)
	assert.False(t, f.AutoDigit(), "a full id from the preload switches auto mode off")
}

func TestFormDriverAutofill(t *testing.T) {
	known := []drivers.TransportInfo{{
		TruckPlate: "ZZZZ-99", DriverName: "ana soto", DriverID: "11222333-4",
		DriverType: drivers.IDNational, Company: "fletes norte",
	}}
	f := NewGateInForm(containers.LoadFCL, t0)
	f.SetTruckPlate("abcd12")
	entered := f.Req.Transport.TruckPlate

	require.True(t, f.SetDriverID("112223334", known))
	assert.Equal(t, "11222333-4", f.Req.Transport.DriverID)
	assert.Equal(t, "Ana Soto", f.Req.Transport.DriverName)
	assert.Equal(t, "Fletes Norte", f.Req.Transport.Company)
	assert.Equal(t, entered, f.Req.Transport.TruckPlate, "an entered plate is kept")
	assert.False(t, f.NewDriver())

	g := NewGateInForm(containers.LoadFCL, t0)
	require.True(t, g.SetDriverID("11222333-4", known))
	assert.Equal(t, "ZZZZ-99", g.Req.Transport.TruckPlate)

	h := NewGateInForm(containers.LoadFCL, t0)
	assert.False(t, h.SetDriverID("99999999-9", known))
	assert.True(t, h.NewDriver())
}

func TestFormSelectSlotFollowsBlock(t *testing.T) {
	cfg := yard.DefaultConfig()
	f := NewGateInForm(containers.LoadFCL, t0)

	f.SelectSlot(cfg, yard.Location{Block: "C", Bay: "01", Row: 1, Tier: 1})
	assert.Equal(t, containers.LoadLCL, f.Req.LoadType)
	f.SelectSlot(cfg, yard.Location{Block: "A", Bay: "01", Row: 1, Tier: 1})
	assert.Equal(t, containers.LoadFCL, f.Req.LoadType)
	require.NotNil(t, f.Req.Slot)
	assert.Equal(t, "A", f.Req.Slot.Block)

	single := yard.Config{Blocks: []string{"A"}, BaysCount: 1, RowsCount: 1, TiersCount: 1, LCLBlock: "A"}
	f.SelectSlot(single, yard.Location{Block: "A", Bay: "01", Row: 1, Tier: 1})
	assert.Equal(t, containers.LoadFCL, f.Req.LoadType)
}

func TestFormFeedsGateIn(t *testing.T) {
	s := newSession(t, nil)
	f := s.NewGateInForm(containers.LoadFCL)
	f.SetOwnerCode("MSKU")
	f.SetSerial("305438")
	f.Req.Client = "Acme"
	f.Req.ReceptionNote = "GR-1"
	f.Req.Vessel = "MSC Anna"
	f.Req.ShippingLine = "MSC"
	f.Req.Weight, f.Req.Tare = 20000, 2000
	f.Req.Transport = transport()
	s.FillForm(f, "", "")
	require.NotNil(t, f.Req.Slot, "a free slot is suggested")
	assert.Empty(t, f.Problems())

	res, err := s.GateIn(t.Context(), f.Request())
	require.NoError(t, err)
	assert.Equal(t, "MSKU305438-8", res.Container.ID)
	assert.Equal(t, *f.Req.Slot, res.Container.Location)
}
