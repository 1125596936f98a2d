package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Spok95/yard-terminal/internal/domain/containers"
	"github.com/Spok95/yard-terminal/internal/domain/drivers"
	"github.com/Spok95/yard-terminal/internal/domain/yard"
	"github.com/Spok95/yard-terminal/internal/infra/logger"
	"github.com/Spok95/yard-terminal/internal/infra/storage"
)

var t0 = time.Date(2026, 4, 10, 9, 30, 0, 0, time.UTC)

func transport() drivers.TransportInfo {
	return drivers.TransportInfo{
		TruckPlate: "ABCD-12",
		DriverName: "juan perez",
		DriverID:   "12345678-9",
		DriverType: drivers.IDNational,
		Company:    "transportes del sur",
	}
}

func fclRequest(owner, serial, digit string) GateInRequest {
	return GateInRequest{
		LoadType:      containers.LoadFCL,
		OwnerCode:     owner,
		Serial:        serial,
		CheckDigit:    digit,
		Client:        "Acme Chile",
		ReceptionNote: "GR-1001",
		Vessel:        "MSC Anna",
		Voyage:        "102W",
		BL:            "BL-9901",
		ShippingLine:  "MSC",
		Weight:        24500,
		Tare:          2200,
		EntryDate:     t0,
		Transport:     transport(),
	}
}

func lclRequest(note, client string) GateInRequest {
	return GateInRequest{
		LoadType:      containers.LoadLCL,
		Client:        client,
		ReceptionNote: note,
		EntryDate:     t0,
		Transport:     transport(),
		CargoQuantity: 12,
		CargoWeight:   850,
		MaterialType:  containers.MaterialPallets,
	}
}

func at(block, bay string, row, tier int) *yard.Location {
	return &yard.Location{Block: block, Bay: bay, Row: row, Tier: tier}
}

func newSession(t *testing.T, store storage.Store) *Session {
	t.Helper()
	if store == nil {
		store = storage.NewMemory()
	}
	return Open(context.Background(), store, logger.Discard(), Options{
		Defaults: DefaultDefaults(),
		Now:      func() time.Time { return t0.Add(3 * time.Hour) },
	})
}

func mustGateIn(t *testing.T, st *State, req GateInRequest) GateInResult {
	t.Helper()
	res, err := GateIn(st, req)
	require.NoError(t, err)
	return res
}
