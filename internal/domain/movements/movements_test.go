package movements

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Spok95/yard-terminal/internal/domain/drivers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailsJSONShape(t *testing.T) {
	tr := TransportDetails(drivers.TransportInfo{TruckPlate: "ABCD-12", DriverName: "Ana", DriverID: "12345678-9", DriverType: drivers.IDNational, Company: "TA"})
	raw, err := json.Marshal(tr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"transport","truckPlate":"ABCD-12","driverName":"Ana","driverId":"12345678-9","driverType":"Nacional","company":"TA"}`, string(raw))

	rel := RelocationDetails(Relocation{Reason: "Cambio de posición manual", From: "A-01-1-1", To: "B-03-2-1"})
	raw, err = json.Marshal(rel)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"relocation","reason":"Cambio de posición manual","from":"A-01-1-1","to":"B-03-2-1"}`, string(raw))
	assert.NotContains(t, string(raw), "truckPlate")
}

func TestDetailsLegacyDecode(t *testing.T) {
	var d Details
	require.NoError(t, json.Unmarshal([]byte(`{"truckPlate":"ABCD-12","driverName":"Ana"}`), &d))
	assert.Equal(t, DetailsTransport, d.Kind)
	require.NotNil(t, d.Transport)
	assert.Equal(t, "Ana", d.Transport.DriverName)

	require.NoError(t, json.Unmarshal([]byte(`{"reason":"x","from":"A-01-1-1","to":"A-01-1-2"}`), &d))
	assert.Equal(t, DetailsRelocation, d.Kind)
	require.NotNil(t, d.Relocation)
	assert.Equal(t, "A-01-1-2", d.Relocation.To)
	assert.Nil(t, d.Transport)

	assert.Error(t, json.Unmarshal([]byte(`{"kind":"teleport"}`), &d))
}

func TestMovementRoundTripThroughLog(t *testing.T) {
	ts := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	log := Prepend(nil, Transport("1", "C1", KindGateIn, ts, drivers.TransportInfo{TruckPlate: "ABCD-12"}))
	log = Prepend(log, Movement{ID: "2", ContainerID: "C1", Type: KindRelocation, Timestamp: ts.Add(time.Hour),
		Details: RelocationDetails(Relocation{From: "A-01-1-1", To: "A-01-1-2"})})

	raw, err := json.Marshal(log)
	require.NoError(t, err)
	var back []Movement
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, log, back)
}

func TestForContainerChronological(t *testing.T) {
	ts := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	var log []Movement
	log = Prepend(log, Movement{ID: "1", ContainerID: "C1", Type: KindGateIn, Timestamp: ts})
	log = Prepend(log, Movement{ID: "2", ContainerID: "C2", Type: KindGateIn, Timestamp: ts})
	log = Prepend(log, Movement{ID: "3", ContainerID: "C1", Type: KindGateOut, Timestamp: ts.Add(48 * time.Hour)})

	got := ForContainer(log, "C1")
	require.Len(t, got, 2)
	assert.Equal(t, KindGateIn, got[0].Type)
	assert.Equal(t, KindGateOut, got[1].Type)
}

func TestOn(t *testing.T) {
	loc := time.FixedZone("CLT", -3*3600)
	day := time.Date(2026, 5, 4, 12, 0, 0, 0, loc)
	log := []Movement{
		{ID: "a", Timestamp: time.Date(2026, 5, 4, 2, 0, 0, 0, time.UTC)},  // 3 мая по местному
		{ID: "b", Timestamp: time.Date(2026, 5, 4, 4, 0, 0, 0, time.UTC)},  // 4 мая
		{ID: "c", Timestamp: time.Date(2026, 5, 5, 2, 59, 0, 0, time.UTC)}, // 4 мая
	}
	got := On(log, day, loc)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
}
