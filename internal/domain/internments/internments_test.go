package internments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	i := Normalize(Internment{ContainerID: " msku305438 ", BL: "bl1", Client: "acme", Status: Released})
	assert.Equal(t, "MSKU305438", i.ContainerID)
	assert.Equal(t, "BL1", i.BL)
	assert.Equal(t, Scheduled, i.Status)
	assert.Equal(t, Medium, i.Priority)
	assert.Equal(t, OpFCL, i.OperationType)
}

// Въезд сравнивает по префиксу, выезд только точно. Асимметрия сохранена намеренно.
func TestAdvanceMatchingAsymmetry(t *testing.T) {
	list := []Internment{
		{ID: "i1", ContainerID: "MSKU305438", Status: Scheduled},
		{ID: "i2", ContainerID: "CSQU3054383", Status: Scheduled},
	}

	next, i := AdvanceOnGateIn(list, "MSKU305438-8")
	require.Equal(t, 0, i)
	assert.Equal(t, InYard, next[0].Status)
	assert.Equal(t, Scheduled, list[0].Status, "input is not mutated")

	_, i = AdvanceOnGateOut(next, "MSKU305438-8")
	assert.Equal(t, -1, i, "gate-out needs an exact id match")

	next, i = AdvanceOnGateOut(next, "CSQU3054383")
	require.Equal(t, 1, i)
	assert.Equal(t, Released, next[1].Status)
}

func TestAdvanceShortPrefixIgnored(t *testing.T) {
	list := []Internment{{ID: "i1", ContainerID: "MSKU", Status: Scheduled}}
	_, i := AdvanceOnGateIn(list, "MSKU305438-8")
	assert.Equal(t, -1, i)

	next, i := AdvanceOnGateIn(list, "MSKU")
	require.Equal(t, 0, i)
	assert.Equal(t, InYard, next[0].Status)
}

func TestFilterAndRemove(t *testing.T) {
	list := []Internment{
		{ID: "1", ContainerID: "AAAA1111111", Client: "ACME"},
		{ID: "2", ContainerID: "BBBB2222222", OperationType: OpLCL},
		{ID: "3", ContainerID: "CCCC3333333", OperationType: OpPrimary, BL: "BL-77"},
	}
	assert.Len(t, Filter(list, OpFCL, ""), 1)
	assert.Len(t, Filter(list, OpLCL, ""), 1)
	assert.Len(t, Filter(list, "", "bl-77"), 1)
	assert.Len(t, Filter(list, "", "acm"), 1)

	list, ok := Remove(list, "2")
	assert.True(t, ok)
	assert.Len(t, list, 2)
}
