package containers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDigitKnownValues(t *testing.T) {
	cases := []struct {
		prefix string
		digit  int
	}{
		{"CSQU305438", 3},
		{"csqu305438", 3},
		{"MSKU305438", 8},
		{"MSCU123456", 6},
		{"TGHU000000", 8},
		{"ABCD123456", 0},
	}
	for _, tc := range cases {
		t.Run(tc.prefix, func(t *testing.T) {
			d, ok := CheckDigit(tc.prefix)
			require.True(t, ok)
			assert.Equal(t, tc.digit, d)
		})
	}
}

func TestCheckDigitNotComputable(t *testing.T) {
	for _, in := range []string{"", "CSQU", "CSQU30543", "CSQU3054383"} {
		_, ok := CheckDigit(in)
		assert.False(t, ok, in)
	}
}

func TestCheckDigitDeterministic(t *testing.T) {
	for _, p := range []string{"ABCD123456", "ZZZZ999999", "AAAA000001"} {
		a, okA := CheckDigit(p)
		b, okB := CheckDigit(p)
		require.True(t, okA && okB)
		assert.Equal(t, a, b)
		assert.GreaterOrEqual(t, a, 0)
		assert.LessOrEqual(t, a, 9)
	}
}

func TestIDComposition(t *testing.T) {
	assert.Equal(t, "MSKU305438-8", FullLoadID("msku", "305438", "8"))
	assert.Equal(t, "LCL-RN100-ACM", PartLoadID("RN100", "Acme Chile"))
	assert.Equal(t, "LCL-RN1-AB", PartLoadID("RN1", "ab"))

	owner, serial, digit := SplitID("csqu-305438 3")
	assert.Equal(t, "CSQU", owner)
	assert.Equal(t, "305438", serial)
	assert.Equal(t, "3", digit)

	assert.True(t, ValidID("CSQU305438-3"))
	assert.False(t, ValidID("CSQU305438-0"))
	assert.False(t, ValidID("LCL-RN1-AB"))
}
