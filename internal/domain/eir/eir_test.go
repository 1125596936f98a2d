package eir

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNumber(t *testing.T) {
	re := regexp.MustCompile(`^ZH-\d{6}$`)
	for i := 0; i < 200; i++ {
		assert.Regexp(t, re, NewNumber("ZH"))
	}
	assert.Regexp(t, `^EIR-\d{6}$`, NewNumber(""))
}
