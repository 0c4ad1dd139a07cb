package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/waaagh-api/internal/pkg/idgen"
)

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("unit")
	assert.Equal(t, "unit_1", gen.Generate())
	assert.Equal(t, "unit_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("army")
	first := gen.Generate()
	second := gen.Generate()

	assert.True(t, strings.HasPrefix(first, "army_"))
	assert.Len(t, first, len("army_")+36)
	assert.NotEqual(t, first, second)
	assert.Len(t, idgen.NewUUID("").Generate(), 36)
}
