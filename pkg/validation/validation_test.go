package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotEmpty(t *testing.T) {
	assert.True(t, IsNotEmpty("flooding"))
	assert.False(t, IsNotEmpty("   "))
	assert.False(t, IsNotEmpty(""))
}

func TestMaxLength(t *testing.T) {
	assert.True(t, MaxLength("abc", 3))
	assert.False(t, MaxLength("abcd", 3))
	// multi-byte characters count once
	assert.True(t, MaxLength("mafuriko ñ", 10))
}

func TestTrimAndValidate(t *testing.T) {
	v, ok := TrimAndValidate("  road_block ")
	assert.True(t, ok)
	assert.Equal(t, "road_block", v)

	_, ok = TrimAndValidate(" ")
	assert.False(t, ok)
}

func TestOptionalString(t *testing.T) {
	assert.Nil(t, OptionalString(nil))

	blank := "  "
	assert.Nil(t, OptionalString(&blank))

	value := " high "
	got := OptionalString(&value)
	if assert.NotNil(t, got) {
		assert.Equal(t, "high", *got)
	}
}
