package bitcodec_test

import (
	"testing"

	"github.com/herohde/pc4l/pkg/bitcodec"
	"github.com/stretchr/testify/assert"
)

func roundTrip(t *testing.T, bits []bool) {
	t.Helper()
	s := bitcodec.Base64Encode(bits)
	got, ok := bitcodec.Base64Decode(s)
	assert.True(t, ok)
	if len(bits) == 0 {
		assert.Empty(t, got)
	} else {
		assert.Equal(t, bits, got)
	}
}

func TestBase64GoldenCases(t *testing.T) {
	empty := bitcodec.Base64Encode(nil)
	assert.Equal(t, "", empty)

	eightBitsInput := []bool{false, true, false, true, false, true, false, true}
	eightBits := bitcodec.Base64Encode(eightBitsInput)
	assert.NotEmpty(t, eightBits)
	decoded, ok := bitcodec.Base64Decode(eightBits)
	assert.True(t, ok)
	assert.Equal(t, eightBitsInput, decoded)

	oneBit := bitcodec.Base64Encode([]bool{true})
	assert.Len(t, oneBit, 2)
	assert.Equal(t, byte('.'), oneBit[0])

	bits, ok := bitcodec.Base64Decode(oneBit)
	assert.True(t, ok)
	assert.Equal(t, []bool{true}, bits)
}

func TestBase64RoundTripAllTailLengths(t *testing.T) {
	for length := 0; length < 6; length++ {
		for val := 0; val < 32; val++ {
			bits := make([]bool, length)
			for i := 0; i < length; i++ {
				bits[i] = (val>>uint(i))&1 != 0
			}
			roundTrip(t, bits)
		}
	}
}

func TestBase64DecodeRejectsInvalidInput(t *testing.T) {
	_, ok := bitcodec.Base64Decode("~")
	assert.False(t, ok)

	_, ok = bitcodec.Base64Decode("A=")
	assert.False(t, ok)

	_, ok = bitcodec.Base64Decode("A=AA")
	assert.False(t, ok)

	_, ok = bitcodec.Base64Decode("A=_")
	assert.False(t, ok)
}
