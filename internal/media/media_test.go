package media

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageDataURL(t *testing.T) {
	assert.Equal(t, "data:image/png;base64,aGk=", ImageDataURL("image/png", "aGk="))
	assert.Equal(t, "data:image/png;base64,aGk=", ImageDataURL("", "aGk="), "defaults to png")
	assert.Equal(t, "data:image/jpeg;base64,aGk=", ImageDataURL("image/jpeg", "aGk="))
}

func TestDecodePCM16(t *testing.T) {
	// Little-endian samples: 0, 16384 (0.5), -32768 (-1.0).
	raw := []byte{0x00, 0x00, 0x00, 0x40, 0x00, 0x80}
	encoded := base64.StdEncoding.EncodeToString(raw)

	samples, err := DecodePCM16(encoded)
	require.NoError(t, err)
	require.Len(t, samples, 3)
	assert.InDelta(t, 0.0, samples[0], 1e-6)
	assert.InDelta(t, 0.5, samples[1], 1e-6)
	assert.InDelta(t, -1.0, samples[2], 1e-6)
}

func TestDecodePCM16_Malformed(t *testing.T) {
	_, err := DecodePCM16("not base64!!!")
	assert.Error(t, err)

	// An odd byte count cannot be PCM16.
	odd := base64.StdEncoding.EncodeToString([]byte{0x01, 0x02, 0x03})
	_, err = DecodePCM16(odd)
	assert.Error(t, err)
}
