// Package media decodes the inline image and audio payloads the model
// returns: images become data URLs, speech audio becomes normalized
// float32 samples. There is no recovery path; a malformed payload
// simply yields no playable asset.
package media

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// SampleRate is the fixed TTS output rate: 24 kHz mono PCM16 with no
// container header.
const SampleRate = 24000

// ImageDataURL wraps base64 image bytes in a displayable data URL.
func ImageDataURL(mimeType, base64Data string) string {
	if mimeType == "" {
		mimeType = "image/png"
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64Data)
}

// DecodePCM16 decodes base64 little-endian 16-bit PCM into samples
// normalized to [-1, 1).
func DecodePCM16(base64Data string) ([]float32, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(base64Data))
	if err != nil {
		return nil, fmt.Errorf("invalid base64 audio payload: %w", err)
	}
	if len(raw)%2 != 0 {
		return nil, fmt.Errorf("truncated PCM16 payload: %d bytes", len(raw))
	}

	samples := make([]float32, len(raw)/2)
	for i := range samples {
		s := int16(uint16(raw[2*i]) | uint16(raw[2*i+1])<<8)
		samples[i] = float32(s) / 32768
	}
	return samples, nil
}
