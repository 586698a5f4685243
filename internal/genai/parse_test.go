package genai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type namesResult struct {
	Names []string `json:"names"`
}

func (r *namesResult) Validate() error {
	if len(r.Names) == 0 {
		return errors.New("no names returned")
	}
	return nil
}

func TestParseJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"plain json", `{"names": ["Plantly"]}`, false},
		{"fenced json", "```json\n{\"names\": [\"Plantly\"]}\n```", false},
		{"fenced without language", "```\n{\"names\": [\"Plantly\"]}\n```", false},
		{"surrounding whitespace", "  {\"names\": [\"Plantly\"]}  ", false},
		{"not json", "Sure! Here are some names:", true},
		{"valid json failing validation", `{"names": []}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out namesResult
			err := ParseJSON(zap.NewNop(), tt.raw, &out)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedResponse)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []string{"Plantly"}, out.Names)
		})
	}
}
