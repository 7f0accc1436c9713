package firm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmedBlock(t *testing.T) {
	tests := []struct {
		name      string
		head      uint64
		certainty uint64
		want      uint64
	}{
		{name: "zero certainty is the head", head: 100, certainty: 0, want: 100},
		{name: "medium certainty", head: 100, certainty: CertaintyMedium, want: 96},
		{name: "high certainty", head: 100, certainty: CertaintyHigh, want: 88},
		{name: "certainty equal to head is genesis", head: 12, certainty: 12, want: 0},
		{name: "genesis head", head: 0, certainty: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConfirmedBlock(tt.head, tt.certainty)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.head-tt.certainty, got)
		})
	}

	t.Run("certainty above head is not confirmable", func(t *testing.T) {
		_, err := ConfirmedBlock(3, CertaintyMedium)
		assert.ErrorIs(t, err, ErrNotConfirmable)
	})
}
