package storedfile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bank-docs-api/internal/domain/user"
)

func TestNewFilename_RoundTrip(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	fn := NewFilename(42, now, ".JPG")
	assert.Equal(t, "42-1700000000123.jpg", fn)

	owner, err := ParseOwnerID(fn)
	require.NoError(t, err)
	assert.Equal(t, user.ID(42), owner)
}

func TestParseOwnerID_Table(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     user.ID
		wantErr  bool
	}{
		{"plain", "7-1700000000000.jpg", 7, false},
		{"no extension", "7-1700000000000", 7, false},
		{"large id", "9000000000-1.png", 9000000000, false},
		{"no separator", "71700000000000.jpg", 0, true},
		{"empty rest", "7-", 0, true},
		{"non numeric owner", "abc-1700000000000.jpg", 0, true},
		{"negative owner", "-7-1700000000000.jpg", 0, true},
		{"zero owner", "0-1700000000000.jpg", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOwnerID(tt.filename)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMalformedFilename)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
