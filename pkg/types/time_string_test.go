package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr error
	}{
		{name: "regular", input: "09:30", want: "09:30"},
		{name: "single digit hour", input: "9:05", want: "09:05"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "last minute", input: "23:59", want: "23:59"},
		{name: "surrounding spaces", input: " 18:00 ", want: "18:00"},
		{name: "hour out of range", input: "24:00", wantErr: ErrTimeOutOfRange},
		{name: "minute out of range", input: "10:60", wantErr: ErrTimeOutOfRange},
		{name: "no separator", input: "1000", wantErr: ErrInvalidTimeFormat},
		{name: "letters", input: "ab:cd", wantErr: ErrInvalidTimeFormat},
		{name: "short minutes", input: "10:0", wantErr: ErrInvalidTimeFormat},
		{name: "empty", input: "", wantErr: ErrInvalidTimeFormat},
		{name: "plus sign", input: "+9:00", wantErr: ErrInvalidTimeFormat},
		{name: "minus sign", input: "-0:30", wantErr: ErrInvalidTimeFormat},
		{name: "signed minutes", input: "10:+5", wantErr: ErrInvalidTimeFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Hour(t *testing.T) {
	ts := TimeString("16:45")

	assert.Equal(t, 16, ts.Hour())
	assert.Equal(t, 0, TimeString("broken").Hour())
}
