package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AadiD123/348-Project/internal/domain"
)

func TestParseTimeOfDay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    domain.TimeOfDay
		wantErr bool
	}{
		{input: "18:00:00", want: domain.TimeOfDay{Hour: 18}},
		{input: "00:00:00", want: domain.TimeOfDay{}},
		{input: "23:59:59", want: domain.TimeOfDay{Hour: 23, Minute: 59, Second: 59}},
		{input: "09:30:15", want: domain.TimeOfDay{Hour: 9, Minute: 30, Second: 15}},
		{input: "24:00:00", wantErr: true},
		{input: "18:00", wantErr: true},
		{input: "6pm", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := domain.ParseTimeOfDay(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDay_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "18:00:00", domain.TimeOfDay{Hour: 18}.String())
	assert.Equal(t, "09:05:03", domain.TimeOfDay{Hour: 9, Minute: 5, Second: 3}.String())
	assert.Equal(t, "00:00:00", domain.TimeOfDay{}.String())
}

func TestTimeOfDay_RoundTripThroughMicroseconds(t *testing.T) {
	t.Parallel()

	original := domain.TimeOfDay{Hour: 22, Minute: 15, Second: 42}
	got := domain.TimeOfDayFromMicroseconds(original.Microseconds())
	assert.Equal(t, original, got)
}

func TestTimeOfDay_MinuteAndSecondOfDay(t *testing.T) {
	t.Parallel()

	tod := domain.TimeOfDay{Hour: 18, Minute: 30, Second: 45}
	assert.Equal(t, 18*60+30, tod.MinuteOfDay(), "seconds must be discarded")
	assert.Equal(t, 18*3600+30*60+45, tod.SecondOfDay())
}
