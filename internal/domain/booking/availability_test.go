//go:build unit

package booking_test

import (
	"testing"

	"room-booking/internal/domain/booking"
	"room-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slot(t *testing.T, date, start, end string) booking.TimeSlot {
	t.Helper()
	s, err := booking.NewTimeSlot(date, start, end)
	require.NoError(t, err)
	return s
}

func TestParseOverlapPolicy(t *testing.T) {
	cases := []struct {
		in      string
		want    booking.OverlapPolicy
		wantErr bool
	}{
		{in: "", want: booking.PolicyLegacy},
		{in: "legacy", want: booking.PolicyLegacy},
		{in: " STRICT ", want: booking.PolicyStrict},
		{in: "lenient", wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := booking.ParseOverlapPolicy(c.in)
			if c.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestOverlapPolicy_Overlaps(t *testing.T) {
	existing := slot(t, "2024-04-10", "10:00", "12:00")

	cases := []struct {
		name       string
		start, end string
		legacy     bool
		strict     bool
	}{
		{name: "identical slot", start: "10:00", end: "12:00", legacy: true, strict: true},
		{name: "starts inside", start: "11:00", end: "13:00", legacy: true, strict: true},
		{name: "ends inside", start: "09:00", end: "11:00", legacy: true, strict: true},
		{name: "nested inside", start: "10:30", end: "11:30", legacy: true, strict: true},
		{name: "adjacent after", start: "12:00", end: "14:00", legacy: false, strict: false},
		{name: "adjacent before", start: "08:00", end: "10:00", legacy: false, strict: false},
		// The legacy rule only looks at the candidate's endpoints.
		{name: "contains existing", start: "09:00", end: "13:00", legacy: false, strict: true},
		{name: "inverted candidate", start: "14:00", end: "09:00", legacy: false, strict: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			candidate := slot(t, "2024-04-10", c.start, c.end)
			assert.Equal(t, c.legacy, booking.PolicyLegacy.Overlaps(candidate, existing), "legacy")
			assert.Equal(t, c.strict, booking.PolicyStrict.Overlaps(candidate, existing), "strict")
		})
	}
}

func TestAvailability(t *testing.T) {
	stored := []*booking.Booking{
		builder.NewBookingBuilder().BuildStored(),
		builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ID = 2
			b.RoomID = 2
			b.Date = "2024-04-11"
		}).BuildStored(),
	}

	t.Run("empty policy falls back to legacy", func(t *testing.T) {
		assert.Equal(t, booking.PolicyLegacy, booking.NewAvailability("").Policy())
	})

	t.Run("conflict on same room and date", func(t *testing.T) {
		a := booking.NewAvailability(booking.PolicyLegacy)
		candidate := slot(t, "2024-04-10", "11:00", "13:00")

		assert.False(t, a.IsAvailable(stored, 1, candidate))
		blocking := a.FirstConflict(stored, 1, candidate)
		require.NotNil(t, blocking)
		assert.Equal(t, int64(1), blocking.ID())
	})

	t.Run("other date is free", func(t *testing.T) {
		a := booking.NewAvailability(booking.PolicyStrict)
		assert.True(t, a.IsAvailable(stored, 1, slot(t, "2024-04-11", "10:00", "12:00")))
	})

	t.Run("other room is free", func(t *testing.T) {
		a := booking.NewAvailability(booking.PolicyStrict)
		assert.True(t, a.IsAvailable(stored, 3, slot(t, "2024-04-10", "10:00", "12:00")))
	})

	t.Run("containment depends on policy", func(t *testing.T) {
		candidate := slot(t, "2024-04-10", "09:00", "13:00")
		assert.True(t, booking.NewAvailability(booking.PolicyLegacy).IsAvailable(stored, 1, candidate))
		assert.False(t, booking.NewAvailability(booking.PolicyStrict).IsAvailable(stored, 1, candidate))
	})

	t.Run("no bookings", func(t *testing.T) {
		a := booking.NewAvailability(booking.PolicyStrict)
		assert.Nil(t, a.FirstConflict(nil, 1, slot(t, "2024-04-10", "10:00", "12:00")))
	})
}
