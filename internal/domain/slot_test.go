package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Barber-BookingService/pkg/types"
)

func mustTimeString(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func TestSlotCatalog_Slots(t *testing.T) {
	tests := []struct {
		name     string
		open     string
		close    string
		duration int
		want     []types.TimeString
	}{
		{
			name:     "standard half-hour grid",
			open:     "09:00",
			close:    "11:00",
			duration: 30,
			want:     []types.TimeString{"09:00", "09:30", "10:00", "10:30"},
		},
		{
			name:     "last slot must end by closing",
			open:     "09:00",
			close:    "10:45",
			duration: 30,
			want:     []types.TimeString{"09:00", "09:30", "10:00"},
		},
		{
			name:     "hour-long slots",
			open:     "10:00",
			close:    "13:00",
			duration: 60,
			want:     []types.TimeString{"10:00", "11:00", "12:00"},
		},
		{
			name:     "window shorter than slot",
			open:     "09:00",
			close:    "09:15",
			duration: 30,
			want:     []types.TimeString{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := SlotCatalog{
				OpenTime:            mustTimeString(t, tt.open),
				CloseTime:           mustTimeString(t, tt.close),
				SlotDurationMinutes: tt.duration,
			}
			slots, err := catalog.Slots()
			require.NoError(t, err)
			assert.Equal(t, tt.want, slots)
		})
	}
}

func TestSlotCatalog_Contains(t *testing.T) {
	catalog := SlotCatalog{
		OpenTime:            mustTimeString(t, "09:00"),
		CloseTime:           mustTimeString(t, "18:30"),
		SlotDurationMinutes: 30,
	}

	ok, err := catalog.Contains(mustTimeString(t, "10:00"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = catalog.Contains(mustTimeString(t, "10:15"))
	require.NoError(t, err)
	assert.False(t, ok)

	// Слот, пересекающий закрытие, в каталог не входит
	ok, err = catalog.Contains(mustTimeString(t, "18:15"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBarbershop_CatalogUsesConfiguredHours(t *testing.T) {
	shop := &Barbershop{
		OpenTime:            mustTimeString(t, "08:00"),
		CloseTime:           mustTimeString(t, "12:00"),
		SlotDurationMinutes: 60,
	}

	slots, err := shop.Catalog().Slots()
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"08:00", "09:00", "10:00", "11:00"}, slots)
}
