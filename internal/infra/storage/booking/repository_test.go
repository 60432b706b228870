package booking

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingColumnsMatchMigration(t *testing.T) {
	raw, err := os.ReadFile("../../../../migrations/001_init.sql")
	require.NoError(t, err)

	marker := "CREATE TABLE IF NOT EXISTS bookings"
	start := strings.Index(string(raw), marker)
	require.GreaterOrEqual(t, start, 0)

	ddl := string(raw)[start:]
	end := strings.Index(ddl, ");")
	require.GreaterOrEqual(t, end, 0)
	ddl = ddl[:end]

	for _, col := range bookingColumns {
		assert.Contains(t, ddl, col, "column %q is not defined in migration", col)
	}
}

func TestSlotKeyConstraintMatchesMigration(t *testing.T) {
	raw, err := os.ReadFile("../../../../migrations/001_init.sql")
	require.NoError(t, err)

	assert.Contains(t, string(raw), slotKeyConstraint)
}
