package barbershop

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tableDDL вырезает из миграции блок CREATE TABLE для указанной таблицы
func tableDDL(t *testing.T, table string) string {
	t.Helper()

	raw, err := os.ReadFile("../../../../migrations/001_init.sql")
	require.NoError(t, err)

	marker := "CREATE TABLE IF NOT EXISTS " + table
	start := strings.Index(string(raw), marker)
	require.GreaterOrEqual(t, start, 0, "table %s not found in migration", table)

	ddl := string(raw)[start:]
	end := strings.Index(ddl, ");")
	require.GreaterOrEqual(t, end, 0)

	return ddl[:end]
}

func TestBarbershopColumnsMatchMigration(t *testing.T) {
	ddl := tableDDL(t, "barbershops")
	for _, col := range barbershopColumns {
		assert.Contains(t, ddl, col, "column %q is not defined in migration", col)
	}
}

func TestServiceColumnsMatchMigration(t *testing.T) {
	ddl := tableDDL(t, "barbershop_services")
	for _, col := range serviceColumns {
		assert.Contains(t, ddl, col, "column %q is not defined in migration", col)
	}
}
