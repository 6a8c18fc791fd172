package catalog

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonsphere/booking-service/pkg/types"
)

var identifierRe = regexp.MustCompile(`^[a-z_]+$`)

// schemaColumns извлекает имена колонок таблицы из DDL миграции
func schemaColumns(t *testing.T, table string) map[string]struct{} {
	t.Helper()

	ddl, err := os.ReadFile(filepath.Join("..", "..", "..", "..", "migrations", "00001_create_schema.sql"))
	require.NoError(t, err)

	marker := "CREATE TABLE " + table + " ("
	body := string(ddl)
	start := strings.Index(body, marker)
	require.NotEqual(t, -1, start, "table %s not found in schema", table)

	body = body[start+len(marker):]
	end := strings.Index(body, ");")
	require.NotEqual(t, -1, end)

	columns := make(map[string]struct{})
	for _, line := range strings.Split(body[:end], "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		first := strings.ToLower(fields[0])
		if !identifierRe.MatchString(first) || first == "unique" || first == "check" {
			continue
		}
		columns[first] = struct{}{}
	}
	return columns
}

// selectedColumns извлекает список колонок из построенного SELECT
func selectedColumns(t *testing.T, query string) []string {
	t.Helper()

	from := strings.Index(query, " FROM ")
	require.NotEqual(t, -1, from)
	require.True(t, strings.HasPrefix(query, "SELECT "))

	return strings.Split(query[len("SELECT "):from], ", ")
}

func assertColumnsInSchema(t *testing.T, table string, columns []string) {
	t.Helper()

	schema := schemaColumns(t, table)
	for _, col := range columns {
		assert.Contains(t, schema, col, "%s query selects %q which the DDL does not declare", table, col)
	}
}

func TestSalonQueryMatchesSchema(t *testing.T) {
	query, _, err := salonSelect().ToSql()
	require.NoError(t, err)

	assertColumnsInSchema(t, "salons", selectedColumns(t, query))
}

func TestServiceQueryMatchesSchema(t *testing.T) {
	query, _, err := serviceSelect().ToSql()
	require.NoError(t, err)

	assertColumnsInSchema(t, "services", selectedColumns(t, query))
}

func TestGetSlotBlocks(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT start_time FROM slot_blocks`).
		WithArgs(date, int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"start_time"}).
			AddRow("10:30").
			AddRow("14:00"))

	blocks, err := repo.GetSlotBlocks(context.Background(), 1, date)
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"10:30", "14:00"}, blocks)
	assert.NoError(t, mock.ExpectationsWereMet())

	// Колонка запроса должна существовать в DDL
	assertColumnsInSchema(t, "slot_blocks", []string{"start_time", "salon_id", "block_date"})
}

func TestGetSalon_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM salons`).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(nil))

	_, err = repo.GetSalon(context.Background(), 404)
	assert.ErrorIs(t, err, ErrSalonNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
