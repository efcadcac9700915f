//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/phrazzld/manufacturer-store/internal/platform/logger"
	"github.com/phrazzld/manufacturer-store/internal/platform/postgres"
	"github.com/phrazzld/manufacturer-store/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_SchemaApplied(t *testing.T) {
	db := testdb.GetTestDBWithT(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	l, logBuf := logger.GetTestLogger(t)
	require.NoError(t, postgres.Migrate(ctx, db, "version", l))
	logger.AssertLogContains(t, logBuf, "goose")

	var columns []string
	rows, err := db.QueryContext(ctx, `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_name = 'manufacturers'
		ORDER BY ordinal_position
	`)
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		columns = append(columns, name)
	}
	require.NoError(t, rows.Err())

	assert.Equal(t, []string{"id", "name", "country", "is_deleted"}, columns)
}

func TestMigrate_UnknownCommand(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	err := postgres.Migrate(context.Background(), db, "sideways", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "goose sideways failed")
}
