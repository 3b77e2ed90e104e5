package helper_test

import (
	"testing"

	"ecoparking/config"
	"ecoparking/helper"
	"ecoparking/infras/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tables = []string{
	"users", "admins", "parking_spaces", "reservations", "earnings",
	"vehicle_stats", "loyalty_records", "citations", "reviews", "visit_logs",
}

func tableNames(t *testing.T, conn *database.Connection) []string {
	t.Helper()

	var names []string
	require.NoError(t, conn.Read.Select(&names, "SELECT name FROM sqlite_master WHERE type = 'table'"))

	return names
}

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.DB.Driver = config.DBDriverSQLite
	cfg.DB.MigrationTable = "schema_migrations"

	return cfg
}

func TestRunner_SQLite(t *testing.T) {
	conn, err := database.NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	cfg := newConfig()

	require.NoError(t, helper.Up(cfg, conn))
	assert.Subset(t, tableNames(t, conn), tables)

	// a second run has nothing to apply
	require.NoError(t, helper.Up(cfg, conn))

	require.NoError(t, helper.Down(cfg, conn))
	assert.NotContains(t, tableNames(t, conn), "reviews")
	assert.Contains(t, tableNames(t, conn), "citations")

	require.NoError(t, helper.StepUp(cfg, conn))
	assert.Contains(t, tableNames(t, conn), "reviews")

	require.NoError(t, helper.Drop(cfg, conn))
	for _, table := range tables {
		assert.NotContains(t, tableNames(t, conn), table)
	}
}

func TestRunner_UnknownAction(t *testing.T) {
	conn, err := database.NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	err = helper.Runner(newConfig(), conn, "sideways")
	assert.ErrorContains(t, err, "unknown migration action")
}

func TestAutoMigrate(t *testing.T) {
	conn, err := database.NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, helper.AutoMigrate(newConfig(), conn))
	assert.Contains(t, tableNames(t, conn), "parking_spaces")
}

func TestSchema_AdminSingleton(t *testing.T) {
	conn, err := database.NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, helper.Up(newConfig(), conn))

	insert := "INSERT INTO admins (name, identification, password_hash) VALUES (?, ?, ?)"

	_, err = conn.Write.Exec(insert, "Admin", "0912345678", "hash")
	require.NoError(t, err)

	_, err = conn.Write.Exec(insert, "Other", "0987654321", "hash")
	assert.Error(t, err)
}

func TestSchema_AvailabilityNeverNegative(t *testing.T) {
	conn, err := database.NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, helper.Up(newConfig(), conn))

	_, err = conn.Write.Exec(
		"INSERT INTO parking_spaces (location, vehicle_type, available_count, hourly_rate) VALUES (?, ?, ?, ?)",
		"Guayaquil-Centro", "Auto", 0, "1.50")
	require.NoError(t, err)

	_, err = conn.Write.Exec("UPDATE parking_spaces SET available_count = available_count - 1")
	assert.Error(t, err)
}
