//go:build integration

package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5434"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "registration_test_db"),
	)

	var err error
	testDB, err = NewPostgresDB(dsn, PoolConfig{MaxOpenConns: 5, MaxIdleConns: 2})
	if err != nil {
		log.Fatalf("failed to connect to test database: %v", err)
	}

	testDB.Exec("DROP TABLE IF EXISTS attendees")
	testDB.Exec(`
		CREATE TABLE attendees (
			attendee_id   TEXT PRIMARY KEY,
			event_slug    TEXT NOT NULL,
			name          TEXT NOT NULL,
			email         TEXT NOT NULL,
			phone         TEXT,
			registered_at TIMESTAMP NOT NULL
		)
	`)

	code := m.Run()

	testDB.Exec("DROP TABLE IF EXISTS attendees")
	os.Exit(code)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestGormBackend_InsertThenSelect(t *testing.T) {
	testDB.Exec("DELETE FROM attendees")
	backend := NewGormBackend(testDB)
	ctx := context.Background()

	res, err := backend.Execute(ctx,
		"INSERT INTO Attendees (attendee_id, email, event_slug, name, registered_at) "+
			"VALUES ('a-1', 'o''brien@example.com', 'conf2026', 'Sean O''Brien', '2026-01-01 00:00:00')")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.RowsAffected)

	res, err = backend.Execute(ctx, "SELECT * FROM Attendees WHERE email = 'o''brien@example.com'")
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "Sean O'Brien", res.Rows[0]["name"])
}

func TestGormBackend_SelectEmpty(t *testing.T) {
	testDB.Exec("DELETE FROM attendees")

	res, err := NewGormBackend(testDB).Execute(context.Background(), "SELECT * FROM Attendees WHERE attendee_id = 'missing'")
	require.NoError(t, err)
	assert.Empty(t, res.Rows)
}

func TestGormBackend_BadStatement(t *testing.T) {
	_, err := NewGormBackend(testDB).Execute(context.Background(), "SELECT * FROM no_such_table")
	assert.Error(t, err)
}
