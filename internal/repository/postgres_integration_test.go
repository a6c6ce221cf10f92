//go:build integration

package repository

import (
	"context"
	"testing"

	"tzlon-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jackc/pgx/v5/pgxpool"
)

func setupTestDatabase(t *testing.T) *pgxpool.Pool {
	ctx := context.Background()

	// Start PostgreSQL container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	postgresC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		postgresC.Terminate(ctx)
	})

	host, err := postgresC.Host(ctx)
	require.NoError(t, err)

	port, err := postgresC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connString := "postgres://testuser:testpass@" + host + ":" + port.Port() + "/testdb?sslmode=disable"

	// Connect to database
	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
	})

	return pool
}

func TestRepository_History(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.EnsureSchema(ctx))
	// A second call must be a no-op.
	require.NoError(t, repo.EnsureSchema(ctx))

	empty, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)

	entries := []models.HistoryEntry{
		{Kind: models.KindLongitudeToTimezone, Input: `E 30° 15' 30.000"`, Longitude: 30.258333, OffsetHours: 2.017222},
		{Kind: models.KindTimezoneToLongitude, Input: "-05:30:00.000", Longitude: -82.5, OffsetHours: -5.5},
		{Kind: models.KindTimezoneToLongitude, Input: "+03:00:00.000", Longitude: 45, OffsetHours: 3},
	}
	for _, e := range entries {
		require.NoError(t, repo.RecordConversion(ctx, e))
	}

	recent, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	assert.Equal(t, int64(3), recent[0].ID)
	assert.Equal(t, "+03:00:00.000", recent[0].Input)
	assert.Equal(t, 45.0, recent[0].Longitude)
	assert.False(t, recent[0].CreatedAt.IsZero())

	assert.Equal(t, int64(2), recent[1].ID)
	assert.Equal(t, models.KindTimezoneToLongitude, recent[1].Kind)
	assert.Equal(t, -5.5, recent[1].OffsetHours)
}
