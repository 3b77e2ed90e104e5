package repository_test

import (
	"context"
	"testing"

	"ecoparking/infras/database"
	"ecoparking/infras/otel/mocks"
	"ecoparking/shared/dto"
	"ecoparking/shared/failure"
	"ecoparking/shared/model"
	"ecoparking/shared/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slot struct {
	ID             int64           `db:"id" insert:"-"`
	Location       string          `db:"location"`
	AvailableCount int             `db:"available_count"`
	HourlyRate     decimal.Decimal `db:"hourly_rate"`
	model.Metadata
}

const schema = `CREATE TABLE slots (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	location VARCHAR(100) NOT NULL UNIQUE,
	available_count INTEGER NOT NULL CHECK (available_count >= 0),
	hourly_rate NUMERIC(10,2) NOT NULL,
	created_at TIMESTAMP NOT NULL,
	modified_at TIMESTAMP NOT NULL,
	created_by VARCHAR(100) NOT NULL DEFAULT '',
	modified_by VARCHAR(100) NOT NULL DEFAULT ''
)`

func newRepo(t *testing.T) repository.Repository[slot] {
	t.Helper()

	conn, err := database.NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	_, err = conn.Write.Exec(schema)
	require.NoError(t, err)

	return repository.NewRepository[slot]("slot", "slots", "id", conn, mocks.NewOtel())
}

func seed(t *testing.T, repo repository.Repository[slot]) {
	t.Helper()

	err := repo.InsertBulk(context.Background(), []slot{
		{Location: "Guayaquil-Centro", AvailableCount: 50, HourlyRate: decimal.RequireFromString("1.50"), Metadata: model.NewMetadata("system")},
		{Location: "Guayaquil-Norte", AvailableCount: 30, HourlyRate: decimal.RequireFromString("1.00"), Metadata: model.NewMetadata("system")},
		{Location: "Samborondón", AvailableCount: 0, HourlyRate: decimal.RequireFromString("2.00"), Metadata: model.NewMetadata("system")},
	})
	require.NoError(t, err)
}

func TestInsertColumnsSkipID(t *testing.T) {
	repo := newRepo(t)

	assert.NotContains(t, repo.InsertColumns, "id")
	assert.Contains(t, repo.InsertColumns, "created_at")
}

func TestCreateReturnsID(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, slot{Location: "A", AvailableCount: 1, HourlyRate: decimal.NewFromInt(1), Metadata: model.NewMetadata("system")})
	require.NoError(t, err)

	second, err := repo.Create(ctx, slot{Location: "B", AvailableCount: 1, HourlyRate: decimal.NewFromInt(1), Metadata: model.NewMetadata("system")})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)

	got, err := repo.Get(ctx, dto.Eq("id", second))
	require.NoError(t, err)
	assert.Equal(t, "B", got.Location)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestCreateDuplicateIsConflict(t *testing.T) {
	repo := newRepo(t)
	seed(t, repo)

	_, err := repo.Create(context.Background(), slot{Location: "Guayaquil-Centro", AvailableCount: 1, HourlyRate: decimal.NewFromInt(1), Metadata: model.NewMetadata("system")})

	require.Error(t, err)
	assert.True(t, failure.IsUserError(err))
}

func TestGetMissingReturnsZero(t *testing.T) {
	repo := newRepo(t)

	got, err := repo.Get(context.Background(), dto.Eq("id", int64(99)))

	require.NoError(t, err)
	assert.Zero(t, got.ID)
}

func TestGetAllOrderAndPage(t *testing.T) {
	repo := newRepo(t)
	seed(t, repo)
	ctx := context.Background()

	all, err := repo.GetAll(ctx, dto.QueryParams{SortBy: "hourly_rate", SortDir: dto.SortDirDesc}, dto.FilterGroup{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Samborondón", all[0].Location)
	assert.True(t, all[0].HourlyRate.Equal(decimal.RequireFromString("2.00")))

	page, err := repo.GetAll(ctx, dto.QueryParams{Page: 2, Limit: 2, SortBy: "id", SortDir: dto.SortDirAsc}, dto.FilterGroup{})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Samborondón", page[0].Location)

	ignored, err := repo.GetAll(ctx, dto.QueryParams{SortBy: "location; DROP TABLE slots"}, dto.FilterGroup{})
	require.NoError(t, err)
	assert.Len(t, ignored, 3)
}

func TestCountAndExist(t *testing.T) {
	repo := newRepo(t)
	seed(t, repo)
	ctx := context.Background()

	count, err := repo.Count(ctx, dto.And(dto.NewFilter("available_count", dto.FilterOperatorGreater, 0)))
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	exist, err := repo.Exist(ctx, dto.Eq("location", "Guayaquil-Norte"))
	require.NoError(t, err)
	assert.True(t, exist)

	_, err = repo.Exist(ctx, dto.FilterGroup{})
	assert.Error(t, err)
}

func TestGuardedIncrement(t *testing.T) {
	repo := newRepo(t)
	seed(t, repo)
	ctx := context.Background()

	guard := func(location string) dto.FilterGroup {
		return dto.And(
			dto.NewFilter("location", dto.FilterOperatorEq, location),
			dto.NewFilter("available_count", dto.FilterOperatorGreater, 0),
		)
	}

	affected, err := repo.Increment(ctx, map[string]any{"available_count": -1}, map[string]any{"modified_by": "ana"}, guard("Guayaquil-Norte"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.Increment(ctx, map[string]any{"available_count": -1}, nil, guard("Samborondón"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)

	norte, err := repo.Get(ctx, dto.Eq("location", "Guayaquil-Norte"))
	require.NoError(t, err)
	assert.Equal(t, 29, norte.AvailableCount)
	assert.Equal(t, "ana", norte.ModifiedBy)

	empty, err := repo.Get(ctx, dto.Eq("location", "Samborondón"))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.AvailableCount)
}

func TestUpdateSameColumnAsFilter(t *testing.T) {
	repo := newRepo(t)
	seed(t, repo)
	ctx := context.Background()

	affected, err := repo.Update(ctx, map[string]any{"available_count": 10}, dto.Eq("available_count", 0))
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	got, err := repo.Get(ctx, dto.Eq("location", "Samborondón"))
	require.NoError(t, err)
	assert.Equal(t, 10, got.AvailableCount)
}

func TestCheckViolationIsBadRequest(t *testing.T) {
	repo := newRepo(t)
	seed(t, repo)

	_, err := repo.Update(context.Background(), map[string]any{"available_count": -5}, dto.Eq("location", "Guayaquil-Centro"))

	require.Error(t, err)
	assert.True(t, failure.IsUserError(err))
}

func TestDeleteRequiresFilter(t *testing.T) {
	repo := newRepo(t)
	seed(t, repo)
	ctx := context.Background()

	_, err := repo.Delete(ctx, dto.FilterGroup{})
	assert.Error(t, err)

	removed, err := repo.Delete(ctx, dto.And(dto.NewFilter("hourly_rate", dto.FilterOperatorLess, decimal.RequireFromString("1.50"))))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
}
