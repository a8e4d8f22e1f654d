//go:build integration

package repository_test

import (
	"context"
	"testing"

	"github.com/deppfellow/employee-service/internal/model"
	"github.com/deppfellow/employee-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func setupMongo(t *testing.T) *mongo.Collection {
	t.Helper()
	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7")
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	return client.Database("trial").Collection("employees")
}

func TestEmployeeRepository_Integration(t *testing.T) {
	repo := repository.NewEmployeeRepository(setupMongo(t), nil)
	ctx := context.Background()

	ann, err := repo.Create(ctx, &model.Employee{Name: "Ann", Position: "Eng", Salary: 90000})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &model.Employee{Name: "Bob", Salary: 50000})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &model.Employee{Name: "a.n*", Salary: 10})
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		got, err := repo.FindByID(ctx, ann.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, *ann, *got)
	})

	t.Run("salary filter is inclusive", func(t *testing.T) {
		minSalary := 90000.0
		got, err := repo.FindAll(ctx, model.EmployeeFilter{MinSalary: &minSalary})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Ann", got[0].Name)
	})

	t.Run("name filter is literal and case-insensitive", func(t *testing.T) {
		got, err := repo.FindAll(ctx, model.EmployeeFilter{Name: "ANN"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, ann.ID, got[0].ID)

		got, err = repo.FindAll(ctx, model.EmployeeFilter{Name: "a.n"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "a.n*", got[0].Name)
	})

	t.Run("partial update", func(t *testing.T) {
		salary := 100000.0
		got, err := repo.Update(ctx, ann.ID.Hex(), model.EmployeeUpdate{Salary: &salary})
		require.NoError(t, err)
		assert.Equal(t, "Ann", got.Name)
		assert.Equal(t, "Eng", got.Position)
		assert.InDelta(t, 100000.0, got.Salary, 0)
	})

	t.Run("delete then fetch", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, ann.ID.Hex()))

		_, err := repo.FindByID(ctx, ann.ID.Hex())
		require.ErrorIs(t, err, model.ErrEmployeeNotFound)
		require.ErrorIs(t, repo.Delete(ctx, ann.ID.Hex()), model.ErrEmployeeNotFound)
	})
}
