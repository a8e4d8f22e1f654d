package repository_test

import (
	"context"
	"testing"

	"github.com/deppfellow/employee-service/internal/metrics"
	"github.com/deppfellow/employee-service/internal/model"
	"github.com/deppfellow/employee-service/internal/mongoerr"
	"github.com/deppfellow/employee-service/internal/repository"
	mocks "github.com/deppfellow/employee-service/mock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func newRepo(t *testing.T) (*repository.EmployeeRepository, *mocks.Collection, *metrics.Metrics) {
	t.Helper()

	coll := mocks.NewCollection(t)
	m := metrics.NewMetrics(prometheus.NewRegistry())

	return repository.NewEmployeeRepository(coll, m), coll, m
}

func ptr[T any](v T) *T { return &v }

func TestEmployeeRepository_Create(t *testing.T) {
	t.Run("assigns an id", func(t *testing.T) {
		repo, coll, m := newRepo(t)

		coll.On("InsertOne", mock.Anything, mock.MatchedBy(func(doc model.Employee) bool {
			return !doc.ID.IsZero() && doc.Name == "Ann" && doc.Salary == 90000
		})).Return(&mongo.InsertOneResult{}, nil).Once()

		emp, err := repo.Create(context.Background(), &model.Employee{Name: "Ann", Position: "Eng", Salary: 90000})

		require.NoError(t, err)
		assert.False(t, emp.ID.IsZero())
		assert.Equal(t, "Ann", emp.Name)
		assert.Equal(t, "Eng", emp.Position)
		assert.Equal(t, 1, testutil.CollectAndCount(m.DBQueryDuration))
	})

	t.Run("classifies driver errors", func(t *testing.T) {
		repo, coll, _ := newRepo(t)

		dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key"}}}
		coll.On("InsertOne", mock.Anything, mock.Anything).Return(nil, dup).Once()

		_, err := repo.Create(context.Background(), &model.Employee{Name: "Ann", Salary: 1})

		require.Error(t, err)
		assert.Equal(t, mongoerr.DuplicateKey, mongoerr.ErrCode(err))
		assert.ErrorContains(t, err, "inserting employee")
	})
}

func TestEmployeeRepository_FindAll(t *testing.T) {
	ann := model.Employee{ID: primitive.NewObjectID(), Name: "Ann", Salary: 90000}
	bob := model.Employee{ID: primitive.NewObjectID(), Name: "Bob", Salary: 50000}

	t.Run("no filter", func(t *testing.T) {
		repo, coll, _ := newRepo(t)

		cursor, err := mongo.NewCursorFromDocuments([]interface{}{ann, bob}, nil, nil)
		require.NoError(t, err)
		coll.On("Find", mock.Anything, bson.M{}, mock.Anything).Return(cursor, nil).Once()

		employees, err := repo.FindAll(context.Background(), model.EmployeeFilter{})

		require.NoError(t, err)
		assert.Equal(t, []model.Employee{ann, bob}, employees)
	})

	t.Run("name and salary filter", func(t *testing.T) {
		repo, coll, _ := newRepo(t)

		want := bson.M{
			"name":   primitive.Regex{Pattern: `a\.n`, Options: "i"},
			"salary": bson.M{"$gte": 60000.0},
		}
		cursor, err := mongo.NewCursorFromDocuments([]interface{}{ann}, nil, nil)
		require.NoError(t, err)
		coll.On("Find", mock.Anything, want, mock.Anything).Return(cursor, nil).Once()

		employees, err := repo.FindAll(context.Background(), model.EmployeeFilter{Name: "a.n", MinSalary: ptr(60000.0)})

		require.NoError(t, err)
		assert.Len(t, employees, 1)
	})

	t.Run("empty result is not nil", func(t *testing.T) {
		repo, coll, _ := newRepo(t)

		cursor, err := mongo.NewCursorFromDocuments([]interface{}{}, nil, nil)
		require.NoError(t, err)
		coll.On("Find", mock.Anything, mock.Anything, mock.Anything).Return(cursor, nil).Once()

		employees, err := repo.FindAll(context.Background(), model.EmployeeFilter{})

		require.NoError(t, err)
		assert.NotNil(t, employees)
		assert.Empty(t, employees)
	})

	t.Run("find error", func(t *testing.T) {
		repo, coll, _ := newRepo(t)

		coll.On("Find", mock.Anything, mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()

		_, err := repo.FindAll(context.Background(), model.EmployeeFilter{})

		require.ErrorIs(t, err, assert.AnError)
	})
}

func TestEmployeeRepository_FindByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, coll, _ := newRepo(t)
		ann := model.Employee{ID: primitive.NewObjectID(), Name: "Ann", Salary: 90000}

		coll.On("FindOne", mock.Anything, bson.M{"_id": ann.ID}).
			Return(mongo.NewSingleResultFromDocument(ann, nil, nil)).Once()

		emp, err := repo.FindByID(context.Background(), ann.ID.Hex())

		require.NoError(t, err)
		assert.Equal(t, ann, *emp)
	})

	t.Run("absent", func(t *testing.T) {
		repo, coll, _ := newRepo(t)

		coll.On("FindOne", mock.Anything, mock.Anything).
			Return(mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)).Once()

		_, err := repo.FindByID(context.Background(), primitive.NewObjectID().Hex())

		require.ErrorIs(t, err, model.ErrEmployeeNotFound)
	})

	t.Run("malformed id never reaches the store", func(t *testing.T) {
		repo, coll, _ := newRepo(t)

		_, err := repo.FindByID(context.Background(), "not-an-id")

		require.ErrorIs(t, err, model.ErrEmployeeNotFound)
		coll.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything)
	})
}

func TestEmployeeRepository_Update(t *testing.T) {
	t.Run("sets only supplied fields", func(t *testing.T) {
		repo, coll, _ := newRepo(t)
		id := primitive.NewObjectID()
		updated := model.Employee{ID: id, Name: "Ann", Position: "Eng", Salary: 100000}

		coll.On("FindOneAndUpdate",
			mock.Anything,
			bson.M{"_id": id},
			bson.M{"$set": bson.M{"salary": 100000.0}},
			mock.Anything,
		).Return(mongo.NewSingleResultFromDocument(updated, nil, nil)).Once()

		emp, err := repo.Update(context.Background(), id.Hex(), model.EmployeeUpdate{Salary: ptr(100000.0)})

		require.NoError(t, err)
		assert.Equal(t, updated, *emp)
	})

	t.Run("empty update is a lookup", func(t *testing.T) {
		repo, coll, _ := newRepo(t)
		ann := model.Employee{ID: primitive.NewObjectID(), Name: "Ann", Salary: 90000}

		coll.On("FindOne", mock.Anything, bson.M{"_id": ann.ID}).
			Return(mongo.NewSingleResultFromDocument(ann, nil, nil)).Once()

		emp, err := repo.Update(context.Background(), ann.ID.Hex(), model.EmployeeUpdate{})

		require.NoError(t, err)
		assert.Equal(t, ann, *emp)
		coll.AssertNotCalled(t, "FindOneAndUpdate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("absent", func(t *testing.T) {
		repo, coll, _ := newRepo(t)

		coll.On("FindOneAndUpdate", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)).Once()

		_, err := repo.Update(context.Background(), primitive.NewObjectID().Hex(), model.EmployeeUpdate{Name: ptr("Zed")})

		require.ErrorIs(t, err, model.ErrEmployeeNotFound)
	})
}

func TestEmployeeRepository_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo, coll, _ := newRepo(t)
		id := primitive.NewObjectID()

		coll.On("DeleteOne", mock.Anything, bson.M{"_id": id}).
			Return(&mongo.DeleteResult{DeletedCount: 1}, nil).Once()

		require.NoError(t, repo.Delete(context.Background(), id.Hex()))
	})

	t.Run("absent", func(t *testing.T) {
		repo, coll, _ := newRepo(t)

		coll.On("DeleteOne", mock.Anything, mock.Anything).
			Return(&mongo.DeleteResult{DeletedCount: 0}, nil).Once()

		require.ErrorIs(t, repo.Delete(context.Background(), primitive.NewObjectID().Hex()), model.ErrEmployeeNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		repo, _, _ := newRepo(t)

		require.ErrorIs(t, repo.Delete(context.Background(), "123"), model.ErrEmployeeNotFound)
	})
}
