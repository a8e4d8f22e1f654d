package database

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// employeeIndexes back the list filters: salary is a range predicate and
// name is matched with a case-insensitive regex.
var employeeIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "salary", Value: 1}},
		Options: options.Index().SetName("salary_1"),
	},
	{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetName("name_1"),
	},
}

// EnsureIndexes creates the employees indexes. Creating an index that
// already exists with the same definition is a no-op on the server, so it
// runs on every startup.
func EnsureIndexes(ctx context.Context, logger *zerolog.Logger, db *Database) error {
	names, err := db.Collection(EmployeesCollection).Indexes().CreateMany(ctx, employeeIndexes)
	if err != nil {
		return errors.Wrap(err, "creating employee indexes")
	}

	logger.Info().Strs("indexes", names).Msg("database indexes ensured")
	return nil
}
