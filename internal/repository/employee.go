package repository

import (
	"context"
	"regexp"
	"time"

	"github.com/deppfellow/employee-service/internal/database"
	"github.com/deppfellow/employee-service/internal/metrics"
	"github.com/deppfellow/employee-service/internal/model"
	"github.com/deppfellow/employee-service/internal/mongoerr"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is the subset of *mongo.Collection used by EmployeeRepository.
type Collection interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts ...*options.FindOneAndUpdateOptions) *mongo.SingleResult
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

// EmployeeRepository persists employees in a MongoDB collection.
type EmployeeRepository struct {
	coll    Collection
	metrics *metrics.Metrics
}

// NewEmployeeRepository returns a repository over coll. m may be nil.
func NewEmployeeRepository(coll Collection, m *metrics.Metrics) *EmployeeRepository {
	return &EmployeeRepository{
		coll:    coll,
		metrics: m,
	}
}

func (r *EmployeeRepository) observe(operation string, start time.Time) {
	if r.metrics == nil {
		return
	}
	r.metrics.DBQueryDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// Create inserts emp and returns the stored record with its generated id.
func (r *EmployeeRepository) Create(ctx context.Context, emp *model.Employee) (*model.Employee, error) {
	defer r.observe("insert", time.Now())

	doc := *emp
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, errors.Wrap(mongoerr.Wrap(err, database.EmployeesCollection), "inserting employee")
	}

	return &doc, nil
}

// FindAll returns every employee matching filter in insertion order. The
// result is never nil.
func (r *EmployeeRepository) FindAll(ctx context.Context, filter model.EmployeeFilter) ([]model.Employee, error) {
	defer r.observe("find", time.Now())

	cursor, err := r.coll.Find(ctx, buildFilter(filter), options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(mongoerr.Wrap(err, database.EmployeesCollection), "finding employees")
	}

	employees := make([]model.Employee, 0)
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, errors.Wrap(mongoerr.Wrap(err, database.EmployeesCollection), "decoding employees")
	}
	if employees == nil {
		employees = []model.Employee{}
	}

	return employees, nil
}

// FindByID returns the employee with the given hex id.
func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*model.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrEmployeeNotFound
	}

	defer r.observe("find_one", time.Now())

	var emp model.Employee
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&emp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrEmployeeNotFound
		}
		return nil, errors.Wrap(mongoerr.Wrap(err, database.EmployeesCollection), "finding employee")
	}

	return &emp, nil
}

// Update applies the non-nil fields of upd and returns the record as stored
// afterwards. An empty update only reads the record.
func (r *EmployeeRepository) Update(ctx context.Context, id string, upd model.EmployeeUpdate) (*model.Employee, error) {
	if upd.IsEmpty() {
		return r.FindByID(ctx, id)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrEmployeeNotFound
	}

	defer r.observe("update", time.Now())

	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Position != nil {
		set["position"] = *upd.Position
	}
	if upd.Salary != nil {
		set["salary"] = *upd.Salary
	}

	var emp model.Employee
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&emp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrEmployeeNotFound
		}
		return nil, errors.Wrap(mongoerr.Wrap(err, database.EmployeesCollection), "updating employee")
	}

	return &emp, nil
}

// Delete removes the employee with the given hex id.
func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.ErrEmployeeNotFound
	}

	defer r.observe("delete", time.Now())

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errors.Wrap(mongoerr.Wrap(err, database.EmployeesCollection), "deleting employee")
	}
	if res.DeletedCount == 0 {
		return model.ErrEmployeeNotFound
	}

	return nil
}

// buildFilter translates filter into a query document. The name is matched
// literally, so regex metacharacters typed by a caller carry no meaning.
func buildFilter(filter model.EmployeeFilter) bson.M {
	query := bson.M{}
	if filter.Name != "" {
		query["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Name), Options: "i"}
	}
	if filter.MinSalary != nil {
		query["salary"] = bson.M{"$gte": *filter.MinSalary}
	}
	return query
}
