package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/workforcehub/employee-system/internal/core/domain"
	"github.com/workforcehub/employee-system/internal/core/ports"
)

const collectionDepartments = "departments"

// DepartmentRepository persists departments in the departments collection.
type DepartmentRepository struct {
	col *mongo.Collection
}

func NewDepartmentRepository(db *mongo.Database) *DepartmentRepository {
	return &DepartmentRepository{col: db.Collection(collectionDepartments)}
}

type departmentDoc struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty"`
	DepartmentName string               `bson:"departmentName"`
	CategoryName   string               `bson:"categoryName"`
	Location       string               `bson:"location"`
	Salary         float64              `bson:"salary"`
	Employees      []primitive.ObjectID `bson:"employees"`
}

func (d departmentDoc) toDomain() *domain.Department {
	ids := make([]string, 0, len(d.Employees))
	for _, oid := range d.Employees {
		ids = append(ids, oid.Hex())
	}
	return &domain.Department{
		ID:             d.ID.Hex(),
		DepartmentName: d.DepartmentName,
		CategoryName:   domain.Category(d.CategoryName),
		Location:       d.Location,
		Salary:         d.Salary,
		EmployeeIDs:    ids,
	}
}

// employeeOIDs converts employee id strings to ObjectIDs, dropping any that
// are not valid hex ids.
func employeeOIDs(ids []string) []primitive.ObjectID {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	return oids
}

// Create inserts a new department document.
func (r *DepartmentRepository) Create(ctx context.Context, d *domain.Department) (*domain.Department, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := departmentDoc{
		DepartmentName: d.DepartmentName,
		CategoryName:   string(d.CategoryName),
		Location:       d.Location,
		Salary:         d.Salary,
		Employees:      employeeOIDs(d.EmployeeIDs),
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert department: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *DepartmentRepository) FindByID(ctx context.Context, id string) (*domain.Department, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDepartmentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc departmentDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("find department: %w", err)
	}
	return doc.toDomain(), nil
}

// Replace overwrites all stored fields of d.ID in a single document update
// and returns the stored result.
func (r *DepartmentRepository) Replace(ctx context.Context, d *domain.Department) (*domain.Department, error) {
	oid, err := primitive.ObjectIDFromHex(d.ID)
	if err != nil {
		return nil, domain.ErrDepartmentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"departmentName": d.DepartmentName,
		"categoryName":   string(d.CategoryName),
		"location":       d.Location,
		"salary":         d.Salary,
		"employees":      employeeOIDs(d.EmployeeIDs),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc departmentDoc
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("update department: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *DepartmentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrDepartmentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete department: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}

// List returns one page of departments matching filter plus the total match
// count. Category and location filters are case-insensitive substring
// matches; the pattern is quoted so regex metacharacters in user input
// cannot change the match semantics.
func (r *DepartmentRepository) List(ctx context.Context, filter ports.DepartmentListFilter) ([]*domain.Department, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Category != "" {
		query["categoryName"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Category), Options: "i"}
	}
	if filter.Location != "" {
		query["location"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Location), Options: "i"}
	}

	direction := 1
	if filter.SortDescending {
		direction = -1
	}

	skip := int64(filter.Page-1) * int64(filter.Limit)
	opts := options.Find().
		SetSkip(skip).
		SetLimit(int64(filter.Limit)).
		SetSort(bson.D{{Key: filter.SortColumn, Value: direction}})

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list departments: %w", err)
	}
	defer cur.Close(ctx)

	var depts []*domain.Department
	for cur.Next(ctx) {
		var doc departmentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode department: %w", err)
		}
		depts = append(depts, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate departments: %w", err)
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count departments: %w", err)
	}

	return depts, total, nil
}
