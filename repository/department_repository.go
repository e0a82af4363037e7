package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"employee-management-system/config"
	"employee-management-system/models"
)

var (
	ErrDuplicateDepartmentName = errors.New("a department with this name already exists")
	ErrDepartmentNotFound      = errors.New("department not found")
)

type DepartmentRepository interface {
	CreateDepartment(ctx context.Context, department *models.Department) (*mongo.InsertOneResult, error)
	GetAllDepartments(ctx context.Context) ([]models.DepartmentWithManager, error)
	GetDepartmentByID(ctx context.Context, id primitive.ObjectID) (*models.Department, error)
	UpdateDepartment(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error)
	DeleteDepartment(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	FindDepartmentByName(ctx context.Context, name string) (*models.Department, error)
	SetEmployeeCountAndManager(ctx context.Context, id primitive.ObjectID, count int64, manager *primitive.ObjectID) error
	CountDocuments(ctx context.Context, filter bson.M) (int64, error)
}

type departmentRepository struct {
	collection *mongo.Collection
}

func NewDepartmentRepository() DepartmentRepository {
	return &departmentRepository{
		collection: config.GetCollection(config.DepartmentCollection),
	}
}

func (r *departmentRepository) CreateDepartment(ctx context.Context, department *models.Department) (*mongo.InsertOneResult, error) {
	department.ID = primitive.NewObjectID()
	if department.Status == "" {
		department.Status = models.StatusActive
	}
	department.EmployeeCount = 0
	department.CreatedAt = time.Now()
	department.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, department)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateDepartmentName
		}
		return nil, fmt.Errorf("failed to create department: %w", err)
	}
	return result, nil
}

func (r *departmentRepository) GetAllDepartments(ctx context.Context) ([]models.DepartmentWithManager, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "name", Value: 1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.UserCollection},
			{Key: "localField", Value: "manager"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "managerInfo"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$managerInfo"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "manager_name", Value: "$managerInfo.name"},
			{Key: "manager_email", Value: "$managerInfo.email"},
			{Key: "manager_position", Value: "$managerInfo.position"},
		}}},
		{{Key: "$project", Value: bson.D{{Key: "managerInfo", Value: 0}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate departments: %w", err)
	}
	defer cursor.Close(ctx)

	var departments []models.DepartmentWithManager
	if err = cursor.All(ctx, &departments); err != nil {
		return nil, fmt.Errorf("failed to decode departments: %w", err)
	}
	if departments == nil {
		departments = []models.DepartmentWithManager{}
	}
	return departments, nil
}

func (r *departmentRepository) GetDepartmentByID(ctx context.Context, id primitive.ObjectID) (*models.Department, error) {
	var department models.Department
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&department)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to find department by ID: %w", err)
	}
	return &department, nil
}

func (r *departmentRepository) UpdateDepartment(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	updateData["updated_at"] = time.Now()
	update := bson.M{"$set": updateData}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateDepartmentName
		}
		return nil, fmt.Errorf("failed to update department: %w", err)
	}
	return result, nil
}

func (r *departmentRepository) DeleteDepartment(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete department: %w", err)
	}
	return result, nil
}

func (r *departmentRepository) FindDepartmentByName(ctx context.Context, name string) (*models.Department, error) {
	var department models.Department
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&department)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to find department by name: %w", err)
	}
	return &department, nil
}

// SetEmployeeCountAndManager persists both derived fields in a single
// update call; a nil manager clears the reference.
func (r *departmentRepository) SetEmployeeCountAndManager(ctx context.Context, id primitive.ObjectID, count int64, manager *primitive.ObjectID) error {
	update := bson.M{
		"$set": bson.M{
			"employee_count": count,
			"manager":        manager,
			"updated_at":     time.Now(),
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update department employee count and manager: %w", err)
	}
	return nil
}

func (r *departmentRepository) CountDocuments(ctx context.Context, filter bson.M) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count departments: %w", err)
	}
	return count, nil
}
