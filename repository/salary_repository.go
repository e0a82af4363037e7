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

type SalaryRepository interface {
	CreateSalary(ctx context.Context, salary *models.Salary) (*mongo.InsertOneResult, error)
	FindSalaryByID(ctx context.Context, id primitive.ObjectID) (*models.Salary, error)
	GetAllSalaries(ctx context.Context, filter bson.M, page, limit int64) ([]models.SalaryWithUser, int64, error)
	UpdateSalary(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error)
	DeleteSalary(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type salaryRepository struct {
	collection *mongo.Collection
}

func NewSalaryRepository() SalaryRepository {
	return &salaryRepository{
		collection: config.GetCollection(config.SalaryCollection),
	}
}

func (r *salaryRepository) CreateSalary(ctx context.Context, salary *models.Salary) (*mongo.InsertOneResult, error) {
	salary.ID = primitive.NewObjectID()
	salary.CreatedAt = time.Now()
	salary.UpdatedAt = time.Now()

	res, err := r.collection.InsertOne(ctx, salary)
	if err != nil {
		return nil, fmt.Errorf("failed to create salary record: %w", err)
	}
	return res, nil
}

func (r *salaryRepository) FindSalaryByID(ctx context.Context, id primitive.ObjectID) (*models.Salary, error) {
	var salary models.Salary
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&salary)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find salary record by ID: %w", err)
	}
	return &salary, nil
}

func (r *salaryRepository) GetAllSalaries(ctx context.Context, filter bson.M, page, limit int64) ([]models.SalaryWithUser, int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count salary records: %w", err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$sort", Value: bson.D{{Key: "year", Value: -1}, {Key: "month", Value: -1}}}},
		{{Key: "$skip", Value: (page - 1) * limit}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.UserCollection},
			{Key: "localField", Value: "user_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "userDetails"},
		}}},
		{{Key: "$unwind", Value: "$userDetails"}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "user_name", Value: "$userDetails.name"},
			{Key: "user_email", Value: "$userDetails.email"},
		}}},
		{{Key: "$project", Value: bson.D{{Key: "userDetails", Value: 0}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to aggregate salary records: %w", err)
	}
	defer cursor.Close(ctx)

	var salaries []models.SalaryWithUser
	if err = cursor.All(ctx, &salaries); err != nil {
		return nil, 0, fmt.Errorf("failed to decode salary records: %w", err)
	}
	if salaries == nil {
		salaries = []models.SalaryWithUser{}
	}
	return salaries, total, nil
}

func (r *salaryRepository) UpdateSalary(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	updateData["updated_at"] = time.Now()
	update := bson.M{"$set": updateData}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update salary record: %w", err)
	}
	return res, nil
}

func (r *salaryRepository) DeleteSalary(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete salary record: %w", err)
	}
	return res, nil
}
