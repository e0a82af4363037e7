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

type LeaveRepository interface {
	CreateLeave(ctx context.Context, leave *models.Leave) (*mongo.InsertOneResult, error)
	FindLeaveByID(ctx context.Context, id primitive.ObjectID) (*models.Leave, error)
	GetAllLeaves(ctx context.Context, filter bson.M, page, limit int64) ([]models.LeaveWithUser, int64, error)
	UpdateLeave(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error)
	DeleteLeave(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	CountPendingLeaves(ctx context.Context) (int64, error)
}

type leaveRepository struct {
	collection *mongo.Collection
}

func NewLeaveRepository() LeaveRepository {
	return &leaveRepository{
		collection: config.GetCollection(config.LeaveCollection),
	}
}

func (r *leaveRepository) CreateLeave(ctx context.Context, leave *models.Leave) (*mongo.InsertOneResult, error) {
	leave.ID = primitive.NewObjectID()
	leave.Status = models.LeavePending
	leave.CreatedAt = time.Now()
	leave.UpdatedAt = time.Now()

	res, err := r.collection.InsertOne(ctx, leave)
	if err != nil {
		return nil, fmt.Errorf("failed to create leave request: %w", err)
	}
	return res, nil
}

func (r *leaveRepository) FindLeaveByID(ctx context.Context, id primitive.ObjectID) (*models.Leave, error) {
	var leave models.Leave
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&leave)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find leave request by ID: %w", err)
	}
	return &leave, nil
}

func (r *leaveRepository) GetAllLeaves(ctx context.Context, filter bson.M, page, limit int64) ([]models.LeaveWithUser, int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$skip", Value: (page - 1) * limit}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.UserCollection},
			{Key: "localField", Value: "user_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "userDetails"},
		}}},
		{{Key: "$unwind", Value: "$userDetails"}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.UserCollection},
			{Key: "localField", Value: "approved_by"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "approverDetails"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$approverDetails"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "user_name", Value: "$userDetails.name"},
			{Key: "user_email", Value: "$userDetails.email"},
			{Key: "approved_by_name", Value: "$approverDetails.name"},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "userDetails", Value: 0},
			{Key: "approverDetails", Value: 0},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to aggregate leave requests: %w", err)
	}
	defer cursor.Close(ctx)

	var leaves []models.LeaveWithUser
	if err = cursor.All(ctx, &leaves); err != nil {
		return nil, 0, fmt.Errorf("failed to decode leave requests: %w", err)
	}
	if leaves == nil {
		leaves = []models.LeaveWithUser{}
	}
	return leaves, total, nil
}

func (r *leaveRepository) UpdateLeave(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	updateData["updated_at"] = time.Now()
	update := bson.M{"$set": updateData}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update leave request: %w", err)
	}
	return res, nil
}

func (r *leaveRepository) DeleteLeave(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete leave request: %w", err)
	}
	return res, nil
}

func (r *leaveRepository) CountPendingLeaves(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"status": models.LeavePending})
	if err != nil {
		return 0, fmt.Errorf("failed to count pending leave requests: %w", err)
	}
	return count, nil
}
