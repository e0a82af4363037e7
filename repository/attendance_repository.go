package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"employee-management-system/config"
	"employee-management-system/models"
)

var ErrDuplicateAttendance = errors.New("attendance already marked for this day")

type AttendanceRepository interface {
	CreateAttendance(ctx context.Context, attendance *models.Attendance) (*mongo.InsertOneResult, error)
	FindAttendanceByID(ctx context.Context, id primitive.ObjectID) (*models.Attendance, error)
	FindAttendanceByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) (*models.Attendance, error)
	UpdateAttendance(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error)
	DeleteAttendance(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	GetAllAttendancesWithUserDetails(ctx context.Context, filter bson.M, page, limit int64) ([]models.AttendanceWithUser, int64, error)
	GetAttendancesByDateWithUserDetails(ctx context.Context, filter bson.M) ([]models.AttendanceWithUser, error)
	AggregateStatusCounts(ctx context.Context, filter bson.M) ([]models.StatusCount, error)
	AverageWorkingHours(ctx context.Context, filter bson.M) (float64, error)
	CountDocuments(ctx context.Context, filter bson.M) (int64, error)

	CreateQRCode(ctx context.Context, qrCode *models.QRCode) (*mongo.InsertOneResult, error)
	FindQRCodeByValue(ctx context.Context, code string) (*models.QRCode, error)
	FindQRCodeByDate(ctx context.Context, date string) (*models.QRCode, error)
	MarkQRCodeAsUsed(ctx context.Context, qrCodeID, userID primitive.ObjectID) (*mongo.UpdateResult, error)
}

type attendanceRepository struct {
	attendanceCollection *mongo.Collection
	qrCodeCollection     *mongo.Collection
}

func NewAttendanceRepository() AttendanceRepository {
	return &attendanceRepository{
		attendanceCollection: config.GetCollection(config.AttendanceCollection),
		qrCodeCollection:     config.GetCollection(config.QRCodeCollection),
	}
}

func (r *attendanceRepository) CreateAttendance(ctx context.Context, attendance *models.Attendance) (*mongo.InsertOneResult, error) {
	if attendance.ID.IsZero() {
		attendance.ID = primitive.NewObjectID()
	}
	attendance.CreatedAt = time.Now()
	attendance.UpdatedAt = time.Now()

	res, err := r.attendanceCollection.InsertOne(ctx, attendance)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateAttendance
		}
		return nil, fmt.Errorf("failed to create attendance record: %w", err)
	}
	return res, nil
}

func (r *attendanceRepository) FindAttendanceByID(ctx context.Context, id primitive.ObjectID) (*models.Attendance, error) {
	var attendance models.Attendance
	err := r.attendanceCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&attendance)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find attendance by ID: %w", err)
	}
	return &attendance, nil
}

func (r *attendanceRepository) FindAttendanceByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) (*models.Attendance, error) {
	var attendance models.Attendance
	filter := bson.M{"user_id": userID, "date": date}
	err := r.attendanceCollection.FindOne(ctx, filter).Decode(&attendance)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find attendance by user and date: %w", err)
	}
	return &attendance, nil
}

func (r *attendanceRepository) UpdateAttendance(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	updateData["updated_at"] = time.Now()
	update := bson.M{"$set": updateData}

	res, err := r.attendanceCollection.UpdateByID(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update attendance record: %w", err)
	}
	return res, nil
}

func (r *attendanceRepository) DeleteAttendance(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	res, err := r.attendanceCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete attendance record: %w", err)
	}
	return res, nil
}

func userLookupStages() mongo.Pipeline {
	return mongo.Pipeline{
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
			{Key: "user_position", Value: "$userDetails.position"},
		}}},
		{{Key: "$project", Value: bson.D{{Key: "userDetails", Value: 0}}}},
	}
}

func (r *attendanceRepository) GetAllAttendancesWithUserDetails(ctx context.Context, filter bson.M, page, limit int64) ([]models.AttendanceWithUser, int64, error) {
	total, err := r.attendanceCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$sort", Value: bson.D{{Key: "date", Value: -1}, {Key: "check_in", Value: -1}}}},
		{{Key: "$skip", Value: (page - 1) * limit}},
		{{Key: "$limit", Value: limit}},
	}
	pipeline = append(pipeline, userLookupStages()...)

	cursor, err := r.attendanceCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to aggregate attendance records: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.AttendanceWithUser
	if err = cursor.All(ctx, &results); err != nil {
		return nil, 0, fmt.Errorf("failed to decode attendance records: %w", err)
	}
	if results == nil {
		results = []models.AttendanceWithUser{}
	}
	return results, total, nil
}

func (r *attendanceRepository) GetAttendancesByDateWithUserDetails(ctx context.Context, filter bson.M) ([]models.AttendanceWithUser, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$sort", Value: bson.D{{Key: "check_in", Value: 1}}}},
	}
	pipeline = append(pipeline, userLookupStages()...)

	cursor, err := r.attendanceCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate today's attendance: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.AttendanceWithUser
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode today's attendance: %w", err)
	}
	if results == nil {
		results = []models.AttendanceWithUser{}
	}
	return results, nil
}

func (r *attendanceRepository) AggregateStatusCounts(ctx context.Context, filter bson.M) ([]models.StatusCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.attendanceCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate status counts: %w", err)
	}
	defer cursor.Close(ctx)

	var counts []models.StatusCount
	if err = cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("failed to decode status counts: %w", err)
	}
	if counts == nil {
		counts = []models.StatusCount{}
	}
	return counts, nil
}

func (r *attendanceRepository) AverageWorkingHours(ctx context.Context, filter bson.M) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "avgHours", Value: bson.D{{Key: "$avg", Value: "$working_hours"}}},
		}}},
	}

	cursor, err := r.attendanceCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate average working hours: %w", err)
	}
	defer cursor.Close(ctx)

	var result []struct {
		AvgHours float64 `bson:"avgHours"`
	}
	if err = cursor.All(ctx, &result); err != nil {
		return 0, fmt.Errorf("failed to decode average working hours: %w", err)
	}
	if len(result) == 0 {
		return 0, nil
	}
	return result[0].AvgHours, nil
}

func (r *attendanceRepository) CountDocuments(ctx context.Context, filter bson.M) (int64, error) {
	count, err := r.attendanceCollection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance records: %w", err)
	}
	return count, nil
}

func (r *attendanceRepository) CreateQRCode(ctx context.Context, qrCode *models.QRCode) (*mongo.InsertOneResult, error) {
	if qrCode.ID.IsZero() {
		qrCode.ID = primitive.NewObjectID()
	}
	qrCode.CreatedAt = time.Now()

	res, err := r.qrCodeCollection.InsertOne(ctx, qrCode)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}
	return res, nil
}

func (r *attendanceRepository) FindQRCodeByValue(ctx context.Context, code string) (*models.QRCode, error) {
	var qrCode models.QRCode
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	err := r.qrCodeCollection.FindOne(ctx, bson.M{"code": code}, opts).Decode(&qrCode)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find QR code: %w", err)
	}
	return &qrCode, nil
}

func (r *attendanceRepository) FindQRCodeByDate(ctx context.Context, date string) (*models.QRCode, error) {
	var qrCode models.QRCode
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	err := r.qrCodeCollection.FindOne(ctx, bson.M{"date": date}, opts).Decode(&qrCode)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find QR code by date: %w", err)
	}
	return &qrCode, nil
}

func (r *attendanceRepository) MarkQRCodeAsUsed(ctx context.Context, qrCodeID, userID primitive.ObjectID) (*mongo.UpdateResult, error) {
	update := bson.M{
		"$addToSet": bson.M{"used_by": userID},
	}
	res, err := r.qrCodeCollection.UpdateByID(ctx, qrCodeID, update)
	if err != nil {
		return nil, fmt.Errorf("failed to mark QR code as used: %w", err)
	}
	return res, nil
}
