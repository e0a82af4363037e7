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

// ErrDuplicateEmail is returned when the unique index on users.email
// rejects an insert or update.
var ErrDuplicateEmail = errors.New("an employee with this email already exists")

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (*mongo.InsertOneResult, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
	GetAllUsers(ctx context.Context, filter bson.M, page, limit int64) ([]models.UserWithDepartment, int64, error)
	UpdateUserPassword(ctx context.Context, id primitive.ObjectID, hashedPassword string) error
	CountDocuments(ctx context.Context, filter bson.M) (int64, error)
	CountByDepartment(ctx context.Context, deptID primitive.ObjectID) (int64, error)
	FindManagersByDepartment(ctx context.Context, deptID primitive.ObjectID) ([]models.User, error)
	FindActiveUserIDs(ctx context.Context) ([]primitive.ObjectID, error)
	GetEmployeeStats(ctx context.Context) (*models.EmployeeStats, error)
}

type userRepository struct {
	collection *mongo.Collection
}

func NewUserRepository() UserRepository {
	return &userRepository{
		collection: config.GetCollection(config.UserCollection),
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User) (*mongo.InsertOneResult, error) {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	if user.JoinDate.IsZero() {
		user.JoinDate = time.Now()
	}

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return result, nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	// Matches the case-insensitive collation of the unique email index.
	opts := options.FindOne().SetCollation(&options.Collation{Locale: "en", Strength: 2})

	err := r.collection.FindOne(ctx, bson.M{"email": email}, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find employee by email: %w", err)
	}
	return &user, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find employee by ID: %w", err)
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	updateData["updated_at"] = time.Now()
	update := bson.M{"$set": updateData}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return result, nil
}

func (r *userRepository) DeleteUser(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete employee: %w", err)
	}
	return result, nil
}

func (r *userRepository) GetAllUsers(ctx context.Context, filter bson.M, page, limit int64) ([]models.UserWithDepartment, int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$skip", Value: (page - 1) * limit}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.DepartmentCollection},
			{Key: "localField", Value: "department"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "departmentInfo"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$departmentInfo"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "department_name", Value: "$departmentInfo.name"},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "departmentInfo", Value: 0},
			{Key: "password", Value: 0},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to aggregate employees: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.UserWithDepartment
	if err = cursor.All(ctx, &users); err != nil {
		return nil, 0, fmt.Errorf("failed to decode employees: %w", err)
	}
	if users == nil {
		users = []models.UserWithDepartment{}
	}
	return users, total, nil
}

func (r *userRepository) UpdateUserPassword(ctx context.Context, id primitive.ObjectID, hashedPassword string) error {
	update := bson.M{
		"$set": bson.M{
			"password":   hashedPassword,
			"updated_at": time.Now(),
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

func (r *userRepository) CountDocuments(ctx context.Context, filter bson.M) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}

func (r *userRepository) CountByDepartment(ctx context.Context, deptID primitive.ObjectID) (int64, error) {
	return r.CountDocuments(ctx, bson.M{"department": deptID})
}

// FindManagersByDepartment returns the Manager-position employees of a
// department ordered by join date then id, so the first entry is the
// deterministic manager candidate.
func (r *userRepository) FindManagersByDepartment(ctx context.Context, deptID primitive.ObjectID) ([]models.User, error) {
	filter := bson.M{"department": deptID, "position": models.PositionManager}
	opts := options.Find().SetSort(bson.D{{Key: "join_date", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find department managers: %w", err)
	}
	defer cursor.Close(ctx)

	var managers []models.User
	if err = cursor.All(ctx, &managers); err != nil {
		return nil, fmt.Errorf("failed to decode department managers: %w", err)
	}
	return managers, nil
}

func (r *userRepository) FindActiveUserIDs(ctx context.Context) ([]primitive.ObjectID, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"status": models.StatusActive},
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to find active employees: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode active employees: %w", err)
	}

	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ID)
	}
	return ids, nil
}

func (r *userRepository) GetEmployeeStats(ctx context.Context) (*models.EmployeeStats, error) {
	totalEmployees, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}

	activeEmployees, err := r.collection.CountDocuments(ctx, bson.M{"status": models.StatusActive})
	if err != nil {
		return nil, fmt.Errorf("failed to count active employees: %w", err)
	}

	inactiveEmployees, err := r.collection.CountDocuments(ctx, bson.M{"status": models.StatusInactive})
	if err != nil {
		return nil, fmt.Errorf("failed to count inactive employees: %w", err)
	}

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	recentHires, err := r.collection.CountDocuments(ctx, bson.M{"join_date": bson.M{"$gte": thirtyDaysAgo}})
	if err != nil {
		return nil, fmt.Errorf("failed to count recent hires: %w", err)
	}

	deptPipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.DepartmentCollection},
			{Key: "localField", Value: "department"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "departmentInfo"},
		}}},
		{{Key: "$unwind", Value: "$departmentInfo"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$departmentInfo.name"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, deptPipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate department distribution: %w", err)
	}
	defer cursor.Close(ctx)

	var departmentStats []models.DepartmentEmployeeCount
	if err = cursor.All(ctx, &departmentStats); err != nil {
		return nil, fmt.Errorf("failed to decode department distribution: %w", err)
	}

	rolePipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$role"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	roleCursor, err := r.collection.Aggregate(ctx, rolePipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate role distribution: %w", err)
	}
	defer roleCursor.Close(ctx)

	var roleStats []models.RoleCount
	if err = roleCursor.All(ctx, &roleStats); err != nil {
		return nil, fmt.Errorf("failed to decode role distribution: %w", err)
	}

	return &models.EmployeeStats{
		TotalEmployees:    totalEmployees,
		ActiveEmployees:   activeEmployees,
		InactiveEmployees: inactiveEmployees,
		RecentHires:       recentHires,
		DepartmentStats:   departmentStats,
		RoleStats:         roleStats,
	}, nil
}
