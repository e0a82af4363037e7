package handlers

import (
	"context"
	"sync"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"employee-management-system/models"
	"employee-management-system/repository"
)

// newTestApp builds a fiber app that injects the given claims the way the
// auth middleware would.
func newTestApp(claims *models.Claims) *fiber.App {
	app := fiber.New()
	if claims != nil {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("user", claims)
			return c.Next()
		})
	}
	return app
}

type fakeUserRepo struct {
	mu        sync.Mutex
	users     map[primitive.ObjectID]*models.User
	updates   map[primitive.ObjectID]bson.M
	deleted   []primitive.ObjectID
	createErr error
	updateErr error
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{
		users:   map[primitive.ObjectID]*models.User{},
		updates: map[primitive.ObjectID]bson.M{},
	}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *models.User) (*mongo.InsertOneResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, repository.ErrDuplicateEmail
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID] = user
	return &mongo.InsertOneResult{InsertedID: user.ID}, nil
}

func (r *fakeUserRepo) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepo) FindUserByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateUser(_ context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	if _, ok := r.users[id]; !ok {
		return &mongo.UpdateResult{}, nil
	}
	r.updates[id] = updateData
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *fakeUserRepo) DeleteUser(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return &mongo.DeleteResult{}, nil
	}
	delete(r.users, id)
	r.deleted = append(r.deleted, id)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func (r *fakeUserRepo) GetAllUsers(_ context.Context, _ bson.M, _, _ int64) ([]models.UserWithDepartment, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.UserWithDepartment, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, models.UserWithDepartment{User: *u})
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) UpdateUserPassword(_ context.Context, id primitive.ObjectID, hashedPassword string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.Password = hashedPassword
	}
	return nil
}

func (r *fakeUserRepo) CountDocuments(_ context.Context, filter bson.M) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if status, ok := filter["status"]; ok {
		var n int64
		for _, u := range r.users {
			if u.Status == status {
				n++
			}
		}
		return n, nil
	}
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) CountByDepartment(_ context.Context, deptID primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, u := range r.users {
		if u.Department == deptID {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) FindManagersByDepartment(_ context.Context, deptID primitive.ObjectID) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.User
	for _, u := range r.users {
		if u.Department == deptID && u.Position == models.PositionManager {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) FindActiveUserIDs(_ context.Context) ([]primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []primitive.ObjectID
	for id, u := range r.users {
		if u.Status == models.StatusActive {
			out = append(out, id)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) GetEmployeeStats(_ context.Context) (*models.EmployeeStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := &models.EmployeeStats{TotalEmployees: int64(len(r.users))}
	for _, u := range r.users {
		if u.Status == models.StatusActive {
			stats.ActiveEmployees++
		} else {
			stats.InactiveEmployees++
		}
	}
	return stats, nil
}

type fakeDeptRepo struct {
	mu          sync.Mutex
	departments map[primitive.ObjectID]*models.Department
	synced      map[primitive.ObjectID]int64
	managers    map[primitive.ObjectID]*primitive.ObjectID
}

func newFakeDeptRepo(departments ...*models.Department) *fakeDeptRepo {
	r := &fakeDeptRepo{
		departments: map[primitive.ObjectID]*models.Department{},
		synced:      map[primitive.ObjectID]int64{},
		managers:    map[primitive.ObjectID]*primitive.ObjectID{},
	}
	for _, d := range departments {
		r.departments[d.ID] = d
	}
	return r
}

func (r *fakeDeptRepo) CreateDepartment(_ context.Context, department *models.Department) (*mongo.InsertOneResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.departments {
		if d.Name == department.Name {
			return nil, repository.ErrDuplicateDepartmentName
		}
	}
	if department.ID.IsZero() {
		department.ID = primitive.NewObjectID()
	}
	r.departments[department.ID] = department
	return &mongo.InsertOneResult{InsertedID: department.ID}, nil
}

func (r *fakeDeptRepo) GetAllDepartments(_ context.Context) ([]models.DepartmentWithManager, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.DepartmentWithManager, 0, len(r.departments))
	for _, d := range r.departments {
		out = append(out, models.DepartmentWithManager{Department: *d})
	}
	return out, nil
}

func (r *fakeDeptRepo) GetDepartmentByID(_ context.Context, id primitive.ObjectID) (*models.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d, ok := r.departments[id]; ok {
		return d, nil
	}
	return nil, repository.ErrDepartmentNotFound
}

func (r *fakeDeptRepo) UpdateDepartment(_ context.Context, id primitive.ObjectID, _ bson.M) (*mongo.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.departments[id]; !ok {
		return &mongo.UpdateResult{}, nil
	}
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *fakeDeptRepo) DeleteDepartment(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.departments[id]; !ok {
		return &mongo.DeleteResult{}, nil
	}
	delete(r.departments, id)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func (r *fakeDeptRepo) FindDepartmentByName(_ context.Context, name string) (*models.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.departments {
		if d.Name == name {
			return d, nil
		}
	}
	return nil, repository.ErrDepartmentNotFound
}

func (r *fakeDeptRepo) SetEmployeeCountAndManager(_ context.Context, id primitive.ObjectID, count int64, manager *primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.synced[id] = count
	r.managers[id] = manager
	return nil
}

func (r *fakeDeptRepo) CountDocuments(_ context.Context, _ bson.M) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.departments)), nil
}

func (r *fakeDeptRepo) syncedCount(id primitive.ObjectID) (int64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count, ok := r.synced[id]
	return count, ok
}

type fakeAttendanceRepo struct {
	mu          sync.Mutex
	attendances map[primitive.ObjectID]*models.Attendance
	qrCodes     map[primitive.ObjectID]*models.QRCode
	updates     map[primitive.ObjectID]bson.M
	qrUsedBy    map[primitive.ObjectID][]primitive.ObjectID
}

func newFakeAttendanceRepo(attendances ...*models.Attendance) *fakeAttendanceRepo {
	r := &fakeAttendanceRepo{
		attendances: map[primitive.ObjectID]*models.Attendance{},
		qrCodes:     map[primitive.ObjectID]*models.QRCode{},
		updates:     map[primitive.ObjectID]bson.M{},
		qrUsedBy:    map[primitive.ObjectID][]primitive.ObjectID{},
	}
	for _, a := range attendances {
		if a.ID.IsZero() {
			a.ID = primitive.NewObjectID()
		}
		r.attendances[a.ID] = a
	}
	return r
}

func (r *fakeAttendanceRepo) CreateAttendance(_ context.Context, attendance *models.Attendance) (*mongo.InsertOneResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.attendances {
		if a.UserID == attendance.UserID && a.Date == attendance.Date {
			return nil, repository.ErrDuplicateAttendance
		}
	}
	if attendance.ID.IsZero() {
		attendance.ID = primitive.NewObjectID()
	}
	r.attendances[attendance.ID] = attendance
	return &mongo.InsertOneResult{InsertedID: attendance.ID}, nil
}

func (r *fakeAttendanceRepo) FindAttendanceByID(_ context.Context, id primitive.ObjectID) (*models.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.attendances[id]; ok {
		return a, nil
	}
	return nil, nil
}

func (r *fakeAttendanceRepo) FindAttendanceByUserAndDate(_ context.Context, userID primitive.ObjectID, date string) (*models.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.attendances {
		if a.UserID == userID && a.Date == date {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAttendanceRepo) UpdateAttendance(_ context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.attendances[id]; !ok {
		return &mongo.UpdateResult{}, nil
	}
	r.updates[id] = updateData
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *fakeAttendanceRepo) DeleteAttendance(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.attendances[id]; !ok {
		return &mongo.DeleteResult{}, nil
	}
	delete(r.attendances, id)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func (r *fakeAttendanceRepo) GetAllAttendancesWithUserDetails(_ context.Context, _ bson.M, _, _ int64) ([]models.AttendanceWithUser, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.AttendanceWithUser, 0, len(r.attendances))
	for _, a := range r.attendances {
		out = append(out, models.AttendanceWithUser{Attendance: *a})
	}
	return out, int64(len(out)), nil
}

func (r *fakeAttendanceRepo) GetAttendancesByDateWithUserDetails(_ context.Context, filter bson.M) ([]models.AttendanceWithUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	date, _ := filter["date"].(string)
	out := []models.AttendanceWithUser{}
	for _, a := range r.attendances {
		if date == "" || a.Date == date {
			out = append(out, models.AttendanceWithUser{Attendance: *a})
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) AggregateStatusCounts(_ context.Context, _ bson.M) ([]models.StatusCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := map[string]int64{}
	for _, a := range r.attendances {
		counts[a.Status]++
	}
	out := make([]models.StatusCount, 0, len(counts))
	for status, count := range counts {
		out = append(out, models.StatusCount{Status: status, Count: count})
	}
	return out, nil
}

func (r *fakeAttendanceRepo) AverageWorkingHours(_ context.Context, _ bson.M) (float64, error) {
	return 8, nil
}

func (r *fakeAttendanceRepo) CountDocuments(_ context.Context, _ bson.M) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.attendances)), nil
}

func (r *fakeAttendanceRepo) CreateQRCode(_ context.Context, qrCode *models.QRCode) (*mongo.InsertOneResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if qrCode.ID.IsZero() {
		qrCode.ID = primitive.NewObjectID()
	}
	r.qrCodes[qrCode.ID] = qrCode
	return &mongo.InsertOneResult{InsertedID: qrCode.ID}, nil
}

func (r *fakeAttendanceRepo) FindQRCodeByValue(_ context.Context, code string) (*models.QRCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, qr := range r.qrCodes {
		if qr.Code == code {
			return qr, nil
		}
	}
	return nil, nil
}

func (r *fakeAttendanceRepo) FindQRCodeByDate(_ context.Context, date string) (*models.QRCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, qr := range r.qrCodes {
		if qr.Date == date {
			return qr, nil
		}
	}
	return nil, nil
}

func (r *fakeAttendanceRepo) MarkQRCodeAsUsed(_ context.Context, qrCodeID, userID primitive.ObjectID) (*mongo.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.qrUsedBy[qrCodeID] = append(r.qrUsedBy[qrCodeID], userID)
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

type fakeLeaveRepo struct {
	mu      sync.Mutex
	leaves  map[primitive.ObjectID]*models.Leave
	updates map[primitive.ObjectID]bson.M
}

func newFakeLeaveRepo(leaves ...*models.Leave) *fakeLeaveRepo {
	r := &fakeLeaveRepo{
		leaves:  map[primitive.ObjectID]*models.Leave{},
		updates: map[primitive.ObjectID]bson.M{},
	}
	for _, l := range leaves {
		if l.ID.IsZero() {
			l.ID = primitive.NewObjectID()
		}
		r.leaves[l.ID] = l
	}
	return r
}

func (r *fakeLeaveRepo) CreateLeave(_ context.Context, leave *models.Leave) (*mongo.InsertOneResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if leave.ID.IsZero() {
		leave.ID = primitive.NewObjectID()
	}
	if leave.Status == "" {
		leave.Status = models.LeavePending
	}
	r.leaves[leave.ID] = leave
	return &mongo.InsertOneResult{InsertedID: leave.ID}, nil
}

func (r *fakeLeaveRepo) FindLeaveByID(_ context.Context, id primitive.ObjectID) (*models.Leave, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.leaves[id]; ok {
		return l, nil
	}
	return nil, nil
}

func (r *fakeLeaveRepo) GetAllLeaves(_ context.Context, _ bson.M, _, _ int64) ([]models.LeaveWithUser, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.LeaveWithUser, 0, len(r.leaves))
	for _, l := range r.leaves {
		out = append(out, models.LeaveWithUser{Leave: *l})
	}
	return out, int64(len(out)), nil
}

func (r *fakeLeaveRepo) UpdateLeave(_ context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.leaves[id]; !ok {
		return &mongo.UpdateResult{}, nil
	}
	r.updates[id] = updateData
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *fakeLeaveRepo) DeleteLeave(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.leaves[id]; !ok {
		return &mongo.DeleteResult{}, nil
	}
	delete(r.leaves, id)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func (r *fakeLeaveRepo) CountPendingLeaves(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, l := range r.leaves {
		if l.Status == models.LeavePending {
			n++
		}
	}
	return n, nil
}

type fakeSalaryRepo struct {
	mu       sync.Mutex
	salaries map[primitive.ObjectID]*models.Salary
	updates  map[primitive.ObjectID]bson.M
}

func newFakeSalaryRepo(salaries ...*models.Salary) *fakeSalaryRepo {
	r := &fakeSalaryRepo{
		salaries: map[primitive.ObjectID]*models.Salary{},
		updates:  map[primitive.ObjectID]bson.M{},
	}
	for _, s := range salaries {
		if s.ID.IsZero() {
			s.ID = primitive.NewObjectID()
		}
		r.salaries[s.ID] = s
	}
	return r
}

func (r *fakeSalaryRepo) CreateSalary(_ context.Context, salary *models.Salary) (*mongo.InsertOneResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if salary.ID.IsZero() {
		salary.ID = primitive.NewObjectID()
	}
	r.salaries[salary.ID] = salary
	return &mongo.InsertOneResult{InsertedID: salary.ID}, nil
}

func (r *fakeSalaryRepo) FindSalaryByID(_ context.Context, id primitive.ObjectID) (*models.Salary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.salaries[id]; ok {
		return s, nil
	}
	return nil, nil
}

func (r *fakeSalaryRepo) GetAllSalaries(_ context.Context, _ bson.M, _, _ int64) ([]models.SalaryWithUser, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.SalaryWithUser, 0, len(r.salaries))
	for _, s := range r.salaries {
		out = append(out, models.SalaryWithUser{Salary: *s})
	}
	return out, int64(len(out)), nil
}

func (r *fakeSalaryRepo) UpdateSalary(_ context.Context, id primitive.ObjectID, updateData bson.M) (*mongo.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.salaries[id]; !ok {
		return &mongo.UpdateResult{}, nil
	}
	r.updates[id] = updateData
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *fakeSalaryRepo) DeleteSalary(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.salaries[id]; !ok {
		return &mongo.DeleteResult{}, nil
	}
	delete(r.salaries, id)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}
