package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleAdmin    = "Admin"
	RoleEmployee = "Employee"

	StatusActive   = "Active"
	StatusInactive = "Inactive"

	// Employees holding this position are candidates for their
	// department's manager reference.
	PositionManager = "Manager"
)

type Address struct {
	Street  string `json:"street,omitempty" bson:"street,omitempty"`
	City    string `json:"city,omitempty" bson:"city,omitempty"`
	State   string `json:"state,omitempty" bson:"state,omitempty"`
	ZipCode string `json:"zip_code,omitempty" bson:"zip_code,omitempty"`
	Country string `json:"country,omitempty" bson:"country,omitempty"`
}

type EmergencyContact struct {
	Name         string `json:"name,omitempty" bson:"name,omitempty"`
	Relationship string `json:"relationship,omitempty" bson:"relationship,omitempty"`
	Phone        string `json:"phone,omitempty" bson:"phone,omitempty"`
}

type User struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name,omitempty"`
	Email            string             `json:"email" bson:"email,omitempty"`
	Password         string             `json:"-" bson:"password,omitempty"`
	Role             string             `json:"role" bson:"role,omitempty"`
	Department       primitive.ObjectID `json:"department" bson:"department,omitempty"`
	Position         string             `json:"position" bson:"position,omitempty"`
	Salary           float64            `json:"salary" bson:"salary,omitempty"`
	JoinDate         time.Time          `json:"join_date" bson:"join_date,omitempty"`
	Phone            string             `json:"phone" bson:"phone,omitempty"`
	Status           string             `json:"status" bson:"status,omitempty"`
	Address          *Address           `json:"address,omitempty" bson:"address,omitempty"`
	EmergencyContact *EmergencyContact  `json:"emergency_contact,omitempty" bson:"emergency_contact,omitempty"`
	CreatedAt        time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt        time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

// UserWithDepartment carries the joined department name for list views.
type UserWithDepartment struct {
	User           `bson:",inline"`
	DepartmentName string `json:"department_name,omitempty" bson:"department_name,omitempty"`
}

type EmployeeCreatePayload struct {
	Name             string            `json:"name" validate:"required,min=2,max=50"`
	Email            string            `json:"email" validate:"required,email"`
	Password         string            `json:"password" validate:"required,min=6,max=50"`
	Role             string            `json:"role" validate:"omitempty,oneof=Admin Employee"`
	Department       string            `json:"department" validate:"required"`
	Position         string            `json:"position" validate:"required"`
	Salary           float64           `json:"salary" validate:"min=0"`
	Phone            string            `json:"phone" validate:"required"`
	Status           string            `json:"status" validate:"omitempty,oneof=Active Inactive"`
	Address          *Address          `json:"address,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergency_contact,omitempty"`
}

type EmployeeUpdatePayload struct {
	Name             string            `json:"name,omitempty"`
	Email            string            `json:"email,omitempty" validate:"omitempty,email"`
	Role             string            `json:"role,omitempty" validate:"omitempty,oneof=Admin Employee"`
	Department       string            `json:"department,omitempty"`
	Position         string            `json:"position,omitempty"`
	Salary           *float64          `json:"salary,omitempty" validate:"omitempty,min=0"`
	Phone            string            `json:"phone,omitempty"`
	Status           string            `json:"status,omitempty" validate:"omitempty,oneof=Active Inactive"`
	Address          *Address          `json:"address,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergency_contact,omitempty"`
}

type UserLoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordPayload struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6,max=50"`
}

type Claims struct {
	UserID primitive.ObjectID `json:"user_id"`
	Email  string             `json:"email"`
	Role   string             `json:"role"`
}

type RoleCount struct {
	Role  string `bson:"_id" json:"role"`
	Count int64  `bson:"count" json:"count"`
}

type DepartmentEmployeeCount struct {
	Department string `bson:"_id" json:"department"`
	Count      int64  `bson:"count" json:"count"`
}

type EmployeeStats struct {
	TotalEmployees    int64                     `json:"total_employees"`
	ActiveEmployees   int64                     `json:"active_employees"`
	InactiveEmployees int64                     `json:"inactive_employees"`
	RecentHires       int64                     `json:"recent_hires"`
	DepartmentStats   []DepartmentEmployeeCount `json:"department_stats"`
	RoleStats         []RoleCount               `json:"role_stats"`
}
