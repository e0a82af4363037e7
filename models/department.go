package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Department struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string              `bson:"name" json:"name" validate:"required,max=50"`
	Description string              `bson:"description" json:"description" validate:"required,max=200"`
	Manager     *primitive.ObjectID `bson:"manager,omitempty" json:"manager,omitempty"`
	// Derived: count of users whose department references this id. Kept
	// in sync by pkg/deptsync after every employee write.
	EmployeeCount int64     `bson:"employee_count" json:"employee_count"`
	Status        string    `bson:"status" json:"status" validate:"omitempty,oneof=Active Inactive"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

type DepartmentUpdatePayload struct {
	Name        string `json:"name,omitempty" validate:"omitempty,max=50"`
	Description string `json:"description,omitempty" validate:"omitempty,max=200"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=Active Inactive"`
}

// DepartmentWithManager carries joined manager details for list views.
type DepartmentWithManager struct {
	Department      `bson:",inline"`
	ManagerName     string `json:"manager_name,omitempty" bson:"manager_name,omitempty"`
	ManagerEmail    string `json:"manager_email,omitempty" bson:"manager_email,omitempty"`
	ManagerPosition string `json:"manager_position,omitempty" bson:"manager_position,omitempty"`
}
