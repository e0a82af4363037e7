package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	SalaryPending   = "Pending"
	SalaryPaid      = "Paid"
	SalaryCancelled = "Cancelled"
)

type Salary struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID      primitive.ObjectID `json:"user_id" bson:"user_id,omitempty"`
	Month       string             `json:"month" bson:"month,omitempty"`
	Year        int                `json:"year" bson:"year,omitempty"`
	BasicSalary float64            `json:"basic_salary" bson:"basic_salary"`
	Allowances  float64            `json:"allowances" bson:"allowances"`
	Deductions  float64            `json:"deductions" bson:"deductions"`
	Bonus       float64            `json:"bonus" bson:"bonus"`
	NetSalary   float64            `json:"net_salary" bson:"net_salary"`
	Status      string             `json:"status" bson:"status,omitempty"`
	PaidDate    *time.Time         `json:"paid_date" bson:"paid_date,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type SalaryCreatePayload struct {
	UserID      string  `json:"user_id" validate:"required"`
	Month       string  `json:"month" validate:"required"`
	Year        int     `json:"year" validate:"required,min=2000,max=2100"`
	BasicSalary float64 `json:"basic_salary" validate:"required,min=0"`
	Allowances  float64 `json:"allowances" validate:"min=0"`
	Deductions  float64 `json:"deductions" validate:"min=0"`
	Bonus       float64 `json:"bonus" validate:"min=0"`
}

type SalaryStatusPayload struct {
	Status string `json:"status" validate:"required,oneof=Pending Paid Cancelled"`
}

type SalaryWithUser struct {
	Salary    `bson:",inline"`
	UserName  string `json:"user_name" bson:"user_name"`
	UserEmail string `json:"user_email" bson:"user_email"`
}
