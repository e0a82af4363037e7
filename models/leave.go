package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	LeavePending  = "Pending"
	LeaveApproved = "Approved"
	LeaveRejected = "Rejected"
)

type Leave struct {
	ID              primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	UserID          primitive.ObjectID  `json:"user_id" bson:"user_id,omitempty"`
	LeaveType       string              `json:"leave_type" bson:"leave_type,omitempty"`
	FromDate        time.Time           `json:"from_date" bson:"from_date,omitempty"`
	ToDate          time.Time           `json:"to_date" bson:"to_date,omitempty"`
	TotalDays       int                 `json:"total_days" bson:"total_days,omitempty"`
	Reason          string              `json:"reason" bson:"reason,omitempty"`
	Status          string              `json:"status" bson:"status,omitempty"`
	ApprovedBy      *primitive.ObjectID `json:"approved_by,omitempty" bson:"approved_by,omitempty"`
	ApprovedDate    *time.Time          `json:"approved_date,omitempty" bson:"approved_date,omitempty"`
	RejectionReason string              `json:"rejection_reason,omitempty" bson:"rejection_reason,omitempty"`
	CreatedAt       time.Time           `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt       time.Time           `json:"updated_at" bson:"updated_at,omitempty"`
}

type LeaveCreatePayload struct {
	LeaveType string `json:"leave_type" validate:"required,oneof='Sick Leave' 'Casual Leave' 'Annual Leave' 'Maternity Leave' 'Paternity Leave' 'Emergency Leave'"`
	FromDate  string `json:"from_date" validate:"required,datetime=2006-01-02"`
	ToDate    string `json:"to_date" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" validate:"required,max=500"`
}

type LeaveStatusPayload struct {
	Status          string `json:"status" validate:"required,oneof=Approved Rejected"`
	RejectionReason string `json:"rejection_reason,omitempty" validate:"required_if=Status Rejected,max=200"`
}

type LeaveWithUser struct {
	Leave          `bson:",inline"`
	UserName       string `json:"user_name" bson:"user_name"`
	UserEmail      string `json:"user_email" bson:"user_email"`
	ApprovedByName string `json:"approved_by_name,omitempty" bson:"approved_by_name,omitempty"`
}
