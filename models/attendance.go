package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AttendancePresent = "Present"
	AttendanceLate    = "Late"
	AttendanceAbsent  = "Absent"
	AttendanceHalfDay = "Half Day"
)

type Attendance struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID       primitive.ObjectID `json:"user_id" bson:"user_id,omitempty"`
	Date         string             `json:"date" bson:"date,omitempty"`
	CheckIn      string             `json:"check_in" bson:"check_in,omitempty"`
	CheckOut     string             `json:"check_out,omitempty" bson:"check_out,omitempty"`
	Status       string             `json:"status" bson:"status,omitempty"`
	WorkingHours float64            `json:"working_hours" bson:"working_hours"`
	Overtime     float64            `json:"overtime" bson:"overtime"`
	Notes        string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type AttendanceMarkPayload struct {
	CheckIn  string `json:"check_in,omitempty" validate:"omitempty,datetime=15:04"`
	CheckOut string `json:"check_out,omitempty" validate:"omitempty,datetime=15:04"`
	Notes    string `json:"notes,omitempty"`
}

type AttendanceUpdatePayload struct {
	CheckIn  string `json:"check_in,omitempty" validate:"omitempty,datetime=15:04"`
	CheckOut string `json:"check_out,omitempty" validate:"omitempty,datetime=15:04"`
	Status   string `json:"status,omitempty" validate:"omitempty,oneof=Present Late Absent 'Half Day'"`
	Notes    string `json:"notes,omitempty"`
}

type AttendanceWithUser struct {
	Attendance     `bson:",inline"`
	UserName       string `json:"user_name" bson:"user_name"`
	UserEmail      string `json:"user_email" bson:"user_email"`
	UserPosition   string `json:"user_position,omitempty" bson:"user_position,omitempty"`
	UserDepartment string `json:"user_department,omitempty" bson:"user_department,omitempty"`
}

type StatusCount struct {
	Status string `bson:"_id" json:"status"`
	Count  int64  `bson:"count" json:"count"`
}

type AttendanceStats struct {
	TodayStats      []StatusCount `json:"today_stats"`
	MonthlyStats    []StatusCount `json:"monthly_stats"`
	AvgWorkingHours float64       `json:"avg_working_hours"`
	LateArrivals    int64         `json:"late_arrivals"`
	TotalEmployees  int64         `json:"total_employees"`
	PresentToday    int64         `json:"present_today"`
	AttendanceRate  float64       `json:"attendance_rate"`
}

// QRCode is a one-day attendance pass. Employees scan it to record the
// same check-in/check-out transition as POST /attendance.
type QRCode struct {
	ID        primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Code      string               `json:"code" bson:"code"`
	Date      string               `json:"date" bson:"date"`
	ExpiresAt time.Time            `json:"expires_at" bson:"expires_at"`
	UsedBy    []primitive.ObjectID `json:"used_by" bson:"used_by"`
	CreatedAt time.Time            `json:"created_at" bson:"created_at"`
}

type QRCodeScanPayload struct {
	Code string `json:"code" validate:"required"`
}
