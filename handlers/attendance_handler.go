package handlers

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/teambition/rrule-go"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"employee-management-system/models"
	"employee-management-system/pkg/derive"
	util "employee-management-system/pkg/utils"
	"employee-management-system/repository"
)

type AttendanceHandler struct {
	attendanceRepo repository.AttendanceRepository
	userRepo       repository.UserRepository
	workweekRule   string
	// Injected clock for tests; defaults to time.Now.
	now func() time.Time
}

func NewAttendanceHandler(attendanceRepo repository.AttendanceRepository, userRepo repository.UserRepository, workweekRule string) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		workweekRule:   workweekRule,
		now:            time.Now,
	}
}

// MarkAttendance godoc
// @Summary Mark Attendance
// @Description Records check-in on the first call of the day and check-out on
// the second. Clock times default to the server clock when omitted.
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param attendance body models.AttendanceMarkPayload false "Optional clock override"
// @Success 200 {object} object{success=bool,data=models.Attendance}
// @Success 201 {object} object{success=bool,data=models.Attendance}
// @Failure 400 {object} object{success=bool,message=string}
// @Router /attendance [post]
func (h *AttendanceHandler) MarkAttendance(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Not authenticated or session data is corrupt"})
	}

	var payload models.AttendanceMarkPayload
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
		}
		if errors := util.ValidateStruct(payload); errors != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Validation failed", "errors": errors})
		}
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	now := h.now()
	today := now.Format(derive.DateLayout)

	existing, err := h.attendanceRepo.FindAttendanceByUserAndDate(ctx, claims.UserID, today)
	if err != nil {
		log.Printf("failed to look up attendance: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to check attendance"})
	}

	if existing == nil {
		// First mark of the day records the check-in.
		if payload.CheckOut != "" && payload.CheckIn == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "You must check in before checking out"})
		}

		checkIn := payload.CheckIn
		if checkIn == "" {
			checkIn = now.Format(derive.ClockLayout)
		}
		status, err := derive.CheckInStatus(checkIn)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid check-in time"})
		}

		attendance := &models.Attendance{
			UserID:  claims.UserID,
			Date:    today,
			CheckIn: checkIn,
			Status:  status,
			Notes:   payload.Notes,
		}
		if _, err := h.attendanceRepo.CreateAttendance(ctx, attendance); err != nil {
			if errors.Is(err, repository.ErrDuplicateAttendance) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "You have already checked in today"})
			}
			log.Printf("failed to create attendance: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to record attendance"})
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": attendance})
	}

	if existing.CheckOut != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Attendance for today is already complete"})
	}
	if payload.CheckIn != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "You have already checked in today"})
	}

	checkOut := payload.CheckOut
	if checkOut == "" {
		checkOut = now.Format(derive.ClockLayout)
	}
	workingHours, err := derive.WorkingHours(existing.CheckIn, checkOut)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid check-out time"})
	}

	updateData := bson.M{
		"check_out":     checkOut,
		"working_hours": workingHours,
		"overtime":      derive.Overtime(workingHours),
	}
	if payload.Notes != "" {
		updateData["notes"] = payload.Notes
	}

	if _, err := h.attendanceRepo.UpdateAttendance(ctx, existing.ID, updateData); err != nil {
		log.Printf("failed to record check-out: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to record check-out"})
	}

	existing.CheckOut = checkOut
	existing.WorkingHours = workingHours
	existing.Overtime = derive.Overtime(workingHours)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": existing})
}

// GetAllAttendances godoc
// @Summary Get Attendance Records
// @Description Lists attendance with user details; non-admins only see their own
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param date query string false "Filter by exact date (YYYY-MM-DD)"
// @Param from query string false "Filter from date (YYYY-MM-DD)"
// @Param to query string false "Filter to date (YYYY-MM-DD)"
// @Param status query string false "Filter by status"
// @Param user query string false "Filter by user id (admin only)"
// @Success 200 {object} object{success=bool,data=array,pagination=object}
// @Router /attendance [get]
func (h *AttendanceHandler) GetAllAttendances(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Not authenticated or session data is corrupt"})
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	filter := bson.M{}
	if claims.Role != models.RoleAdmin {
		filter["user_id"] = claims.UserID
	} else if user := c.Query("user"); user != "" {
		userID, err := primitive.ObjectIDFromHex(user)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid user id"})
		}
		filter["user_id"] = userID
	}
	if date := c.Query("date"); date != "" {
		if _, err := time.Parse(derive.DateLayout, date); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid date, expected YYYY-MM-DD"})
		}
		filter["date"] = date
	} else {
		// ISO dates sort lexicographically, so a plain string range works.
		dateRange := bson.M{}
		if from := c.Query("from"); from != "" {
			if _, err := time.Parse(derive.DateLayout, from); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid from date, expected YYYY-MM-DD"})
			}
			dateRange["$gte"] = from
		}
		if to := c.Query("to"); to != "" {
			if _, err := time.Parse(derive.DateLayout, to); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid to date, expected YYYY-MM-DD"})
			}
			dateRange["$lte"] = to
		}
		if len(dateRange) > 0 {
			filter["date"] = dateRange
		}
	}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	attendances, total, err := h.attendanceRepo.GetAllAttendancesWithUserDetails(ctx, filter, int64(page), int64(limit))
	if err != nil {
		log.Printf("failed to list attendance: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch attendance records"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"data":       attendances,
		"pagination": paginationMap(page, limit, total),
	})
}

// GetTodayAttendance godoc
// @Summary Get Today's Attendance
// @Description Returns the caller's attendance record for today, or null; admins get every record for today with user details
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{success=bool,data=models.Attendance}
// @Router /attendance/today [get]
func (h *AttendanceHandler) GetTodayAttendance(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Not authenticated or session data is corrupt"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	today := h.now().Format(derive.DateLayout)
	if claims.Role == models.RoleAdmin {
		records, err := h.attendanceRepo.GetAttendancesByDateWithUserDetails(ctx, bson.M{"date": today})
		if err != nil {
			log.Printf("failed to get today's attendance: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch attendance"})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": records})
	}

	attendance, err := h.attendanceRepo.FindAttendanceByUserAndDate(ctx, claims.UserID, today)
	if err != nil {
		log.Printf("failed to get today's attendance: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch attendance"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": attendance})
}

// UpdateAttendance godoc
// @Summary Update Attendance Record
// @Description Corrects an attendance record (admin only). Working hours and
// overtime are recomputed when either clock time changes.
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attendance ID"
// @Param attendance body models.AttendanceUpdatePayload true "Fields to update"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,message=string}
// @Router /attendance/{id} [put]
func (h *AttendanceHandler) UpdateAttendance(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid attendance id"})
	}

	var payload models.AttendanceUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Validation failed", "errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	existing, err := h.attendanceRepo.FindAttendanceByID(ctx, objID)
	if err != nil {
		log.Printf("failed to find attendance: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch attendance"})
	}
	if existing == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Attendance record not found"})
	}

	updateData := bson.M{}
	checkIn := existing.CheckIn
	checkOut := existing.CheckOut
	if payload.CheckIn != "" {
		checkIn = payload.CheckIn
		updateData["check_in"] = payload.CheckIn
	}
	if payload.CheckOut != "" {
		checkOut = payload.CheckOut
		updateData["check_out"] = payload.CheckOut
	}
	if payload.Status != "" {
		updateData["status"] = payload.Status
	}
	if payload.Notes != "" {
		updateData["notes"] = payload.Notes
	}
	if len(updateData) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "No fields to update"})
	}

	if (payload.CheckIn != "" || payload.CheckOut != "") && checkIn != "" && checkOut != "" {
		workingHours, err := derive.WorkingHours(checkIn, checkOut)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid clock times"})
		}
		updateData["working_hours"] = workingHours
		updateData["overtime"] = derive.Overtime(workingHours)
	}
	if payload.CheckIn != "" && payload.Status == "" {
		status, err := derive.CheckInStatus(checkIn)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid check-in time"})
		}
		updateData["status"] = status
	}

	result, err := h.attendanceRepo.UpdateAttendance(ctx, objID, updateData)
	if err != nil {
		log.Printf("failed to update attendance: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to update attendance"})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Attendance record not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Attendance updated successfully"})
}

// DeleteAttendance godoc
// @Summary Delete Attendance Record
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attendance ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,message=string}
// @Router /attendance/{id} [delete]
func (h *AttendanceHandler) DeleteAttendance(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid attendance id"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.attendanceRepo.DeleteAttendance(ctx, objID)
	if err != nil {
		log.Printf("failed to delete attendance: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to delete attendance"})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Attendance record not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Attendance deleted successfully"})
}

// GetAttendanceStats godoc
// @Summary Get Attendance Statistics
// @Description Today's and this month's attendance breakdown for the dashboard
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{success=bool,data=models.AttendanceStats}
// @Router /attendance/stats [get]
func (h *AttendanceHandler) GetAttendanceStats(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	now := h.now()
	today := now.Format(derive.DateLayout)
	monthPrefix := now.Format("2006-01")
	monthFilter := bson.M{"date": primitive.Regex{Pattern: "^" + monthPrefix, Options: ""}}

	todayStats, err := h.attendanceRepo.AggregateStatusCounts(ctx, bson.M{"date": today})
	if err != nil {
		log.Printf("failed to aggregate today's stats: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to compute attendance statistics"})
	}
	monthlyStats, err := h.attendanceRepo.AggregateStatusCounts(ctx, monthFilter)
	if err != nil {
		log.Printf("failed to aggregate monthly stats: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to compute attendance statistics"})
	}
	avgWorkingHours, err := h.attendanceRepo.AverageWorkingHours(ctx, monthFilter)
	if err != nil {
		log.Printf("failed to average working hours: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to compute attendance statistics"})
	}
	lateArrivals, err := h.attendanceRepo.CountDocuments(ctx, bson.M{
		"date":   primitive.Regex{Pattern: "^" + monthPrefix, Options: ""},
		"status": models.AttendanceLate,
	})
	if err != nil {
		log.Printf("failed to count late arrivals: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to compute attendance statistics"})
	}
	totalEmployees, err := h.userRepo.CountDocuments(ctx, bson.M{"status": models.StatusActive})
	if err != nil {
		log.Printf("failed to count employees: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to compute attendance statistics"})
	}

	var presentToday int64
	for _, sc := range todayStats {
		if sc.Status != models.AttendanceAbsent {
			presentToday += sc.Count
		}
	}
	var attendanceRate float64
	if totalEmployees > 0 {
		attendanceRate = float64(presentToday) / float64(totalEmployees) * 100
	}

	stats := models.AttendanceStats{
		TodayStats:      todayStats,
		MonthlyStats:    monthlyStats,
		AvgWorkingHours: avgWorkingHours,
		LateArrivals:    lateArrivals,
		TotalEmployees:  totalEmployees,
		PresentToday:    presentToday,
		AttendanceRate:  attendanceRate,
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": stats})
}

// GetAttendanceQRCode godoc
// @Summary Get Today's Attendance QR Code
// @Description Returns today's QR day pass as a base64 PNG, creating it if needed (admin only)
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{success=bool,data=object{code=string,expires_at=string,qr_image=string}}
// @Router /attendance/qr [get]
func (h *AttendanceHandler) GetAttendanceQRCode(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	now := h.now()
	today := now.Format(derive.DateLayout)

	qr, err := h.attendanceRepo.FindQRCodeByDate(ctx, today)
	if err != nil {
		log.Printf("failed to look up QR code: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch QR code"})
	}
	if qr == nil {
		endOfDay := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
		qr = &models.QRCode{
			Code:      uuid.NewString(),
			Date:      today,
			ExpiresAt: endOfDay,
			UsedBy:    []primitive.ObjectID{},
		}
		if _, err := h.attendanceRepo.CreateQRCode(ctx, qr); err != nil {
			log.Printf("failed to create QR code: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to create QR code"})
		}
	}

	png, err := qrcode.Encode(qr.Code, qrcode.Medium, 256)
	if err != nil {
		log.Printf("failed to encode QR image: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to generate QR image"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"code":       qr.Code,
			"expires_at": qr.ExpiresAt,
			"qr_image":   "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		},
	})
}

// ScanQRCode godoc
// @Summary Scan Attendance QR Code
// @Description Records the caller's check-in or check-out from today's QR day
// pass using the server clock
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param scan body models.QRCodeScanPayload true "Scanned code"
// @Success 200 {object} object{success=bool,data=models.Attendance,message=string}
// @Failure 400 {object} object{success=bool,message=string}
// @Router /attendance/scan [post]
func (h *AttendanceHandler) ScanQRCode(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Not authenticated or session data is corrupt"})
	}

	var payload models.QRCodeScanPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Validation failed", "errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	now := h.now()
	today := now.Format(derive.DateLayout)

	qr, err := h.attendanceRepo.FindQRCodeByValue(ctx, payload.Code)
	if err != nil {
		log.Printf("failed to look up QR code: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to verify QR code"})
	}
	if qr == nil || qr.Date != today {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid QR code"})
	}
	if now.After(qr.ExpiresAt) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "QR code has expired"})
	}

	existing, err := h.attendanceRepo.FindAttendanceByUserAndDate(ctx, claims.UserID, today)
	if err != nil {
		log.Printf("failed to look up attendance: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to check attendance"})
	}

	clock := now.Format(derive.ClockLayout)

	if existing == nil {
		status, err := derive.CheckInStatus(clock)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to record attendance"})
		}
		attendance := &models.Attendance{
			UserID:  claims.UserID,
			Date:    today,
			CheckIn: clock,
			Status:  status,
		}
		if _, err := h.attendanceRepo.CreateAttendance(ctx, attendance); err != nil {
			if errors.Is(err, repository.ErrDuplicateAttendance) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "You have already checked in today"})
			}
			log.Printf("failed to create attendance from scan: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to record attendance"})
		}
		if _, err := h.attendanceRepo.MarkQRCodeAsUsed(ctx, qr.ID, claims.UserID); err != nil {
			log.Printf("failed to mark QR code as used: %v", err)
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Checked in successfully", "data": attendance})
	}

	if existing.CheckOut != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Attendance for today is already complete"})
	}

	workingHours, err := derive.WorkingHours(existing.CheckIn, clock)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to record check-out"})
	}
	updateData := bson.M{
		"check_out":     clock,
		"working_hours": workingHours,
		"overtime":      derive.Overtime(workingHours),
	}
	if _, err := h.attendanceRepo.UpdateAttendance(ctx, existing.ID, updateData); err != nil {
		log.Printf("failed to record check-out from scan: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to record check-out"})
	}
	if _, err := h.attendanceRepo.MarkQRCodeAsUsed(ctx, qr.ID, claims.UserID); err != nil {
		log.Printf("failed to mark QR code as used: %v", err)
	}

	existing.CheckOut = clock
	existing.WorkingHours = workingHours
	existing.Overtime = derive.Overtime(workingHours)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Checked out successfully", "data": existing})
}

// MarkAbsentEmployees godoc
// @Summary Mark Absent Employees
// @Description Creates Absent records for active employees with no attendance
// today (admin only). Skipped when today is not a working day per the
// configured workweek rule.
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{success=bool,message=string,data=object{marked=int}}
// @Router /attendance/mark-absent [post]
func (h *AttendanceHandler) MarkAbsentEmployees(c *fiber.Ctx) error {
	now := h.now()
	workday, err := h.isWorkday(now)
	if err != nil {
		log.Printf("invalid workweek rule %q: %v", h.workweekRule, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Invalid workweek configuration"})
	}
	if !workday {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Today is not a working day, nothing to mark", "data": fiber.Map{"marked": 0}})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
	defer cancel()

	userIDs, err := h.userRepo.FindActiveUserIDs(ctx)
	if err != nil {
		log.Printf("failed to list active users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch employees"})
	}

	today := now.Format(derive.DateLayout)
	marked := 0
	for _, userID := range userIDs {
		existing, err := h.attendanceRepo.FindAttendanceByUserAndDate(ctx, userID, today)
		if err != nil {
			log.Printf("failed to check attendance for %s: %v", userID.Hex(), err)
			continue
		}
		if existing != nil {
			continue
		}
		absent := &models.Attendance{
			UserID: userID,
			Date:   today,
			Status: models.AttendanceAbsent,
			Notes:  "Automatically marked absent",
		}
		if _, err := h.attendanceRepo.CreateAttendance(ctx, absent); err != nil {
			if !errors.Is(err, repository.ErrDuplicateAttendance) {
				log.Printf("failed to mark %s absent: %v", userID.Hex(), err)
			}
			continue
		}
		marked++
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Marked %d employee(s) absent", marked),
		"data":    fiber.Map{"marked": marked},
	})
}

func (h *AttendanceHandler) isWorkday(day time.Time) (bool, error) {
	rule, err := rrule.StrToRRule(h.workweekRule)
	if err != nil {
		return false, err
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	rule.DTStart(start.AddDate(0, 0, -7))
	occurrences := rule.Between(start, start.Add(24*time.Hour-time.Second), true)
	return len(occurrences) > 0, nil
}
