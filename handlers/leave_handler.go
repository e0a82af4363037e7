package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"employee-management-system/models"
	"employee-management-system/pkg/derive"
	util "employee-management-system/pkg/utils"
	"employee-management-system/repository"
)

type LeaveHandler struct {
	leaveRepo repository.LeaveRepository
	now       func() time.Time
}

func NewLeaveHandler(leaveRepo repository.LeaveRepository) *LeaveHandler {
	return &LeaveHandler{leaveRepo: leaveRepo, now: time.Now}
}

// GetAllLeaves godoc
// @Summary Get Leave Requests
// @Description Lists leave requests with user details; non-admins only see their own
// @Tags Leaves
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "Filter by status"
// @Param from query string false "Leaves starting on or after this date (YYYY-MM-DD)"
// @Param to query string false "Leaves starting on or before this date (YYYY-MM-DD)"
// @Param user query string false "Filter by user id (admin only)"
// @Success 200 {object} object{success=bool,data=array,pagination=object}
// @Router /leaves [get]
func (h *LeaveHandler) GetAllLeaves(c *fiber.Ctx) error {
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
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}
	dateRange := bson.M{}
	if from := c.Query("from"); from != "" {
		fromDate, err := time.Parse(derive.DateLayout, from)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid from date, expected YYYY-MM-DD"})
		}
		dateRange["$gte"] = fromDate
	}
	if to := c.Query("to"); to != "" {
		toDate, err := time.Parse(derive.DateLayout, to)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid to date, expected YYYY-MM-DD"})
		}
		dateRange["$lte"] = toDate
	}
	if len(dateRange) > 0 {
		filter["from_date"] = dateRange
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	leaves, total, err := h.leaveRepo.GetAllLeaves(ctx, filter, int64(page), int64(limit))
	if err != nil {
		log.Printf("failed to list leaves: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch leave requests"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"data":       leaves,
		"pagination": paginationMap(page, limit, total),
	})
}

// CreateLeave godoc
// @Summary Request Leave
// @Description Submits a leave request; total days are computed inclusively
// @Tags Leaves
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param leave body models.LeaveCreatePayload true "Leave request"
// @Success 201 {object} object{success=bool,data=models.Leave}
// @Failure 400 {object} object{success=bool,message=string}
// @Router /leaves [post]
func (h *LeaveHandler) CreateLeave(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Not authenticated or session data is corrupt"})
	}

	var payload models.LeaveCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Validation failed", "errors": errors})
	}

	fromDate, err := time.Parse(derive.DateLayout, payload.FromDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid from date"})
	}
	toDate, err := time.Parse(derive.DateLayout, payload.ToDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid to date"})
	}

	totalDays, err := derive.LeaveTotalDays(fromDate, toDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "From date must not be after to date"})
	}

	leave := &models.Leave{
		UserID:    claims.UserID,
		LeaveType: payload.LeaveType,
		FromDate:  fromDate,
		ToDate:    toDate,
		TotalDays: totalDays,
		Reason:    payload.Reason,
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.leaveRepo.CreateLeave(ctx, leave); err != nil {
		log.Printf("failed to create leave request: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to submit leave request"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": leave})
}

// UpdateLeaveStatus godoc
// @Summary Approve or Reject Leave
// @Description Decides a pending leave request (admin only); decided requests are final
// @Tags Leaves
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Leave ID"
// @Param decision body models.LeaveStatusPayload true "Decision"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,message=string} "Already decided"
// @Failure 404 {object} object{success=bool,message=string}
// @Router /leaves/{id}/status [patch]
func (h *LeaveHandler) UpdateLeaveStatus(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Not authenticated or session data is corrupt"})
	}

	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid leave id"})
	}

	var payload models.LeaveStatusPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Validation failed", "errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	leave, err := h.leaveRepo.FindLeaveByID(ctx, objID)
	if err != nil {
		log.Printf("failed to find leave request: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch leave request"})
	}
	if leave == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Leave request not found"})
	}
	if leave.Status != models.LeavePending {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Leave request has already been decided"})
	}

	now := h.now()
	updateData := bson.M{
		"status":        payload.Status,
		"approved_by":   claims.UserID,
		"approved_date": now,
	}
	if payload.Status == models.LeaveRejected {
		updateData["rejection_reason"] = payload.RejectionReason
	}

	if _, err := h.leaveRepo.UpdateLeave(ctx, objID, updateData); err != nil {
		log.Printf("failed to update leave status: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to update leave request"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Leave request " + payload.Status})
}

// DeleteLeave godoc
// @Summary Delete Leave Request
// @Description Owners may delete their own pending requests; admins may delete any
// @Tags Leaves
// @Produce json
// @Security BearerAuth
// @Param id path string true "Leave ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,message=string} "Not pending"
// @Failure 403 {object} object{success=bool,message=string} "Not the owner"
// @Failure 404 {object} object{success=bool,message=string}
// @Router /leaves/{id} [delete]
func (h *LeaveHandler) DeleteLeave(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Not authenticated or session data is corrupt"})
	}

	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid leave id"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	leave, err := h.leaveRepo.FindLeaveByID(ctx, objID)
	if err != nil {
		log.Printf("failed to find leave request: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch leave request"})
	}
	if leave == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Leave request not found"})
	}

	if claims.Role != models.RoleAdmin {
		if leave.UserID != claims.UserID {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "You can only delete your own leave requests"})
		}
		if leave.Status != models.LeavePending {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Only pending leave requests can be deleted"})
		}
	}

	result, err := h.leaveRepo.DeleteLeave(ctx, objID)
	if err != nil {
		log.Printf("failed to delete leave request: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to delete leave request"})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Leave request not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Leave request deleted successfully"})
}
