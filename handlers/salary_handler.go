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

type SalaryHandler struct {
	salaryRepo repository.SalaryRepository
	userRepo   repository.UserRepository
	// Whether a Paid record may be moved back to Cancelled.
	allowPaidCancel bool
	now             func() time.Time
}

func NewSalaryHandler(salaryRepo repository.SalaryRepository, userRepo repository.UserRepository, allowPaidCancel bool) *SalaryHandler {
	return &SalaryHandler{
		salaryRepo:      salaryRepo,
		userRepo:        userRepo,
		allowPaidCancel: allowPaidCancel,
		now:             time.Now,
	}
}

// GetAllSalaries godoc
// @Summary Get Salary Records
// @Description Lists salary records newest period first; non-admins only see their own
// @Tags Salaries
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param month query string false "Filter by month"
// @Param year query int false "Filter by year"
// @Param status query string false "Filter by status"
// @Param user query string false "Filter by user id (admin only)"
// @Success 200 {object} object{success=bool,data=array,pagination=object}
// @Router /salaries [get]
func (h *SalaryHandler) GetAllSalaries(c *fiber.Ctx) error {
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
	if month := c.Query("month"); month != "" {
		filter["month"] = month
	}
	if year := c.QueryInt("year", 0); year != 0 {
		filter["year"] = year
	}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	salaries, total, err := h.salaryRepo.GetAllSalaries(ctx, filter, int64(page), int64(limit))
	if err != nil {
		log.Printf("failed to list salaries: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch salary records"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"data":       salaries,
		"pagination": paginationMap(page, limit, total),
	})
}

// CreateSalary godoc
// @Summary Create Salary Record
// @Description Creates a salary record for an employee (admin only). Net salary
// is always computed server side; any client supplied value is ignored.
// @Tags Salaries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param salary body models.SalaryCreatePayload true "Salary record"
// @Success 201 {object} object{success=bool,data=models.Salary}
// @Failure 400 {object} object{success=bool,message=string}
// @Router /salaries [post]
func (h *SalaryHandler) CreateSalary(c *fiber.Ctx) error {
	var payload models.SalaryCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Validation failed", "errors": errors})
	}

	userID, err := primitive.ObjectIDFromHex(payload.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid user id"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		log.Printf("failed to verify employee: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to verify employee"})
	}
	if employee == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Employee not found"})
	}

	salary := &models.Salary{
		UserID:      userID,
		Month:       payload.Month,
		Year:        payload.Year,
		BasicSalary: payload.BasicSalary,
		Allowances:  payload.Allowances,
		Deductions:  payload.Deductions,
		Bonus:       payload.Bonus,
		NetSalary:   derive.NetSalary(payload.BasicSalary, payload.Allowances, payload.Deductions, payload.Bonus),
		Status:      models.SalaryPending,
	}

	if _, err := h.salaryRepo.CreateSalary(ctx, salary); err != nil {
		log.Printf("failed to create salary record: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to create salary record"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": salary})
}

// UpdateSalaryStatus godoc
// @Summary Update Salary Status
// @Description Moves a salary record between Pending, Paid and Cancelled (admin
// only). Marking Paid stamps the payment date; leaving Paid clears it.
// @Tags Salaries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Salary ID"
// @Param status body models.SalaryStatusPayload true "New status"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,message=string}
// @Router /salaries/{id}/status [patch]
func (h *SalaryHandler) UpdateSalaryStatus(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid salary id"})
	}

	var payload models.SalaryStatusPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Validation failed", "errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	salary, err := h.salaryRepo.FindSalaryByID(ctx, objID)
	if err != nil {
		log.Printf("failed to find salary record: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch salary record"})
	}
	if salary == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Salary record not found"})
	}

	if salary.Status == models.SalaryPaid && payload.Status == models.SalaryCancelled && !h.allowPaidCancel {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Paid salary records cannot be cancelled"})
	}

	updateData := bson.M{"status": payload.Status}
	switch payload.Status {
	case models.SalaryPaid:
		now := h.now()
		updateData["paid_date"] = now
	default:
		// Leaving Paid clears the payment date; net salary is untouched.
		updateData["paid_date"] = nil
	}

	if _, err := h.salaryRepo.UpdateSalary(ctx, objID, updateData); err != nil {
		log.Printf("failed to update salary status: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to update salary record"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Salary status updated successfully"})
}

// DeleteSalary godoc
// @Summary Delete Salary Record
// @Tags Salaries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Salary ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,message=string}
// @Router /salaries/{id} [delete]
func (h *SalaryHandler) DeleteSalary(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid salary id"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.salaryRepo.DeleteSalary(ctx, objID)
	if err != nil {
		log.Printf("failed to delete salary record: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to delete salary record"})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Salary record not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Salary record deleted successfully"})
}
