package handlers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"employee-management-system/models"
	"employee-management-system/pkg/deptsync"
	"employee-management-system/pkg/password"
	util "employee-management-system/pkg/utils"
	"employee-management-system/repository"
)

type EmployeeHandler struct {
	userRepo repository.UserRepository
	deptRepo repository.DepartmentRepository
	syncer   *deptsync.Engine
}

func NewEmployeeHandler(userRepo repository.UserRepository, deptRepo repository.DepartmentRepository, syncer *deptsync.Engine) *EmployeeHandler {
	return &EmployeeHandler{
		userRepo: userRepo,
		deptRepo: deptRepo,
		syncer:   syncer,
	}
}

// GetAllEmployees godoc
// @Summary Get All Employees
// @Description Lists employees with pagination and filters (admin only)
// @Tags Employees
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 10, max: 100)"
// @Param search query string false "Search by name, email or position"
// @Param department query string false "Filter by department id"
// @Param status query string false "Filter by status"
// @Param role query string false "Filter by role"
// @Success 200 {object} object{success=bool,data=array,pagination=object}
// @Router /employees [get]
func (h *EmployeeHandler) GetAllEmployees(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	filter := bson.M{}
	if search := c.Query("search"); search != "" {
		filter["$or"] = []bson.M{
			{"name": primitive.Regex{Pattern: search, Options: "i"}},
			{"email": primitive.Regex{Pattern: search, Options: "i"}},
			{"position": primitive.Regex{Pattern: search, Options: "i"}},
		}
	}
	if department := c.Query("department"); department != "" {
		deptID, err := primitive.ObjectIDFromHex(department)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid department id"})
		}
		filter["department"] = deptID
	}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}
	if role := c.Query("role"); role != "" {
		filter["role"] = role
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employees, total, err := h.userRepo.GetAllUsers(ctx, filter, int64(page), int64(limit))
	if err != nil {
		log.Printf("failed to list employees: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch employees"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"data":       employees,
		"pagination": paginationMap(page, limit, total),
	})
}

// GetEmployee godoc
// @Summary Get Employee by ID
// @Description Returns one employee; non-admins may only read themselves
// @Tags Employees
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Success 200 {object} object{success=bool,data=models.User}
// @Failure 404 {object} object{success=bool,message=string}
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(c *fiber.Ctx) error {
	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid employee id"})
	}

	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Not authenticated or session data is corrupt"})
	}

	if claims.Role != models.RoleAdmin && claims.UserID != objID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "Access denied. You can only view your own record"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employee, err := h.userRepo.FindUserByID(ctx, objID)
	if err != nil {
		log.Printf("failed to get employee: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch employee"})
	}
	if employee == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Employee not found"})
	}

	employee.Password = ""
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": employee})
}

// CreateEmployee godoc
// @Summary Create Employee
// @Description Registers a new employee (admin only); the referenced department must exist
// @Tags Employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param employee body models.EmployeeCreatePayload true "New employee"
// @Success 201 {object} object{success=bool,data=models.User}
// @Failure 400 {object} object{success=bool,message=string,errors=array}
// @Failure 409 {object} object{success=bool,message=string} "Duplicate email"
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *fiber.Ctx) error {
	var payload models.EmployeeCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Validation failed", "errors": errors})
	}

	deptID, err := primitive.ObjectIDFromHex(payload.Department)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid department id"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.deptRepo.GetDepartmentByID(ctx, deptID); err != nil {
		if errors.Is(err, repository.ErrDepartmentNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid department selected"})
		}
		log.Printf("failed to check department: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to verify department"})
	}

	hashed, err := password.HashPassword(payload.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to hash password"})
	}

	role := payload.Role
	if role == "" {
		role = models.RoleEmployee
	}
	status := payload.Status
	if status == "" {
		status = models.StatusActive
	}

	newEmployee := &models.User{
		Name:             payload.Name,
		Email:            payload.Email,
		Password:         hashed,
		Role:             role,
		Department:       deptID,
		Position:         payload.Position,
		Salary:           payload.Salary,
		Phone:            payload.Phone,
		Status:           status,
		Address:          payload.Address,
		EmergencyContact: payload.EmergencyContact,
	}

	if _, err := h.userRepo.CreateUser(ctx, newEmployee); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "message": err.Error()})
		}
		log.Printf("failed to create employee: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to create employee"})
	}

	h.syncer.Trigger(deptID)

	newEmployee.Password = ""
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": newEmployee})
}

// UpdateEmployee godoc
// @Summary Update Employee
// @Description Updates an employee (admin only); password cannot be changed here
// @Tags Employees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Param employee body models.EmployeeUpdatePayload true "Fields to update"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,message=string}
// @Router /employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *fiber.Ctx) error {
	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid employee id"})
	}

	var payload models.EmployeeUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Validation failed", "errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	existing, err := h.userRepo.FindUserByID(ctx, objID)
	if err != nil {
		log.Printf("failed to find employee: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch employee"})
	}
	if existing == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Employee not found"})
	}

	updateData := bson.M{}
	if payload.Name != "" {
		updateData["name"] = payload.Name
	}
	if payload.Email != "" {
		updateData["email"] = payload.Email
	}
	if payload.Role != "" {
		updateData["role"] = payload.Role
	}
	if payload.Position != "" {
		updateData["position"] = payload.Position
	}
	if payload.Salary != nil {
		updateData["salary"] = *payload.Salary
	}
	if payload.Phone != "" {
		updateData["phone"] = payload.Phone
	}
	if payload.Status != "" {
		updateData["status"] = payload.Status
	}
	if payload.Address != nil {
		updateData["address"] = payload.Address
	}
	if payload.EmergencyContact != nil {
		updateData["emergency_contact"] = payload.EmergencyContact
	}

	newDeptID := existing.Department
	if payload.Department != "" {
		newDeptID, err = primitive.ObjectIDFromHex(payload.Department)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid department id"})
		}
		if _, err := h.deptRepo.GetDepartmentByID(ctx, newDeptID); err != nil {
			if errors.Is(err, repository.ErrDepartmentNotFound) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid department selected"})
			}
			log.Printf("failed to check department: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to verify department"})
		}
		updateData["department"] = newDeptID
	}

	if len(updateData) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "No fields to update"})
	}

	if _, err := h.userRepo.UpdateUser(ctx, objID, updateData); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "message": err.Error()})
		}
		log.Printf("failed to update employee: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to update employee"})
	}

	// A department reassignment affects the old and new department; a
	// position change affects the current one.
	departmentChanged := payload.Department != "" && newDeptID != existing.Department
	positionChanged := payload.Position != "" && payload.Position != existing.Position
	if departmentChanged {
		h.syncer.Trigger(existing.Department, newDeptID)
	} else if positionChanged {
		h.syncer.Trigger(existing.Department)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Employee updated successfully"})
}

// DeleteEmployee godoc
// @Summary Delete Employee
// @Description Deletes an employee (admin only); admins cannot delete their own account
// @Tags Employees
// @Produce json
// @Security BearerAuth
// @Param id path string true "Employee ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,message=string} "Self-deletion"
// @Failure 404 {object} object{success=bool,message=string}
// @Router /employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *fiber.Ctx) error {
	idParam := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid employee id"})
	}

	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Not authenticated or session data is corrupt"})
	}

	// Rejected before any lookup or sync; the account must persist.
	if claims.UserID == objID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "You cannot delete your own account"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	existing, err := h.userRepo.FindUserByID(ctx, objID)
	if err != nil {
		log.Printf("failed to find employee: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch employee"})
	}
	if existing == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Employee not found"})
	}

	result, err := h.userRepo.DeleteUser(ctx, objID)
	if err != nil {
		log.Printf("failed to delete employee: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to delete employee"})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Employee not found"})
	}

	h.syncer.Trigger(existing.Department)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Employee deleted successfully"})
}

// GetEmployeeStats godoc
// @Summary Get Employee Statistics
// @Description Aggregated employee counts for the admin dashboard
// @Tags Employees
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{success=bool,data=models.EmployeeStats}
// @Router /employees/stats [get]
func (h *EmployeeHandler) GetEmployeeStats(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	stats, err := h.userRepo.GetEmployeeStats(ctx)
	if err != nil {
		log.Printf("failed to compute employee stats: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to compute employee statistics"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": stats})
}

func paginationMap(page, limit int, total int64) fiber.Map {
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return fiber.Map{
		"page":  page,
		"limit": limit,
		"total": total,
		"pages": pages,
	}
}
