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
	util "employee-management-system/pkg/utils"
	"employee-management-system/repository"
)

type DepartmentHandler struct {
	deptRepo repository.DepartmentRepository
	userRepo repository.UserRepository
}

func NewDepartmentHandler(deptRepo repository.DepartmentRepository, userRepo repository.UserRepository) *DepartmentHandler {
	return &DepartmentHandler{deptRepo: deptRepo, userRepo: userRepo}
}

// GetAllDepartments godoc
// @Summary Get All Departments
// @Description Lists departments with manager details
// @Tags Departments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{success=bool,data=array}
// @Router /departments [get]
func (h *DepartmentHandler) GetAllDepartments(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	departments, err := h.deptRepo.GetAllDepartments(ctx)
	if err != nil {
		log.Printf("failed to list departments: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch departments"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": departments})
}

// GetDepartment godoc
// @Summary Get Department by ID
// @Tags Departments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Success 200 {object} object{success=bool,data=models.Department}
// @Failure 404 {object} object{success=bool,message=string}
// @Router /departments/{id} [get]
func (h *DepartmentHandler) GetDepartment(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid department id"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	department, err := h.deptRepo.GetDepartmentByID(ctx, objID)
	if err != nil {
		if errors.Is(err, repository.ErrDepartmentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Department not found"})
		}
		log.Printf("failed to get department: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch department"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": department})
}

// CreateDepartment godoc
// @Summary Create Department
// @Description Creates a department (admin only); names are unique
// @Tags Departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param department body models.Department true "New department"
// @Success 201 {object} object{success=bool,data=models.Department}
// @Failure 409 {object} object{success=bool,message=string} "Duplicate name"
// @Router /departments [post]
func (h *DepartmentHandler) CreateDepartment(c *fiber.Ctx) error {
	var payload models.Department
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Validation failed", "errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.deptRepo.CreateDepartment(ctx, &payload); err != nil {
		if errors.Is(err, repository.ErrDuplicateDepartmentName) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "message": err.Error()})
		}
		log.Printf("failed to create department: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to create department"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": payload})
}

// UpdateDepartment godoc
// @Summary Update Department
// @Description Updates name, description or status (admin only). Manager and
// employee count are derived and cannot be set here.
// @Tags Departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Param department body models.DepartmentUpdatePayload true "Fields to update"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 404 {object} object{success=bool,message=string}
// @Router /departments/{id} [put]
func (h *DepartmentHandler) UpdateDepartment(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid department id"})
	}

	var payload models.DepartmentUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Validation failed", "errors": errors})
	}

	updateData := bson.M{}
	if payload.Name != "" {
		updateData["name"] = payload.Name
	}
	if payload.Description != "" {
		updateData["description"] = payload.Description
	}
	if payload.Status != "" {
		updateData["status"] = payload.Status
	}
	if len(updateData) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "No fields to update"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.deptRepo.UpdateDepartment(ctx, objID, updateData)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateDepartmentName) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "message": err.Error()})
		}
		log.Printf("failed to update department: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to update department"})
	}
	if result.MatchedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Department not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Department updated successfully"})
}

// DeleteDepartment godoc
// @Summary Delete Department
// @Description Deletes a department (admin only); blocked while employees are assigned
// @Tags Departments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,message=string} "Department still has employees"
// @Failure 404 {object} object{success=bool,message=string}
// @Router /departments/{id} [delete]
func (h *DepartmentHandler) DeleteDepartment(c *fiber.Ctx) error {
	objID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid department id"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	employeeCount, err := h.userRepo.CountByDepartment(ctx, objID)
	if err != nil {
		log.Printf("failed to count department employees: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to check department employees"})
	}
	if employeeCount > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot delete a department that still has employees"})
	}

	result, err := h.deptRepo.DeleteDepartment(ctx, objID)
	if err != nil {
		log.Printf("failed to delete department: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to delete department"})
	}
	if result.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Department not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Department deleted successfully"})
}
