package seeder

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"employee-management-system/models"
	"employee-management-system/repository"
)

// SeedDepartments inserts the default departments, skipping ones that exist.
func SeedDepartments(departmentRepo repository.DepartmentRepository) {
	log.Println("Seeding departments...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	departmentsData := []struct {
		Name        string
		Description string
	}{
		{"Finance", "Accounting, budgeting and financial reporting"},
		{"Human Resources", "Recruitment, payroll and employee relations"},
		{"Information Technology", "Software development and infrastructure"},
		{"Marketing", "Brand, campaigns and market research"},
		{"Sales", "Client acquisition and account management"},
		{"Operations", "Production and day-to-day operations"},
		{"Customer Support", "Customer service and technical support"},
		{"Research & Development", "Product research and innovation"},
		{"Management", "Executive leadership and administration"},
	}

	for _, data := range departmentsData {
		existing, err := departmentRepo.FindDepartmentByName(ctx, data.Name)
		if err != nil && !errors.Is(err, repository.ErrDepartmentNotFound) {
			log.Printf("Failed to check department %q: %v", data.Name, err)
			continue
		}
		if existing != nil {
			fmt.Printf("Skipping: department %q already exists.\n", data.Name)
			continue
		}

		newDepartment := &models.Department{
			Name:        data.Name,
			Description: data.Description,
			Status:      models.StatusActive,
		}

		if _, err := departmentRepo.CreateDepartment(ctx, newDepartment); err != nil {
			log.Printf("Failed to seed department %q: %v", data.Name, err)
		} else {
			fmt.Printf("Department %q added.\n", data.Name)
		}
	}

	log.Println("Department seeding finished.")
}
