package seeder

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"employee-management-system/models"
	"employee-management-system/pkg/deptsync"
	"employee-management-system/pkg/password"
	"employee-management-system/repository"
)

// SeedUsers inserts a default admin plus twenty random employees. Existing
// accounts are skipped so the seeder can run repeatedly.
func SeedUsers(userRepo repository.UserRepository, departmentRepo repository.DepartmentRepository, syncEngine *deptsync.Engine) {
	log.Println("Seeding users...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	hashedPassword, err := password.HashPassword("Password123")
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	allDepartments, err := departmentRepo.GetAllDepartments(ctx)
	if err != nil {
		log.Fatalf("Failed to load departments: %v", err)
	}
	if len(allDepartments) == 0 {
		log.Println("No departments found, seed departments first.")
		return
	}

	deptByName := make(map[string]primitive.ObjectID, len(allDepartments))
	for _, dept := range allDepartments {
		deptByName[dept.Name] = dept.ID
	}

	touched := map[primitive.ObjectID]bool{}

	adminEmail := "admin@example.com"
	existingAdmin, err := userRepo.FindUserByEmail(ctx, adminEmail)
	if err == nil && existingAdmin != nil {
		log.Println("Admin user already exists, skipping.")
	} else {
		managementID := deptByName["Management"]
		admin := &models.User{
			Name:       "System Administrator",
			Email:      adminEmail,
			Password:   hashedPassword,
			Role:       models.RoleAdmin,
			Department: managementID,
			Position:   models.PositionManager,
			Salary:     9500,
			JoinDate:   time.Now(),
			Phone:      "+1-555-0100",
			Status:     models.StatusActive,
		}
		if _, err := userRepo.CreateUser(ctx, admin); err != nil {
			log.Printf("Failed to seed admin user: %v", err)
		} else {
			touched[managementID] = true
			fmt.Printf("Admin user (%s) added.\n", admin.Email)
		}
	}

	departmentPositions := map[string][]string{
		"Finance":                {"Senior Accountant", "Junior Accountant", "Financial Analyst", "Manager"},
		"Human Resources":        {"HR Specialist", "Recruitment Officer", "Payroll Administrator", "Manager"},
		"Information Technology": {"Software Engineer", "Frontend Developer", "Backend Developer", "DevOps Engineer", "Manager"},
		"Marketing":              {"Marketing Specialist", "Content Creator", "Digital Marketing Analyst", "Manager"},
		"Sales":                  {"Sales Executive", "Account Manager", "Business Development", "Manager"},
		"Operations":             {"Operations Supervisor", "Production Operator", "Quality Control", "Manager"},
		"Customer Support":       {"Support Representative", "Call Center Agent", "Support Specialist", "Manager"},
		"Research & Development": {"Research Scientist", "Product Innovator", "Lab Technician", "Manager"},
		"Management":             {"Executive Assistant", "Office Administrator", "Manager"},
	}

	firstNames := []string{"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica", "Thomas", "Sarah", "Daniel", "Karen"}
	lastNames := []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez", "Wilson", "Anderson", "Taylor", "Thomas", "Moore", "Jackson", "Martin", "Lee", "Thompson", "White"}
	cities := []string{"New York", "Chicago", "Austin", "Seattle", "Denver", "Boston", "Atlanta", "Portland"}

	log.Println("Adding 20 employees...")
	for i := 1; i <= 20; i++ {
		email := fmt.Sprintf("employee%02d@example.com", i)
		existing, err := userRepo.FindUserByEmail(ctx, email)
		if err == nil && existing != nil {
			fmt.Printf("Skipping: user %s already exists.\n", email)
			continue
		}

		fullName := fmt.Sprintf("%s %s", firstNames[rand.Intn(len(firstNames))], lastNames[rand.Intn(len(lastNames))])

		dept := allDepartments[rand.Intn(len(allDepartments))]
		positions := departmentPositions[dept.Name]
		if len(positions) == 0 {
			positions = []string{"Staff"}
		}
		position := positions[rand.Intn(len(positions))]

		city := cities[rand.Intn(len(cities))]
		employee := &models.User{
			Name:       fullName,
			Email:      email,
			Password:   hashedPassword,
			Role:       models.RoleEmployee,
			Department: dept.ID,
			Position:   position,
			Salary:     float64(rand.Intn(3001) + 4000),
			JoinDate:   time.Now().AddDate(0, -rand.Intn(36), -rand.Intn(28)),
			Phone:      fmt.Sprintf("+1-555-%04d", rand.Intn(10000)),
			Status:     models.StatusActive,
			Address: &models.Address{
				Street:  fmt.Sprintf("%d Main St", rand.Intn(999)+1),
				City:    city,
				Country: "USA",
			},
		}

		if _, err := userRepo.CreateUser(ctx, employee); err != nil {
			log.Printf("Failed to seed user %s: %v", employee.Email, err)
		} else {
			touched[dept.ID] = true
			fmt.Printf("User %s (%s, %s) added.\n", employee.Name, employee.Position, dept.Name)
		}
	}

	// Recount every department we put employees into.
	ids := make([]primitive.ObjectID, 0, len(touched))
	for id := range touched {
		ids = append(ids, id)
	}
	syncEngine.Trigger(ids...)
	syncEngine.Wait()

	log.Println("User seeding finished.")
}
