package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"employee-management-system/config"
	_ "employee-management-system/docs"
	"employee-management-system/pkg/deptsync"
	"employee-management-system/pkg/paseto"
	"employee-management-system/pkg/rbac"
	"employee-management-system/repository"
	"employee-management-system/router"
	"employee-management-system/seeder"
)

// @title Employee Management System API
// @version 1.0
// @description REST API for managing employees, departments, attendance, leave requests and salaries
//
// @contact.name API Support
// @contact.email support@example.com
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:3000
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and your token.
//
// @tag.name Auth
// @tag.description Authentication endpoints
//
// @tag.name Employees
// @tag.description Employee management endpoints
//
// @tag.name Departments
// @tag.description Department management endpoints
//
// @tag.name Attendance
// @tag.description Attendance tracking endpoints
//
// @tag.name Leaves
// @tag.description Leave request endpoints
//
// @tag.name Salaries
// @tag.description Salary record endpoints
func main() {
	seed := flag.Bool("seed", false, "seed default departments and users, then exit")
	flag.Parse()

	cfg := config.LoadConfig()

	config.MongoConnect()
	config.InitDatabase()
	defer config.DisconnectDB()

	tokenMaker, err := paseto.NewMaker(cfg.PasetoSecret)
	if err != nil {
		log.Fatalf("Failed to initialize token maker: %v", err)
	}

	gate, err := rbac.NewGate()
	if err != nil {
		log.Fatalf("Failed to initialize access control gate: %v", err)
	}

	userRepo := repository.NewUserRepository()
	deptRepo := repository.NewDepartmentRepository()
	syncEngine := deptsync.NewEngine(userRepo, deptRepo)

	if *seed {
		seeder.SeedDepartments(deptRepo)
		seeder.SeedUsers(userRepo, deptRepo, syncEngine)
		return
	}

	app := fiber.New()

	config.SetupCORS(app)
	app.Use(logger.New())

	router.SetupRoutes(app, &router.Dependencies{
		Config:     cfg,
		TokenMaker: tokenMaker,
		Gate:       gate,
		SyncEngine: syncEngine,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		log.Println("Shutting down...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Error during shutdown: %v", err)
		}
	}()

	log.Printf("Server running on port %s", cfg.Port)
	log.Printf("API documentation: http://localhost:%s/docs/index.html", cfg.Port)
	log.Printf("CORS enabled for origins: %v", config.GetAllowedOrigins())
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("Server stopped: %v", err)
	}

	// Let in-flight department recounts finish before disconnecting.
	syncEngine.Wait()
}
