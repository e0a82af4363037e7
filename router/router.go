package router

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"employee-management-system/config"
	"employee-management-system/config/middleware"
	_ "employee-management-system/docs"
	"employee-management-system/handlers"
	"employee-management-system/pkg/deptsync"
	"employee-management-system/pkg/paseto"
	"employee-management-system/pkg/rbac"
	"employee-management-system/repository"
)

// Dependencies holds everything the route tree needs that is built in main.
type Dependencies struct {
	Config     *config.AppConfig
	TokenMaker *paseto.Maker
	Gate       *rbac.Gate
	SyncEngine *deptsync.Engine
}

func SetupRoutes(app *fiber.App, deps *Dependencies) {
	userRepo := repository.NewUserRepository()
	deptRepo := repository.NewDepartmentRepository()
	attendanceRepo := repository.NewAttendanceRepository()
	leaveRepo := repository.NewLeaveRepository()
	salaryRepo := repository.NewSalaryRepository()

	authHandler := handlers.NewAuthHandler(userRepo, deps.TokenMaker)
	employeeHandler := handlers.NewEmployeeHandler(userRepo, deptRepo, deps.SyncEngine)
	deptHandler := handlers.NewDepartmentHandler(deptRepo, userRepo)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceRepo, userRepo, deps.Config.WorkweekRule)
	leaveHandler := handlers.NewLeaveHandler(leaveRepo)
	salaryHandler := handlers.NewSalaryHandler(salaryRepo, userRepo, deps.Config.AllowPaidSalaryCancel)

	auth := middleware.AuthMiddleware(deps.TokenMaker)
	allow := func(resource, action string) fiber.Handler {
		return middleware.RequirePermission(deps.Gate, resource, action)
	}

	// Health check & Docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Employee Management System API",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)

	api := app.Group("/api/v1")

	// Authentication routes
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/change-password", auth, authHandler.ChangePassword)

	// Employee routes
	employeeGroup := api.Group("/employees", auth)
	employeeGroup.Get("/stats", allow(rbac.ResourceEmployees, rbac.ActionStats), employeeHandler.GetEmployeeStats)
	employeeGroup.Get("/", allow(rbac.ResourceEmployees, rbac.ActionList), employeeHandler.GetAllEmployees)
	employeeGroup.Get("/:id", allow(rbac.ResourceEmployees, rbac.ActionRead), employeeHandler.GetEmployee)
	employeeGroup.Post("/", allow(rbac.ResourceEmployees, rbac.ActionCreate), employeeHandler.CreateEmployee)
	employeeGroup.Put("/:id", allow(rbac.ResourceEmployees, rbac.ActionUpdate), employeeHandler.UpdateEmployee)
	employeeGroup.Delete("/:id", allow(rbac.ResourceEmployees, rbac.ActionDelete), employeeHandler.DeleteEmployee)

	// Department routes
	deptGroup := api.Group("/departments", auth)
	deptGroup.Get("/", allow(rbac.ResourceDepartments, rbac.ActionRead), deptHandler.GetAllDepartments)
	deptGroup.Get("/:id", allow(rbac.ResourceDepartments, rbac.ActionRead), deptHandler.GetDepartment)
	deptGroup.Post("/", allow(rbac.ResourceDepartments, rbac.ActionCreate), deptHandler.CreateDepartment)
	deptGroup.Put("/:id", allow(rbac.ResourceDepartments, rbac.ActionUpdate), deptHandler.UpdateDepartment)
	deptGroup.Delete("/:id", allow(rbac.ResourceDepartments, rbac.ActionDelete), deptHandler.DeleteDepartment)

	// Attendance routes
	attendanceGroup := api.Group("/attendance", auth)
	attendanceGroup.Get("/stats", allow(rbac.ResourceAttendance, rbac.ActionStats), attendanceHandler.GetAttendanceStats)
	attendanceGroup.Get("/today", allow(rbac.ResourceAttendance, rbac.ActionRead), attendanceHandler.GetTodayAttendance)
	attendanceGroup.Get("/qr", allow(rbac.ResourceAttendance, rbac.ActionManage), attendanceHandler.GetAttendanceQRCode)
	attendanceGroup.Post("/scan", allow(rbac.ResourceAttendance, rbac.ActionCreate), attendanceHandler.ScanQRCode)
	attendanceGroup.Post("/mark-absent", allow(rbac.ResourceAttendance, rbac.ActionManage), attendanceHandler.MarkAbsentEmployees)
	attendanceGroup.Get("/", allow(rbac.ResourceAttendance, rbac.ActionRead), attendanceHandler.GetAllAttendances)
	attendanceGroup.Post("/", allow(rbac.ResourceAttendance, rbac.ActionCreate), attendanceHandler.MarkAttendance)
	attendanceGroup.Put("/:id", allow(rbac.ResourceAttendance, rbac.ActionUpdate), attendanceHandler.UpdateAttendance)
	attendanceGroup.Delete("/:id", allow(rbac.ResourceAttendance, rbac.ActionDelete), attendanceHandler.DeleteAttendance)

	// Leave routes
	leaveGroup := api.Group("/leaves", auth)
	leaveGroup.Get("/", allow(rbac.ResourceLeaves, rbac.ActionRead), leaveHandler.GetAllLeaves)
	leaveGroup.Post("/", allow(rbac.ResourceLeaves, rbac.ActionCreate), leaveHandler.CreateLeave)
	leaveGroup.Patch("/:id/status", allow(rbac.ResourceLeaves, rbac.ActionDecide), leaveHandler.UpdateLeaveStatus)
	leaveGroup.Delete("/:id", allow(rbac.ResourceLeaves, rbac.ActionDelete), leaveHandler.DeleteLeave)

	// Salary routes
	salaryGroup := api.Group("/salaries", auth)
	salaryGroup.Get("/", allow(rbac.ResourceSalaries, rbac.ActionRead), salaryHandler.GetAllSalaries)
	salaryGroup.Post("/", allow(rbac.ResourceSalaries, rbac.ActionCreate), salaryHandler.CreateSalary)
	salaryGroup.Patch("/:id/status", allow(rbac.ResourceSalaries, rbac.ActionUpdate), salaryHandler.UpdateSalaryStatus)
	salaryGroup.Delete("/:id", allow(rbac.ResourceSalaries, rbac.ActionDelete), salaryHandler.DeleteSalary)

	log.Println("All application routes registered.")
	log.Println("Swagger documentation available at /docs/index.html")
}
