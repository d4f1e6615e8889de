package router

import (
	"database/sql"
	"net/http"

	"github.com/AlexNT-maker/auto-payroll-system/internal/handlers"
	"github.com/AlexNT-maker/auto-payroll-system/internal/repositories"
	"github.com/AlexNT-maker/auto-payroll-system/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options carries the settings the handlers need beyond the database.
type Options struct {
	PDFFontPath string
}

// Handlers groups every HTTP handler so tests can build a router from fakes.
type Handlers struct {
	Employee   *handlers.EmployeeHandler
	Boat       *handlers.BoatHandler
	Attendance *handlers.AttendanceHandler
	Report     *handlers.ReportHandler
}

// NewHandlers wires repositories, services and handlers over one pool.
func NewHandlers(db *sql.DB, opts Options) Handlers {
	employeeRepo := repositories.NewEmployeeRepository(db)
	boatRepo := repositories.NewBoatRepository(db)
	attendanceRepo := repositories.NewAttendanceRepository(db)
	transactor := repositories.NewTransactor(db)

	employeeService := services.NewEmployeeService(employeeRepo, db)
	boatService := services.NewBoatService(boatRepo, db)
	attendanceService := services.NewAttendanceService(attendanceRepo, transactor, db)
	reportService := services.NewReportService(attendanceRepo, boatRepo)
	exportService := services.NewExportService(opts.PDFFontPath)

	return Handlers{
		Employee:   handlers.NewEmployeeHandler(employeeService),
		Boat:       handlers.NewBoatHandler(boatService),
		Attendance: handlers.NewAttendanceHandler(attendanceService),
		Report:     handlers.NewReportHandler(reportService, exportService),
	}
}

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, h Handlers) {
	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API works fine"})
	})
	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	SetupEmployeeRoutes(engine, h.Employee)
	SetupBoatRoutes(engine, h.Boat, h.Report)
	SetupAttendanceRoutes(engine, h.Attendance)
	SetupReportRoutes(engine, h.Report)
}
