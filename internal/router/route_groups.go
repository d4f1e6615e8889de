package router

import (
	"github.com/AlexNT-maker/auto-payroll-system/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupEmployeeRoutes sets up the employee routes.
func SetupEmployeeRoutes(engine *gin.Engine, employeeHandler *handlers.EmployeeHandler) {
	employeeRoutes := engine.Group("/employees")
	{
		employeeRoutes.POST("/", employeeHandler.CreateEmployee)
		employeeRoutes.GET("/", employeeHandler.GetEmployees)
		employeeRoutes.GET("/:id", employeeHandler.GetEmployeeByID)
		employeeRoutes.PUT("/:id", employeeHandler.UpdateEmployee)
		employeeRoutes.DELETE("/:id", employeeHandler.DeleteEmployee)
	}
}

// SetupBoatRoutes sets up the boat routes, including the boat analysis report.
func SetupBoatRoutes(engine *gin.Engine, boatHandler *handlers.BoatHandler, reportHandler *handlers.ReportHandler) {
	boatRoutes := engine.Group("/boats")
	{
		boatRoutes.POST("/", boatHandler.CreateBoat)
		boatRoutes.GET("/", boatHandler.GetBoats)
		boatRoutes.GET("/:id", boatHandler.GetBoatByID)
		boatRoutes.PUT("/:id", boatHandler.UpdateBoat)
		boatRoutes.DELETE("/:id", boatHandler.DeleteBoat)
		boatRoutes.GET("/:id/analysis", reportHandler.GetBoatAnalysis)
	}
}

// SetupAttendanceRoutes sets up the attendance routes.
func SetupAttendanceRoutes(engine *gin.Engine, attendanceHandler *handlers.AttendanceHandler) {
	attendanceRoutes := engine.Group("/attendance")
	{
		attendanceRoutes.POST("/", attendanceHandler.CreateAttendance)
		attendanceRoutes.POST("/batch", attendanceHandler.CreateAttendanceBatch)
		attendanceRoutes.GET("/:date", attendanceHandler.GetAttendanceByDate)
	}
}

// SetupReportRoutes sets up the expense and payroll routes.
func SetupReportRoutes(engine *gin.Engine, reportHandler *handlers.ReportHandler) {
	engine.GET("/expenses/", reportHandler.GetExpenses)

	payrollRoutes := engine.Group("/payroll")
	{
		payrollRoutes.GET("/", reportHandler.GetPayroll)
		payrollRoutes.GET("/pdf", reportHandler.GetPayrollPDF)
		payrollRoutes.GET("/xlsx", reportHandler.GetPayrollXLSX)
	}
}
