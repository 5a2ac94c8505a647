package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/workforcehub/employee-system/docs"
	"github.com/workforcehub/employee-system/internal/api/handler"
	"github.com/workforcehub/employee-system/internal/core/service"
	mongodb "github.com/workforcehub/employee-system/internal/infrastructure/db/mongo"
	healthhandlers "github.com/workforcehub/employee-system/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The Mongo database handle is the only external dependency; repositories
// and services are constructed here so the wiring stays in one place.
func NewRouter(db *mongo.Database, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("workforce"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	deptRepo := mongodb.NewDepartmentRepository(db)

	userService := service.NewUserService(userRepo, deptRepo, log)
	deptService := service.NewDepartmentService(deptRepo, userRepo, log)

	userHandler := handler.NewUserHandler(userService)
	deptHandler := handler.NewDepartmentHandler(deptService)

	// --- User directory ---
	user := e.Group("/user")
	user.POST("/signup", userHandler.Signup)
	user.POST("/login", userHandler.Login)
	user.GET("/get-all-users", userHandler.GetAllUsers)
	user.GET("/employee", userHandler.GetEmployee)

	// --- Department registry ---
	e.POST("/department", deptHandler.Create)
	e.GET("/department", deptHandler.List)
	e.PATCH("/department", deptHandler.Update)
	e.DELETE("/department", deptHandler.Delete)

	// --- Health probes ---
	healthHandler := healthhandlers.NewHealthHandler()
	readinessHandler := healthhandlers.NewReadinessHandler(db)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
