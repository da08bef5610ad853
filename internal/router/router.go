package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/Omer-KISAKOL/site-builder/internal/auth"
	"github.com/Omer-KISAKOL/site-builder/internal/handler"
	"github.com/Omer-KISAKOL/site-builder/internal/service"
)

// Register wires routes and middleware. The gate runs globally; public
// paths are skipped inside it.
func Register(
	e *echo.Echo,
	codec auth.Codec,
	authz *service.Authorizer,
	authHandler *handler.AuthHandler,
	adminHandler *handler.AdminHandler,
	siteHandler *handler.SiteHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Use(RedirectAuthenticated(codec))
	e.Use(Gate(codec))

	api := e.Group("/api")

	// Auth routes. login/register/verify/logout are on the gate's public
	// list; /me is protected.
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/verify", authHandler.Verify)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/me", authHandler.Me)

	// Site routes, owner-scoped by the resolved identity.
	api.GET("/sites", siteHandler.ListSites)
	api.POST("/sites", siteHandler.CreateSite)
	api.GET("/sites/:id", siteHandler.GetSite)
	api.PUT("/sites/:id", siteHandler.UpdateSite)
	api.DELETE("/sites/:id", siteHandler.DeleteSite)
	api.PUT("/sites/:id/components", siteHandler.UpdateComponent)
	api.GET("/sites/:id/preview", siteHandler.PreviewSite)

	// Admin routes require the admin capability on top of the gate.
	admin := api.Group("/admin", RequireAdmin(authz))
	admin.GET("/users", adminHandler.ListUsers)
	admin.POST("/users", adminHandler.CreateUser)
	admin.GET("/users/:id", adminHandler.GetUser)
	admin.PUT("/users/:id", adminHandler.UpdateUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
