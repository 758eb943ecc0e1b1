package routes

import (
	"net/http"
	"time"

	"gencare/handlers"
	"gencare/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates the handlers wired in main.
type HandlerBundle struct {
	Booking    *handlers.BookingHandler
	Consultant *handlers.ConsultantHandler
	Dashboard  *handlers.DashboardHandler
}

// Route-level role specifications. The dashboard spec lists the full
// privileged tier; see services/access for the (deliberately coarse)
// matching policy.
const (
	DashboardRolesSpec = "admin,manager,staff,consultant"
	CustomerRolesSpec  = "customer"
)

// RegisterRoutes wires all endpoint groups onto the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.SessionMiddleware())

	RegisterHealthRoute(r)
	RegisterConsultantRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm GenCare"})
	})
}

// RegisterConsultantRoutes registers the public consultant catalog.
func RegisterConsultantRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/consultants")
	{
		api.GET("", hb.Consultant.ListConsultants)
		api.GET("/id/:id", hb.Consultant.GetConsultantByID)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking flow. They are
// customer-gated: guests (sessions without a resolvable role) are accepted by
// the access policy.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.RequireRoles(CustomerRolesSpec))
		bookingGroup.POST("/session", hb.Booking.InitiateSession)
		bookingGroup.GET("/session/:sessionID/availability", hb.Booking.GetAvailability)
		bookingGroup.POST("/session/:sessionID/confirm", hb.Booking.ConfirmBooking)
		bookingGroup.DELETE("/session/:sessionID", hb.Booking.CancelSession)
		bookingGroup.GET("/appointments", hb.Dashboard.MyAppointments)
	}
}

// RegisterDashboardRoutes registers the staff-tier operational endpoints.
func RegisterDashboardRoutes(r *gin.Engine, hb *HandlerBundle) {
	dashboardGroup := r.Group("/api/dashboard")
	{
		dashboardGroup.Use(middleware.RequireRoles(DashboardRolesSpec))
		dashboardGroup.GET("/appointments", hb.Dashboard.ListAppointments)
	}
}
