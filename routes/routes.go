package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"studioku-backend/config"
	"studioku-backend/controllers"
	"studioku-backend/services"
	"studioku-backend/utils"
)

// SetupRouter wires the studio services and controllers onto a gin engine.
// Availability reads and booking creation are public; everything that mutates
// the schedule or the catalog sits behind the admin middleware.
func SetupRouter(db *gorm.DB, notifier services.Notifier) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	availability := controllers.NewAvailabilityController(services.NewAvailabilityService(db))
	bookings := controllers.NewBookingController(services.NewBookingService(db, notifier))
	blocks := controllers.NewAdminBlockController(services.NewBlockService(db))

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Welcome to Studioku Jogja API",
			"version": "1.0.0",
		})
	})

	auth := r.Group("/api/auth")
	{
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
		auth.POST("/logout", controllers.Logout)
	}

	api := r.Group("/api")
	{
		// Public read/submit surface
		api.GET("/availability/:date/:package", availability.GetAvailability)
		api.POST("/bookings", bookings.CreateBooking)

		api.GET("/services", controllers.GetServices)
		api.GET("/services/:id", controllers.GetService)

		api.GET("/gallery", controllers.GetGalleries)
		api.GET("/gallery/:id", controllers.GetGallery)

		api.GET("/testimonials", controllers.GetTestimonials)
		api.GET("/testimonials/:id", controllers.GetTestimonial)
	}

	admin := r.Group("/api")
	admin.Use(utils.AuthMiddleware())
	{
		admin.GET("/dashboard", controllers.GetDashboardOverview)

		admin.GET("/bookings", bookings.GetBookings)
		admin.GET("/bookings/:id", bookings.GetBooking)
		admin.PUT("/bookings/:id", bookings.UpdateBookingStatus)
		admin.DELETE("/bookings/:id", bookings.DeleteBooking)

		adminBlocks := admin.Group("/admin/blocks")
		{
			adminBlocks.GET("", blocks.GetBlocks)
			adminBlocks.POST("", blocks.CreateBlock)
			adminBlocks.DELETE("/:id", blocks.DeleteBlock)
		}

		admin.POST("/services", controllers.CreateService)
		admin.PUT("/services/:id", controllers.UpdateService)
		admin.DELETE("/services/:id", controllers.DeleteService)

		admin.POST("/gallery", controllers.CreateGallery)
		admin.PUT("/gallery/:id", controllers.UpdateGallery)
		admin.DELETE("/gallery/:id", controllers.DeleteGallery)

		admin.POST("/testimonials", controllers.CreateTestimonial)
		admin.PUT("/testimonials/:id", controllers.UpdateTestimonial)
		admin.DELETE("/testimonials/:id", controllers.DeleteTestimonial)
	}

	return r
}
