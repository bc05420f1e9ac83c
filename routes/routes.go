package routes

import (
	"net/http"

	"voyago/applications"
	"voyago/auth"
	"voyago/booking"
	"voyago/catalog"
	"voyago/middleware"
	"voyago/models"
	"voyago/pay"
	"voyago/ratelim"
	"voyago/stats"
	"voyago/stories"
	"voyago/users"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/storypic/*filepath", http.Dir("static/storypic"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/jwt", rl.Limit(auth.IssueToken))
}

func AddUserRoutes(router *httprouter.Router) {
	// The :key/:value pairs cover /users/admin/:value and /users/guide/:value;
	// the handlers dispatch on :key (httprouter cannot mix static segments
	// with the :key wildcard of the single-segment routes).
	router.POST("/users", users.CreateUser)
	router.GET("/users", middleware.Authenticate(middleware.RequireRole(users.ListUsers, models.RoleAdmin)))
	router.GET("/users/:key", middleware.Authenticate(users.GetUser))
	router.GET("/users/:key/:value", middleware.Authenticate(users.RoleFlag))
	router.PATCH("/users/:key", middleware.Authenticate(users.UpdateProfile))
	router.PATCH("/users/:key/:value", middleware.Authenticate(middleware.RequireRole(users.Promote, models.RoleAdmin)))
	router.DELETE("/users/:key", middleware.Authenticate(middleware.RequireRole(users.DeleteUser, models.RoleAdmin)))
}

func AddCatalogRoutes(router *httprouter.Router) {
	router.GET("/packages", catalog.ListPackages)
	router.GET("/packages-home", catalog.HomePackages)
	router.GET("/packages/:id", catalog.GetPackage)
	router.GET("/guides", catalog.ListGuides)
	router.GET("/guides-home", catalog.HomeGuides)
	router.GET("/guides/:id", catalog.GetGuide)
}

func AddBookingRoutes(router *httprouter.Router) {
	router.POST("/bookings", middleware.Authenticate(booking.CreateBooking))
	router.GET("/bookings", middleware.Authenticate(booking.ListBookings))
	router.GET("/bookings/assigned", middleware.Authenticate(middleware.RequireRole(booking.ListAssigned, models.RoleGuide)))
	router.GET("/bookings/updates", middleware.Authenticate(booking.HandleUpdates))
	router.PATCH("/bookings/:key/:id", middleware.Authenticate(middleware.RequireRole(booking.DecideBooking, models.RoleGuide)))
	router.PATCH("/bookings/:key", middleware.Authenticate(booking.RedactBooking))
	router.DELETE("/bookings/:id", middleware.Authenticate(booking.CancelBooking))
}

func AddPaymentRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/create-payment-intent", rl.Limit(pay.CreatePaymentIntent))
	router.POST("/payments", rl.Limit(middleware.Authenticate(pay.RecordPayment)))
	router.GET("/payments/:id/receipt", middleware.Authenticate(pay.PrintReceipt))
}

func AddStatsRoutes(router *httprouter.Router) {
	router.GET("/admin-stats", middleware.Authenticate(middleware.RequireRole(stats.AdminStats, models.RoleAdmin)))
	router.GET("/user-statistics/:email", middleware.Authenticate(stats.UserStatistics))
}

func AddStoryRoutes(router *httprouter.Router) {
	router.POST("/stories", middleware.Authenticate(stories.CreateStory))
	router.POST("/stories/photo", middleware.Authenticate(stories.UploadPhoto))
	router.GET("/stories", stories.ListStories)
	router.GET("/stories/:id", stories.GetStory)
	router.PATCH("/stories/:id", middleware.Authenticate(stories.UpdateStory))
	router.DELETE("/stories/:id", middleware.Authenticate(stories.DeleteStory))
}

func AddApplicationRoutes(router *httprouter.Router) {
	router.POST("/applications", middleware.Authenticate(applications.Apply))
	router.GET("/applications", middleware.Authenticate(middleware.RequireRole(applications.ListApplications, models.RoleAdmin)))
	router.POST("/applications/:id/approve", middleware.Authenticate(middleware.RequireRole(applications.Approve, models.RoleAdmin)))
	router.DELETE("/applications/:id", middleware.Authenticate(middleware.RequireRole(applications.DeleteApplication, models.RoleAdmin)))
}
