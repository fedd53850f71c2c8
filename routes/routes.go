package routes

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"stytchup/auth"
	"stytchup/designers"
	"stytchup/designs"
	"stytchup/home"
	"stytchup/inbox"
	"stytchup/middleware"
	"stytchup/orders"
	"stytchup/payments"
	"stytchup/profile"
	"stytchup/ratelim"
	"stytchup/realtime"
	"stytchup/uploads"
)

// App bundles everything the route table needs. Wired once in main.
type App struct {
	Auth      *auth.Handlers
	Home      *home.Handlers
	Designs   *designs.Handlers
	Designers *designers.Handlers
	Orders    *orders.Handlers
	Inbox     *inbox.Handlers
	Payments  *payments.Handlers
	Profile   *profile.Handlers
	Uploads   *uploads.Handlers
	Guard     *middleware.Auth
	Hub       *realtime.Hub
	Limiter   *ratelim.RateLimiter
	UploadDir string
}

func AddStaticRoutes(router *httprouter.Router, uploadDir string) {
	router.ServeFiles("/static/*filepath", http.Dir("static"))
	router.ServeFiles("/uploads/*filepath", http.Dir(uploadDir))
}

func AddAuthRoutes(router *httprouter.Router, app *App) {
	router.GET("/login", app.Guard.Optional(app.Auth.LoginPage))
	router.POST("/login", app.Limiter.Limit(app.Auth.Login))
	router.GET("/register", app.Guard.Optional(app.Auth.RegisterPage))
	router.POST("/register", app.Limiter.Limit(app.Auth.Register))
	router.GET("/auth/google", app.Auth.GoogleStart)
	router.GET("/auth/google/callback", app.Auth.GoogleCallback)
	router.POST("/logout", app.Guard.Require(app.Auth.Logout))
	router.POST("/role", app.Guard.Require(app.Auth.ChangeRole))
}

func AddPageRoutes(router *httprouter.Router, app *App) {
	router.GET("/", app.Guard.Optional(app.Home.Index))
	router.GET("/designs", app.Guard.Optional(app.Designs.List))
	router.GET("/designs/:id", app.Guard.Optional(app.Designs.Detail))
	router.GET("/add-design", app.Guard.Require(app.Designs.AddPage))
	router.POST("/add-design", app.Guard.Require(app.Designs.Add))
	router.GET("/designers", app.Guard.Optional(app.Designers.List))
	router.GET("/designers/:id", app.Guard.Optional(app.Designers.Detail))
	router.GET("/settings", app.Guard.Require(app.Profile.SettingsPage))
	router.POST("/settings", app.Guard.Require(app.Profile.Update))
}

func AddOrderRoutes(router *httprouter.Router, app *App) {
	router.GET("/orders", app.Guard.Require(app.Orders.My))
	router.GET("/orders/:id/measurements", app.Guard.Require(app.Orders.MeasurementsPage))
	router.POST("/orders/:id/measurements", app.Guard.Require(app.Orders.SubmitMeasurements))
	router.POST("/orders/:id/complete", app.Guard.Require(app.Orders.Complete))
	router.GET("/dashboard", app.Guard.Require(app.Orders.Dashboard))
	router.POST("/api/orders/:id/ship", app.Guard.Require(app.Orders.Ship))
}

func AddInboxRoutes(router *httprouter.Router, app *App) {
	router.GET("/inbox", app.Guard.Require(app.Inbox.List))
	router.POST("/inbox/create", app.Guard.Require(app.Inbox.Create))
	router.GET("/inbox/:id", app.Guard.Require(app.Inbox.Conversation))
	router.POST("/api/inbox/:id/message", app.Limiter.Limit(app.Guard.Require(app.Inbox.SendMessage)))
	router.POST("/api/inbox/:id/offer", app.Limiter.Limit(app.Guard.Require(app.Inbox.SendOffer)))
	router.GET("/ws/inbox/:id", app.Guard.Require(realtime.ViewerHandler(app.Hub)))
}

func AddPaymentRoutes(router *httprouter.Router, app *App) {
	router.POST("/api/payments/create-order", app.Limiter.Limit(app.Guard.Require(app.Payments.CreateOrder)))
	router.POST("/api/payments/verify", app.Guard.Require(app.Payments.Verify))
}

func AddUploadRoutes(router *httprouter.Router, app *App) {
	router.POST("/api/uploads/image", app.Guard.Require(app.Uploads.Image))
}

// Register builds the full route table.
func Register(router *httprouter.Router, app *App) {
	AddStaticRoutes(router, app.UploadDir)
	AddAuthRoutes(router, app)
	AddPageRoutes(router, app)
	AddOrderRoutes(router, app)
	AddInboxRoutes(router, app)
	AddPaymentRoutes(router, app)
	AddUploadRoutes(router, app)
}
