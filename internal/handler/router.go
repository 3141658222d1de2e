package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"scms/internal/handler/api"
	"scms/internal/handler/middleware"
	"scms/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	userHandler *api.UserHandler,
	bookingHandler *api.BookingHandler,
	courtHandler *api.CourtHandler,
	couponHandler *api.CouponHandler,
	paymentHandler *api.PaymentHandler,
	ratingHandler *api.RatingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, userHandler, bookingHandler, courtHandler, couponHandler, paymentHandler, ratingHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	userHandler *api.UserHandler,
	bookingHandler *api.BookingHandler,
	courtHandler *api.CourtHandler,
	couponHandler *api.CouponHandler,
	paymentHandler *api.PaymentHandler,
	ratingHandler *api.RatingHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Public catalogue and discovery surface.
	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodPost, Path: "/users", Handler: userHandler.Upsert},
		{Method: http.MethodGet, Path: "/courts", Handler: courtHandler.List},
		{Method: http.MethodGet, Path: "/courtsCount", Handler: courtHandler.Count},
		{Method: http.MethodGet, Path: "/ratings", Handler: ratingHandler.List},
		{Method: http.MethodGet, Path: "/popular-courts", Handler: ratingHandler.PopularCourts},
		{Method: http.MethodPost, Path: "/validate-coupon", Handler: couponHandler.Validate},
	})

	authed := engine.Group("")
	authed.Use(authMiddleware.RequireAuth(), authMiddleware.ResolveRole())
	{
		addRoutes(authed, []route{
			{Method: http.MethodGet, Path: "/users/:email/role", Handler: userHandler.GetRole},

			{Method: http.MethodPost, Path: "/bookings", Handler: bookingHandler.Create},
			{Method: http.MethodGet, Path: "/bookings", Handler: bookingHandler.List},
			{Method: http.MethodGet, Path: "/bookings/:id", Handler: bookingHandler.Get},
			{Method: http.MethodDelete, Path: "/bookings/:id", Handler: bookingHandler.Delete},

			{Method: http.MethodPost, Path: "/create-payment-intent", Handler: paymentHandler.CreateIntent},
			{Method: http.MethodPost, Path: "/payments", Handler: paymentHandler.Record},
			{Method: http.MethodGet, Path: "/payments", Handler: paymentHandler.List},

			{Method: http.MethodPost, Path: "/ratings", Handler: ratingHandler.Create},
			{Method: http.MethodPatch, Path: "/ratings/:id", Handler: ratingHandler.Update},
			{Method: http.MethodDelete, Path: "/ratings/:id", Handler: ratingHandler.Delete},
		})

		admin := authed.Group("")
		admin.Use(authMiddleware.RequireAdmin())
		addRoutes(admin, []route{
			{Method: http.MethodPatch, Path: "/bookings/:id", Handler: bookingHandler.UpdateStatus},

			{Method: http.MethodGet, Path: "/members", Handler: userHandler.ListMembers},
			{Method: http.MethodDelete, Path: "/members/:id", Handler: userHandler.DeleteMember},
			{Method: http.MethodGet, Path: "/admin-stats", Handler: userHandler.AdminStats},

			{Method: http.MethodPost, Path: "/courts", Handler: courtHandler.Create},
			{Method: http.MethodPatch, Path: "/courts/:id", Handler: courtHandler.Update},
			{Method: http.MethodDelete, Path: "/courts/:id", Handler: courtHandler.Delete},

			{Method: http.MethodPost, Path: "/coupons", Handler: couponHandler.Create},
			{Method: http.MethodGet, Path: "/coupons", Handler: couponHandler.List},
			{Method: http.MethodPatch, Path: "/coupons/:id", Handler: couponHandler.Update},
			{Method: http.MethodDelete, Path: "/coupons/:id", Handler: couponHandler.Delete},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
