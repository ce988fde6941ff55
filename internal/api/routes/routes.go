package routes

import (
	"time"

	"rental-chat-service/internal/api/handlers"
	"rental-chat-service/internal/api/middleware"
	"rental-chat-service/internal/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const healthPath = "/health"

// Deps carries everything the router wires into handlers.
type Deps struct {
	MessageService      handlers.MessageService
	NotificationService handlers.NotificationService
	DeviceService       handlers.DeviceService
	RentalService       handlers.RentalService
	ReviewService       handlers.ReviewService
	Notifier            services.MessageNotifier
	WSHandler           *handlers.WSHandler
	HealthHandler       *handlers.HealthHandler
	RedisService        *services.RedisService
	JWTSecret           string
	InternalKey         string
	AllowedOrigins      []string
}

type Router struct {
	engine              *gin.Engine
	wsHandler           *handlers.WSHandler
	healthHandler       *handlers.HealthHandler
	messageHandler      *handlers.MessageHandler
	notificationHandler *handlers.NotificationHandler
	deviceHandler       *handlers.DeviceHandler
	rentalHandler       *handlers.RentalHandler
	reviewHandler       *handlers.ReviewHandler
	notifier            services.MessageNotifier
	rateLimitMW         *middleware.RateLimitMiddleware
	authMW              *middleware.AuthMiddleware
	internalKey         string
}

func NewRouter(deps Deps) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	// Add middlewares
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS(deps.AllowedOrigins))
	engine.Use(middleware.LogApi(healthPath))

	return &Router{
		engine:              engine,
		wsHandler:           deps.WSHandler,
		healthHandler:       deps.HealthHandler,
		messageHandler:      handlers.NewMessageHandler(deps.MessageService),
		notificationHandler: handlers.NewNotificationHandler(deps.NotificationService),
		deviceHandler:       handlers.NewDeviceHandler(deps.DeviceService),
		rentalHandler:       handlers.NewRentalHandler(deps.RentalService),
		reviewHandler:       handlers.NewReviewHandler(deps.ReviewService),
		notifier:            deps.Notifier,
		rateLimitMW:         middleware.NewRateLimitMiddleware(deps.RedisService),
		authMW:              middleware.NewAuthMiddleware(deps.JWTSecret),
		internalKey:         deps.InternalKey,
	}
}

func (r *Router) SetupRoutes() {
	if r.healthHandler != nil {
		r.engine.GET(healthPath, r.healthHandler.Health)
	}
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Push endpoints live at the root for the mobile client
	push := r.engine.Group("/")
	push.Use(r.authMW.RequireAuth(), r.rateLimitMW.RateLimit(30, time.Minute))
	{
		push.POST("/register-token", r.deviceHandler.RegisterToken)
		push.POST("/send-notification", r.deviceHandler.SendNotification)
	}

	api := r.engine.Group("/api/v1")

	// WebSocket endpoint; the token may come as ?token=
	if r.wsHandler != nil {
		api.GET("/ws",
			r.rateLimitMW.RateLimitIP(20, time.Minute), // 20 handshakes per minute per IP
			r.authMW.RequireAuth(),
			r.wsHandler.HandleWebSocket,
		)
	}

	// Server-to-server
	internal := api.Group("/")
	internal.Use(middleware.RequireInternalKey(r.internalKey))
	{
		internal.POST("/notifications/message", r.notificationHandler.CreateMessageNotifications)
	}

	// Authenticated routes
	auth := api.Group("/")
	auth.Use(r.authMW.RequireAuth())
	{
		messages := auth.Group("/messages")
		messages.Use(r.rateLimitMW.RateLimit(200, time.Minute)) // 200 requests per minute
		{
			create := []gin.HandlerFunc{r.messageHandler.CreateMessage}
			if r.notifier != nil {
				create = append([]gin.HandlerFunc{middleware.MessageInterceptor(r.notifier)}, create...)
			}
			messages.POST("", create...)
			messages.GET("/:id", r.messageHandler.GetConversation)
			messages.GET("/:id/:carId", r.messageHandler.GetConversation)
			messages.PUT("/:id", r.messageHandler.UpdateMessage)
			messages.DELETE("/:id", r.messageHandler.DeleteMessage)
			messages.PUT("/:id/read", r.messageHandler.MarkMessageRead)
		}

		notifications := auth.Group("/notifications")
		notifications.Use(r.rateLimitMW.RateLimit(100, time.Minute))
		{
			notifications.GET("", r.notificationHandler.ListNotifications)
			notifications.PUT("/mark-all-read", r.notificationHandler.MarkAllNotificationsRead)
			notifications.PUT("/:id/read", r.notificationHandler.MarkNotificationRead)
		}

		rentals := auth.Group("/rentals")
		rentals.Use(r.rateLimitMW.RateLimit(50, time.Minute))
		{
			rentals.POST("", r.rentalHandler.CreateRental)
			rentals.GET("", r.rentalHandler.ListMyRentals)
		}

		auth.POST("/reviews", r.rateLimitMW.RateLimit(20, time.Minute), r.reviewHandler.CreateReview)
		auth.GET("/cars/:id/reviews", r.reviewHandler.ListCarReviews)
	}
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
