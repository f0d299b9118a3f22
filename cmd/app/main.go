package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tobugo/cmd/fx/account_fx"
	"tobugo/cmd/fx/ai_fx"
	"tobugo/cmd/fx/chat_fx"
	"tobugo/cmd/fx/community_fx"
	"tobugo/cmd/fx/db_fx"
	"tobugo/cmd/fx/export_fx"
	"tobugo/cmd/fx/mail_fx"
	"tobugo/cmd/fx/media_fx"
	"tobugo/cmd/fx/memcache_fx"
	"tobugo/cmd/fx/payment_fx"
	"tobugo/cmd/fx/planner_fx"
	"tobugo/cmd/fx/trip_fx"
	"tobugo/internal/api/controllers"
	"tobugo/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		ai_fx.Module,
		mail_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		planner_fx.Module,
		trip_fx.Module,
		chat_fx.Module,
		community_fx.Module,
		payment_fx.Module,
		media_fx.Module,
		export_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	plannerController *controllers.PlannerController,
	tripController *controllers.TripController,
	chatController *controllers.ChatController,
	communityController *controllers.CommunityController,
	paymentController *controllers.PaymentController,
	mediaController *controllers.MediaController,
	exportController *controllers.ExportController,
) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		plannerController,
		tripController,
		chatController,
		communityController,
		paymentController,
		mediaController,
		exportController,
	)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	plannerController *controllers.PlannerController,
	tripController *controllers.TripController,
	chatController *controllers.ChatController,
	communityController *controllers.CommunityController,
	paymentController *controllers.PaymentController,
	mediaController *controllers.MediaController,
	exportController *controllers.ExportController,
) {
	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", accountController.Register)
	auth.POST("/login", accountController.Login)
	auth.POST("/forgot-password", accountController.ForgotPassword)
	auth.POST("/reset-password", accountController.ResetPassword)

	profile := api.Group("/profile", middleware.JWTAuthMiddleware())
	profile.GET("", accountController.GetProfile)
	profile.PATCH("", accountController.UpdateProfile)

	ai := api.Group("/ai", middleware.JWTAuthMiddleware())
	ai.POST("/generate-itinerary", plannerController.GenerateTrip)
	ai.POST("/optimize-itinerary", plannerController.OptimizeTrip)

	trips := api.Group("/trips", middleware.JWTAuthMiddleware())
	trips.GET("", tripController.ListTrips)
	trips.GET("/:id", tripController.GetTrip)
	trips.PATCH("/:id", tripController.UpdateTrip)
	trips.DELETE("/:id", tripController.DeleteTrip)
	trips.GET("/:id/export.pdf", exportController.ExportTripPDF)
	trips.POST("/:id/save", communityController.SaveTrip)
	trips.DELETE("/:id/save", communityController.UnsaveTrip)

	chat := api.Group("/chat", middleware.JWTAuthMiddleware())
	chat.POST("/messages", chatController.SendMessage)
	chat.GET("/sessions", chatController.ListSessions)
	chat.GET("/sessions/:id", chatController.GetSession)
	chat.DELETE("/sessions/:id", chatController.DeleteSession)

	community := api.Group("/community")
	community.GET("/trips", communityController.BrowsePublicTrips)
	community.GET("/trips/:id/reviews", communityController.ListReviews)
	community.GET("/trips/:id/reviews/stats", communityController.ReviewStats)
	community.GET("/trips/:id/similar", communityController.SimilarTrips)
	community.GET("/reviews/recent", communityController.RecentReviews)
	community.GET("/stats", communityController.CommunityStats)

	reviews := api.Group("/reviews", middleware.JWTAuthMiddleware())
	reviews.POST("/trips/:id", communityController.CreateReview)
	reviews.GET("/mine", communityController.ListMyReviews)
	reviews.POST("/:id/helpful", communityController.MarkReviewHelpful)
	reviews.DELETE("/:id", communityController.DeleteReview)

	saved := api.Group("/saved-trips", middleware.JWTAuthMiddleware())
	saved.GET("", communityController.ListSavedTrips)

	payments := api.Group("/payments")
	payments.POST("/checkout", middleware.JWTAuthMiddleware(), paymentController.CreateCheckout)
	payments.POST("/webhook", paymentController.HandleWebhook)
	payments.GET("/transactions", middleware.JWTAuthMiddleware(), paymentController.ListTransactions)

	media := api.Group("/media", middleware.JWTAuthMiddleware())
	media.GET("/images", mediaController.SearchImages)
	media.GET("/videos", mediaController.SearchVideos)
	media.GET("/travel-content", mediaController.SearchTravelContent)
}
