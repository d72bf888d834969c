package routes

import (
	"github.com/cyborg-s/coderr-backend/configs"
	"github.com/cyborg-s/coderr-backend/controllers"
	"github.com/cyborg-s/coderr-backend/entity"
	"github.com/cyborg-s/coderr-backend/middlewares"
	"github.com/cyborg-s/coderr-backend/repository"
	"github.com/cyborg-s/coderr-backend/services"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	offerRepo := repository.NewOfferRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Services
	offerSvc := services.NewOfferService(db, offerRepo, userRepo)
	orderSvc := services.NewOrderService(db, orderRepo, offerRepo, userRepo)
	reviewSvc := services.NewReviewService(reviewRepo, userRepo)
	profileSvc := services.NewProfileService(userRepo)
	baseInfoSvc := services.NewBaseInfoService(db, reviewRepo, offerRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(db, cfg)
	offerCtrl := controllers.NewOfferController(offerSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	profileCtrl := controllers.NewProfileController(profileSvc)
	baseInfoCtrl := controllers.NewBaseInfoController(baseInfoSvc)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Public
	r.POST("/registration", authCtrl.Register)
	r.POST("/login", authCtrl.Login)
	r.GET("/offers", offerCtrl.List)
	r.GET("/offers/:id", offerCtrl.Detail)
	r.GET("/offerdetails/:id", offerCtrl.DetailVariant)
	r.GET("/base-info", baseInfoCtrl.Get)

	// Offers (mutations)
	r.POST("/offers", auth(string(entity.ProfileBusiness)), offerCtrl.Create)
	r.PATCH("/offers/:id", auth(), offerCtrl.Update)
	r.DELETE("/offers/:id", auth(), offerCtrl.Delete)

	// Orders
	o := r.Group("/", auth())
	{
		o.GET("/orders", orderCtrl.List)
		o.POST("/orders", orderCtrl.Create)
		o.GET("/orders/:id", orderCtrl.Detail)
		o.PATCH("/orders/:id", orderCtrl.Update)
		o.DELETE("/orders/:id", orderCtrl.Delete)
		o.GET("/order-count/:business_user_id", orderCtrl.CountInProgress)
		o.GET("/completed-order-count/:business_user_id", orderCtrl.CountCompleted)
	}

	// Reviews
	rev := r.Group("/reviews", auth())
	{
		rev.GET("", reviewCtrl.List)
		rev.POST("", reviewCtrl.Create)
		rev.GET("/:id", reviewCtrl.Detail)
		rev.PATCH("/:id", reviewCtrl.Update)
		rev.DELETE("/:id", reviewCtrl.Delete)
	}

	// Profiles
	p := r.Group("/", auth())
	{
		p.GET("/profile/:user_id", profileCtrl.Detail)
		p.PATCH("/profile/:user_id", profileCtrl.Update)
		p.GET("/profiles/business", profileCtrl.ListBusiness)
		p.GET("/profiles/customer", profileCtrl.ListCustomer)
	}
}
