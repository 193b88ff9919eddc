package router

import (
	"github.com/gin-gonic/gin"
	"github.com/jcastror/elfogon-backend/config"
	"github.com/jcastror/elfogon-backend/internal/app/controller"
	"github.com/jcastror/elfogon-backend/internal/middleware"
)

type Router struct {
	authController     *controller.AuthController
	catalogController  *controller.CatalogController
	cartController     *controller.CartController
	addressController  *controller.AddressController
	checkoutController *controller.CheckoutController
	profileController  *controller.ProfileController
	sessions           *middleware.SessionMiddleware
	config             *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	catalogController *controller.CatalogController,
	cartController *controller.CartController,
	addressController *controller.AddressController,
	checkoutController *controller.CheckoutController,
	profileController *controller.ProfileController,
	sessions *middleware.SessionMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:     authController,
		catalogController:  catalogController,
		cartController:     cartController,
		addressController:  addressController,
		checkoutController: checkoutController,
		profileController:  profileController,
		sessions:           sessions,
		config:             cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(r.sessions.Handle())

	router.LoadHTMLGlob("web/templates/*.html")
	router.Static("/static", "./web/static")

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "EL FOGON is running",
		})
	})

	router.GET("/", r.catalogController.Home)
	router.GET("/contact", r.catalogController.Contact)

	router.GET("/register", r.authController.ShowRegister)
	router.POST("/register", r.authController.Register)
	router.GET("/login", r.authController.ShowLogin)
	router.POST("/login", r.authController.Login)
	router.POST("/logout", r.authController.Logout)

	private := router.Group("")
	private.Use(r.sessions.RequireLogin())
	{
		private.GET("/menu", r.catalogController.Menu)
		private.GET("/products/:id", r.catalogController.ProductDetail)

		private.GET("/cart", r.cartController.Show)
		private.POST("/cart/add/:id", r.cartController.Add)
		private.POST("/cart/remove/:id", r.cartController.Remove)
		private.POST("/cart/clear", r.cartController.Clear)

		private.GET("/addresses", r.addressController.List)
		private.POST("/addresses", r.addressController.Create)
		private.POST("/addresses/:id/delete", r.addressController.Delete)

		private.GET("/checkout", r.checkoutController.Show)
		private.POST("/checkout", r.checkoutController.Confirm)

		private.GET("/profile", r.profileController.Show)
	}

	return router
}
