package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gin-catalog/constants"
	"gin-catalog/controllers"
	"gin-catalog/infra"
	"gin-catalog/middlewares"
	"gin-catalog/models"
	"gin-catalog/repositories"
	"gin-catalog/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func setupRouter(db *gorm.DB, rdb *redis.Client) *gin.Engine {

	userRepository := repositories.NewUserRepository(db)
	roleRepository := repositories.NewRoleRepository(db)
	tokenDB := infra.SetupTokenDB()
	tokenRepository := repositories.NewTokenRepository(tokenDB)

	authService := services.NewAuthService(userRepository, roleRepository, tokenRepository)
	authController := controllers.NewAuthController(authService)

	userService := services.NewUserService(userRepository, roleRepository)
	userController := controllers.NewUserController(userService)

	categoryRepository := repositories.NewCategoryRepository(db)
	categoryService := services.NewCategoryService(categoryRepository)
	categoryController := controllers.NewCategoryController(categoryService)

	productRepository := repositories.NewProductRepository(db)
	productService := services.NewProductService(productRepository, rdb)
	productController := controllers.NewProductController(productService)

	orderRepository := repositories.NewOrderRepository(db)
	orderService := services.NewOrderService(orderRepository, userRepository)
	orderController := controllers.NewOrderController(orderService)

	orderItemRepository := repositories.NewOrderItemRepository(db)
	orderItemService := services.NewOrderItemService(orderItemRepository, orderRepository, productRepository)
	orderItemController := controllers.NewOrderItemController(orderItemService)

	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := tokenDB.AutoMigrate(&models.BlacklistedToken{}); err != nil {
			log.Printf("Failed to migrate token blacklist database: %v", err)
		}
	}
	if removed, err := tokenRepository.CleanExpiredTokens(); err != nil {
		log.Printf("Failed to clean expired blacklist entries: %v", err)
	} else if removed > 0 {
		log.Printf("Removed %d expired blacklist entries", removed)
	}

	r := gin.Default()
	r.Use(cors.Default())

	authRouter := r.Group("/auth")
	authRouter.POST("/signup", authController.Signup)
	authRouter.POST("/login", authController.Login)
	authRouter.POST("/logout", authController.Logout)

	userRouter := r.Group("/users", middlewares.AuthMiddleware(authService))
	userRouter.GET("/profile", userController.Profile)
	userRouter.PUT("/profile", userController.UpdateProfile)
	userRouter.PUT("/profile/password", userController.ChangePassword)

	adminRouter := r.Group("/admin/users",
		middlewares.AuthMiddleware(authService),
		middlewares.RoleBasedAccessControl(constants.RoleAdmin))
	adminRouter.GET("", userController.FindAll)
	adminRouter.POST("", userController.CreateUser)
	adminRouter.POST("/:id/block", userController.BlockUser)
	adminRouter.POST("/:id/unblock", userController.UnblockUser)
	adminRouter.DELETE("/:id", userController.DeleteUser)

	// Reads are open; writes require an admin or seller.
	categoryRouter := r.Group("/categories")
	categoryRouterWithRole := r.Group("/categories",
		middlewares.AuthMiddleware(authService),
		middlewares.RoleBasedAccessControl(constants.RoleAdmin, constants.RoleSeller))
	categoryRouter.GET("", categoryController.FindAll)
	categoryRouter.GET("/:id", categoryController.FindById)
	categoryRouterWithRole.POST("", categoryController.Create)
	categoryRouterWithRole.PUT("/:id", categoryController.Update)
	categoryRouterWithRole.DELETE("/:id", categoryController.Delete)

	productRouter := r.Group("/products")
	productRouterWithRole := r.Group("/products",
		middlewares.AuthMiddleware(authService),
		middlewares.RoleBasedAccessControl(constants.RoleAdmin, constants.RoleSeller))
	productRouter.GET("", productController.FindAll)
	productRouter.GET("/:id", productController.FindById)
	productRouterWithRole.POST("", productController.Create)
	productRouterWithRole.PUT("/:id", productController.Update)
	productRouterWithRole.DELETE("/:id", productController.Delete)

	orderRouter := r.Group("/orders", middlewares.AuthMiddleware(authService))
	orderRouter.GET("", orderController.FindAll)
	orderRouter.GET("/:id", orderController.FindById)
	orderRouter.POST("", orderController.Create)
	orderRouter.PUT("/:id", orderController.Update)
	orderRouter.DELETE("/:id", orderController.Delete)

	orderItemRouter := r.Group("/order-items", middlewares.AuthMiddleware(authService))
	orderItemRouter.GET("", orderItemController.FindAll)
	orderItemRouter.GET("/:id", orderItemController.FindById)
	orderItemRouter.POST("", orderItemController.Create)
	orderItemRouter.PUT("/:id", orderItemController.Update)
	orderItemRouter.DELETE("/:id", orderItemController.Delete)

	return r
}

func initDB() *gorm.DB {
	infra.Initialize()

	db := infra.SetupDB()

	if os.Getenv("AUTO_MIGRATE") == "true" {
		if err := db.AutoMigrate(
			&models.User{},
			&models.Role{},
			&models.Category{},
			&models.Product{},
			&models.Order{},
			&models.OrderItem{},
		); err != nil {
			panic("Failed to migrate database")
		}
		if err := infra.SeedRoles(db); err != nil {
			panic("Failed to seed roles")
		}
	}

	// A deployment without the seeded roles cannot register anyone. Die
	// before serving instead of failing per-request.
	if err := infra.VerifyRoles(db); err != nil {
		log.Fatalf("Startup check failed: %v", err)
	}

	return db
}

func main() {
	db := initDB()
	rdb := infra.SetupRedis()
	r := setupRouter(db, rdb)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
