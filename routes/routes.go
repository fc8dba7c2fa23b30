package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nazex2000/LittleLemon/configs"
	"github.com/nazex2000/LittleLemon/controllers"
	"github.com/nazex2000/LittleLemon/entity"
	"github.com/nazex2000/LittleLemon/middlewares"
	"github.com/nazex2000/LittleLemon/repository"
	"github.com/nazex2000/LittleLemon/services"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, db *gorm.DB) {
	r.Use(middlewares.RequestLogger())
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	catRepo := repository.NewCategoryRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	roleSvc := services.NewRoleService(userRepo)
	catalogSvc := services.NewCatalogService(catRepo, menuRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	groupCtrl := controllers.NewGroupController(roleSvc)
	catCtrl := controllers.NewCategoryController(catalogSvc)
	menuCtrl := controllers.NewMenuController(catalogSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	// Role gates
	authed := middlewares.AuthMiddleware(db, cfg.JWTSecret)
	manager := middlewares.AuthMiddleware(db, cfg.JWTSecret, entity.RoleManager)
	customer := middlewares.AuthMiddleware(db, cfg.JWTSecret, entity.RoleCustomer)
	staff := middlewares.AuthMiddleware(db, cfg.JWTSecret, entity.RoleManager, entity.RoleDeliveryCrew)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", authed, authCtrl.Me)
	}

	// Role administration (manager)
	r.GET("/groups/:group/users", manager, groupCtrl.ListUsers)
	r.POST("/groups/:group/users", manager, groupCtrl.AddUser)
	r.DELETE("/groups/:group/users/:id", manager, groupCtrl.RemoveUser)
	r.GET("/users/:id/role", manager, groupCtrl.GetRole)
	r.PUT("/users/:id/role", manager, groupCtrl.AssignRole)

	// Catalog
	r.GET("/categories", authed, catCtrl.List)
	r.POST("/categories", manager, catCtrl.Create)
	r.DELETE("/categories/:id", manager, catCtrl.Delete)

	r.GET("/menu-items", authed, menuCtrl.List)
	r.GET("/menu-items/:id", authed, menuCtrl.Detail)
	r.POST("/menu-items", manager, menuCtrl.Create)
	r.PUT("/menu-items/:id", manager, menuCtrl.Replace)
	r.PATCH("/menu-items/:id", manager, menuCtrl.Patch)
	r.DELETE("/menu-items/:id", manager, menuCtrl.Delete)

	// Cart (customer)
	cart := r.Group("/cart", customer)
	{
		cart.GET("/menu-items", cartCtrl.List)
		cart.POST("/menu-items", cartCtrl.Add)
		cart.DELETE("/menu-items", cartCtrl.Clear)
	}

	// Orders
	r.POST("/orders", customer, orderCtrl.Place)
	r.GET("/orders", authed, orderCtrl.List)
	r.GET("/orders/:id", authed, orderCtrl.Detail)
	r.PUT("/orders/:id", manager, orderCtrl.Assign)
	r.PATCH("/orders/:id", staff, orderCtrl.UpdateStatus)
	r.DELETE("/orders/:id", manager, orderCtrl.Delete)
}
