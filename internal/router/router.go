package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/wisewallet/backend/internal/api"
	"github.com/wisewallet/backend/internal/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth     *api.AuthHandler
	MealPlan *api.MealPlanHandler
	Recipe   *api.RecipeHandler
	Chat     *api.ChatHandler
	Profile  *api.ProfileHandler
	Lookup   *api.LookupHandler
}

// Setup configures the application routes.
func Setup(h Handlers, validator middleware.TokenValidator, limiter *middleware.RateLimiter) *gin.Engine {
	router := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
	}

	protected := v1.Group("")
	protected.Use(middleware.Auth(validator))
	{
		plan := protected.Group("/meal-plan")
		{
			plan.POST("/generate", limiter.Middleware(), h.MealPlan.Generate)
			plan.GET("", h.MealPlan.Get)
			plan.PUT("", h.MealPlan.Update)
			plan.POST("/meals", h.MealPlan.AddMeal)
			plan.DELETE("/meals", h.MealPlan.RemoveMeal)
			plan.POST("/shopping-list/export", h.MealPlan.ExportShoppingList)
		}

		recipes := protected.Group("/recipes")
		{
			recipes.GET("", h.Recipe.List)
			recipes.GET("/search", h.Recipe.Search)
			recipes.GET("/:id", h.Recipe.Get)
		}

		protected.POST("/chat", limiter.Middleware(), h.Chat.Send)

		profile := protected.Group("/profile")
		{
			profile.GET("", h.Profile.Get)
			profile.PUT("", h.Profile.Update)
		}

		protected.GET("/events", h.Lookup.Events)
		protected.GET("/fuel-stations", h.Lookup.FuelStations)
	}

	return router
}
