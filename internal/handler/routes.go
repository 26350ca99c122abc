package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/bfaucher/ecureuil-backend/docs"
	"github.com/bfaucher/ecureuil-backend/internal/middleware"
)

// Handlers bundles every handler for route registration
type Handlers struct {
	Auth        *AuthHandler
	User        *UserHandler
	Category    *CategoryHandler
	Subcategory *SubcategoryHandler
	Account     *AccountHandler
	ThirdParty  *ThirdPartyHandler
	Movement    *MovementHandler
	Transfer    *TransferHandler
}

// RegisterRoutes sets up all API routes. Everything under /api requires a
// bearer token except the login endpoint itself.
func RegisterRoutes(e *echo.Echo, jwtSecret string, rateLimiter *middleware.RateLimiter, h Handlers) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.GET("/api-docs/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Login (public)
	api.POST("/authenticate", h.Auth.Authenticate)

	authenticated := api.Group("")
	authenticated.Use(middleware.Authenticate(jwtSecret))
	if rateLimiter != nil {
		authenticated.Use(middleware.RateLimit(rateLimiter))
	}

	// Token check
	authenticated.GET("/authenticate/verify", h.Auth.Verify)

	// Users
	users := authenticated.Group("/utilisateurs")
	users.GET("", h.User.GetUsers)
	users.POST("", h.User.CreateUser)
	users.GET("/:idUtilisateur", h.User.GetUser)
	users.PUT("/:idUtilisateur", h.User.UpdateUser)
	users.PATCH("/:idUtilisateur", h.User.PatchUser)
	users.DELETE("/:idUtilisateur", h.User.DeleteUser)

	// Categories and nested subcategories
	categories := authenticated.Group("/categories")
	categories.GET("", h.Category.GetCategories)
	categories.POST("", h.Category.CreateCategory)
	categories.GET("/:idCategorie", h.Category.GetCategory)
	categories.PUT("/:idCategorie", h.Category.UpdateCategory)
	categories.DELETE("/:idCategorie", h.Category.DeleteCategory)
	categories.GET("/:idCategorie/sous-categories", h.Subcategory.GetSubcategories)
	categories.POST("/:idCategorie/sous-categories", h.Subcategory.CreateSubcategory)
	categories.GET("/:idCategorie/sous-categories/:idSousCategorie", h.Subcategory.GetSubcategory)
	categories.PUT("/:idCategorie/sous-categories/:idSousCategorie", h.Subcategory.UpdateSubcategory)
	categories.DELETE("/:idCategorie/sous-categories/:idSousCategorie", h.Subcategory.DeleteSubcategory)

	// Accounts and nested movements
	accounts := authenticated.Group("/comptes")
	accounts.GET("", h.Account.GetAccounts)
	accounts.POST("", h.Account.CreateAccount)
	accounts.GET("/:idCompte", h.Account.GetAccount)
	accounts.PUT("/:idCompte", h.Account.UpdateAccount)
	accounts.PATCH("/:idCompte", h.Account.PatchAccount)
	accounts.DELETE("/:idCompte", h.Account.DeleteAccount)
	accounts.GET("/:idCompte/mouvements", h.Movement.GetAccountMovements)
	accounts.POST("/:idCompte/mouvements", h.Movement.CreateAccountMovement)

	// Third parties
	thirdParties := authenticated.Group("/tiers")
	thirdParties.GET("", h.ThirdParty.GetThirdParties)
	thirdParties.POST("", h.ThirdParty.CreateThirdParty)
	thirdParties.GET("/:idTiers", h.ThirdParty.GetThirdParty)
	thirdParties.PUT("/:idTiers", h.ThirdParty.UpdateThirdParty)
	thirdParties.DELETE("/:idTiers", h.ThirdParty.DeleteThirdParty)

	// Movements
	movements := authenticated.Group("/mouvements")
	movements.GET("", h.Movement.GetMovements)
	movements.POST("", h.Movement.CreateMovement)
	movements.GET("/:idMouvement", h.Movement.GetMovement)
	movements.PATCH("/:idMouvement", h.Movement.PatchMovement)
	movements.DELETE("/:idMouvement", h.Movement.DeleteMovement)

	// Transfers
	transfers := authenticated.Group("/virements")
	transfers.GET("", h.Transfer.GetTransfers)
	transfers.POST("", h.Transfer.CreateTransfer)
	transfers.GET("/:idVirement", h.Transfer.GetTransfer)
	transfers.PATCH("/:idVirement", h.Transfer.PatchTransfer)
	transfers.DELETE("/:idVirement", h.Transfer.DeleteTransfer)
}
