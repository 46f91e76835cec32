package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/provreg/provreg/internal/usecase"
)

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Caller-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	e.GET("/api", s.HelloWorldHandler)

	e.GET("/api/health", s.healthHandler)

	e.GET("/api/websocket", s.websocketHandler)

	var assetGroup = e.Group("/api/v1/assets")
	assetGroup.POST("", s.CreateAsset, s.CallerMiddleware)
	assetGroup.DELETE("/:id", s.DeleteAsset, s.CallerMiddleware)
	assetGroup.POST("/:id/transfer", s.TransferAsset, s.CallerMiddleware)
	assetGroup.GET("/:id/owner", s.GetAssetOwner)
	assetGroup.GET("/:id/verify", s.VerifyAsset)
	assetGroup.GET("/:id/qr", s.GetAssetQR)

	for _, kind := range usecase.AttributeKinds {
		var g = assetGroup.Group("/:id/" + string(kind))
		g.PUT("", s.SetAttribute(kind), s.CallerMiddleware)
		g.DELETE("", s.ClearAttribute(kind), s.CallerMiddleware)
		g.GET("", s.GetAttribute(kind))
		g.GET("/verify", s.VerifyAttribute(kind))
	}

	assetGroup.PUT("/:id/category", s.AssignCategory, s.CallerMiddleware)
	assetGroup.DELETE("/:id/category", s.ClearCategory, s.CallerMiddleware)
	assetGroup.GET("/:id/category", s.GetAssetCategory)
	assetGroup.GET("/:id/category/verify", s.VerifyAssetCategory)

	assetGroup.POST("/:id/validation", s.CertifyAsset, s.CallerMiddleware)
	assetGroup.DELETE("/:id/validation", s.RevokeValidation, s.CallerMiddleware)
	assetGroup.GET("/:id/validation", s.GetValidation)
	assetGroup.GET("/:id/validation/verify", s.VerifyValidation)

	assetGroup.PUT("/:id/delegate", s.DelegateAsset, s.CallerMiddleware)
	assetGroup.GET("/:id/delegate", s.GetDelegatedAccount)

	var categoryGroup = e.Group("/api/v1/categories")
	categoryGroup.POST("", s.DefineCategory, s.CallerMiddleware)
	categoryGroup.DELETE("/:code", s.UndefineCategory, s.CallerMiddleware)
	categoryGroup.GET("/:code", s.GetCategoryDescription)
	categoryGroup.GET("/:code/verify", s.VerifyCategoryDescription)

	var roleGroup = e.Group("/api/v1/roles")
	roleGroup.PUT("/:account", s.GrantRole, s.CallerMiddleware)
	roleGroup.DELETE("/:account", s.RevokeRole, s.CallerMiddleware)
	roleGroup.GET("/:account", s.GetRole)
	roleGroup.GET("/:account/verify", s.VerifyRole)

	var accountGroup = e.Group("/api/v1/accounts")
	accountGroup.PUT("/operators", s.SetOperatorApproval, s.CallerMiddleware)
	accountGroup.GET("/:owner/operators/:operator", s.VerifyOperatorApproval)
	accountGroup.GET("/:id/assets/count", s.GetAccountAssetsNumber)

	var auditGroup = e.Group("/api/v1/audit")
	auditGroup.GET("", s.ListAuditLogs, s.CallerMiddleware)

	return e
}
