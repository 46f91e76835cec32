package server

import (
	"github.com/labstack/echo/v4"
)

func (s *Server) CertifyAsset(ctx echo.Context) error {
	var req GetAssetRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}

	if err := s.server.CertifyAsset(ctx.Request().Context(), req.ID); err != nil {
		return errJSON(ctx, err)
	}

	return ctx.JSON(201, Res{Message: "asset certified"})
}

func (s *Server) RevokeValidation(ctx echo.Context) error {
	var req GetAssetRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}

	if err := s.server.RevokeValidation(ctx.Request().Context(), req.ID); err != nil {
		return errJSON(ctx, err)
	}

	return ctx.JSON(200, Res{Message: "validation revoked"})
}

type Validation struct {
	ID    uint32 `json:"id"`
	Admin string `json:"admin"`
}

func (s *Server) GetValidation(ctx echo.Context) error {
	var req GetAssetRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}

	admin, found, err := s.server.GetValidation(ctx.Request().Context(), req.ID)
	if err != nil {
		return ctx.JSON(500, map[string]string{"error": err.Error()})
	}
	if !found {
		return ctx.JSON(404, map[string]string{"error": "validation not found"})
	}

	return ctx.JSON(200, Res{Data: Validation{ID: req.ID, Admin: admin.String()}})
}

func (s *Server) VerifyValidation(ctx echo.Context) error {
	var req GetAssetRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}

	verified, err := s.server.IsVerified(ctx.Request().Context(), req.ID)
	if err != nil {
		return ctx.JSON(500, map[string]string{"error": err.Error()})
	}

	return ctx.JSON(200, Res{Data: verified})
}
