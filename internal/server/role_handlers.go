package server

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/provreg/provreg/internal/usecase"
)

type GrantRoleRequest struct {
	Account string  `param:"account" validate:"required,uuid"`
	Role    *uint32 `json:"role" validate:"required"`
}

func (s *Server) GrantRole(ctx echo.Context) error {
	var req GrantRoleRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return ctx.JSON(422, map[string]string{"error": err.Error()})
	}
	account, _ := uuid.Parse(req.Account)

	if err := s.server.GrantRole(ctx.Request().Context(), account, usecase.Role(*req.Role)); err != nil {
		return errJSON(ctx, err)
	}

	return ctx.JSON(200, Res{Message: "role granted"})
}

type RoleRequest struct {
	Account string `param:"account" validate:"required,uuid"`
}

func (s *Server) RevokeRole(ctx echo.Context) error {
	var req RoleRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return ctx.JSON(422, map[string]string{"error": err.Error()})
	}
	account, _ := uuid.Parse(req.Account)

	if err := s.server.RevokeRole(ctx.Request().Context(), account); err != nil {
		return errJSON(ctx, err)
	}

	return ctx.JSON(200, Res{Message: "role revoked"})
}

type AccountRole struct {
	Account string `json:"account"`
	Role    uint32 `json:"role"`
}

func (s *Server) GetRole(ctx echo.Context) error {
	var req RoleRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return ctx.JSON(422, map[string]string{"error": err.Error()})
	}
	account, _ := uuid.Parse(req.Account)

	role, found, err := s.server.GetRole(ctx.Request().Context(), account)
	if err != nil {
		return ctx.JSON(500, map[string]string{"error": err.Error()})
	}
	if !found {
		return ctx.JSON(404, map[string]string{"error": "role not found"})
	}

	return ctx.JSON(200, Res{Data: AccountRole{Account: req.Account, Role: uint32(role)}})
}

func (s *Server) VerifyRole(ctx echo.Context) error {
	var req RoleRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return ctx.JSON(422, map[string]string{"error": err.Error()})
	}
	account, _ := uuid.Parse(req.Account)

	has, err := s.server.HasRole(ctx.Request().Context(), account)
	if err != nil {
		return ctx.JSON(500, map[string]string{"error": err.Error()})
	}

	return ctx.JSON(200, Res{Data: has})
}
