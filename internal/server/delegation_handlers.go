package server

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type DelegateAssetRequest struct {
	ID       uint32 `param:"id"`
	Operator string `json:"operator" validate:"required,uuid"`
}

func (s *Server) DelegateAsset(ctx echo.Context) error {
	var req DelegateAssetRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return ctx.JSON(422, map[string]string{"error": err.Error()})
	}
	operator, _ := uuid.Parse(req.Operator)

	if err := s.server.DelegateAsset(ctx.Request().Context(), req.ID, operator); err != nil {
		return errJSON(ctx, err)
	}

	return ctx.JSON(200, Res{Message: "asset delegated"})
}

type Delegation struct {
	ID       uint32 `json:"id"`
	Operator string `json:"operator"`
}

func (s *Server) GetDelegatedAccount(ctx echo.Context) error {
	var req GetAssetRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}

	operator, found, err := s.server.GetDelegate(ctx.Request().Context(), req.ID)
	if err != nil {
		return ctx.JSON(500, map[string]string{"error": err.Error()})
	}
	if !found {
		return ctx.JSON(404, map[string]string{"error": "delegation not found"})
	}

	return ctx.JSON(200, Res{Data: Delegation{ID: req.ID, Operator: operator.String()}})
}

type SetOperatorApprovalRequest struct {
	Operator string `json:"operator" validate:"required,uuid"`
	Approved *bool  `json:"approved" validate:"required"`
}

func (s *Server) SetOperatorApproval(ctx echo.Context) error {
	var req SetOperatorApprovalRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return ctx.JSON(422, map[string]string{"error": err.Error()})
	}
	operator, _ := uuid.Parse(req.Operator)

	if err := s.server.SetOperatorApproval(ctx.Request().Context(), operator, *req.Approved); err != nil {
		return errJSON(ctx, err)
	}

	return ctx.JSON(200, Res{Message: "operator approval updated"})
}

type VerifyOperatorApprovalRequest struct {
	Owner    string `param:"owner" validate:"required,uuid"`
	Operator string `param:"operator" validate:"required,uuid"`
}

func (s *Server) VerifyOperatorApproval(ctx echo.Context) error {
	var req VerifyOperatorApprovalRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return ctx.JSON(422, map[string]string{"error": err.Error()})
	}
	owner, _ := uuid.Parse(req.Owner)
	operator, _ := uuid.Parse(req.Operator)

	approved, err := s.server.IsApprovedForAll(ctx.Request().Context(), owner, operator)
	if err != nil {
		return ctx.JSON(500, map[string]string{"error": err.Error()})
	}

	return ctx.JSON(200, Res{Data: approved})
}
