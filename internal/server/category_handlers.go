package server

import (
	"github.com/labstack/echo/v4"
)

type AssignCategoryRequest struct {
	ID   uint32  `param:"id"`
	Code *uint32 `json:"code" validate:"required"`
}

func (s *Server) AssignCategory(ctx echo.Context) error {
	var req AssignCategoryRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return ctx.JSON(422, map[string]string{"error": err.Error()})
	}

	if err := s.server.AssignCategory(ctx.Request().Context(), req.ID, *req.Code); err != nil {
		return errJSON(ctx, err)
	}

	return ctx.JSON(200, Res{Message: "category assigned"})
}

func (s *Server) ClearCategory(ctx echo.Context) error {
	var req GetAssetRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}

	if err := s.server.ClearCategory(ctx.Request().Context(), req.ID); err != nil {
		return errJSON(ctx, err)
	}

	return ctx.JSON(200, Res{Message: "category cleared"})
}

type AssetCategory struct {
	ID   uint32 `json:"id"`
	Code uint32 `json:"code"`
}

func (s *Server) GetAssetCategory(ctx echo.Context) error {
	var req GetAssetRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}

	code, found, err := s.server.GetAssetCategory(ctx.Request().Context(), req.ID)
	if err != nil {
		return ctx.JSON(500, map[string]string{"error": err.Error()})
	}
	if !found {
		return ctx.JSON(404, map[string]string{"error": "category not found"})
	}

	return ctx.JSON(200, Res{Data: AssetCategory{ID: req.ID, Code: code}})
}

func (s *Server) VerifyAssetCategory(ctx echo.Context) error {
	var req GetAssetRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}

	has, err := s.server.HasAssetCategory(ctx.Request().Context(), req.ID)
	if err != nil {
		return ctx.JSON(500, map[string]string{"error": err.Error()})
	}

	return ctx.JSON(200, Res{Data: has})
}

type DefineCategoryRequest struct {
	Code    *uint32 `json:"code" validate:"required"`
	Pointer string  `json:"pointer" validate:"required,len=64,hexadecimal"`
}

func (s *Server) DefineCategory(ctx echo.Context) error {
	var req DefineCategoryRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return ctx.JSON(422, map[string]string{"error": err.Error()})
	}

	if err := s.server.DefineCategory(ctx.Request().Context(), *req.Code, req.Pointer); err != nil {
		return errJSON(ctx, err)
	}

	return ctx.JSON(201, Res{Message: "category defined"})
}

type CategoryRequest struct {
	Code uint32 `param:"code"`
}

func (s *Server) UndefineCategory(ctx echo.Context) error {
	var req CategoryRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}

	if err := s.server.UndefineCategory(ctx.Request().Context(), req.Code); err != nil {
		return errJSON(ctx, err)
	}

	return ctx.JSON(200, Res{Message: "category undefined"})
}

type CategoryDescription struct {
	Code    uint32 `json:"code"`
	Pointer string `json:"pointer"`
}

func (s *Server) GetCategoryDescription(ctx echo.Context) error {
	var req CategoryRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}

	pointer, found, err := s.server.GetCategoryDescription(ctx.Request().Context(), req.Code)
	if err != nil {
		return ctx.JSON(500, map[string]string{"error": err.Error()})
	}
	if !found {
		return ctx.JSON(404, map[string]string{"error": "category description not found"})
	}

	return ctx.JSON(200, Res{Data: CategoryDescription{Code: req.Code, Pointer: pointer}})
}

func (s *Server) VerifyCategoryDescription(ctx echo.Context) error {
	var req CategoryRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}

	has, err := s.server.HasCategoryDescription(ctx.Request().Context(), req.Code)
	if err != nil {
		return ctx.JSON(500, map[string]string{"error": err.Error()})
	}

	return ctx.JSON(200, Res{Data: has})
}
