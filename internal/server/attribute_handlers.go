package server

import (
	"github.com/labstack/echo/v4"

	"github.com/provreg/provreg/internal/usecase"
)

type SetAttributeRequest struct {
	ID      uint32 `param:"id"`
	Pointer string `json:"pointer" validate:"required,len=64,hexadecimal"`
}

// SetAttribute builds the handler that stores one attribute kind. Routes are
// registered per kind so the URL carries the kind, not the request body.
func (s *Server) SetAttribute(kind usecase.AttributeKind) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var req SetAttributeRequest
		if err := ctx.Bind(&req); err != nil {
			return ctx.JSON(400, map[string]string{"error": err.Error()})
		}
		if err := s.validator.Struct(req); err != nil {
			return ctx.JSON(422, map[string]string{"error": err.Error()})
		}

		if err := s.server.SetAttribute(ctx.Request().Context(), req.ID, kind, req.Pointer); err != nil {
			return errJSON(ctx, err)
		}

		return ctx.JSON(200, Res{Message: string(kind) + " set"})
	}
}

func (s *Server) ClearAttribute(kind usecase.AttributeKind) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var req GetAssetRequest
		if err := ctx.Bind(&req); err != nil {
			return ctx.JSON(400, map[string]string{"error": err.Error()})
		}

		if err := s.server.ClearAttribute(ctx.Request().Context(), req.ID, kind); err != nil {
			return errJSON(ctx, err)
		}

		return ctx.JSON(200, Res{Message: string(kind) + " cleared"})
	}
}

type Attribute struct {
	ID      uint32 `json:"id"`
	Kind    string `json:"kind"`
	Pointer string `json:"pointer"`
}

func (s *Server) GetAttribute(kind usecase.AttributeKind) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var req GetAssetRequest
		if err := ctx.Bind(&req); err != nil {
			return ctx.JSON(400, map[string]string{"error": err.Error()})
		}

		pointer, found, err := s.server.GetAttribute(ctx.Request().Context(), req.ID, kind)
		if err != nil {
			return ctx.JSON(500, map[string]string{"error": err.Error()})
		}
		if !found {
			return ctx.JSON(404, map[string]string{"error": string(kind) + " not found"})
		}

		return ctx.JSON(200, Res{Data: Attribute{ID: req.ID, Kind: string(kind), Pointer: pointer}})
	}
}

func (s *Server) VerifyAttribute(kind usecase.AttributeKind) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var req GetAssetRequest
		if err := ctx.Bind(&req); err != nil {
			return ctx.JSON(400, map[string]string{"error": err.Error()})
		}

		has, err := s.server.HasAttribute(ctx.Request().Context(), req.ID, kind)
		if err != nil {
			return ctx.JSON(500, map[string]string{"error": err.Error()})
		}

		return ctx.JSON(200, Res{Data: has})
	}
}
