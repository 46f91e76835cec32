package server

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	qrcode "github.com/skip2/go-qrcode"
)

type CreateAssetRequest struct {
	ID uint32 `json:"id"`
}

func (s *Server) CreateAsset(ctx echo.Context) error {
	var req CreateAssetRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return ctx.JSON(422, map[string]string{"error": err.Error()})
	}

	if err := s.server.CreateAsset(ctx.Request().Context(), req.ID); err != nil {
		return errJSON(ctx, err)
	}

	return ctx.JSON(201, Res{Message: "asset created"})
}

type DeleteAssetRequest struct {
	ID uint32 `param:"id"`
}

func (s *Server) DeleteAsset(ctx echo.Context) error {
	var req DeleteAssetRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}

	if err := s.server.DeleteAsset(ctx.Request().Context(), req.ID); err != nil {
		return errJSON(ctx, err)
	}

	return ctx.JSON(200, Res{Message: "asset deleted"})
}

type TransferAssetRequest struct {
	ID          uint32 `param:"id"`
	Destination string `json:"destination" validate:"required,uuid"`
}

func (s *Server) TransferAsset(ctx echo.Context) error {
	var req TransferAssetRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return ctx.JSON(422, map[string]string{"error": err.Error()})
	}
	destination, _ := uuid.Parse(req.Destination)

	if err := s.server.TransferAsset(ctx.Request().Context(), req.ID, destination); err != nil {
		return errJSON(ctx, err)
	}

	return ctx.JSON(200, Res{Message: "asset transferred"})
}

type GetAssetRequest struct {
	ID uint32 `param:"id"`
}

type AssetOwner struct {
	ID    uint32 `json:"id"`
	Owner string `json:"owner"`
}

func (s *Server) GetAssetOwner(ctx echo.Context) error {
	var req GetAssetRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}

	owner, found, err := s.server.GetAssetOwner(ctx.Request().Context(), req.ID)
	if err != nil {
		return ctx.JSON(500, map[string]string{"error": err.Error()})
	}
	if !found {
		return ctx.JSON(404, map[string]string{"error": "asset not found"})
	}

	return ctx.JSON(200, Res{Data: AssetOwner{ID: req.ID, Owner: owner.String()}})
}

func (s *Server) VerifyAsset(ctx echo.Context) error {
	var req GetAssetRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}

	exists, err := s.server.AssetExists(ctx.Request().Context(), req.ID)
	if err != nil {
		return ctx.JSON(500, map[string]string{"error": err.Error()})
	}

	return ctx.JSON(200, Res{Data: exists})
}

// GetAssetQR renders a QR tag for labeling the physical asset; it encodes
// the asset's owner-lookup URL.
func (s *Server) GetAssetQR(ctx echo.Context) error {
	var req GetAssetRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}

	exists, err := s.server.AssetExists(ctx.Request().Context(), req.ID)
	if err != nil {
		return ctx.JSON(500, map[string]string{"error": err.Error()})
	}
	if !exists {
		return ctx.JSON(404, map[string]string{"error": "asset not found"})
	}

	content := fmt.Sprintf("https://%s/api/v1/assets/%d/owner", ctx.Request().Host, req.ID)
	png, err := qrcode.Encode(content, qrcode.Medium, 256)
	if err != nil {
		return ctx.JSON(500, map[string]string{"error": err.Error()})
	}

	return ctx.Blob(200, "image/png", png)
}

type GetAccountAssetsNumberRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (s *Server) GetAccountAssetsNumber(ctx echo.Context) error {
	var req GetAccountAssetsNumberRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return ctx.JSON(422, map[string]string{"error": err.Error()})
	}
	account, _ := uuid.Parse(req.ID)

	count, err := s.server.OwnedAssetsCount(ctx.Request().Context(), account)
	if err != nil {
		return ctx.JSON(500, map[string]string{"error": err.Error()})
	}

	return ctx.JSON(200, Res{Data: count})
}
