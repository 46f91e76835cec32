package server

import (
	"github.com/labstack/echo/v4"

	"github.com/provreg/provreg/internal/usecase"
)

type ListAuditLogsRequest struct {
	Skip    int     `query:"skip"`
	Limit   int     `query:"limit" validate:"omitempty,gte=1,lte=100"`
	AssetID *uint32 `query:"asset_id"`
	Action  string  `query:"action"`
}

func (s *Server) ListAuditLogs(ctx echo.Context) error {
	var req ListAuditLogsRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return ctx.JSON(422, map[string]string{"error": err.Error()})
	}
	if req.Limit == 0 {
		req.Limit = 20
	}

	logs, total, err := s.server.ListAuditLogs(ctx.Request().Context(), usecase.ListAuditLogsOption{
		Skip:    req.Skip,
		Limit:   req.Limit,
		AssetID: req.AssetID,
		Action:  req.Action,
	})
	if err != nil {
		return errJSON(ctx, err)
	}

	return ctx.JSON(200, Res{
		Data: logs,
		Meta: &Meta{Total: total, Skip: req.Skip, Limit: req.Limit},
	})
}
