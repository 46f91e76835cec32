package server

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/provreg/provreg/internal/usecase"
)

type Meta struct {
	Total int `json:"total"`
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

type Res struct {
	Data    interface{} `json:"data"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// errStatus maps the registry error kinds onto HTTP statuses.
func errStatus(err error) int {
	switch {
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return 404
	case errors.Is(err, usecase.ErrNotFound):
		return 404
	case errors.Is(err, usecase.ErrAlreadyExists):
		return 409
	case errors.Is(err, usecase.ErrNotAuthorized):
		return 403
	}
	return 500
}

func errJSON(ctx echo.Context, err error) error {
	return ctx.JSON(errStatus(err), map[string]string{"error": err.Error()})
}
