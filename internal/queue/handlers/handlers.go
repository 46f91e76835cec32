package handlers

import (
	"github.com/provreg/provreg/internal/usecase"
)

type Handlers struct {
	usecase usecase.Usecase
	mailer  usecase.EmailProvider

	notifyFrom string
	notifyTo   string
}

func NewHandlers(uc usecase.Usecase, mailer usecase.EmailProvider, notifyFrom, notifyTo string) *Handlers {
	return &Handlers{
		usecase:    uc,
		mailer:     mailer,
		notifyFrom: notifyFrom,
		notifyTo:   notifyTo,
	}
}
