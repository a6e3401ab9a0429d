package inbound

import (
	"context"

	"github.com/shandysiswandi/mailbite/internal/relay/usecase"
)

type uc interface {
	Submit(ctx context.Context, in usecase.SubmitInput) (*usecase.SubmitOutput, error)
	Status(ctx context.Context) *usecase.StatusOutput
	Health(ctx context.Context) *usecase.HealthOutput
	VerifyMail(ctx context.Context) error
}
