package service

import (
	"context"

	"github.com/weiawesome/pxid/internal/domain"
)

// IDService defines the id business logic behind the HTTP handler and CLI.
type IDService interface {
	Generate(ctx context.Context, req *domain.GenerateRequest) (*domain.GenerateResponse, error)
	Parse(ctx context.Context, id string) (*domain.ParsedID, error)
	ParseBatch(ctx context.Context, ids []string) ([]domain.ParsedID, error)
	// Validate never fails; the reason is empty for valid ids.
	Validate(ctx context.Context, id, prefix string) *domain.ValidateResponse
}
