package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/weiawesome/pxid/internal/domain"
	"github.com/weiawesome/pxid/pkg/log"
	"github.com/weiawesome/pxid/pkg/prefixid"
)

// ErrBatchTooLarge is returned when a request asks for more ids than the
// service allows in one call.
var ErrBatchTooLarge = errors.New("batch too large")

type idService struct {
	gen      *prefixid.Generator
	maxBatch int
}

// NewIDService creates an IDService backed by gen. maxBatch bounds
// Generate and ParseBatch.
func NewIDService(gen *prefixid.Generator, maxBatch int) IDService {
	if maxBatch < 1 || maxBatch > prefixid.MaxBatch {
		maxBatch = prefixid.MaxBatch
	}
	return &idService{gen: gen, maxBatch: maxBatch}
}

func (s *idService) Generate(ctx context.Context, req *domain.GenerateRequest) (*domain.GenerateResponse, error) {
	l := log.Ctx(ctx)

	count := req.Count
	if count == 0 {
		count = 1
	}
	if count > s.maxBatch {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrBatchTooLarge, count, s.maxBatch)
	}

	ids, err := s.gen.GenerateBatch(req.Prefix, count)
	if err != nil {
		return nil, err
	}

	l.Debug().
		Str(log.FieldPrefix, req.Prefix).
		Int(log.FieldCount, len(ids)).
		Msg("ids generated")

	return &domain.GenerateResponse{
		Profile: s.gen.Profile().Name,
		IDs:     ids,
	}, nil
}

func (s *idService) Parse(ctx context.Context, id string) (*domain.ParsedID, error) {
	parsed, err := s.gen.Parse(id)
	if err != nil {
		return nil, err
	}
	ts := parsed.Time()
	return &domain.ParsedID{
		ID:          id,
		Prefix:      parsed.Prefix,
		UUID:        parsed.UUIDString(),
		Timestamp:   ts.UTC(),
		TimestampMs: ts.UnixMilli(),
	}, nil
}

func (s *idService) ParseBatch(ctx context.Context, ids []string) ([]domain.ParsedID, error) {
	if len(ids) > s.maxBatch {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrBatchTooLarge, len(ids), s.maxBatch)
	}
	out := make([]domain.ParsedID, 0, len(ids))
	for _, id := range ids {
		p, err := s.Parse(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

func (s *idService) Validate(ctx context.Context, id, prefix string) *domain.ValidateResponse {
	resp := &domain.ValidateResponse{ID: id, Valid: true}
	if err := s.gen.Check(id, prefix); err != nil {
		resp.Valid = false
		resp.Reason = err.Error()

		l := log.Ctx(ctx)
		l.Debug().
			Str(log.FieldID, id).
			Str(log.FieldReason, resp.Reason).
			Msg("id rejected")
	}
	return resp
}
