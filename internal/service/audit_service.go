package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dtei-informatika/kegiatan-app/internal/dto"
	"github.com/dtei-informatika/kegiatan-app/internal/repository"
)

// AuditService exposes the read side of the audit trail.
type AuditService interface {
	List(ctx context.Context) ([]dto.AuditLogResponse, error)
}

type auditService struct {
	repo   repository.AuditLogRepository
	logger zerolog.Logger
}

// NewAuditService constructs the audit trail reader.
func NewAuditService(repo repository.AuditLogRepository, logger zerolog.Logger) AuditService {
	return &auditService{
		repo:   repo,
		logger: logger.With().Str("component", "audit_service").Logger(),
	}
}

// List returns every audit entry, newest first.
func (s *auditService) List(ctx context.Context) ([]dto.AuditLogResponse, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AuditLogResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, dto.NewAuditLogResponse(entry))
	}
	return responses, nil
}
