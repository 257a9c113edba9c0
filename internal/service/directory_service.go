package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dtei-informatika/kegiatan-app/internal/dto"
	"github.com/dtei-informatika/kegiatan-app/internal/repository"
)

// DirectoryService feeds the role and responsible-user pickers.
type DirectoryService interface {
	ListRoles(ctx context.Context) ([]dto.Option, error)
	ListUsers(ctx context.Context) ([]dto.Option, error)
}

type directoryService struct {
	roles  repository.RoleRepository
	users  repository.UserRepository
	logger zerolog.Logger
}

// NewDirectoryService constructs the picker lookup service.
func NewDirectoryService(roles repository.RoleRepository, users repository.UserRepository, logger zerolog.Logger) DirectoryService {
	return &directoryService{
		roles:  roles,
		users:  users,
		logger: logger.With().Str("component", "directory_service").Logger(),
	}
}

func (s *directoryService) ListRoles(ctx context.Context) ([]dto.Option, error) {
	roles, err := s.roles.List(ctx)
	if err != nil {
		return nil, err
	}
	options := make([]dto.Option, 0, len(roles))
	for _, role := range roles {
		options = append(options, dto.Option{ID: role.ID, Name: role.Name})
	}
	return options, nil
}

func (s *directoryService) ListUsers(ctx context.Context) ([]dto.Option, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	options := make([]dto.Option, 0, len(users))
	for _, user := range users {
		options = append(options, dto.Option{ID: user.ID, Name: user.Name})
	}
	return options, nil
}
