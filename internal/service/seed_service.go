package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dtei-informatika/kegiatan-app/internal/models"
	"github.com/dtei-informatika/kegiatan-app/internal/repository"
)

// SeedService fills an empty store with the department's initial dataset.
// Each table is seeded only when empty, so running it on every startup is
// safe. Activities go through the activity repository so the audit trail
// records their creation, the same way it would for any other insert.
type SeedService interface {
	Run(ctx context.Context) error
}

type seedService struct {
	roles      repository.RoleRepository
	users      repository.UserRepository
	activities repository.ActivityRepository
	logger     zerolog.Logger
}

// NewSeedService constructs the initial dataset seeder.
func NewSeedService(roles repository.RoleRepository, users repository.UserRepository, activities repository.ActivityRepository, logger zerolog.Logger) SeedService {
	return &seedService{
		roles:      roles,
		users:      users,
		activities: activities,
		logger:     logger.With().Str("component", "seed_service").Logger(),
	}
}

func (s *seedService) Run(ctx context.Context) error {
	if err := s.seedRoles(ctx); err != nil {
		return err
	}
	if err := s.seedUsers(ctx); err != nil {
		return err
	}
	return s.seedActivities(ctx)
}

func (s *seedService) seedRoles(ctx context.Context) error {
	total, err := s.roles.Count(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	roles := []models.Role{
		{ID: 1, Name: "Mahasiswa"},
		{ID: 2, Name: "Dosen"},
		{ID: 3, Name: "Staff"},
	}
	if err := s.roles.CreateBatch(ctx, roles); err != nil {
		return err
	}
	s.logger.Info().Int("count", len(roles)).Msg("roles seeded")
	return nil
}

func (s *seedService) seedUsers(ctx context.Context) error {
	total, err := s.users.Count(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	users := []models.User{
		{ID: 101, Name: "Paul Fajar", RoleID: intPtr(1), ExternalID: "2025", Username: "Paul_mhs", Password: "PAULPASS"},
		{ID: 102, Name: "Dr. Zhafier", RoleID: intPtr(2), ExternalID: "705", Username: "Zhafier_dsn", Password: "ZHAFPASS"},
		{ID: 103, Name: "Vijaypal Singh", RoleID: intPtr(3), ExternalID: "2252", Username: "Jay_staff", Password: "JAYPASS"},
	}
	for i := range users {
		if err := s.users.Create(ctx, &users[i]); err != nil {
			return err
		}
	}
	s.logger.Info().Int("count", len(users)).Msg("users seeded")
	return nil
}

func (s *seedService) seedActivities(ctx context.Context) error {
	total, err := s.activities.Count(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	activities := []models.Activity{
		{ID: "K001", Name: "Seminar AI", Date: "10-05-2025", Location: "Aula FT", Category: "Seminar", ResponsibleID: intPtr(101)},
		{ID: "K002", Name: "Praktikum IoT", Date: "15-05-2025", Location: "Lab Jaringan Komputer", Category: "Praktikum", ResponsibleID: intPtr(102)},
		{ID: "K003", Name: "Rapat Dosen Bulanan", Date: "20-05-2025", Location: "Ruang Dosen", Category: "Rapat Dosen", ResponsibleID: intPtr(103)},
	}
	for i := range activities {
		if err := s.activities.Create(ctx, &activities[i]); err != nil {
			return err
		}
	}
	s.logger.Info().Int("count", len(activities)).Msg("activities seeded")
	return nil
}

func intPtr(v int) *int {
	return &v
}
