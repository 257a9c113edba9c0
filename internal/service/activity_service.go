package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dtei-informatika/kegiatan-app/internal/dto"
	"github.com/dtei-informatika/kegiatan-app/internal/models"
	"github.com/dtei-informatika/kegiatan-app/internal/observability"
	"github.com/dtei-informatika/kegiatan-app/internal/repository"
	"github.com/dtei-informatika/kegiatan-app/internal/utils"
)

const listCacheKey = "activities:detail"

// ActivityService is the session-gated front door for activity reads and
// writes. Every mutation requires a verified session; the repository pairs it
// with its audit entry atomically.
type ActivityService interface {
	Save(ctx context.Context, session dto.Session, state dto.EditorState, req dto.ActivityRequest) error
	Delete(ctx context.Context, session dto.Session, id string) error
	Get(ctx context.Context, id string) (dto.ActivityRequest, error)
	List(ctx context.Context) ([]dto.ActivityDetailResponse, error)
}

type activityService struct {
	repo      repository.ActivityRepository
	gate      SessionVerifier
	cache     *redis.Client
	cacheTTL  time.Duration
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
	tracer    trace.Tracer
}

// NewActivityService constructs the activity service. The cache client may be
// nil, in which case every listing hits the store.
func NewActivityService(repo repository.ActivityRepository, gate SessionVerifier, cache *redis.Client, cacheTTL time.Duration, validator *validator.Validate, logger zerolog.Logger) ActivityService {
	return &activityService{
		repo:      repo,
		gate:      gate,
		cache:     cache,
		cacheTTL:  cacheTTL,
		validator: validator,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "activity_service").Logger(),
		tracer:    otel.Tracer("github.com/dtei-informatika/kegiatan-app/internal/service/activity"),
	}
}

// Save dispatches on the editor state: create mode inserts a new activity,
// edit mode replaces the row named by the state.
func (s *activityService) Save(ctx context.Context, session dto.Session, state dto.EditorState, req dto.ActivityRequest) error {
	ctx, span := s.tracer.Start(ctx, "activity.save")
	defer span.End()

	if err := s.gate.Verify(session); err != nil {
		span.SetStatus(codes.Error, "session rejected")
		return err
	}

	req = s.sanitizeRequest(req)
	if err := s.validator.Struct(req); err != nil {
		span.SetStatus(codes.Error, "validation failed")
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	activity := models.Activity{
		ID:            req.ID,
		Name:          req.Name,
		Date:          req.Date,
		Location:      req.Location,
		Category:      req.Category,
		ResponsibleID: req.ResponsibleID,
	}

	var (
		err    error
		action string
	)
	switch state.Mode {
	case dto.EditorModeEdit:
		if state.ActivityID == "" {
			span.SetStatus(codes.Error, "editor state missing target")
			return fmt.Errorf("%w: editor state names no activity", ErrValidation)
		}
		action = models.AuditActionUpdate
		span.SetAttributes(attribute.String("activity.id", state.ActivityID))
		err = s.repo.Update(ctx, state.ActivityID, activity)
	default:
		action = models.AuditActionInsert
		span.SetAttributes(attribute.String("activity.id", activity.ID))
		err = s.repo.Create(ctx, &activity)
	}

	if err != nil {
		span.RecordError(err)
		observability.ActivityMutations().WithLabelValues(action, "error").Inc()
		return err
	}

	observability.ActivityMutations().WithLabelValues(action, "success").Inc()
	s.invalidateListing(ctx)
	s.logger.Info().Str("activity_id", activity.ID).Str("action", action).Msg("activity saved")
	return nil
}

func (s *activityService) Delete(ctx context.Context, session dto.Session, id string) error {
	ctx, span := s.tracer.Start(ctx, "activity.delete")
	defer span.End()
	span.SetAttributes(attribute.String("activity.id", id))

	if err := s.gate.Verify(session); err != nil {
		span.SetStatus(codes.Error, "session rejected")
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		span.RecordError(err)
		observability.ActivityMutations().WithLabelValues(models.AuditActionDelete, "error").Inc()
		return err
	}

	observability.ActivityMutations().WithLabelValues(models.AuditActionDelete, "success").Inc()
	s.invalidateListing(ctx)
	s.logger.Info().Str("activity_id", id).Msg("activity deleted")
	return nil
}

// Get loads one activity in form shape, for prefilling the editor.
func (s *activityService) Get(ctx context.Context, id string) (dto.ActivityRequest, error) {
	activity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.ActivityRequest{}, err
	}
	return dto.ActivityRequest{
		ID:            activity.ID,
		Name:          activity.Name,
		Date:          activity.Date,
		Location:      activity.Location,
		Category:      activity.Category,
		ResponsibleID: activity.ResponsibleID,
	}, nil
}

// List returns the detail rows ordered by parsed date descending, then name
// ascending. Rows with malformed dates sort as the earliest possible date.
func (s *activityService) List(ctx context.Context) ([]dto.ActivityDetailResponse, error) {
	start := time.Now()
	defer func() {
		observability.ListingLatency().Observe(time.Since(start).Seconds())
	}()

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, listCacheKey).Result(); err == nil {
			var responses []dto.ActivityDetailResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &responses); unmarshalErr == nil {
				s.logger.Debug().Msg("activity listing cache hit")
				return responses, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn().Err(err).Msg("failed to read listing cache")
		}
	}

	details, err := s.repo.ListDetails(ctx)
	if err != nil {
		return nil, err
	}

	utils.SortActivityDetails(details)

	responses := make([]dto.ActivityDetailResponse, 0, len(details))
	for _, detail := range details {
		parsed, _ := utils.ParseActivityDate(detail.Date)
		responses = append(responses, dto.NewActivityDetailResponse(detail, parsed))
	}

	if s.cache != nil {
		if payload, err := json.Marshal(responses); err == nil {
			if err := s.cache.Set(ctx, listCacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store listing cache")
			}
		}
	}

	return responses, nil
}

func (s *activityService) sanitizeRequest(req dto.ActivityRequest) dto.ActivityRequest {
	req.ID = strings.TrimSpace(req.ID)
	req.Name = strings.TrimSpace(s.sanitizer.Sanitize(req.Name))
	req.Location = strings.TrimSpace(s.sanitizer.Sanitize(req.Location))
	req.Category = strings.TrimSpace(s.sanitizer.Sanitize(req.Category))
	req.Date = strings.TrimSpace(req.Date)
	return req
}

func (s *activityService) invalidateListing(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, listCacheKey).Err(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate listing cache")
	}
}
