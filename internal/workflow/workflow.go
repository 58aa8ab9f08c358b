// Package workflow composes validation, API calls and local state into the
// operations the commands expose.
package workflow

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/vagas/internal/logger"
	"github.com/spigell/vagas/internal/metrics"
	"github.com/spigell/vagas/internal/resume"
	"github.com/spigell/vagas/internal/store"
	"github.com/spigell/vagas/internal/vagas"
)

// ErrAlreadyApplied is returned when the local history already records an
// application to the job with the same résumé.
var ErrAlreadyApplied = errors.New("already applied to this job with this résumé")

// API is the part of the backend client the workflows need.
type API interface {
	CreateResume(ctx context.Context, r *resume.Resume) (*resume.Resume, error)
	GetResume(ctx context.Context, id string) (*resume.Resume, error)
	UpdateResume(ctx context.Context, id string, r *resume.Resume) (*resume.Resume, error)
	DeleteResume(ctx context.Context, id string) error
	RecommendedJobs(ctx context.Context, id string) (*vagas.Jobs, error)
	Apply(ctx context.Context, jobID, resumeID string) (*vagas.Application, error)
}

// History records applications locally.
type History interface {
	Has(jobID, resumeID string) (bool, error)
	Append(items ...*store.Application) error
}

type Service struct {
	api       API
	validator *resume.Validator
	cache     store.IDCache
	history   History
	logger    *zap.Logger
	now       func() time.Time
}

// New builds the service. cache and history are optional.
func New(api API, validator *resume.Validator, cache store.IDCache, history History, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		api:       api,
		validator: validator,
		cache:     cache,
		history:   history,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *Service) Validator() *resume.Validator {
	return s.validator
}

// validate runs the validator and counts failures per field.
func (s *Service) validate(d *resume.Draft) (*resume.Resume, resume.Errors) {
	r, errs := s.validator.Submit(d)
	for _, field := range errs.Fields() {
		metrics.ValidationFailures.WithLabelValues(field).Inc()
	}
	return r, errs
}

func (s *Service) remember(ctx context.Context, id string) {
	if s.cache == nil || id == "" {
		return
	}
	if err := s.cache.Add(ctx, id); err != nil {
		s.logger.Warn("caching résumé id failed", zap.String(logger.FieldResumeID, id), zap.Error(err))
	}
}

func (s *Service) forget(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Remove(ctx, id); err != nil {
		s.logger.Warn("removing résumé id from cache failed", zap.String(logger.FieldResumeID, id), zap.Error(err))
	}
}

// recommendations is a best-effort fetch: failures degrade to an empty list.
func (s *Service) recommendations(ctx context.Context, id string) (*vagas.Jobs, error) {
	jobs, err := s.api.RecommendedJobs(ctx, id)
	if err != nil {
		s.logger.Warn("loading recommended jobs failed, showing none",
			zap.String(logger.FieldResumeID, id),
			zap.Error(err),
		)
		return &vagas.Jobs{}, err
	}
	return jobs, nil
}
