package workflow

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/vagas/internal/logger"
	"github.com/spigell/vagas/internal/resume"
	"github.com/spigell/vagas/internal/vagas"
)

// Created is the outcome of a successful résumé creation.
type Created struct {
	Resume *resume.Resume `json:"curriculo"`
	Jobs   *vagas.Jobs    `json:"vagas"`
	// RecommendationsErr is set when the best-effort recommendation fetch failed.
	RecommendationsErr error `json:"-"`
}

// CreateResume validates the draft and, when valid, creates the résumé. On an
// invalid draft the error set is returned and no request is made. Fetching
// recommendations never turns a successful creation into a failure.
func (s *Service) CreateResume(ctx context.Context, d *resume.Draft, withJobs bool) (*Created, resume.Errors, error) {
	doc, errs := s.validate(d)
	if !errs.Valid() {
		return nil, errs, nil
	}

	created, err := s.api.CreateResume(ctx, doc)
	if err != nil {
		return nil, errs, err
	}

	s.logger.Info("résumé created", zap.String(logger.FieldResumeID, created.ID))
	s.remember(ctx, created.ID)

	out := &Created{Resume: created, Jobs: &vagas.Jobs{}}
	if withJobs && created.ID != "" {
		out.Jobs, out.RecommendationsErr = s.recommendations(ctx, created.ID)
	}

	return out, errs, nil
}

// UpdateResume validates the draft and replaces the stored résumé.
func (s *Service) UpdateResume(ctx context.Context, id string, d *resume.Draft) (*resume.Resume, resume.Errors, error) {
	doc, errs := s.validate(d)
	if !errs.Valid() {
		return nil, errs, nil
	}

	doc.ID = id
	updated, err := s.api.UpdateResume(ctx, id, doc)
	if err != nil {
		return nil, errs, err
	}

	s.logger.Info("résumé updated", zap.String(logger.FieldResumeID, id))
	s.remember(ctx, id)

	return updated, errs, nil
}

// DeleteResume deletes the résumé and drops it from the local cache.
func (s *Service) DeleteResume(ctx context.Context, id string) error {
	if err := s.api.DeleteResume(ctx, id); err != nil {
		return err
	}

	s.logger.Info("résumé deleted", zap.String(logger.FieldResumeID, id))
	s.forget(ctx, id)

	return nil
}

// Overview is a résumé together with the jobs recommended for it.
type Overview struct {
	Resume             *resume.Resume `json:"curriculo"`
	Jobs               *vagas.Jobs    `json:"vagas"`
	RecommendationsErr error          `json:"-"`
}

// ResumeOverview loads a résumé and its recommended jobs concurrently. Only a
// failure to load the résumé fails the overview.
func (s *Service) ResumeOverview(ctx context.Context, id string) (*Overview, error) {
	out := &Overview{Jobs: &vagas.Jobs{}}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r, err := s.api.GetResume(gctx, id)
		if err != nil {
			return err
		}
		out.Resume = r
		return nil
	})

	g.Go(func() error {
		// Uses the parent context: a résumé failure must not be reported as a
		// recommendations failure too.
		out.Jobs, out.RecommendationsErr = s.recommendations(ctx, id)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.remember(ctx, id)

	return out, nil
}

// CachedResumes resolves every cached id concurrently. Ids that fail to load
// are skipped; ids the backend no longer knows are dropped from the cache.
func (s *Service) CachedResumes(ctx context.Context) ([]*resume.Resume, error) {
	if s.cache == nil {
		return nil, nil
	}

	ids, err := s.cache.List(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*resume.Resume, len(ids))

	var g errgroup.Group
	g.SetLimit(8)
	for i, id := range ids {
		g.Go(func() error {
			r, err := s.api.GetResume(ctx, id)
			if err != nil {
				s.logger.Warn("skipping cached résumé", zap.String(logger.FieldResumeID, id), zap.Error(err))
				if vagas.CategoryOf(err) == vagas.CategoryNotFound {
					s.forget(ctx, id)
				}
				return nil
			}
			results[i] = r
			return nil
		})
	}
	_ = g.Wait()

	resumes := make([]*resume.Resume, 0, len(results))
	for _, r := range results {
		if r != nil {
			resumes = append(resumes, r)
		}
	}

	return resumes, nil
}
