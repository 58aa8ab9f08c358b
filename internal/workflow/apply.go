package workflow

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spigell/vagas/internal/logger"
	"github.com/spigell/vagas/internal/store"
	"github.com/spigell/vagas/internal/vagas"
)

// Apply submits the résumé to the job and records it in the local history.
// Unless force is set, an application already present in the history is
// refused before any request is sent.
func (s *Service) Apply(ctx context.Context, job *vagas.Job, resumeID string, force bool) (*vagas.Application, error) {
	if job == nil || job.ID == "" {
		return nil, fmt.Errorf("job is required")
	}

	if resumeID == "" {
		return nil, fmt.Errorf("résumé id is required")
	}

	log := logger.WithFields(s.logger, logger.StringFields(
		logger.StringField{Key: logger.FieldJobID, Value: job.ID},
		logger.StringField{Key: logger.FieldResumeID, Value: resumeID},
	)...)

	if s.history != nil && !force {
		applied, err := s.history.Has(job.ID, resumeID)
		if err != nil {
			return nil, err
		}
		if applied {
			return nil, ErrAlreadyApplied
		}
	}

	app, err := s.api.Apply(ctx, job.ID, resumeID)
	if err != nil {
		return nil, err
	}

	log.Info("application sent", zap.String("title", job.Title()))

	if s.history != nil {
		err := s.history.Append(&store.Application{
			JobID:     job.ID,
			ResumeID:  resumeID,
			Title:     job.Title(),
			Company:   job.Company,
			AppliedAt: s.now().UTC(),
		})
		if err != nil {
			log.Warn("recording application in history failed", zap.Error(err))
		}
	}

	return app, nil
}
