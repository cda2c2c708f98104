package service

import (
	"context"
	"io"
	"time"

	"github.com/marchocode/clash-merger/internal/logger"
	"github.com/marchocode/clash-merger/models"
	"github.com/rs/zerolog"
)

// ConverterServiceWrapper decorates a ConverterService with extra behavior
// such as logging.
type ConverterServiceWrapper interface {
	Wrap(ConverterService) ConverterService
}

// ConverterLoggingService logs the outcome of every call. Calls carrying a
// context use the request-scoped logger when there is one; per-stage timings
// of a conversion are logged by Convert itself.
type ConverterLoggingService struct {
	inner  ConverterService
	logger *logger.Logger
}

func NewConverterLoggingService(logger *logger.Logger) ConverterServiceWrapper {
	return &ConverterLoggingService{
		logger: logger,
	}
}

func (s *ConverterLoggingService) Wrap(inner ConverterService) ConverterService {
	s.inner = inner
	return s
}

func (s *ConverterLoggingService) Fetch(ctx context.Context, rawURL string) (*models.Document, error) {
	start := time.Now()
	doc, err := s.inner.Fetch(ctx, rawURL)

	log := contextLogger(ctx, s.logger)
	if err != nil {
		log.Err(err).Dur("duration", time.Since(start)).Msg("subscription fetch failed")
		return nil, err
	}
	log.Debug().Int("keys", doc.Len()).Dur("duration", time.Since(start)).Msg("subscription fetched")

	return doc, nil
}

func (s *ConverterLoggingService) Merge(doc *models.Document, overridePath string) (*models.Document, error) {
	merged, err := s.inner.Merge(doc, overridePath)
	if err != nil {
		s.logger.Err(err).Str("override_path", overridePath).Msg("override merge failed")
		return nil, err
	}
	s.logger.Debug().Str("override_path", overridePath).Int("keys", merged.Len()).Msg("override merged")

	return merged, nil
}

func (s *ConverterLoggingService) Serialize(doc *models.Document, w io.Writer) error {
	if err := s.inner.Serialize(doc, w); err != nil {
		s.logger.Err(err).Msg("serialization failed")
		return err
	}
	return nil
}

func (s *ConverterLoggingService) Convert(ctx context.Context, w io.Writer) error {
	start := time.Now()
	err := s.inner.Convert(ctx, w)

	log := contextLogger(ctx, s.logger)
	if err != nil {
		log.Err(err).Dur("duration", time.Since(start)).Msg("conversion failed")
		return err
	}
	log.Info().Dur("duration", time.Since(start)).Msg("subscription converted")

	return nil
}

// contextLogger returns the logger attached to ctx, or fallback when ctx
// carries none.
func contextLogger(ctx context.Context, fallback *logger.Logger) *logger.Logger {
	if l := logger.FromContext(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return fallback
}
