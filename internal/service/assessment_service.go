package service

import (
	"context"
	"image"
	"io"
	"time"

	"go-image-quality/internal/assessor"
	"go-image-quality/internal/loader"
	"go-image-quality/pkg/models"
)

// AssessmentService ties the image sources to the assessment engine and
// publishes lifecycle events.
type AssessmentService interface {
	// AssessFile assesses an image on the local file system.
	AssessFile(ctx context.Context, path string) (*models.AssessmentReport, error)

	// AssessUpload assesses an uploaded image stream. The name
	// identifies the image in the report.
	AssessUpload(ctx context.Context, name string, r io.Reader) (*models.AssessmentReport, error)

	// AssessURL fetches an image over HTTP and assesses it.
	AssessURL(ctx context.Context, imageURL string) (*models.AssessmentReport, error)
}

type assessmentService struct {
	engine    *assessor.Assessor
	files     *loader.FileSource
	fetcher   *loader.HTTPSource
	observers []Observer
}

// NewAssessmentService creates an assessment service.
func NewAssessmentService(engine *assessor.Assessor, files *loader.FileSource, fetcher *loader.HTTPSource, observers ...Observer) AssessmentService {
	return &assessmentService{
		engine:    engine,
		files:     files,
		fetcher:   fetcher,
		observers: observers,
	}
}

func (s *assessmentService) AssessFile(ctx context.Context, path string) (*models.AssessmentReport, error) {
	return s.assess(ctx, path, "file", func() (image.Image, error) {
		return s.files.Load(path)
	})
}

func (s *assessmentService) AssessUpload(ctx context.Context, name string, r io.Reader) (*models.AssessmentReport, error) {
	return s.assess(ctx, name, "upload", func() (image.Image, error) {
		return loader.Decode(r)
	})
}

func (s *assessmentService) AssessURL(ctx context.Context, imageURL string) (*models.AssessmentReport, error) {
	return s.assess(ctx, imageURL, "url", func() (image.Image, error) {
		return s.fetcher.Fetch(ctx, imageURL)
	})
}

func (s *assessmentService) assess(ctx context.Context, name, source string, load func() (image.Image, error)) (*models.AssessmentReport, error) {
	start := time.Now()
	s.notify(AssessmentEvent{
		EventType: AssessmentStarted,
		Timestamp: start,
		Image:     name,
		Source:    source,
	})

	report, err := func() (*models.AssessmentReport, error) {
		img, err := load()
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return s.engine.Assess(img, name)
	}()

	elapsed := time.Since(start)
	if err != nil {
		s.notify(AssessmentEvent{
			EventType:      AssessmentFailed,
			Timestamp:      time.Now(),
			Image:          name,
			Source:         source,
			ProcessingTime: elapsed,
			Err:            err,
		})
		return nil, err
	}

	s.notify(AssessmentEvent{
		EventType:      AssessmentCompleted,
		Timestamp:      time.Now(),
		Image:          name,
		Source:         source,
		ProcessingTime: elapsed,
		OverallScore:   report.Overall.Score,
		OverallQuality: report.Overall.Quality,
	})
	return report, nil
}

func (s *assessmentService) notify(event AssessmentEvent) {
	for _, o := range s.observers {
		o.OnEvent(event)
	}
}
