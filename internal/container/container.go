package container

import (
	"fmt"
	"net/http"

	"go-image-quality/internal/assessor"
	"go-image-quality/internal/config"
	"go-image-quality/internal/loader"
	"go-image-quality/internal/service"
	"go-image-quality/internal/transport"
)

// Container holds all application dependencies
type Container struct {
	config            *config.Config
	engine            *assessor.Assessor
	fileSource        *loader.FileSource
	httpSource        *loader.HTTPSource
	assessmentService service.AssessmentService
	handler           http.Handler
}

// NewContainer creates a new dependency injection container
func NewContainer() (*Container, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Threshold and weight validation happens here, before any
	// request is served.
	engine, err := assessor.NewDefault()
	if err != nil {
		return nil, err
	}

	fileSource := loader.NewFileSource(nil)
	httpSource := loader.NewHTTPSource(cfg.ImageFetchTimeout)
	assessmentService := service.NewAssessmentService(
		engine, fileSource, httpSource, service.NewLoggingObserver())
	handler := transport.NewHandler(assessmentService, cfg)

	return &Container{
		config:            cfg,
		engine:            engine,
		fileSource:        fileSource,
		httpSource:        httpSource,
		assessmentService: assessmentService,
		handler:           handler,
	}, nil
}

// Handler returns the HTTP handler
func (c *Container) Handler() http.Handler {
	return c.handler
}

// Config returns the configuration
func (c *Container) Config() *config.Config {
	return c.config
}

// AssessmentService returns the assessment service
func (c *Container) AssessmentService() service.AssessmentService {
	return c.assessmentService
}
