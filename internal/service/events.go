package service

import (
	"time"

	"github.com/sirupsen/logrus"

	"go-image-quality/internal/logger"
	"go-image-quality/pkg/models"
)

// EventType represents the type of assessment event
type EventType string

const (
	// AssessmentStarted when an assessment begins
	AssessmentStarted EventType = "assessment_started"
	// AssessmentCompleted when an assessment finishes successfully
	AssessmentCompleted EventType = "assessment_completed"
	// AssessmentFailed when an assessment fails
	AssessmentFailed EventType = "assessment_failed"
)

// AssessmentEvent describes one lifecycle event of an assessment.
type AssessmentEvent struct {
	EventType      EventType
	Timestamp      time.Time
	Image          string
	Source         string
	ProcessingTime time.Duration
	OverallScore   float64
	OverallQuality models.Tier
	Err            error
}

// Observer receives assessment lifecycle events.
type Observer interface {
	OnEvent(event AssessmentEvent)
}

// LoggingObserver logs assessment events through the shared logger.
type LoggingObserver struct{}

// NewLoggingObserver creates a new logging observer
func NewLoggingObserver() Observer {
	return &LoggingObserver{}
}

// OnEvent handles assessment events by logging them
func (o *LoggingObserver) OnEvent(event AssessmentEvent) {
	fields := logrus.Fields{
		"event_type": event.EventType,
		"image":      event.Image,
		"source":     event.Source,
	}

	switch event.EventType {
	case AssessmentStarted:
		logger.WithFields(fields).Debug("Image assessment started")
	case AssessmentCompleted:
		fields["processing_time_ms"] = event.ProcessingTime.Milliseconds()
		fields["overall_score"] = event.OverallScore
		fields["overall_quality"] = event.OverallQuality.String()
		logger.WithFields(fields).Info("Image assessment completed")
	case AssessmentFailed:
		fields["processing_time_ms"] = event.ProcessingTime.Milliseconds()
		logger.WithFields(fields).WithError(event.Err).Error("Image assessment failed")
	}
}
