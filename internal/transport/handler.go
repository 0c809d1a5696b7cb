package transport

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"go-image-quality/internal/assessor"
	"go-image-quality/internal/config"
	apperrors "go-image-quality/internal/errors"
	"go-image-quality/internal/logger"
	"go-image-quality/internal/service"
	"go-image-quality/pkg/models"
)

//go:embed index.html
var indexHTML string

// allowedUploadExtensions matches the upload form's accepted formats.
// RAW files are only accepted through the CLI, where a RAW decoder can
// be configured.
var allowedUploadExtensions = map[string]struct{}{
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {},
	".bmp": {}, ".tiff": {}, ".webp": {},
}

// AssessURLRequest is the JSON body for URL-based assessment.
type AssessURLRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// AssessResponse wraps the structured report together with its text
// rendering.
type AssessResponse struct {
	Success bool                     `json:"success"`
	Results *models.AssessmentReport `json:"results"`
	Report  string                   `json:"report"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// NewHandler wires the HTTP routes: the upload page, the assessment
// endpoint (multipart upload or JSON URL body) and the health check.
func NewHandler(svc service.AssessmentService, cfg *config.Config) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), requestSizeLimiter(cfg.MaxUploadSize))

	r.GET("/", indexPage)
	r.GET("/health", healthCheck)
	r.POST("/assess", assessImage(svc, cfg))

	return r
}

func indexPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "available",
		"version": "1.0.0",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

func assessImage(svc service.AssessmentService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
		defer cancel()

		logger.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"ip":     c.ClientIP(),
		}).Info("Processing assessment request")

		contentType := c.GetHeader("Content-Type")
		if strings.HasPrefix(contentType, "multipart/form-data") {
			assessUpload(ctx, c, svc)
			return
		}
		assessByURL(ctx, c, svc)
	}
}

func assessUpload(ctx context.Context, c *gin.Context, svc service.AssessmentService) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "no file provided", err)
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if _, ok := allowedUploadExtensions[ext]; !ok {
		respondError(c, http.StatusBadRequest, "invalid file type",
			apperrors.NewValidationError(fmt.Sprintf("unsupported upload extension %q", ext), nil))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "could not read upload", err)
		return
	}
	defer f.Close()

	report, err := svc.AssessUpload(ctx, fileHeader.Filename, f)
	if err != nil {
		respondError(c, determineStatusCode(err), "assessment failed", err)
		return
	}
	respondReport(c, report)
}

func assessByURL(ctx context.Context, c *gin.Context, svc service.AssessmentService) {
	var req AssessURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request format", err)
		return
	}
	if err := validateImageURL(req.URL); err != nil {
		respondError(c, apperrors.GetStatusCode(err), "invalid image URL", err)
		return
	}

	report, err := svc.AssessURL(ctx, req.URL)
	if err != nil {
		respondError(c, determineStatusCode(err), "assessment failed", err)
		return
	}
	respondReport(c, report)
}

func respondReport(c *gin.Context, report *models.AssessmentReport) {
	c.JSON(http.StatusOK, AssessResponse{
		Success: true,
		Results: report,
		Report:  assessor.RenderText(report),
	})
}

func validateImageURL(imageURL string) error {
	parsedURL, err := url.Parse(imageURL)
	if err != nil {
		return apperrors.NewValidationError("invalid URL format", err)
	}
	if parsedURL.Host == "" {
		return apperrors.NewValidationError("URL must have a valid host", nil)
	}
	return nil
}

func requestSizeLimiter(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

func determineStatusCode(err error) int {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, code int, message string, err error) {
	logger.WithError(err).WithFields(logrus.Fields{
		"status_code": code,
		"message":     message,
		"path":        c.Request.URL.Path,
		"method":      c.Request.Method,
		"ip":          c.ClientIP(),
	}).Error("Request failed")

	c.AbortWithStatusJSON(code, ErrorResponse{
		Error:   http.StatusText(code),
		Message: fmt.Sprintf("%s: %v", message, err),
	})
}
