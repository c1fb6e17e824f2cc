package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/academy-api/internal/dto"
	"github.com/noah-isme/academy-api/internal/models"
	appErrors "github.com/noah-isme/academy-api/pkg/errors"
	"github.com/noah-isme/academy-api/pkg/export"
)

type teacherHomeVisitor interface {
	Visit(ctx context.Context) (models.ScreenState, Window)
	Today() Window
	Location() *time.Location
}

type datasetRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type exportFormat struct {
	renderer    datasetRenderer
	contentType string
}

// ExportResult is a rendered download.
type ExportResult struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ExportService renders today's teacher lessons as downloadable files.
type ExportService struct {
	home      teacherHomeVisitor
	formats   map[string]exportFormat
	validator *validator.Validate
	logger    *zap.Logger
}

// NewExportService constructs an ExportService with the csv, pdf and xlsx renderers.
func NewExportService(home teacherHomeVisitor, validate *validator.Validate, logger *zap.Logger) *ExportService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		home: home,
		formats: map[string]exportFormat{
			"csv":  {renderer: export.NewCSVExporter(), contentType: "text/csv; charset=utf-8"},
			"pdf":  {renderer: export.NewPDFExporter(), contentType: "application/pdf"},
			"xlsx": {renderer: export.NewXLSXExporter("Lessons"), contentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
		},
		validator: validate,
		logger:    logger,
	}
}

// Export runs a teacher screen visit and renders its lessons in the requested format.
func (s *ExportService) Export(ctx context.Context, req dto.ExportRequest) (*ExportResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "format must be one of csv, pdf, xlsx")
	}
	format := s.formats[req.Format]

	state, window := s.home.Visit(ctx)
	if state.Status != models.ScreenReady {
		return nil, RemoteReadError(state.Failure)
	}

	day := window.Start.Format("2006-01-02")
	body, err := format.renderer.Render(LessonDataset(day, state.Lessons, s.home.Location()))
	if err != nil {
		s.logger.Error("lesson export failed", zap.String("format", req.Format), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	return &ExportResult{
		Filename:    fmt.Sprintf("lessons-%s.%s", day, req.Format),
		ContentType: format.contentType,
		Body:        body,
	}, nil
}

// LessonDataset tabulates display lessons with times shown in loc.
func LessonDataset(day string, lessons []models.DisplayLesson, loc *time.Location) export.Dataset {
	data := export.Dataset{
		Title:   "Lessons " + day,
		Headers: []string{"Lesson ID", "Class", "Time", "Starts At", "Ends At"},
		Rows:    make([][]string, 0, len(lessons)),
	}
	for _, lesson := range lessons {
		data.Rows = append(data.Rows, []string{
			lesson.ID,
			lesson.ClassName,
			dto.TimeRange(lesson.Lesson, loc),
			lesson.StartsAt.In(loc).Format(time.RFC3339),
			lesson.EndsAt.In(loc).Format(time.RFC3339),
		})
	}
	return data
}

// RemoteReadError maps a screen failure onto the API error envelope.
func RemoteReadError(failure *models.RemoteReadFailure) *appErrors.Error {
	if failure == nil {
		return appErrors.Clone(appErrors.ErrRemoteReadFailure, "")
	}
	return appErrors.Wrap(failure, appErrors.ErrRemoteReadFailure.Code, appErrors.ErrRemoteReadFailure.Status, failure.Message)
}
