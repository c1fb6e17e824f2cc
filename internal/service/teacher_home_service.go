package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/academy-api/internal/models"
)

type classLister interface {
	List(ctx context.Context) ([]models.Class, error)
}

type lessonLister interface {
	List(ctx context.Context, filter models.LessonFilter) ([]models.Lesson, error)
}

// TeacherHomeServiceParams groups constructor dependencies.
type TeacherHomeServiceParams struct {
	Classes  classLister
	Lessons  lessonLister
	Metrics  *MetricsService
	Logger   *zap.Logger
	Location *time.Location
}

// TeacherHomeService runs the teacher home screen's fetch sequence.
type TeacherHomeService struct {
	classes  classLister
	lessons  lessonLister
	metrics  *MetricsService
	logger   *zap.Logger
	location *time.Location
	now      func() time.Time
}

// NewTeacherHomeService constructs a TeacherHomeService.
func NewTeacherHomeService(params TeacherHomeServiceParams) *TeacherHomeService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	loc := params.Location
	if loc == nil {
		loc = time.Local
	}
	return &TeacherHomeService{
		classes:  params.Classes,
		lessons:  params.Lessons,
		metrics:  params.Metrics,
		logger:   logger,
		location: loc,
		now:      time.Now,
	}
}

// Location is the academy timezone used for the day window and time labels.
func (s *TeacherHomeService) Location() *time.Location {
	return s.location
}

// Today returns the current local day window.
func (s *TeacherHomeService) Today() Window {
	return DayWindow(s.now().In(s.location))
}

// Activate performs one screen visit: loading, then ready or error.
func (s *TeacherHomeService) Activate(ctx context.Context) models.ScreenState {
	state, _ := s.Visit(ctx)
	return state
}

// Visit is Activate that also reports the day window the lessons were read for.
// The window is zero when the class read failed.
//
// Classes are read first; a failure there skips the lesson read. A lesson read
// failure discards the classes already read, so an error state never carries data.
func (s *TeacherHomeService) Visit(ctx context.Context) (models.ScreenState, Window) {
	state := models.Loading()
	s.logger.Debug("teacher screen activated", zap.String("status", string(state.Status)))

	classes, err := s.readClasses(ctx)
	if err != nil {
		return s.finish(models.Failed(models.NewRemoteReadFailure(models.CollectionClass, err))), Window{}
	}

	window := s.Today()
	lessons, err := s.readLessons(ctx, window)
	if err != nil {
		return s.finish(models.Failed(models.NewRemoteReadFailure(models.CollectionLesson, err))), window
	}

	return s.finish(models.Ready(classes, JoinLessons(lessons, classes))), window
}

func (s *TeacherHomeService) readClasses(ctx context.Context) ([]models.Class, error) {
	start := time.Now()
	classes, err := s.classes.List(ctx)
	s.metrics.ObserveGatewayRead(models.CollectionClass, err, time.Since(start))
	return classes, err
}

func (s *TeacherHomeService) readLessons(ctx context.Context, window Window) ([]models.Lesson, error) {
	start := time.Now()
	lessons, err := s.lessons.List(ctx, models.LessonFilter{StartsFrom: window.Start, StartsBefore: window.End})
	s.metrics.ObserveGatewayRead(models.CollectionLesson, err, time.Since(start))
	if err != nil {
		return nil, err
	}

	inWindow := make([]models.Lesson, 0, len(lessons))
	for _, lesson := range lessons {
		if window.Contains(lesson.StartsAt) {
			inWindow = append(inWindow, lesson)
			continue
		}
		s.logger.Warn("gateway returned lesson outside day window",
			zap.String("lesson_id", lesson.ID),
			zap.Time("starts_at", lesson.StartsAt))
	}
	return inWindow, nil
}

func (s *TeacherHomeService) finish(state models.ScreenState) models.ScreenState {
	s.metrics.RecordScreenState(models.TabTeacher, state.Status)
	switch state.Status {
	case models.ScreenError:
		s.logger.Warn("teacher screen failed",
			zap.String("collection", state.Failure.Collection),
			zap.String("message", state.Failure.Message))
	default:
		s.logger.Info("teacher screen ready",
			zap.Int("classes", len(state.Classes)),
			zap.Int("lessons", len(state.Lessons)))
	}
	return state
}
