package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/bi1101/ielts-science-lms-sub003/internal/dto"
	"github.com/bi1101/ielts-science-lms-sub003/internal/model"
	"github.com/bi1101/ielts-science-lms-sub003/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// Course-source and enrollment-source selectors for the dashboard query.
const (
	SourceAuthor      = "author"
	SourceGroupLeader = "group"

	EnrollmentCourse = "course"
	EnrollmentGroup  = "group"
)

// DashboardQuery selects what the teacher-dashboard report covers.
type DashboardQuery struct {
	TeacherID         uint
	Sources           []string
	EnrollmentSources []string
	OnlyQuizzes       bool
	UserID            uint
}

// CacheKey is a stable string identity for the query, used by the report
// cache.
func (q DashboardQuery) CacheKey() string {
	return fmt.Sprintf("%d:%s:%s:%t:%d",
		q.TeacherID,
		strings.Join(q.Sources, ","),
		strings.Join(q.EnrollmentSources, ","),
		q.OnlyQuizzes,
		q.UserID,
	)
}

// DashboardService builds the read-only teacher-facing progress report:
// accessible courses, enrolled users, and a per-user step list annotated with
// quiz attempts.
type DashboardService interface {
	BuildReport(ctx context.Context, q DashboardQuery) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	courseRepo     repository.CourseRepository
	enrollmentRepo repository.EnrollmentRepository
	activityRepo   repository.ActivityRepository
	attemptRepo    repository.AttemptRepository
	cache          *repository.ReportCache
}

func NewDashboardService(
	courseRepo repository.CourseRepository,
	enrollmentRepo repository.EnrollmentRepository,
	activityRepo repository.ActivityRepository,
	attemptRepo repository.AttemptRepository,
	cache *repository.ReportCache,
) DashboardService {
	return &dashboardService{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		activityRepo:   activityRepo,
		attemptRepo:    attemptRepo,
		cache:          cache,
	}
}

// stepRef is one entry of a course's ordered step list.
type stepRef struct {
	ID    uint
	Type  string
	Title string
}

func (s *dashboardService) BuildReport(ctx context.Context, q DashboardQuery) (*dto.DashboardResponse, error) {
	if cached, err := s.cache.Get(ctx, q.CacheKey()); err != nil {
		log.Warn().Err(err).Msg("Dashboard cache read failed")
	} else if cached != nil {
		return cached, nil
	}

	courses, err := s.accessibleCourses(q)
	if err != nil {
		return nil, err
	}

	report := &dto.DashboardResponse{Courses: []dto.DashboardCourse{}}
	for _, course := range courses {
		userIDs, err := s.enrolledUserIDs(course.ID, q)
		if err != nil {
			return nil, err
		}
		users, err := s.enrollmentRepo.FindUsersByIDs(userIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load users of course %d: %w", course.ID, err)
		}

		steps, err := s.courseSteps(course.ID, q.OnlyQuizzes)
		if err != nil {
			return nil, err
		}

		courseEntry := dto.DashboardCourse{
			CourseID:    course.ID,
			CourseTitle: course.Title,
			Users:       []dto.DashboardUser{},
		}
		for _, user := range users {
			userEntry, err := s.buildUserProgress(user, course.ID, steps)
			if err != nil {
				return nil, err
			}
			courseEntry.Users = append(courseEntry.Users, userEntry)
		}
		report.Courses = append(report.Courses, courseEntry)
	}

	if err := s.cache.Set(ctx, q.CacheKey(), report); err != nil {
		log.Warn().Err(err).Msg("Dashboard cache write failed")
	}
	return report, nil
}

func (s *dashboardService) accessibleCourses(q DashboardQuery) ([]model.Course, error) {
	sources := q.Sources
	if len(sources) == 0 {
		sources = []string{SourceAuthor, SourceGroupLeader}
	}
	seen := make(map[uint]bool)
	var courses []model.Course
	for _, src := range sources {
		var batch []model.Course
		var err error
		switch src {
		case SourceAuthor:
			batch, err = s.courseRepo.FindByAuthor(q.TeacherID)
		case SourceGroupLeader:
			batch, err = s.courseRepo.FindByGroupLeader(q.TeacherID)
		default:
			log.Warn().Str("source", src).Msg("Unknown dashboard course source, ignoring")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to enumerate %s courses: %w", src, err)
		}
		for _, c := range batch {
			if !seen[c.ID] {
				seen[c.ID] = true
				courses = append(courses, c)
			}
		}
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

func (s *dashboardService) enrolledUserIDs(courseID uint, q DashboardQuery) ([]uint, error) {
	sources := q.EnrollmentSources
	if len(sources) == 0 {
		sources = []string{EnrollmentCourse, EnrollmentGroup}
	}
	seen := make(map[uint]bool)
	var ids []uint
	for _, src := range sources {
		var batch []uint
		var err error
		switch src {
		case EnrollmentCourse:
			batch, err = s.enrollmentRepo.UserIDsByCourse(courseID)
		case EnrollmentGroup:
			batch, err = s.enrollmentRepo.UserIDsByGroupCourse(courseID)
		default:
			log.Warn().Str("source", src).Msg("Unknown enrollment source, ignoring")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to enumerate %s enrollment of course %d: %w", src, courseID, err)
		}
		for _, id := range batch {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	if q.UserID != 0 {
		if seen[q.UserID] {
			return []uint{q.UserID}, nil
		}
		return nil, nil
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// courseSteps flattens the course tree into display order: each lesson, its
// topics, the quizzes under them, then course-level quizzes.
func (s *dashboardService) courseSteps(courseID uint, onlyQuizzes bool) ([]stepRef, error) {
	lessons, err := s.courseRepo.FindLessonsWithTopics(courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load lessons of course %d: %w", courseID, err)
	}
	quizzes, err := s.courseRepo.FindQuizzesByCourse(courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load quizzes of course %d: %w", courseID, err)
	}

	quizzesByLesson := make(map[uint][]model.Quiz)
	quizzesByTopic := make(map[uint][]model.Quiz)
	var globalQuizzes []model.Quiz
	for _, quiz := range quizzes {
		switch {
		case quiz.TopicID != 0:
			quizzesByTopic[quiz.TopicID] = append(quizzesByTopic[quiz.TopicID], quiz)
		case quiz.LessonID != 0:
			quizzesByLesson[quiz.LessonID] = append(quizzesByLesson[quiz.LessonID], quiz)
		default:
			globalQuizzes = append(globalQuizzes, quiz)
		}
	}

	var steps []stepRef
	appendQuiz := func(quiz model.Quiz) {
		steps = append(steps, stepRef{ID: quiz.ID, Type: model.StepQuiz, Title: quiz.Title})
	}
	for _, lesson := range lessons {
		if !onlyQuizzes {
			steps = append(steps, stepRef{ID: lesson.ID, Type: model.StepLesson, Title: lesson.Title})
		}
		for _, topic := range lesson.Topics {
			if !onlyQuizzes {
				steps = append(steps, stepRef{ID: topic.ID, Type: model.StepTopic, Title: topic.Title})
			}
			for _, quiz := range quizzesByTopic[topic.ID] {
				appendQuiz(quiz)
			}
		}
		for _, quiz := range quizzesByLesson[lesson.ID] {
			appendQuiz(quiz)
		}
	}
	for _, quiz := range globalQuizzes {
		appendQuiz(quiz)
	}
	return steps, nil
}

func (s *dashboardService) buildUserProgress(user model.User, courseID uint, steps []stepRef) (dto.DashboardUser, error) {
	entry := dto.DashboardUser{UserID: user.ID, UserName: user.DisplayName, Steps: []dto.DashboardStep{}}

	activity, err := s.activityRepo.FindByUserAndCourse(user.ID, courseID)
	if err != nil {
		return entry, fmt.Errorf("failed to load activity of user %d in course %d: %w", user.ID, courseID, err)
	}
	type stepKey struct {
		Type string
		ID   uint
	}
	byStep := make(map[stepKey][]model.Activity)
	for _, row := range activity {
		k := stepKey{Type: row.StepType, ID: row.StepID}
		byStep[k] = append(byStep[k], row)
	}

	for _, step := range steps {
		stepEntry := dto.DashboardStep{
			StepID:   step.ID,
			StepType: step.Type,
			Title:    step.Title,
			Status:   ResolveStepStatus(byStep[stepKey{Type: step.Type, ID: step.ID}]),
		}
		if step.Type == model.StepQuiz {
			attempts, err := s.attemptRepo.FindAllByUserAndQuiz(user.ID, step.ID)
			if err != nil {
				return entry, fmt.Errorf("failed to load attempts of user %d for quiz %d: %w", user.ID, step.ID, err)
			}
			for _, attempt := range attempts {
				var summary dto.AttemptSummary
				if err := copier.Copy(&summary, &attempt); err != nil {
					log.Warn().Err(err).Uint("attempt_id", attempt.ID).Msg("Failed to copy attempt summary")
					continue
				}
				stepEntry.Attempts = append(stepEntry.Attempts, summary)
			}
		}
		entry.Steps = append(entry.Steps, stepEntry)
	}
	return entry, nil
}
