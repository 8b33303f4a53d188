package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/bi1101/ielts-science-lms-sub003/config"
	"github.com/bi1101/ielts-science-lms-sub003/internal/event"
	"github.com/bi1101/ielts-science-lms-sub003/internal/model"
	"github.com/bi1101/ielts-science-lms-sub003/internal/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Lesson{},
		&model.Topic{},
		&model.Quiz{},
		&model.ProQuiz{},
		&model.ProQuestion{},
		&model.Question{},
		&model.Submission{},
		&model.Essay{},
		&model.QuizAttempt{},
		&model.Activity{},
		&model.Enrollment{},
		&model.Group{},
		&model.GroupMember{},
		&model.GroupLeader{},
		&model.GroupCourse{},
		&model.QuizStatisticRef{},
		&model.QuizStatistic{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// syncEnv bundles the full synchronization pipeline over one test database.
type syncEnv struct {
	db           *gorm.DB
	cfg          *config.Config
	bus          *event.Bus
	essayRepo    repository.EssayRepository
	attemptRepo  repository.AttemptRepository
	activityRepo repository.ActivityRepository
	courseRepo   repository.CourseRepository
	questionRepo repository.QuestionRepository
	proQuizRepo  repository.ProQuizRepository
	sync         EssaySyncService
	attempts     AttemptService
	progress     ProgressService
}

func newSyncEnv(t *testing.T, cfg *config.Config) *syncEnv {
	t.Helper()
	if cfg == nil {
		cfg = &config.Config{}
	}
	db := setupTestDB(t)
	bus := event.NewBus()

	essayRepo := repository.NewEssayRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	proQuizRepo := repository.NewProQuizRepository(db)
	statRepo := repository.NewStatisticRepository(db)

	progress := NewProgressService(cfg, courseRepo, activityRepo)
	attempts := NewAttemptService(cfg, attemptRepo, courseRepo, proQuizRepo, NewStatisticService(statRepo), progress, bus)
	sync := NewEssaySyncService(essayRepo, questionRepo, proQuizRepo, attempts, NewBandScoreService())

	return &syncEnv{
		db:           db,
		cfg:          cfg,
		bus:          bus,
		essayRepo:    essayRepo,
		attemptRepo:  attemptRepo,
		activityRepo: activityRepo,
		courseRepo:   courseRepo,
		questionRepo: questionRepo,
		proQuizRepo:  proQuizRepo,
		sync:         sync,
		attempts:     attempts,
		progress:     progress,
	}
}

// seedEssayQuiz installs the minimal course/quiz/question chain an essay
// submission resolves against: quiz post 10 backed by pro quiz 11, essay
// question 20 backed by pro question 33.
func seedEssayQuiz(t *testing.T, db *gorm.DB) {
	t.Helper()
	fixtures := []any{
		&model.Course{ID: 1, Title: "IELTS Academic Writing", AuthorID: 100},
		&model.Quiz{ID: 10, CourseID: 1, ProQuizID: 11, Title: "Writing Task 2"},
		&model.ProQuiz{ID: 11, QuizPostID: 10, Title: "Writing Task 2", PassingPercentage: 80},
		&model.ProQuestion{ID: 33, ProQuizID: 11, Title: "Opinion essay", AnswerType: "essay", Points: 9},
		&model.Question{ID: 20, QuizID: 10, Title: "Opinion essay", QuestionType: model.QuestionTypeEssay, Points: 9, ProQuestionID: 33},
		&model.User{ID: 7, DisplayName: "Student Seven", Email: "seven@example.test"},
	}
	for _, f := range fixtures {
		if err := db.Create(f).Error; err != nil {
			t.Fatalf("failed to seed fixture %T: %v", f, err)
		}
	}
}

func writingTaskSubmission() *model.Submission {
	return &model.Submission{
		ID:          42,
		UserID:      7,
		Kind:        model.KindWritingTask,
		Status:      model.SubmissionCompleted,
		ElapsedTime: 1800,
		CourseID:    1,
		QuizID:      10,
		QuestionID:  20,
		EssayRefID:  5,
		Content:     "Some people believe that...",
	}
}
