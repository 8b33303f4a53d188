package teacher

import (
	"net/http"
	"strconv"

	"github.com/bi1101/ielts-science-lms-sub003/internal/dto"
	"github.com/bi1101/ielts-science-lms-sub003/internal/middleware"
	"github.com/bi1101/ielts-science-lms-sub003/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// DashboardController serves the read-only teacher report.
type DashboardController struct {
	dashboard service.DashboardService
}

func NewDashboardController(dashboard service.DashboardService) *DashboardController {
	return &DashboardController{dashboard: dashboard}
}

// GetQuizAttempts godoc
// @Summary Teacher dashboard quiz-attempts report
// @Description Per-course, per-user step progress with quiz attempt annotations for the authenticated teacher
// @Tags teacher-dashboard
// @Produce json
// @Param sources[] query []string false "Course sources: author, group"
// @Param enrollment_sources[] query []string false "Enrollment sources: course, group"
// @Param only_quizzes query bool false "Restrict steps to quizzes"
// @Param user_id query int false "Restrict to a single student"
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthenticated"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /ldlms/teacher-dashboard/quiz-attempts [get]
func (ctrl *DashboardController) GetQuizAttempts(c *gin.Context) {
	teacherID := middleware.UserID(c)
	if teacherID == 0 {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authentication required"})
		return
	}

	q := service.DashboardQuery{
		TeacherID:         teacherID,
		Sources:           c.QueryArray("sources[]"),
		EnrollmentSources: c.QueryArray("enrollment_sources[]"),
	}
	if only, err := strconv.ParseBool(c.DefaultQuery("only_quizzes", "false")); err == nil {
		q.OnlyQuizzes = only
	}
	if userIDStr := c.Query("user_id"); userIDStr != "" {
		userID, err := strconv.ParseUint(userIDStr, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid user_id format"})
			return
		}
		q.UserID = uint(userID)
	}

	report, err := ctrl.dashboard.BuildReport(c.Request.Context(), q)
	if err != nil {
		log.Error().Err(err).Uint("teacher_id", teacherID).Msg("Failed to build dashboard report")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to build report"})
		return
	}
	c.JSON(http.StatusOK, report)
}
