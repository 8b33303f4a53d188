package admin

import (
	"net/http"
	"strconv"

	"github.com/bi1101/ielts-science-lms-sub003/internal/dto"
	"github.com/bi1101/ielts-science-lms-sub003/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// QuestionController exposes the question/quiz metadata bridge.
type QuestionController struct {
	bridge service.QuestionBridgeService
}

func NewQuestionController(bridge service.QuestionBridgeService) *QuestionController {
	return &QuestionController{bridge: bridge}
}

// CreateQuestion godoc
// @Summary Create a question with its quiz-engine row
// @Description Create an LMS question post and the linked quiz-engine question in one call
// @Tags questions
// @Accept json
// @Produce json
// @Param question body dto.QuestionCreateRequest true "Question data"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions [post]
func (ctrl *QuestionController) CreateQuestion(c *gin.Context) {
	var req dto.QuestionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind QuestionCreateRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	question, err := ctrl.bridge.CreateQuestion(req)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create question")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create question: " + err.Error()})
		return
	}

	var resp dto.QuestionResponse
	copier.Copy(&resp, question)
	c.JSON(http.StatusCreated, resp)
}

// UpdateQuestion godoc
// @Summary Update a question
// @Description Update a question post, its quiz-engine row, and the external-platform linkage fields
// @Tags questions
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param question body dto.QuestionUpdateRequest true "Fields to update"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id} [patch]
func (ctrl *QuestionController) UpdateQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid question ID format"})
		return
	}
	var req dto.QuestionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	question, err := ctrl.bridge.UpdateQuestion(uint(id), req)
	if err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("Failed to update question")
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Question not found or update failed"})
		return
	}

	var resp dto.QuestionResponse
	copier.Copy(&resp, question)
	c.JSON(http.StatusOK, resp)
}
