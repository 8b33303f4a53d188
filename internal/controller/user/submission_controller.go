package user

import (
	"net/http"
	"strconv"

	"github.com/bi1101/ielts-science-lms-sub003/internal/dto"
	"github.com/bi1101/ielts-science-lms-sub003/internal/event"
	"github.com/bi1101/ielts-science-lms-sub003/internal/model"
	"github.com/bi1101/ielts-science-lms-sub003/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// SubmissionController is the REST surface the external IELTS platform writes
// submissions through. Synchronization runs through the event bus; whether it
// succeeds or not, the caller's write is acknowledged.
type SubmissionController struct {
	submissionRepo repository.SubmissionRepository
	bus            *event.Bus
}

func NewSubmissionController(submissionRepo repository.SubmissionRepository, bus *event.Bus) *SubmissionController {
	return &SubmissionController{submissionRepo: submissionRepo, bus: bus}
}

// CreateSubmission godoc
// @Summary Create an external submission
// @Description Record a writing/speaking submission and trigger essay synchronization
// @Tags submissions
// @Accept json
// @Produce json
// @Param submission body dto.SubmissionCreateRequest true "Submission data"
// @Success 201 {object} dto.SubmissionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /submissions [post]
func (ctrl *SubmissionController) CreateSubmission(c *gin.Context) {
	var req dto.SubmissionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SubmissionCreateRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	var submission model.Submission
	if err := copier.Copy(&submission, &req); err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to map submission"})
		return
	}
	if err := ctrl.submissionRepo.Create(&submission); err != nil {
		log.Error().Err(err).Msg("Failed to create submission")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create submission"})
		return
	}

	ctrl.bus.Publish(c.Request.Context(), event.SubmissionCreated, &submission)

	var resp dto.SubmissionResponse
	copier.Copy(&resp, &submission)
	c.JSON(http.StatusCreated, resp)
}

// UpdateSubmission godoc
// @Summary Update an external submission
// @Description Apply a status transition (completion or grading) to a submission
// @Tags submissions
// @Accept json
// @Produce json
// @Param id path int true "Submission ID"
// @Param submission body dto.SubmissionUpdateRequest true "Status transition"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Router /submissions/{id} [patch]
func (ctrl *SubmissionController) UpdateSubmission(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid submission ID format"})
		return
	}
	var req dto.SubmissionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	submission, err := ctrl.submissionRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Submission not found"})
		return
	}

	submission.Status = req.Status
	if req.BandScore != nil {
		submission.BandScore = req.BandScore
	}
	if req.Content != nil {
		submission.Content = *req.Content
	}
	if err := ctrl.submissionRepo.Update(submission); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("Failed to update submission")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to update submission"})
		return
	}

	ctrl.bus.Publish(c.Request.Context(), event.SubmissionUpdated, submission)

	var resp dto.SubmissionResponse
	copier.Copy(&resp, submission)
	c.JSON(http.StatusOK, resp)
}

// GetSubmission godoc
// @Summary Get a submission
// @Tags submissions
// @Produce json
// @Param id path int true "Submission ID"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Router /submissions/{id} [get]
func (ctrl *SubmissionController) GetSubmission(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid submission ID format"})
		return
	}
	submission, err := ctrl.submissionRepo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Submission not found"})
		return
	}
	var resp dto.SubmissionResponse
	copier.Copy(&resp, submission)
	c.JSON(http.StatusOK, resp)
}
