package interview

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Prepwise/internal/apperr"
	"github.com/lshigami/Prepwise/internal/controller"
	"github.com/lshigami/Prepwise/internal/dto"
	"github.com/lshigami/Prepwise/internal/service"
	"github.com/rs/zerolog/log"
)

type InterviewController struct {
	interviewService service.InterviewService
	analyticsService service.AnalyticsService
}

func NewInterviewController(is service.InterviewService, as service.AnalyticsService) *InterviewController {
	return &InterviewController{
		interviewService: is,
		analyticsService: as,
	}
}

// StartInterview godoc
// @Summary Start a new mock interview
// @Description Generates the question list for the given role/experience and returns the first question.
// @Tags Interview
// @Accept json
// @Produce json
// @Param request body dto.StartInterviewRequest true "Role, experience level and question count"
// @Success 201 {object} dto.StartInterviewResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid role, experience or question count"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid user identity"
// @Failure 503 {object} dto.ErrorResponse "Question generation service unavailable"
// @Router /interview/start [post]
func (c *InterviewController) StartInterview(ctx *gin.Context) {
	var req dto.StartInterviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	userID := controller.UserID(ctx)
	resp, err := c.interviewService.CreateInterview(ctx.Request.Context(), userID, req)
	if err != nil {
		respondError(ctx, err, "Failed to start interview")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetNextQuestion godoc
// @Summary Get the next unanswered question
// @Description Returns the lowest-ordered unanswered question, or the finished summary once all questions are answered.
// @Tags Interview
// @Produce json
// @Param id path int true "Interview ID"
// @Success 200 {object} dto.NextQuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid interview ID"
// @Failure 403 {object} dto.ErrorResponse "Interview belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Router /interview/{id}/question [get]
func (c *InterviewController) GetNextQuestion(ctx *gin.Context) {
	interviewID, ok := parseID(ctx)
	if !ok {
		return
	}

	resp, err := c.interviewService.NextQuestion(ctx.Request.Context(), controller.UserID(ctx), interviewID)
	if err != nil {
		respondError(ctx, err, "Failed to fetch next question")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitAnswer godoc
// @Summary Submit an answer for evaluation
// @Description Records the answer with its AI evaluation and returns the next question or the final summary.
// @Tags Interview
// @Accept json
// @Produce json
// @Param id path int true "Interview ID"
// @Param request body dto.SubmitAnswerRequest true "Question id and answer text"
// @Success 200 {object} dto.SubmitAnswerResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 403 {object} dto.ErrorResponse "Interview belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Interview or question not found"
// @Failure 409 {object} dto.ErrorResponse "Question already answered"
// @Failure 503 {object} dto.ErrorResponse "Evaluation service unavailable"
// @Router /interview/{id}/answer [post]
func (c *InterviewController) SubmitAnswer(ctx *gin.Context) {
	interviewID, ok := parseID(ctx)
	if !ok {
		return
	}

	var req dto.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.interviewService.SubmitAnswer(ctx.Request.Context(), controller.UserID(ctx), interviewID, req)
	if err != nil {
		respondError(ctx, err, "Failed to submit answer")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetAnalytics godoc
// @Summary Aggregate statistics over completed interviews
// @Tags Analytics
// @Produce json
// @Success 200 {object} dto.AnalyticsResponse
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid user identity"
// @Router /interview/analytics [get]
func (c *InterviewController) GetAnalytics(ctx *gin.Context) {
	resp, err := c.analyticsService.Analytics(controller.UserID(ctx))
	if err != nil {
		respondError(ctx, err, "Failed to compute analytics")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetHistory godoc
// @Summary List the user's interviews, newest first
// @Tags Analytics
// @Produce json
// @Success 200 {array} dto.HistoryItemDTO
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid user identity"
// @Router /interview/ai-history [get]
func (c *InterviewController) GetHistory(ctx *gin.Context) {
	resp, err := c.analyticsService.History(controller.UserID(ctx))
	if err != nil {
		respondError(ctx, err, "Failed to fetch history")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

func parseID(ctx *gin.Context) (uint, bool) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid interview ID format"})
		return 0, false
	}
	return uint(id), true
}

// respondError maps application error kinds to HTTP statuses. Unknown errors
// stay opaque 500s.
func respondError(ctx *gin.Context, err error, fallbackMsg string) {
	status := http.StatusInternalServerError
	message := fallbackMsg

	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		status = http.StatusBadRequest
		message = err.Error()
	case apperr.KindUnauthorized:
		status = http.StatusUnauthorized
		message = err.Error()
	case apperr.KindForbidden:
		status = http.StatusForbidden
		message = err.Error()
	case apperr.KindNotFound:
		status = http.StatusNotFound
		message = err.Error()
	case apperr.KindConflict:
		status = http.StatusConflict
		message = err.Error()
	case apperr.KindUnavailable:
		status = http.StatusServiceUnavailable
		message = err.Error()
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Unhandled service error")
	}

	ctx.JSON(status, dto.ErrorResponse{Message: message})
}
