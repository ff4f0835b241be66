package handlers

import (
	"net/http"
	"strconv"

	"github.com/SAP-F-2025/survey-service/internal/services"
	"github.com/SAP-F-2025/survey-service/internal/utils"
	"github.com/gin-gonic/gin"
)

// AdminHandler serves questionnaire authoring
type AdminHandler struct {
	BaseHandler
	questionnaires services.QuestionnaireService
}

func NewAdminHandler(questionnaires services.QuestionnaireService, logger utils.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler:    NewBaseHandler(logger),
		questionnaires: questionnaires,
	}
}

// CreateQuestionnaire creates a questionnaire with its questions
// @Router /admin/questionnaires [post]
func (h *AdminHandler) CreateQuestionnaire(c *gin.Context) {
	var req services.CreateQuestionnaireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err, err.Error())
		return
	}

	questionnaire, err := h.questionnaires.Create(c.Request.Context(), getUserID(c), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogInfo(c, "Questionnaire created", "questionnaire_id", questionnaire.ID)
	h.RespondWithSuccess(c, http.StatusCreated, "Questionnaire created", questionnaire)
}

// ListQuestionnaires lists questionnaires with filtering and paging
// @Router /admin/questionnaires [get]
func (h *AdminHandler) ListQuestionnaires(c *gin.Context) {
	filters := services.ListFilters{
		Search:    c.Query("search"),
		Limit:     parseIntQuery(c, "limit", 0),
		Offset:    parseIntQuery(c, "offset", 0),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
	if active, err := strconv.ParseBool(c.Query("active")); err == nil {
		filters.Active = &active
	}
	if createdBy := c.Query("created_by"); createdBy != "" {
		filters.CreatedBy = &createdBy
	}

	resp, err := h.questionnaires.List(c.Request.Context(), filters)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetQuestionnaire returns a questionnaire with questions and correct options
// @Router /admin/questionnaires/{id} [get]
func (h *AdminHandler) GetQuestionnaire(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		return
	}

	questionnaire, err := h.questionnaires.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, questionnaire)
}

// AddQuestion appends a question to an existing questionnaire
// @Router /admin/questionnaires/{id}/questions [post]
func (h *AdminHandler) AddQuestion(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var req services.QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err, err.Error())
		return
	}

	question, err := h.questionnaires.AddQuestion(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusCreated, "Question added", question)
}

// SetActive shows or hides a questionnaire from respondents
// @Router /admin/questionnaires/{id}/active [put]
func (h *AdminHandler) SetActive(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var req services.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Active == nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err, "active is required")
		return
	}

	if err := h.questionnaires.SetActive(c.Request.Context(), id, *req.Active); err != nil {
		h.handleServiceError(c, err)
		return
	}
	h.RespondWithSuccess(c, http.StatusOK, "Questionnaire updated", gin.H{"id": id, "active": *req.Active})
}
