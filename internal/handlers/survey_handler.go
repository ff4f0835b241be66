package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/survey-service/internal/models"
	"github.com/SAP-F-2025/survey-service/internal/services"
	"github.com/SAP-F-2025/survey-service/internal/utils"
	"github.com/gin-gonic/gin"
)

// SurveyHandler serves the respondent side: discovery, choice, answering
type SurveyHandler struct {
	BaseHandler
	services services.ServiceManager
}

func NewSurveyHandler(serviceManager services.ServiceManager, logger utils.Logger) *SurveyHandler {
	return &SurveyHandler{
		BaseHandler: NewBaseHandler(logger),
		services:    serviceManager,
	}
}

type choiceBody struct {
	Choice models.SurveyChoice `json:"choice"`
}

type answerBody struct {
	QuestionID     uint `json:"question_id"`
	ChosenOptionID uint `json:"chosen_option_id"`
}

// CheckForQuestionnaire returns the questionnaire to offer the caller, if any
// @Router /surveys/check [get]
func (h *SurveyHandler) CheckForQuestionnaire(c *gin.Context) {
	questionnaire, err := h.services.Availability().CheckForQuestionnaire(c.Request.Context(), getUserID(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if questionnaire == nil {
		c.JSON(http.StatusOK, gin.H{"available": false})
		return
	}

	resp, err := h.services.SurveyChoice().Get(c.Request.Context(), questionnaire.ID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": true, "questionnaire": resp})
}

// GetQuestionnaire returns the introduction shown before the choice
// @Router /surveys/{id} [get]
func (h *SurveyHandler) GetQuestionnaire(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		return
	}

	resp, err := h.services.SurveyChoice().Get(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Choose records "now", "later" or "decline"
// @Router /surveys/{id}/choice [post]
func (h *SurveyHandler) Choose(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var body choiceBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err, err.Error())
		return
	}

	resp, err := h.services.SurveyChoice().Choose(c.Request.Context(), getUserID(c), &services.ChoiceRequest{
		QuestionnaireID: id,
		Choice:          body.Choice,
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetProgress returns status and the next question for the caller
// @Router /surveys/{id}/progress [get]
func (h *SurveyHandler) GetProgress(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		return
	}

	resp, err := h.services.Progress().Progress(c.Request.Context(), id, getUserID(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SubmitAnswer records one answer and returns the updated progress
// @Router /surveys/{id}/answers [post]
func (h *SurveyHandler) SubmitAnswer(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var body answerBody
	if err := c.ShouldBindJSON(&body); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err, err.Error())
		return
	}

	resp, err := h.services.Answer().SubmitAnswer(c.Request.Context(), getUserID(c), &services.SubmitAnswerRequest{
		QuestionnaireID: id,
		QuestionID:      body.QuestionID,
		ChosenOptionID:  body.ChosenOptionID,
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogInfo(c, "Answer recorded", "questionnaire_id", id, "status", resp.Progress.StatusLabel)
	c.JSON(http.StatusCreated, resp)
}

// GetScore returns the caller's score on the questionnaire
// @Router /surveys/{id}/score [get]
func (h *SurveyHandler) GetScore(c *gin.Context) {
	id := parseIDParam(c, "id")
	if id == 0 {
		return
	}

	resp, err := h.services.Scoring().ScoreForUser(c.Request.Context(), id, getUserID(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
