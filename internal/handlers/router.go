package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/survey-service/internal/services"
	"github.com/SAP-F-2025/survey-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type HandlerManager struct {
	surveyHandler *SurveyHandler
	adminHandler  *AdminHandler
	exportHandler *ExportHandler
	auth          gin.HandlerFunc
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	authenticator Authenticator,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		surveyHandler: NewSurveyHandler(serviceManager, logger),
		adminHandler:  NewAdminHandler(serviceManager.Questionnaire(), logger),
		exportHandler: NewExportHandler(serviceManager.Export(), logger),
		auth:          AuthMiddleware(authenticator, serviceManager.User(), logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", HealthCheck)

	v1 := router.Group("/api/v1", RequestIDMiddleware(), hm.auth)
	{
		// Respondent routes
		surveys := v1.Group("/surveys")
		{
			surveys.GET("/check", hm.surveyHandler.CheckForQuestionnaire)
			surveys.GET("/:id", hm.surveyHandler.GetQuestionnaire)
			surveys.POST("/:id/choice", hm.surveyHandler.Choose)
			surveys.GET("/:id/progress", hm.surveyHandler.GetProgress)
			surveys.POST("/:id/answers", hm.surveyHandler.SubmitAnswer)
			surveys.GET("/:id/score", hm.surveyHandler.GetScore)
		}

		admin := v1.Group("/admin", AdminMiddleware())
		{
			questionnaires := admin.Group("/questionnaires")
			{
				questionnaires.POST("", hm.adminHandler.CreateQuestionnaire)
				questionnaires.GET("", hm.adminHandler.ListQuestionnaires)
				questionnaires.GET("/:id", hm.adminHandler.GetQuestionnaire)
				questionnaires.POST("/:id/questions", hm.adminHandler.AddQuestion)
				questionnaires.PUT("/:id/active", hm.adminHandler.SetActive)
			}

			admin.GET("/exports/answer-sheets", hm.exportHandler.ExportAnswerSheets)
		}
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "survey-service",
	})
}
