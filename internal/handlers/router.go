package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/loop-labs/quiz-service/internal/services"
	"github.com/loop-labs/quiz-service/internal/utils"
)

type HandlerManager struct {
	quizHandler    *QuizHandler
	gradingHandler *GradingHandler
}

func NewHandlerManager(
	quizService services.QuizService,
	gradingService services.GradingService,
	importExportService services.ImportExportService,
	validator *utils.Validator,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		quizHandler:    NewQuizHandler(quizService, importExportService, logger),
		gradingHandler: NewGradingHandler(gradingService, quizService, validator, logger),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.GET("/quiz", hm.quizHandler.GetQuiz)
		api.POST("/grade", hm.gradingHandler.GradeQuiz)
		api.GET("/catalog/export", hm.quizHandler.ExportCatalog)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "quiz-service",
			"endpoints": gin.H{
				"quiz":  "/api/quiz",
				"grade": "/api/grade",
			},
		})
	})
}
