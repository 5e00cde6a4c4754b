package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/loop-labs/quiz-service/internal/models"
	"github.com/loop-labs/quiz-service/internal/services"
	"github.com/loop-labs/quiz-service/internal/utils"
)

type QuizHandler struct {
	BaseHandler
	quizService         services.QuizService
	importExportService services.ImportExportService
}

// QuizResponse wraps the served question list.
type QuizResponse struct {
	Questions []models.Question `json:"questions"`
}

func NewQuizHandler(
	quizService services.QuizService,
	importExportService services.ImportExportService,
	logger utils.Logger,
) *QuizHandler {
	return &QuizHandler{
		BaseHandler:         NewBaseHandler(logger),
		quizService:         quizService,
		importExportService: importExportService,
	}
}

// GetQuiz serves the public question set
// @Summary Get quiz questions
// @Description Returns the answer-redacted question set; with shuffle=true and a session_id the ordering is the deterministic per-session projection
// @Tags quiz
// @Produce json
// @Param shuffle query bool false "Apply the per-session shuffle"
// @Param session_id query string false "Opaque session identifier"
// @Success 200 {object} QuizResponse
// @Router /api/quiz [get]
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	sessionID := strings.TrimSpace(c.Query("session_id"))
	shuffle := c.Query("shuffle") == "true"

	h.LogRequest(c, "Serving quiz", "session_id", sessionID, "shuffle", shuffle)

	questions, err := h.quizService.GetQuestions(c.Request.Context(), sessionID, shuffle)
	if err != nil {
		h.RespondWithError(c, http.StatusInternalServerError, "Failed to load questions", err)
		return
	}

	c.JSON(http.StatusOK, QuizResponse{Questions: questions})
}

// ExportCatalog streams the full catalog as an XLSX workbook
// @Summary Export catalog
// @Description Exports the question catalog, answers included, for authoring
// @Tags catalog
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Router /api/catalog/export [get]
func (h *QuizHandler) ExportCatalog(c *gin.Context) {
	h.LogRequest(c, "Exporting catalog")

	// The export carries correct answers and is expected to sit behind
	// operator-level routing.
	data, err := h.importExportService.ExportCatalogToExcel(c.Request.Context(), h.quizService.Catalog())
	if err != nil {
		h.RespondWithError(c, http.StatusInternalServerError, "Failed to export catalog", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="quiz-catalog.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
