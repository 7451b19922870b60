package controller

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cvrag/internal/domain"
	"cvrag/models"
)

// Answerer is the single boundary the HTTP layer needs from the core.
type Answerer interface {
	AnswerQuestion(ctx context.Context, question string) domain.QueryResult
}

// QueryController handles the HTTP requests for the question-answering API.
// It is a thin adapter: all business logic lives in the pipeline.
type QueryController struct {
	pipeline Answerer
}

func NewQueryController(pipeline Answerer) *QueryController {
	return &QueryController{pipeline: pipeline}
}

// Query is the Gin handler for POST /api/v1/query.
func (c *QueryController) Query(ctx *gin.Context) {
	var req models.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.Error(gin.H{}, "Invalid request body: "+err.Error()))
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		ctx.JSON(http.StatusOK, models.Error(gin.H{}, "Query cannot be empty"))
		return
	}

	result := c.pipeline.AnswerQuestion(ctx.Request.Context(), req.Query)
	data := models.AnswerData{Question: result.Question, Answer: result.Answer}

	if !result.Success {
		log.Printf("CONTROLLER: Error details: %s", result.ErrorDetails)
		ctx.JSON(http.StatusOK, models.Error(data, result.Answer))
		return
	}
	ctx.JSON(http.StatusOK, models.Success(data, "Answer generated successfully"))
}

// Health is the Gin handler for GET /health.
func (c *QueryController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "CV RAG API",
		"version": "1.0.0",
	})
}
