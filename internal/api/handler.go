package api

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"study-assistant/internal/config"
	"study-assistant/internal/models"
	"study-assistant/internal/parser"
	"study-assistant/internal/summary"
)

const statusMessage = "Study notes ML service running (rich summary + question generation)"

type SummaryService interface {
	Summarize(ctx context.Context, text string) (*models.SummaryResult, error)
	SummarizerAvailable() bool
}

type QuestionService interface {
	Generate(ctx context.Context, text string, num int) ([]models.QuestionItem, error)
	GeneratorAvailable() bool
}

type Handler struct {
	summaries        SummaryService
	questions        QuestionService
	defaultQuestions int
	maxUploadBytes   int64
}

func NewHandler(summaries SummaryService, questions QuestionService, cfg *config.Config) *Handler {
	return &Handler{
		summaries:        summaries,
		questions:        questions,
		defaultQuestions: cfg.Quiz.DefaultQuestions,
		maxUploadBytes:   cfg.Server.MaxUploadMB << 20,
	}
}

func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Status:            statusMessage,
		Summarizer:        h.summaries.SummarizerAvailable(),
		QuestionGenerator: h.questions.GeneratorAvailable(),
	})
}

func (h *Handler) Summarize(c *gin.Context) {
	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload: " + err.Error()})
		return
	}

	res, err := h.summaries.Summarize(c.Request.Context(), req.Text)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if req.Format == formatHTML {
		html, err := summary.RenderHTML(res.Summary)
		if err != nil {
			log.Error().Err(err).Msg("Error rendering summary")
		} else {
			res.SummaryHTML = html
		}
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) GenerateQuestions(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON payload: " + err.Error()})
		return
	}
	num := h.defaultQuestions
	if req.NumQuestions != nil {
		num = *req.NumQuestions
	}

	questions, err := h.questions.Generate(c.Request.Context(), req.Text, num)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if questions == nil {
		questions = []models.QuestionItem{}
	}
	c.JSON(http.StatusOK, QuestionResponse{Questions: questions})
}

// Upload extracts the text of an uploaded document and summarizes it
func (h *Handler) Upload(c *gin.Context) {
	if c.Request.ContentLength > h.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	file, err := c.FormFile("file")
	if err != nil {
		// chunked bodies have no length up front and only fail while reading
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !slices.Contains(parser.SupportedExtensions, ext) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported file type for text extraction"})
		return
	}

	dir, err := os.MkdirTemp("", "upload-*")
	if err != nil {
		h.handleError(c, err)
		return
	}
	defer os.RemoveAll(dir)

	dst := filepath.Join(dir, "document"+ext)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		h.handleError(c, err)
		return
	}
	log.Info().Str("file", file.Filename).Int64("size", file.Size).Msg("Upload received")

	text, err := parser.ExtractText(dst)
	if err != nil {
		h.handleError(c, err)
		return
	}

	res, err := h.summaries.Summarize(c.Request.Context(), text)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, UploadResponse{Text: text, Title: res.Title, Summary: res.Summary})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, summary.ErrEmptyText):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text is empty"})
	case errors.Is(err, parser.ErrUnsupportedFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported file type for text extraction"})
	case errors.Is(err, parser.ErrEmptyDocument):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No text found in document"})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
