// Package ui serves the browser demo page. It shares only the sentiment
// usecase with the JSON API.
package ui

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/affanSheikh15/NLP-Text-Classification/internal/domain/entity"
	"github.com/affanSheikh15/NLP-Text-Classification/internal/usecase"
)

//go:embed templates/*.html
var templateFS embed.FS

// PreviewLength is the number of characters of the input echoed on the card
const PreviewLength = 100

// EmptyTextHint is shown instead of a result when the input is blank
const EmptyTextHint = "Please enter some text to analyze."

// Examples are offered under the input box
var Examples = []string{
	"I absolutely love this product! It exceeded all my expectations and the quality is outstanding.",
	"This is the worst experience I've ever had. Completely disappointed and frustrated.",
	"The movie was okay. Nothing special but not terrible either.",
	"Thank you so much for your help! You made my day!",
	"I'm very unhappy with the service. This is unacceptable.",
}

type labelStyle struct {
	Emoji string
	Color string
}

var labelStyles = map[entity.Label]labelStyle{
	entity.LabelPositive: {Emoji: "😊", Color: "#4CAF50"},
	entity.LabelNegative: {Emoji: "😞", Color: "#F44336"},
	entity.LabelNeutral:  {Emoji: "😐", Color: "#FFA500"},
}

// Card is the rendered analysis of one text
type Card struct {
	Label   string
	Emoji   string
	Color   string
	Percent float64
	Preview string
}

// PercentText formats the confidence with two decimals
func (c Card) PercentText() string {
	return fmt.Sprintf("%.2f%%", c.Percent)
}

// PageData is the template model of the demo page
type PageData struct {
	ModelID  string
	Examples []string
	Text     string
	Hint     string
	Error    string
	Card     *Card
}

// Handler handles the demo UI requests
type Handler struct {
	sentimentUC usecase.SentimentUsecase
	modelID     string
	logger      *zap.Logger
}

// NewHandler creates a new UI handler
func NewHandler(sentimentUC usecase.SentimentUsecase, modelID string, logger *zap.Logger) *Handler {
	return &Handler{
		sentimentUC: sentimentUC,
		modelID:     modelID,
		logger:      logger,
	}
}

// Templates parses the embedded page templates
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

// Register mounts the UI routes and templates on r
func (h *Handler) Register(r *gin.Engine) {
	r.SetHTMLTemplate(Templates())
	r.GET("/", h.Index)
	r.POST("/", h.Analyze)
	r.GET("/api/result", h.Result)
}

// Index handles GET /
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", h.page(""))
}

// Analyze handles POST / from the page form
func (h *Handler) Analyze(c *gin.Context) {
	text := c.PostForm("text")
	data := h.page(text)

	if strings.TrimSpace(text) == "" {
		data.Hint = EmptyTextHint
		c.HTML(http.StatusOK, "index.html", data)
		return
	}

	result, err := h.sentimentUC.Analyze(c.Request.Context(), text)
	if err != nil {
		h.logger.Error("Demo analysis failed", zap.Error(err))
		data.Error = err.Error()
		c.HTML(http.StatusOK, "index.html", data)
		return
	}

	data.Card = NewCard(result)
	c.HTML(http.StatusOK, "index.html", data)
}

// Result handles GET /api/result, the compact shape used by interactive clients
func (h *Handler) Result(c *gin.Context) {
	result, err := h.sentimentUC.Analyze(c.Request.Context(), c.Query("text"))
	switch {
	case errors.Is(err, usecase.ErrEmptyInput):
		c.JSON(http.StatusOK, gin.H{"Error": "Text cannot be empty."})
	case err != nil:
		c.JSON(http.StatusOK, gin.H{"Error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{
			"Sentiment":  result.Label,
			"Confidence": result.Confidence,
		})
	}
}

func (h *Handler) page(text string) PageData {
	return PageData{
		ModelID:  h.modelID,
		Examples: Examples,
		Text:     text,
	}
}

// NewCard builds the result card of an analysis
func NewCard(r *entity.SentimentResult) *Card {
	style, ok := labelStyles[r.Label]
	if !ok {
		style = labelStyles[entity.LabelNeutral]
	}
	return &Card{
		Label:   string(r.Label),
		Emoji:   style.Emoji,
		Color:   style.Color,
		Percent: r.Confidence * 100,
		Preview: Preview(r.Text, PreviewLength),
	}
}

// Preview shortens text to n characters and marks the cut with an ellipsis
func Preview(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "..."
}
