package delivery

import (
	"net/http"

	"textwiz-backend/internal/gentext/usecase"

	"github.com/gin-gonic/gin"
)

// GentextHandler handles the generative text API endpoints
type GentextHandler struct {
	gentextUsecase usecase.GentextUsecase
}

func NewGentextHandler(gentextUsecase usecase.GentextUsecase) *GentextHandler {
	return &GentextHandler{
		gentextUsecase: gentextUsecase,
	}
}

type generateRequest struct {
	Text string `json:"text"`
}

// POST /api/v1/openai/summary
// Success body is the bare summary string, JSON-encoded.
func (h *GentextHandler) Summarize(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	summary, err := h.gentextUsecase.Summarize(c.Request.Context(), req.Text)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// POST /api/v1/openai/paragraph
func (h *GentextHandler) GenerateParagraph(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(err)
		return
	}

	generated, err := h.gentextUsecase.GenerateParagraph(c.Request.Context(), req.Text)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"generatedText": generated})
}
