package insights

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	extractor *Extractor
	narrator  *Narrator
}

// NewHandler builds the gin handler set. narrator may be nil, in which case
// the narrative endpoint reports unavailability.
func NewHandler(extractor *Extractor, narrator *Narrator) *Handler {
	return &Handler{extractor: extractor, narrator: narrator}
}

// GetSummary returns the full insight summary for the population.
func (h *Handler) GetSummary(c *gin.Context) {
	if h.extractor == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Extractor not initialized"})
		return
	}
	c.JSON(http.StatusOK, h.extractor.Summarize())
}

// GetNarrative returns an LLM-written analysis of the population's state.
func (h *Handler) GetNarrative(c *gin.Context) {
	if h.extractor == nil || h.narrator == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Narrator not initialized"})
		return
	}
	summary := h.extractor.Summarize()
	narrative, err := h.narrator.Narrate(c.Request.Context(), summary)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	summary.Narrative = narrative
	c.JSON(http.StatusOK, summary)
}
