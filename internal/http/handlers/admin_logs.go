package handlers

import (
	"net/http"
	"strings"

	"shuttle/internal/domain/models"
	"shuttle/internal/repositories"

	"github.com/gin-gonic/gin"
)

// AdminLogs lists auth events newest-first, optionally filtered by kind.
// The filter applies before the 100-row cut.
func AdminLogs(c *gin.Context) {
	eventFilter := strings.TrimSpace(c.Query("event"))

	logs, err := repositories.AuthLogRepository{}.List(eventFilter, 100)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load logs: %v", err)
		return
	}

	eventOptions := make([]gin.H, 0, len(models.EventChoices))
	for _, choice := range models.EventChoices {
		eventOptions = append(eventOptions, gin.H{
			"name":     choice.Name,
			"label":    choice.Label,
			"selected": choice.Name == eventFilter,
		})
	}

	c.HTML(http.StatusOK, "admin_logs.html", gin.H{
		"logs":          logs,
		"event_options": eventOptions,
	})
}
