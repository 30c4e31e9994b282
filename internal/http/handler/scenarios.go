package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coffeechat.app/api/internal/scenario"
)

type ScenarioHandler struct{}

func NewScenarioHandler() *ScenarioHandler {
	return &ScenarioHandler{}
}

func (h *ScenarioHandler) List(c *gin.Context) {
	infos := make([]scenario.Info, 0, len(scenario.All))
	for _, s := range scenario.All {
		infos = append(infos, s.Info())
	}
	c.JSON(http.StatusOK, gin.H{"scenarios": infos})
}
