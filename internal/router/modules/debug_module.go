package modules

import (
	"expvar"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-user-admin/internal/container"
)

// DebugModule serves the liveness probe and, when enabled in config, the
// expvar metrics endpoint.
type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	rg.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg := container.GetConfig(); cfg != nil && cfg.DebugMetricsEnabled {
		rg.GET("/debug/vars", gin.WrapH(expvar.Handler()))
	}
}
