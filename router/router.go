package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/matcha-kasir-bot/middlewares"
	"github.com/yeremiapane/matcha-kasir-bot/services"
	"github.com/yeremiapane/matcha-kasir-bot/store"
	"github.com/yeremiapane/matcha-kasir-bot/utils"
)

// SetupRouter menyusun surface HTTP operasional: health check dan laporan
// penjualan read-only. Tidak ada endpoint tulis — semua mutasi lewat chat.
func SetupRouter(ledger *store.Ledger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())

	r.GET("/health", func(c *gin.Context) {
		utils.RespondJSON(c, http.StatusOK, "ok", gin.H{
			"transactions": ledger.Len(),
		})
	})

	api := r.Group("/api/v1")
	{
		api.GET("/report", func(c *gin.Context) {
			summary := services.Summarize(ledger.Snapshot())
			utils.RespondJSON(c, http.StatusOK, "sales report", summary)
		})
	}

	return r
}
