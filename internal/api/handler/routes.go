package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Register wires all routes onto the router. Static segments (hello,
// pdf, qr) take priority over the :id parameter, so the reserved names
// never shadow a record lookup.
func (h *Handler) Register(r *gin.Engine) {
	rec := r.Group("/reclamations")
	{
		rec.POST("", h.CreateReclamation)
		rec.GET("", h.GetAllReclamations)
		rec.GET("/hello", h.Hello)
		rec.GET("/pdf", h.DownloadAllReclamationsPdf)
		rec.GET("/qr/:filename", h.ServeQrCodeImage)
		rec.GET("/:id", h.GetReclamationByID)
		rec.PUT("/:id", h.UpdateReclamation)
		rec.DELETE("/:id", h.DeleteReclamation)
		rec.GET("/:id/qr", h.GenerateQRCode)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
