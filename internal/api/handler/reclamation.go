package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"reclamations/backend/internal/models"
	"reclamations/backend/internal/pdf"
	"reclamations/backend/internal/qrcode"
	"reclamations/backend/internal/reclamation"
)

// pathID parses the :id path parameter. A non-integer id is a client
// error; the response is written here and ok is false.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return 0, false
	}
	return id, true
}

// CreateReclamation handles POST /reclamations.
func (h *Handler) CreateReclamation(c *gin.Context) {
	var rec models.Reclamation
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	rec.ID = 0 // the store assigns identifiers

	created, err := h.Reclamations.Add(&rec)
	if err != nil {
		h.Log.Error("create reclamation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create reclamation"})
		return
	}
	c.JSON(http.StatusOK, created)
}

// UpdateReclamation handles PUT /reclamations/:id.
func (h *Handler) UpdateReclamation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var rec models.Reclamation
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.Reclamations.Update(id, &rec)
	if errors.Is(err, reclamation.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("reclamation %d not found", id)})
		return
	}
	if err != nil {
		h.Log.Error("update reclamation failed", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update reclamation"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteReclamation handles DELETE /reclamations/:id.
func (h *Handler) DeleteReclamation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	err := h.Reclamations.Delete(id)
	if errors.Is(err, reclamation.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("reclamation %d not found", id)})
		return
	}
	if err != nil {
		h.Log.Error("delete reclamation failed", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete reclamation"})
		return
	}
	c.Status(http.StatusNoContent)
}

// GetAllReclamations handles GET /reclamations.
func (h *Handler) GetAllReclamations(c *gin.Context) {
	recs, err := h.Reclamations.GetAll()
	if err != nil {
		h.Log.Error("list reclamations failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reclamations"})
		return
	}
	c.JSON(http.StatusOK, recs)
}

// GetReclamationByID handles GET /reclamations/:id. An unknown id is
// not a failure for this query; the body is null.
func (h *Handler) GetReclamationByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rec, found, err := h.Reclamations.GetByID(id)
	if err != nil {
		h.Log.Error("get reclamation failed", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get reclamation"})
		return
	}
	if !found {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Hello handles GET /reclamations/hello, a plain liveness probe.
func (h *Handler) Hello(c *gin.Context) {
	c.String(http.StatusOK, "Hello from Reclamation Microservice!")
}

// GenerateQRCode handles GET /reclamations/:id/qr and responds with
// the encoded URL as text.
func (h *Handler) GenerateQRCode(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	url, err := h.QR.Generate(id)
	if errors.Is(err, reclamation.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("reclamation %d not found", id)})
		return
	}
	if err != nil {
		h.Log.Error("qr generation failed", zap.Int("id", id), zap.Error(err))
		c.String(http.StatusBadRequest, "Erreur lors de la génération du QR Code: %s", err.Error())
		return
	}
	c.String(http.StatusOK, url)
}

// DownloadAllReclamationsPdf handles GET /reclamations/pdf. No records
// means nothing to generate: 204, the renderer is not invoked.
func (h *Handler) DownloadAllReclamationsPdf(c *gin.Context) {
	recs, err := h.Reclamations.GetAll()
	if err != nil {
		h.Log.Error("list reclamations for pdf failed", zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(recs) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	data, err := pdf.Summary(recs)
	if err != nil {
		h.Log.Error("pdf generation failed", zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=all_reclamations.pdf")
	c.Data(http.StatusOK, "application/pdf", data)
}

// ServeQrCodeImage handles GET /reclamations/qr/:filename.
func (h *Handler) ServeQrCodeImage(c *gin.Context) {
	filename := c.Param("filename")
	data, err := h.QR.Image(filename)
	if errors.Is(err, qrcode.ErrImageNotFound) {
		c.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		h.Log.Error("qr image read failed", zap.String("filename", filename), zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Header("Content-Disposition", "inline; filename="+filename)
	c.Data(http.StatusOK, "image/png", data)
}
