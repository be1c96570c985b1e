package handler

import (
	"go.uber.org/zap"

	"reclamations/backend/internal/qrcode"
	"reclamations/backend/internal/reclamation"
)

// Handler holds the services the REST layer dispatches to.
type Handler struct {
	Reclamations *reclamation.Service
	QR           *qrcode.Generator
	Log          *zap.Logger
}

func NewHandler(svc *reclamation.Service, qr *qrcode.Generator, log *zap.Logger) *Handler {
	return &Handler{Reclamations: svc, QR: qr, Log: log}
}
