package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/ofstlaxcala/lexnum/internal/domain"
)

// User-facing messages shown verbatim by the LexNum web frontend.
const (
	msgNoFile       = "No se subió archivo."
	msgInvalidExcel = "No se pudo leer el Excel. Use .xlsx válido."
	msgNoColumn     = "Columna no encontrada. Use: Número, Numero, numero, NUMERO o Num."
	msgConversion   = "Error al convertir el número."
	msgInternal     = "Error interno del servidor."
	msgNotFound     = "Ruta no encontrada."

	msgEmptyFilename = "No se proporcionó ningún archivo."
	msgNoExtension   = "El archivo debe tener una extensión válida."
	msgBadExtension  = "Solo se permiten archivos Excel (.xlsx, .xls)."
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// handleServiceError maps domain errors to HTTP responses.
func handleServiceError(w http.ResponseWriter, err error, logger *zap.Logger) {
	var conversion *domain.ErrConversion
	var columnNotFound *domain.ErrColumnNotFound
	var invalidWorkbook *domain.ErrInvalidWorkbook
	var noFile *domain.ErrNoFile
	var validation *domain.ErrValidation

	switch {
	case errors.As(err, &conversion):
		logger.Error("conversion error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgConversion)
	case errors.As(err, &columnNotFound):
		logger.Debug("column not found", zap.String("error", err.Error()))
		writeError(w, http.StatusBadRequest, msgNoColumn)
	case errors.As(err, &invalidWorkbook):
		logger.Warn("invalid workbook", zap.Error(err))
		writeError(w, http.StatusBadRequest, msgInvalidExcel)
	case errors.As(err, &noFile):
		logger.Debug("no file uploaded")
		writeError(w, http.StatusBadRequest, msgNoFile)
	case errors.As(err, &validation):
		logger.Debug("upload rejected", zap.String("error", err.Error()))
		writeError(w, http.StatusBadRequest, validation.Message)
	default:
		logger.Error("unhandled error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, msgInternal)
	}
}
