package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/ofstlaxcala/lexnum/internal/domain"
	"github.com/ofstlaxcala/lexnum/internal/service"
)

// convertirTextoHandler converts a single number to its monetary phrase.
// POST /convertir_texto  {"numero": <string|number>} → {"texto": "..."}
//
// A missing, empty or undecodable body answers {"texto": ""} with 200: the
// form calls this on every keystroke and an empty field is not an error.
func convertirTextoHandler(svc *service.Converter, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /convertir_texto")
		defer span.End()

		var req domain.ConvertTextRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusOK, domain.ConvertTextResponse{})
			return
		}

		texto, err := svc.Convert(ctx, req.Numero)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		writeJSON(w, http.StatusOK, domain.ConvertTextResponse{Texto: texto})
	}
}
