package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ofstlaxcala/lexnum/internal/config"
	"github.com/ofstlaxcala/lexnum/internal/service"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// convertirExcelHandler processes an uploaded workbook and returns it with
// the text column appended.
// POST /convertir_excel  multipart field "archivo" → .xlsx attachment
func convertirExcelHandler(svc *service.Workbook, cfg *config.Config, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /convertir_excel")
		defer span.End()

		r.Body = http.MaxBytesReader(w, r.Body, cfg.MaxUploadBytes)

		file, header, err := r.FormFile("archivo")
		if err != nil {
			var maxBytes *http.MaxBytesError
			if errors.As(err, &maxBytes) {
				writeError(w, http.StatusRequestEntityTooLarge,
					fmt.Sprintf("El archivo excede el tamaño máximo permitido de %d MB.", cfg.MaxUploadMB()))
				return
			}
			writeError(w, http.StatusBadRequest, msgNoFile)
			return
		}
		defer file.Close()

		if msg, ok := validateUpload(header.Filename); !ok {
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		result, err := svc.Convert(ctx, file)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		w.Header().Set("Content-Type", xlsxMIME)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", cfg.OutputFilename))
		w.Header().Set("X-Lexnum-Batch", result.BatchID)
		w.Header().Set("X-Lexnum-Rows-Failed", strconv.Itoa(result.FailedRows))
		w.WriteHeader(http.StatusOK)
		w.Write(result.Data)
	}
}

// validateUpload checks the uploaded filename. The empty message/true pair
// means the file is acceptable.
func validateUpload(filename string) (string, bool) {
	if filename == "" {
		return msgEmptyFilename, false
	}
	dot := strings.LastIndex(filename, ".")
	if dot < 0 || dot == len(filename)-1 {
		return msgNoExtension, false
	}
	switch strings.ToLower(filename[dot+1:]) {
	case "xlsx", "xls":
		return "", true
	}
	return msgBadExtension, false
}
