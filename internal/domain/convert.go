// Package domain holds the shared types and error values of the LexNum
// conversion service.
package domain

// ConvertTextRequest is the body of POST /convertir_texto.
// Numero may arrive as a JSON string or number; the normalizer sorts it out.
type ConvertTextRequest struct {
	Numero any `json:"numero"`
}

// ConvertTextResponse is the reply of POST /convertir_texto.
// Texto is empty when the input denotes no value.
type ConvertTextResponse struct {
	Texto string `json:"texto"`
}

// ConvertedWorkbook is the result of a batch conversion.
type ConvertedWorkbook struct {
	BatchID    string
	Column     string // resolved source column label, as it appears in the file
	Rows       int
	FailedRows int
	Data       []byte // the output .xlsx
}

// HealthStatus is the reply of GET /health.
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// ConversionMetrics is a snapshot of conversion counters for the
// GET /v1/metrics/conversions endpoint.
type ConversionMetrics struct {
	TotalConversions  int64   `json:"total_conversions"`
	EmptyResults      int64   `json:"empty_results"`
	FailedConversions int64   `json:"failed_conversions"`
	ErrorRate         float64 `json:"error_rate"`
	CacheHitRate      float64 `json:"cache_hit_rate"`
	BatchRows         int64   `json:"batch_rows"`
	BatchRowsFailed   int64   `json:"batch_rows_failed"`
	Period            string  `json:"period"`
}
