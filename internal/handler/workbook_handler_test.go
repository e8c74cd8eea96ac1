package handler_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ofstlaxcala/lexnum/internal/config"
)

func fixtureUpload(t *testing.T, values []any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetRow("Sheet1", "A1", &[]any{"NÚMERO"}); err != nil {
		t.Fatal(err)
	}
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &[]any{v}); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}
	return &buf
}

func postExcel(t *testing.T, router http.Handler, filename string, content *bytes.Buffer) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("archivo", filename)
	if err != nil {
		t.Fatal(err)
	}
	if content != nil {
		if _, err := part.Write(content.Bytes()); err != nil {
			t.Fatal(err)
		}
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/convertir_excel", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestConvertirExcel(t *testing.T) {
	router := newRouter()

	upload := fixtureUpload(t, []any{1, 0, 1523.45, "abc"})
	rec := postExcel(t, router, "montos.xlsx", upload)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("unexpected Content-Type: %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "resultado_lexnum.xlsx") {
		t.Errorf("unexpected Content-Disposition: %q", cd)
	}
	if failed := rec.Header().Get("X-Lexnum-Rows-Failed"); failed != "1" {
		t.Errorf("X-Lexnum-Rows-Failed = %q, want 1", failed)
	}

	out, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	defer out.Close()

	rows, err := out.GetRows(out.GetSheetList()[0])
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"UN PESO 00/100 M.N.",
		"CERO PESOS 00/100 M.N.",
		"MIL QUINIENTOS VEINTITRÉS PESOS 45/100 M.N.",
		"",
	}
	for i, phrase := range want {
		row := rows[i+1]
		got := ""
		if len(row) > 1 {
			got = row[1]
		}
		if got != phrase {
			t.Errorf("row %d: got %q, want %q", i+2, got, phrase)
		}
	}
}

func TestConvertirExcelTooLarge(t *testing.T) {
	cfg := config.Load()
	cfg.MaxUploadBytes = 1024 * 1024 // 1 MB cap for the test
	router := newRouterWithConfig(cfg)

	oversized := bytes.NewBuffer(make([]byte, 2*1024*1024))
	rec := postExcel(t, router, "montos.xlsx", oversized)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "El archivo excede el tamaño máximo permitido de 1 MB.") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestConvertirExcelNoFile(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodPost, "/convertir_excel", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No se subió archivo.") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestConvertirExcelBadExtension(t *testing.T) {
	router := newRouter()

	rec := postExcel(t, router, "montos.csv", bytes.NewBufferString("a,b"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Solo se permiten archivos Excel") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestConvertirExcelNotAWorkbook(t *testing.T) {
	router := newRouter()

	rec := postExcel(t, router, "montos.xlsx", bytes.NewBufferString("this is not a zip"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No se pudo leer el Excel") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestConvertirExcelMissingColumn(t *testing.T) {
	router := newRouter()

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetRow("Sheet1", "A1", &[]any{"IMPORTE"}); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatal(err)
	}

	rec := postExcel(t, router, "montos.xlsx", &buf)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Columna no encontrada") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}
