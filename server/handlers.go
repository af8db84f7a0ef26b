package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pranavsawarkar14/Real-Estate-Analysis/helpers"
	"github.com/pranavsawarkar14/Real-Estate-Analysis/schema"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Upload handles POST /api/upload (multipart field "file").
func (s *Server) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		writeError(w, http.StatusBadRequest, "No file provided")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	if !helpers.SupportedExtension(header.Filename) {
		writeError(w, http.StatusBadRequest, "Invalid file format. Please upload .xlsx, .xls, or .csv files")
		return
	}

	table, err := helpers.ReadTable(header.Filename, file)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Failed to parse file: %v", err))
		return
	}

	report, err := s.engine.LoadTable(r.Context(), table)
	if err != nil {
		var se *schema.SchemaError
		if errors.As(err, &se) {
			writeError(w, http.StatusBadRequest, se.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Upload failed: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":       "File uploaded and processed successfully",
		"areas":         report.Areas,
		"total_records": report.TotalRecords,
		"report":        report,
	})
}

type queryRequest struct {
	Query string `json:"query"`
}

// Query handles POST /api/query.
func (s *Server) Query(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	resp, err := s.engine.Query(r.Context(), req.Query)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Query processing failed: %v", err))
		return
	}
	if resp.Failed() {
		writeJSON(w, http.StatusBadRequest, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Areas handles GET /api/areas.
func (s *Server) Areas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"areas": s.engine.ListAreas()})
}

// Download handles GET /api/download?area=&format=csv|xlsx.
func (s *Server) Download(w http.ResponseWriter, r *http.Request) {
	area := r.URL.Query().Get("area")
	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "xlsx" {
		writeError(w, http.StatusBadRequest, "Invalid format. Use csv or xlsx.")
		return
	}

	rows := s.engine.FilteredRows(area)
	if len(rows) == 0 {
		writeError(w, http.StatusNotFound, "No data found for the specified area")
		return
	}

	filename := fmt.Sprintf("%s_data.%s", downloadName(area), format)
	if format == "csv" {
		s.sendFile(w, "text/csv", filename, func(out io.Writer) error { return helpers.WriteCSV(out, rows) })
		return
	}
	s.sendFile(w, xlsxContentType, filename, func(out io.Writer) error { return helpers.WriteXLSX(out, rows) })
}

// downloadName lowercases area and replaces spaces, or returns "all_areas".
func downloadName(area string) string {
	if area == "" {
		return "all_areas"
	}
	return strings.ToLower(strings.ReplaceAll(area, " ", "_"))
}

// DownloadSample handles GET /api/download-sample.
func (s *Server) DownloadSample(w http.ResponseWriter, r *http.Request) {
	s.sendFile(w, xlsxContentType, helpers.SampleFileName, helpers.WriteSample)
}

type generateRequest struct {
	Rows []map[string]any `json:"rows"`
	Data []map[string]any `json:"data"`
}

// GenerateExcel handles POST /api/generate-excel with {"rows": [...]}
// ("data" is accepted as an alias).
func (s *Server) GenerateExcel(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	rows := req.Rows
	if len(rows) == 0 {
		rows = req.Data
	}
	if len(rows) == 0 {
		writeError(w, http.StatusBadRequest, "No data provided")
		return
	}

	s.sendFile(w, xlsxContentType, "analysis_results.xlsx", func(out io.Writer) error {
		return helpers.RowsToXLSX(out, rows)
	})
}

// Health handles GET /api/health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Health())
}

// sendFile renders the attachment into memory before writing any header.
func (s *Server) sendFile(w http.ResponseWriter, contentType, filename string, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		s.logger.WithError(err).WithField("file", filename).Error("export failed")
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to generate %s: %v", filename, err))
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(buf.Bytes())
}
