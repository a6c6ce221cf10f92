package handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"tzlon-api/internal/batch"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// BatchHandler handles batch file conversion requests
type BatchHandler struct {
	service   BatchService
	maxUpload int64
}

// Service interface for dependency injection
type BatchService interface {
	Convert(context.Context, *batch.Table) (*batch.Table, error)
}

// NewBatchHandler creates a new batch handler accepting uploads up to maxUpload bytes
func NewBatchHandler(svc BatchService, maxUpload int64) *BatchHandler {
	return &BatchHandler{service: svc, maxUpload: maxUpload}
}

// Convert handles POST /batch requests
//
//	@Summary	Convert every row of a CSV or XLSX upload
//	@Accept		multipart/form-data
//	@Param		file	formData	file	true	"CSV or XLSX table"
//	@Param		format	query		string	false	"json (default), csv or xlsx"
//	@Success	200		{object}	batch.Table
//	@Failure	400		{object}	map[string]string
//	@Router		/batch [post]
func (h *BatchHandler) Convert(c *gin.Context) {
	format := c.DefaultQuery("format", "json")
	if format != "json" && format != "csv" && format != "xlsx" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be one of 'json', 'csv' or 'xlsx'"})
		return
	}

	if h.maxUpload > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)
	}
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required form file 'file'"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	defer file.Close()

	table, err := batch.Decode(header.Filename, file)
	if err != nil {
		log.Debug().Err(err).Str("file", header.Filename).Msg("rejected upload")
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("could not read uploaded file: %v", err)})
		return
	}

	result, err := h.service.Convert(c.Request.Context(), table)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	switch format {
	case "csv":
		writeTable(c, result, "converted_results.csv", "text/csv; charset=utf-8", batch.WriteCSV)
	case "xlsx":
		writeTable(c, result, "converted_results.xlsx", xlsxContentType, batch.WriteXLSX)
	default:
		c.JSON(http.StatusOK, result)
	}
}

// Template handles GET /batch/templates/:kind requests
//
//	@Summary	Download a CSV template for batch input
//	@Param		kind	path	string	true	"longitude or timezone"
//	@Produce	text/csv
//	@Router		/batch/templates/{kind} [get]
func (h *BatchHandler) Template(c *gin.Context) {
	kind := c.Param("kind")
	table, err := batch.Template(kind)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown template, expected 'longitude' or 'timezone'"})
		return
	}

	writeTable(c, table, kind+"_template.csv", "text/csv; charset=utf-8", batch.WriteCSV)
}

func writeTable(c *gin.Context, t *batch.Table, filename, contentType string, write func(io.Writer, *batch.Table) error) {
	var buf bytes.Buffer
	if err := write(&buf, t); err != nil {
		log.Error().Err(err).Str("file", filename).Msg("failed to encode table")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
