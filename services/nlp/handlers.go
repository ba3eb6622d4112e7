// Copyright (C) 2025 TaskGenie
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package nlp

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Akchhya1108/TaskGenie/services/nlp/analysis"
)

// requestIDHeader carries the caller-supplied correlation ID; one is
// generated when absent.
const requestIDHeader = "X-Request-ID"

// ClassifyRequest is the body of POST /api/nlp/classify and
// POST /api/nlp/breakdown.
type ClassifyRequest struct {
	Text string `json:"text"`
}

// ExtractKeywordsRequest is the body of POST /api/nlp/extract-keywords.
// TopN is optional; nil means the default of 5.
type ExtractKeywordsRequest struct {
	Text string `json:"text"`
	TopN *int   `json:"top_n,omitempty"`
}

// ExtractKeywordsResponse is the body of a successful extract-keywords call.
type ExtractKeywordsResponse struct {
	Keywords []string `json:"keywords"`
}

// ErrorResponse is the uniform error body for all NLP endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Handlers bundles the HTTP handlers for the NLP service.
type Handlers struct {
	service *Service
}

// NewHandlers creates a Handlers instance backed by the given service.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// HandleClassify handles POST /api/nlp/classify.
//
// Description:
//
//	Runs the full triage pipeline on the submitted text: category,
//	priority, top keywords, optional due date, and suggestions.
//
// Response:
//
//	200 OK: analysis.ClassificationResult
//	400 Bad Request: malformed body or empty text
//	500 Internal Server Error: unexpected engine failure
//
// Thread Safety: This method is safe for concurrent use.
func (h *Handlers) HandleClassify(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleClassify")

	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_BODY",
		})
		return
	}

	result, err := h.service.Classify(c.Request.Context(), req.Text)
	if err != nil {
		writeAnalysisError(c, logger, err)
		return
	}

	logger.Debug("classified task",
		"category", result.Category,
		"priority", result.Priority,
	)
	c.JSON(http.StatusOK, result)
}

// HandleBreakdown handles POST /api/nlp/breakdown.
//
// Description:
//
//	Decomposes the submitted text into ordered subtask steps, with the
//	task's keywords, category, and a fixed follow-up list.
//
// Response:
//
//	200 OK: analysis.BreakdownResult
//	400 Bad Request: malformed body or empty text
//	500 Internal Server Error: unexpected engine failure
//
// Thread Safety: This method is safe for concurrent use.
func (h *Handlers) HandleBreakdown(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleBreakdown")

	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_BODY",
		})
		return
	}

	result, err := h.service.Breakdown(c.Request.Context(), req.Text)
	if err != nil {
		writeAnalysisError(c, logger, err)
		return
	}

	logger.Debug("broke down task", "subtasks", len(result.Subtasks))
	c.JSON(http.StatusOK, result)
}

// HandleExtractKeywords handles POST /api/nlp/extract-keywords.
//
// Description:
//
//	Returns the most frequent lemmas of the submitted text. top_n is
//	optional and defaults to 5; zero yields an empty list.
//
// Response:
//
//	200 OK: ExtractKeywordsResponse
//	400 Bad Request: malformed body, empty text, or negative top_n
//	500 Internal Server Error: unexpected engine failure
//
// Thread Safety: This method is safe for concurrent use.
func (h *Handlers) HandleExtractKeywords(c *gin.Context) {
	requestID := getOrCreateRequestID(c)
	logger := slog.With("request_id", requestID, "handler", "HandleExtractKeywords")

	var req ExtractKeywordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_BODY",
		})
		return
	}

	topN := analysis.DefaultTopKeywords
	if req.TopN != nil {
		topN = *req.TopN
	}

	keywords, err := h.service.ExtractKeywords(c.Request.Context(), req.Text, topN)
	if err != nil {
		writeAnalysisError(c, logger, err)
		return
	}
	if keywords == nil {
		keywords = []string{}
	}

	c.JSON(http.StatusOK, ExtractKeywordsResponse{Keywords: keywords})
}

// HandleHealth handles GET /health.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Message: "NLP Service is running",
	})
}

// writeAnalysisError maps engine errors to HTTP responses. Validation
// failures are the caller's fault; everything else is a 500.
func writeAnalysisError(c *gin.Context, logger *slog.Logger, err error) {
	if analysis.IsValidationError(err) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
		return
	}

	logger.Error("analysis failed", "error", err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: "internal server error",
		Code:  "INTERNAL_ERROR",
	})
}

// getOrCreateRequestID returns the request's correlation ID, minting one
// when the caller did not send the X-Request-ID header. The ID is echoed
// on the response for client-side correlation.
func getOrCreateRequestID(c *gin.Context) string {
	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	c.Header(requestIDHeader, requestID)
	return requestID
}
