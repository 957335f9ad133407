package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/jonathan/resume-parser/internal/cache"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/types"
)

// ParseRequest represents the request body for /parse. The format tag only
// selects ingestion (HTML stripping); extraction itself is format-agnostic.
type ParseRequest struct {
	Text   string `json:"text" validate:"required"`
	Format string `json:"format,omitempty" validate:"omitempty,oneof=txt html"`
}

// ParseResponse is the envelope for /parse: either a success with the record
// and ingestion metadata, or a failure with a message and error code.
type ParseResponse struct {
	Success bool                `json:"success"`
	Data    *types.ResumeRecord `json:"data,omitempty"`
	Meta    *ingestion.Metadata `json:"meta,omitempty"`
	Cached  bool                `json:"cached,omitempty"`
	Error   string              `json:"error,omitempty"`
	Code    string              `json:"code,omitempty"`
}

// handleParse runs the synchronous parse operation.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorEnvelope(w, http.StatusBadRequest, "invalid request body: "+err.Error(), CodeValidationError)
		return
	}

	if err := s.validate.Struct(req); err != nil {
		s.errorEnvelope(w, http.StatusBadRequest, "text is required and format must be txt or html", CodeValidationError)
		return
	}

	text := req.Text
	if req.Format == "html" {
		stripped, err := ingestion.ExtractHTMLText(text)
		if err != nil {
			s.errorEnvelope(w, http.StatusBadRequest, "could not extract text from HTML: "+err.Error(), CodeValidationError)
			return
		}
		text = stripped
	}
	text = ingestion.CleanText(text)

	result, err := s.service.Parse(text)
	if err != nil {
		if HTTPStatus(err) >= http.StatusInternalServerError {
			log.Error().Err(err).Msg("parse failed")
		}
		s.errorEnvelope(w, HTTPStatus(err), err.Error(), ErrorCode(err))
		return
	}

	meta := ingestion.NewMetadata(text, req.Format)

	s.jsonResponse(w, http.StatusOK, ParseResponse{
		Success: true,
		Data:    &result.Record,
		Meta:    meta,
		Cached:  result.FromCache,
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCacheStats reports entry count, TTL, approximate footprint, and keys.
func (s *Server) handleCacheStats(w http.ResponseWriter, _ *http.Request) {
	if s.resultCache == nil {
		s.jsonResponse(w, http.StatusOK, cache.Stats{Keys: []string{}})
		return
	}
	s.jsonResponse(w, http.StatusOK, s.resultCache.Stats())
}

// handleCacheClear drops all cached results.
func (s *Server) handleCacheClear(w http.ResponseWriter, _ *http.Request) {
	cleared := 0
	if s.resultCache != nil {
		cleared = s.resultCache.Clear()
	}
	s.jsonResponse(w, http.StatusOK, map[string]int{"cleared": cleared})
}

// handleVocabulary exposes the active keyword vocabulary.
func (s *Server) handleVocabulary(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.service.Vocabulary())
}
