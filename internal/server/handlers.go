package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jonathan/resume-builder/internal/ats"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/suggest"
	"github.com/jonathan/resume-builder/internal/types"
)

// KeywordsRequest represents the request body for POST /keywords
type KeywordsRequest struct {
	Text string `json:"text"`
}

// KeywordsResponse lists the extracted keywords in extraction order
type KeywordsResponse struct {
	Keywords []string `json:"keywords"`
}

// ScoreRequest represents the request body for POST /score.
// A non-blank JDText is analyzed; otherwise Keywords, when present, are restored;
// otherwise the document's own saved keywords are used.
type ScoreRequest struct {
	Document json.RawMessage `json:"document"`
	Keywords []string        `json:"keywords,omitempty"`
	JDText   string          `json:"jd_text,omitempty"`
}

// ScoreResponse is the ATS view plus the badge text
type ScoreResponse struct {
	types.ATSView
	Badge string `json:"badge"`
}

// SuggestionsResponse represents the response for POST /suggestions
type SuggestionsResponse struct {
	Info  string   `json:"info"`
	Lines []string `json:"lines"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleKeywords extracts the keyword set from a job description
func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	var req KeywordsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	keywords, err := ats.ExtractKeywords(req.Text)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "Paste a job description first")
		return
	}
	s.jsonResponse(w, http.StatusOK, KeywordsResponse{Keywords: keywords.Tokens()})
}

// handleScore scores a document against a keyword set
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	doc := types.NewDocument()
	if len(req.Document) > 0 {
		var err error
		if doc, err = storage.Decode(req.Document); err != nil {
			s.writeError(w, &ErrValidation{Field: "document", Message: "must be a JSON object"})
			return
		}
	}

	sess := session.New(doc, session.WithMissingLimit(s.missingLimit))
	switch {
	case strings.TrimSpace(req.JDText) != "":
		if err := sess.Analyze(req.JDText); err != nil {
			s.writeError(w, err)
			return
		}
	case req.Keywords != nil:
		sess.Restore(req.JDText, req.Keywords)
	}

	view := sess.Report()
	s.jsonResponse(w, http.StatusOK, ScoreResponse{ATSView: view, Badge: view.Badge()})
}

// handleSuggestions returns canned description lines for a card
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	var req suggest.Request
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	lines, err := suggest.Generate(req)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, SuggestionsResponse{Info: suggest.Info(req), Lines: lines})
}
