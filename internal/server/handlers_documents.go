package server

import (
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/server/middleware"
	"github.com/jonathan/resume-builder/internal/storage"
)

// DocumentListResponse represents the response for GET /documents
type DocumentListResponse struct {
	Documents []storage.Entry `json:"documents"`
	Count     int             `json:"count"`
}

func documentID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: "id", Message: "must be a UUID"}
	}
	return id, nil
}

// handleListDocuments lists saved documents, most recent first
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, DocumentListResponse{Documents: entries, Count: len(entries)})
}

// handleGetDocument returns a saved document
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	id, err := documentID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	doc, err := s.store.Load(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, doc)
}

// handlePutDocument validates and saves a document under the path ID
func (s *Server) handlePutDocument(w http.ResponseWriter, r *http.Request) {
	id, err := documentID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.writeError(w, &ErrValidation{Field: "body", Message: err.Error()})
		return
	}
	if err := schemas.Validate(schemas.KindDocument, body); err != nil {
		s.writeError(w, err)
		return
	}

	doc, err := storage.Decode(body)
	if err != nil {
		s.writeError(w, &ErrValidation{Field: "body", Message: "must be a JSON object"})
		return
	}
	if err := doc.Validate(); err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.store.Save(r.Context(), id, doc); err != nil {
		s.writeError(w, err)
		return
	}

	if userID, err := middleware.GetUserID(r); err == nil {
		log.Printf("[http] document %s saved by %s", id, userID)
	}
	s.jsonResponse(w, http.StatusOK, doc)
}

// handleDeleteDocument removes a saved document
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	id, err := documentID(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
