package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/poiesic/cvfind/ai"
	"github.com/poiesic/cvfind/core"
	"github.com/poiesic/cvfind/ingestion"
	"github.com/poiesic/cvfind/query"
	"github.com/poiesic/cvfind/search"
	"github.com/poiesic/cvfind/storage"
)

const (
	maxUploadBytes  = 32 << 20
	shutdownTimeout = 10 * time.Second
)

// Server serves search, question answering and record management over HTTP.
type Server struct {
	repository storage.RecordRepository
	searcher   *search.Searcher
	engine     *query.Engine
	pipeline   *ingestion.Pipeline
	validate   *validator.Validate
	logger     *slog.Logger
}

// Option configures a Server.
type Option func(*Server) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithPipeline enables POST /cvs/upload.
func WithPipeline(pipeline *ingestion.Pipeline) Option {
	return func(s *Server) error {
		s.pipeline = pipeline
		return nil
	}
}

// NewServer creates a server over repository. engine answers POST /query.
func NewServer(repository storage.RecordRepository, engine *query.Engine, opts ...Option) (*Server, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if engine == nil {
		return nil, ErrEngineRequired
	}

	s := &Server{
		repository: repository,
		engine:     engine,
		validate:   validator.New(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	searcher, err := search.NewSearcher(repository, search.WithLogger(s.logger))
	if err != nil {
		return nil, err
	}
	s.searcher = searcher
	return s, nil
}

// Routes returns the HTTP handler for every endpoint.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.health)
	r.Post("/search", s.search)
	r.Post("/query", s.query)

	r.Route("/cvs", func(r chi.Router) {
		r.Get("/", s.listRecords)
		r.Post("/", s.createRecord)
		r.Post("/upload", s.upload)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.getRecord)
			r.Patch("/", s.updateRecord)
			r.Delete("/", s.deleteRecord)
			r.Post("/tags", s.addTag)
			r.Delete("/tags/{tag}", s.removeTag)
		})
	})
	return r
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

func (s *Server) decodeValid(r *http.Request, dst any) error {
	if err := s.decode(r, dst); err != nil {
		return err
	}
	if err := s.validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	count, err := s.repository.Count(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "records": count})
}

// search handles POST /search
func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := s.decodeValid(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	results, err := s.searcher.SearchScoped(r.Context(), req.Term, search.ParseScope(req.Scope), search.KeywordWeights)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SearchResponse{Results: results, Total: len(results)})
}

// query handles POST /query
func (s *Server) query(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := s.decodeValid(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	answer, err := s.engine.Ask(r.Context(), req.Question)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, QueryResponse{
		Response: answer.Response,
		Results:  answer.Results,
		Intent:   answer.Intent,
	})
}

func (s *Server) listRecords(w http.ResponseWriter, r *http.Request) {
	records, err := s.repository.ListRecords(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, RecordsResponse{Records: records, Total: len(records)})
}

// createRecord handles POST /cvs. A record without an id gets a random one.
func (s *Server) createRecord(w http.ResponseWriter, r *http.Request) {
	var record core.CVRecord
	if err := s.decode(r, &record); err != nil {
		s.writeError(w, r, err)
		return
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	added, err := s.repository.AddRecords(r.Context(), &record)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, added[0])
}

func (s *Server) getRecord(w http.ResponseWriter, r *http.Request) {
	record, err := s.repository.GetRecord(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) updateRecord(w http.ResponseWriter, r *http.Request) {
	var patch core.RecordPatch
	if err := s.decode(r, &patch); err != nil {
		s.writeError(w, r, err)
		return
	}

	record, err := s.repository.UpdateRecord(r.Context(), chi.URLParam(r, "id"), &patch)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) deleteRecord(w http.ResponseWriter, r *http.Request) {
	if err := s.repository.DeleteRecords(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addTag(w http.ResponseWriter, r *http.Request) {
	var req TagRequest
	if err := s.decodeValid(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	record, err := s.repository.AddTag(r.Context(), chi.URLParam(r, "id"), req.Tag)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) removeTag(w http.ResponseWriter, r *http.Request) {
	tag := chi.URLParam(r, "tag")
	if unescaped, err := url.PathUnescape(tag); err == nil {
		tag = unescaped
	}

	record, err := s.repository.RemoveTag(r.Context(), chi.URLParam(r, "id"), tag)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// upload handles POST /cvs/upload with one or more "files" parts.
func (s *Server) upload(w http.ResponseWriter, r *http.Request) {
	if s.pipeline == nil {
		s.writeError(w, r, ErrUploadUnavailable)
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequest, err))
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		s.writeError(w, r, fmt.Errorf("%w: no files part", ErrInvalidRequest))
		return
	}

	docs := make([]ai.Document, 0, len(headers))
	for _, header := range headers {
		doc, err := readDocument(header)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		docs = append(docs, doc)
	}

	added, err := s.pipeline.UploadBatch(r.Context(), docs)
	if err != nil && len(added) == 0 {
		s.writeError(w, r, err)
		return
	}

	resp := UploadResponse{Records: added}
	if err != nil {
		resp.Errors = errorMessages(err)
	}
	writeJSON(w, http.StatusCreated, resp)
}

func readDocument(header *multipart.FileHeader) (ai.Document, error) {
	f, err := header.Open()
	if err != nil {
		return ai.Document{}, err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return ai.Document{}, err
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "application/octet-stream" {
		mimeType = ""
	}
	return ai.Document{
		Name:     header.Filename,
		MimeType: mimeType,
		URI:      "upload://" + url.PathEscape(header.Filename),
		Content:  content,
	}, nil
}

// errorMessages flattens a joined error into one message per failure.
func errorMessages(err error) []string {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []string{err.Error()}
	}
	var messages []string
	for _, e := range joined.Unwrap() {
		messages = append(messages, errorMessages(e)...)
	}
	return messages
}
