// Package webform serves the browser form for share reconstruction.
package webform

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/vitalvas/sharerecon/shamir"
	"github.com/vitalvas/sharerecon/xlogger"
)

const (
	// DefaultMaxBodyBytes limits the size of a submitted document.
	DefaultMaxBodyBytes = 1 << 20

	formFieldDocument = "document"
	formFieldMethod   = "method"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Config struct {
	// MaxBodyBytes caps request bodies. Zero means DefaultMaxBodyBytes.
	MaxBodyBytes int64
	// Document prefills the form textarea.
	Document string
	// Method is preselected on the form and used by the API when the
	// request does not name one.
	Method shamir.Method
}

// Server renders the form and the JSON API.
type Server struct {
	conf   Config
	logger *slog.Logger
	page   *template.Template
}

// New creates a form server.
func New(logger *slog.Logger, conf Config) *Server {
	if logger == nil {
		logger = xlogger.Discard()
	}

	if conf.MaxBodyBytes <= 0 {
		conf.MaxBodyBytes = DefaultMaxBodyBytes
	}

	return &Server{
		conf:   conf,
		logger: logger,
		page:   template.Must(template.New("page").Parse(pageTemplate)),
	}
}

// Handler returns the HTTP handler with request logging applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleForm)
	mux.HandleFunc("POST /{$}", s.handleSubmit)
	mux.HandleFunc("POST /api/reconstruct", s.handleAPI)

	return s.withRequestLog(mux)
}

type pageData struct {
	Document  string
	Method    string
	Methods   []string
	Result    *shamir.Report
	ChartHTML string
	ErrorKind string
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, pageData{
		Document: s.conf.Document,
		Method:   s.conf.Method.String(),
	})
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.conf.MaxBodyBytes)

	if err := r.ParseForm(); err != nil {
		s.render(w, r, statusForBodyError(err), pageData{
			Method:    s.conf.Method.String(),
			ErrorKind: "request_too_large",
		})
		return
	}

	data := pageData{
		Document: r.PostFormValue(formFieldDocument),
		Method:   r.PostFormValue(formFieldMethod),
	}

	res, err := s.reconstruct(r, []byte(data.Document), data.Method)
	if err != nil {
		data.ErrorKind = shamir.ErrorKind(err)
		s.render(w, r, http.StatusBadRequest, data)
		return
	}

	rep := res.Report()
	data.Result = &rep
	data.Method = rep.Method

	chart, err := renderChart(res)
	if err != nil {
		s.logger.Warn("chart rendering failed", slog.String("request_id", RequestID(r.Context())), xlogger.Err(err))
	}
	data.ChartHTML = chart

	s.render(w, r, http.StatusOK, data)
}

type apiError struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.conf.MaxBodyBytes))
	if err != nil {
		s.writeJSON(w, statusForBodyError(err), apiError{Error: "request_too_large", Detail: err.Error()})
		return
	}

	res, err := s.reconstruct(r, body, r.URL.Query().Get(formFieldMethod))
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, apiError{Error: shamir.ErrorKind(err), Detail: err.Error()})
		return
	}

	s.writeJSON(w, http.StatusOK, res.Report())
}

// reconstruct runs the pipeline for one request and logs the outcome.
func (s *Server) reconstruct(r *http.Request, doc []byte, methodName string) (*shamir.Result, error) {
	logger := s.logger.With(slog.String("request_id", RequestID(r.Context())))

	method := s.conf.Method
	if strings.TrimSpace(methodName) != "" {
		m, err := shamir.ParseMethod(methodName)
		if err != nil {
			logger.Info("reconstruction rejected", xlogger.Err(err))
			return nil, fmt.Errorf("%w: %w", shamir.ErrMalformedInput, err)
		}
		method = m
	}

	res, err := shamir.Reconstruct(doc, shamir.WithMethod(method))
	if err != nil {
		logger.Info("reconstruction failed",
			slog.String("kind", shamir.ErrorKind(err)),
			xlogger.Err(err),
		)
		return nil, err
	}

	logger.Debug("reconstruction complete",
		slog.Int("k", res.K),
		slog.Int("shares", len(res.Shares)),
		slog.String("method", res.Method.String()),
	)

	return res, nil
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	data.Methods = []string{shamir.MethodLagrange.String(), shamir.MethodVandermonde.String()}

	var buf strings.Builder
	if err := s.page.Execute(&buf, data); err != nil {
		s.logger.Error("template execution failed", slog.String("request_id", RequestID(r.Context())), xlogger.Err(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, buf.String())
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("response encoding failed", xlogger.Err(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func statusForBodyError(err error) int {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}
