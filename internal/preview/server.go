package preview

import (
	"bytes"
	"context"
	"crypto/subtle"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/renato0307/diffreport/internal/domain"
	"github.com/renato0307/diffreport/internal/logging"
	"github.com/renato0307/diffreport/internal/ports"
	"github.com/renato0307/diffreport/internal/services"
)

//go:embed assets/preview.html.tmpl assets/preview.js
var assets embed.FS

var pageTemplate = template.Must(template.New("preview").ParseFS(assets, "assets/preview.html.tmpl"))

// shutdownTimeout bounds graceful shutdown of in-flight requests
const shutdownTimeout = 5 * time.Second

// Exporter writes the document posted back by the preview page
type Exporter interface {
	DefaultDestination() string
	Export(ctx context.Context, req services.ExportRequest) domain.ExportResult
}

// Config holds everything the preview needs to serve one report
type Config struct {
	Address string
	// AssumeYes saves to the default destination without asking
	AssumeYes  bool
	Document   domain.ReportDocument
	Selection  domain.Selection
	Stylesheet []byte
}

type pageView struct {
	Body       template.HTML
	Comparison string
	Summary    string
	Title      string
	Token      string
}

// Server serves the rendered report on a loopback address and handles
// "saveHtml" requests from the page over a websocket
type Server struct {
	cfg        Config
	exporter   Exporter
	httpServer *http.Server
	listener   net.Listener
	mu         sync.Mutex
	notices    io.Writer
	page       []byte
	prompter   ports.Prompter
	token      string
	upgrader   websocket.Upgrader
}

// NewServer renders the preview page and prepares the handlers
func NewServer(cfg Config, exporter Exporter, prompter ports.Prompter) (*Server, error) {
	s := &Server{
		cfg:      cfg,
		exporter: exporter,
		notices:  os.Stderr,
		prompter: prompter,
		token:    uuid.New().String(),
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     sameOrigin,
	}

	page := services.Page(cfg.Selection, cfg.Document, cfg.Document.HTMLBody)
	var buf bytes.Buffer
	err := pageTemplate.ExecuteTemplate(&buf, "preview", pageView{
		// Rendered by report.Renderer
		Body:       template.HTML(page.Body),
		Comparison: page.Comparison,
		Summary:    page.Summary,
		Title:      page.Title,
		Token:      s.token,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render preview page: %w", err)
	}
	s.page = buf.Bytes()

	return s, nil
}

// Handler returns the HTTP routes of the preview
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /assets/diffreport.css", s.handleStylesheet)
	mux.HandleFunc("GET /assets/preview.js", s.handleScript)
	mux.HandleFunc("GET /ws", s.handleWebSocket)
	return mux
}

// Listen binds the configured address. Port 0 picks a free port.
func (s *Server) Listen() error {
	listener, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Address, err)
	}
	s.listener = listener
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	logging.Logger.Info("Preview listening", "address", listener.Addr().String())
	return nil
}

// URL returns the page address including the access token
func (s *Server) URL() string {
	if s.listener == nil {
		return ""
	}
	return fmt.Sprintf("http://%s/?token=%s", s.listener.Addr().String(), url.QueryEscape(s.token))
}

// Serve blocks until ctx is done, then shuts the server down
func (s *Server) Serve(ctx context.Context) error {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("preview server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Logger.Info("Shutting down preview")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown preview: %w", err)
	}
	return nil
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if !s.validToken(r) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(s.page)
}

func (s *Server) handleStylesheet(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = w.Write(s.cfg.Stylesheet)
}

func (s *Server) handleScript(w http.ResponseWriter, _ *http.Request) {
	data, err := assets.ReadFile("assets/preview.js")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	_, _ = w.Write(data)
}

func (s *Server) validToken(r *http.Request) bool {
	given := r.URL.Query().Get("token")
	return subtle.ConstantTimeCompare([]byte(given), []byte(s.token)) == 1
}

// sameOrigin accepts only pages served by this server
func sameOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return false
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return u.Scheme == "http" && u.Host == r.Host
}
