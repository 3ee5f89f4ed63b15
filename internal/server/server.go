// Package server provides the live preview server: it compiles the
// template on every request, renders both artifacts side by side, and
// pushes a reload notification over a WebSocket when the watched template
// file changes.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/inkpress/typeset/internal/config"
	"github.com/inkpress/typeset/internal/logging"
	"github.com/inkpress/typeset/internal/metadata"
	"github.com/inkpress/typeset/internal/preamble"
)

// PreviewServer serves the compiled artifacts for a single template file.
type PreviewServer struct {
	templatePath string
	settings     config.ServerSettings
	log          logging.Logger

	metadata *metadata.Generator
	preamble *preamble.Generator

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}

	httpServer *http.Server
}

// New creates a preview server for the given template file.
func New(templatePath string, settings config.ServerSettings, log logging.Logger) *PreviewServer {
	if log == nil {
		log = logging.Nop()
	}
	log = log.WithComponent("server")

	return &PreviewServer{
		templatePath: templatePath,
		settings:     settings,
		log:          log,
		metadata:     metadata.NewGenerator(log),
		preamble:     preamble.NewGenerator(),
		clients:      make(map[*websocket.Conn]struct{}),
	}
}

// Start serves until the context is cancelled.
func (s *PreviewServer) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/artifacts/metadata", s.handleArtifact(s.generateMetadata))
	mux.HandleFunc("/artifacts/preamble", s.handleArtifact(s.generatePreamble))
	mux.HandleFunc("/ws", s.handleWebSocket)

	addr := net.JoinHostPort(s.settings.Host, fmt.Sprintf("%d", s.settings.Port))
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("preview server listening", "addr", "http://"+addr)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// NotifyReload pushes a reload message to every connected preview client.
// Wired to the template watcher by the serve command.
func (s *PreviewServer) NotifyReload() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for conn := range s.clients {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		if err := conn.Write(ctx, websocket.MessageText, []byte("reload")); err != nil {
			s.log.Debug("dropping preview client", "error", err.Error())
			conn.Close(websocket.StatusGoingAway, "write failed")
			delete(s.clients, conn)
		}
		cancel()
	}
}

func (s *PreviewServer) generateMetadata() (string, error) {
	cfg, err := config.Load(s.templatePath)
	if err != nil {
		return "", err
	}
	return s.metadata.Generate(cfg, nil), nil
}

func (s *PreviewServer) generatePreamble() (string, error) {
	cfg, err := config.Load(s.templatePath)
	if err != nil {
		return "", err
	}
	return s.preamble.Generate(cfg), nil
}

func (s *PreviewServer) handleArtifact(generate func() (string, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := generate()
		if err != nil {
			s.log.Error(err, "artifact generation failed")
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, out)
	}
}

func (s *PreviewServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.log.Debug("websocket accept failed", "error", err.Error())
		return
	}

	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()

	// Hold the connection open; reads only notice the close.
	go func() {
		defer func() {
			s.mu.Lock()
			delete(s.clients, conn)
			s.mu.Unlock()
			conn.Close(websocket.StatusNormalClosure, "")
		}()
		for {
			if _, _, err := conn.Read(r.Context()); err != nil {
				return
			}
		}
	}()
}
