package preview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/renato0307/diffreport/internal/config"
	"github.com/renato0307/diffreport/internal/domain"
	"github.com/renato0307/diffreport/internal/logging"
	"github.com/renato0307/diffreport/internal/services"
	"github.com/renato0307/diffreport/internal/ui"
)

// Bridge message types
const (
	MessageCanceled = "canceled"
	MessageError    = "error"
	MessageSaveHTML = "saveHtml"
	MessageSaved    = "saved"
)

// DestinationTitle is the prompt shown when the page asks to save
const DestinationTitle = "Save report as"

// InboundMessage is posted by the preview page
type InboundMessage struct {
	HTML    string `json:"html"`
	Options struct {
		GenerateFileList bool `json:"generateFileList"`
	} `json:"options"`
	Type string `json:"type"`
}

// OutboundMessage answers a saveHtml request
type OutboundMessage struct {
	Message string `json:"message,omitempty"`
	Path    string `json:"path,omitempty"`
	Type    string `json:"type"`
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if !s.validToken(r) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Logger.Warn("WebSocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	logging.Logger.Debug("Preview page connected", "remote_addr", r.RemoteAddr)

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.Logger.Warn("WebSocket read failed", "error", err)
			}
			return
		}

		var msg InboundMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			logging.Logger.Warn("Invalid bridge message", "error", err)
			continue
		}

		if msg.Type != MessageSaveHTML {
			logging.Logger.Info("Ignoring bridge message", "type", msg.Type)
			continue
		}

		reply := s.handleSave(r.Context(), msg)
		if err := conn.WriteJSON(reply); err != nil {
			logging.Logger.Warn("WebSocket write failed", "error", err)
			return
		}
	}
}

// handleSave asks for a destination and exports. Requests from several
// tabs are handled one at a time.
func (s *Server) handleSave(ctx context.Context, msg InboundMessage) OutboundMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	dest, err := s.destination(ctx)
	if errors.Is(err, domain.ErrSelectionCanceled) {
		return OutboundMessage{Type: MessageCanceled}
	}
	if err != nil {
		s.reportFailure(err)
		return OutboundMessage{Type: MessageError, Message: err.Error()}
	}

	result := s.exporter.Export(ctx, services.ExportRequest{
		Body:        msg.HTML,
		Destination: dest,
		Document:    s.cfg.Document,
		Options:     domain.ExportOptions{IncludeFileList: msg.Options.GenerateFileList},
		Selection:   s.cfg.Selection,
	})
	if err := result.Err(); err != nil {
		s.reportFailure(err)
		return OutboundMessage{Type: MessageError, Message: err.Error()}
	}

	ui.Notify(s.notices, ui.NoticeSuccess, fmt.Sprintf("Report saved to %s", result.Path))
	return OutboundMessage{Type: MessageSaved, Path: result.Path}
}

// reportFailure shows a failed save in the terminal as well as in the page
func (s *Server) reportFailure(err error) {
	logging.Logger.Error("Preview export failed", "error", err)
	ui.Notify(s.notices, ui.NoticeError, err.Error())
}

// destination returns the export path. Relative answers are resolved
// against the directory of the default destination.
func (s *Server) destination(ctx context.Context) (string, error) {
	def := s.exporter.DefaultDestination()
	if s.cfg.AssumeYes || s.prompter == nil {
		return def, nil
	}

	answer, err := s.prompter.Input(ctx, DestinationTitle, def, def, func(v string) error {
		if v == "" {
			return fmt.Errorf("destination cannot be empty")
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", domain.ErrSelectionCanceled
	}
	answer = config.ExpandPath(answer)
	if !filepath.IsAbs(answer) {
		answer = filepath.Join(filepath.Dir(def), answer)
	}
	return answer, nil
}
