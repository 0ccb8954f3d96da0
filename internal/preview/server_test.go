package preview

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/diffreport/internal/domain"
	portsmocks "github.com/renato0307/diffreport/internal/ports/mocks"
	"github.com/renato0307/diffreport/internal/report"
	"github.com/renato0307/diffreport/internal/services"
)

type previewFixture struct {
	notices  *syncBuffer
	prompter *portsmocks.MockPrompter
	root     string
	server   *Server
	ts       *httptest.Server
}

// syncBuffer collects terminal notices written by the server goroutines
type syncBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newPreviewFixture(t *testing.T, assumeYes bool) *previewFixture {
	t.Helper()
	root := t.TempDir()
	prompter := portsmocks.NewMockPrompter(t)
	exporter := services.NewExportService(report.NewAssembler(domain.ResourcesInlined, "", false), nil, root)

	server, err := NewServer(Config{
		Address:    "127.0.0.1:0",
		AssumeYes:  assumeYes,
		Document:   domain.ReportDocument{HTMLBody: `<div class="d2h-wrapper">rendered</div>`, Counted: true, TotalAdded: 1},
		Selection:  domain.Selection{Base: domain.HeadOption{}, Current: domain.StagedOption{}},
		Stylesheet: []byte(".d2h-wrapper{}"),
	}, exporter, prompter)
	require.NoError(t, err)
	notices := &syncBuffer{}
	server.notices = notices

	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)

	return &previewFixture{notices: notices, prompter: prompter, root: root, server: server, ts: ts}
}

func (f *previewFixture) dial(t *testing.T, token, origin string) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(f.ts.URL, "http") + "/ws?token=" + token
	header := http.Header{}
	if origin != "" {
		header.Set("Origin", origin)
	}
	return websocket.DefaultDialer.Dial(wsURL, header)
}

func (f *previewFixture) save(t *testing.T, msg InboundMessage) OutboundMessage {
	t.Helper()
	conn, _, err := f.dial(t, f.server.token, f.ts.URL)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(msg))
	var reply OutboundMessage
	require.NoError(t, conn.ReadJSON(&reply))
	return reply
}

func saveMessage(html string, fileList bool) InboundMessage {
	msg := InboundMessage{Type: MessageSaveHTML, HTML: html}
	msg.Options.GenerateFileList = fileList
	return msg
}

func TestPage_RequiresToken(t *testing.T) {
	f := newPreviewFixture(t, true)

	resp, err := http.Get(f.ts.URL + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, err = http.Get(f.ts.URL + "/?token=" + f.server.token)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "rendered")
	assert.Contains(t, string(body), `data-token="`+f.server.token+`"`)
	assert.Contains(t, string(body), "HEAD → --staged")
	assert.Contains(t, string(body), `id="diffOutput"`)
}

func TestAssets_Served(t *testing.T) {
	f := newPreviewFixture(t, true)

	resp, err := http.Get(f.ts.URL + "/assets/diffreport.css")
	require.NoError(t, err)
	css, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, ".d2h-wrapper{}", string(css))

	resp, err = http.Get(f.ts.URL + "/assets/preview.js")
	require.NoError(t, err)
	js, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(js), "saveHtml")
}

func TestWebSocket_RejectsBadTokenAndOrigin(t *testing.T) {
	f := newPreviewFixture(t, true)

	_, resp, err := f.dial(t, "wrong", f.ts.URL)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	_, resp, err = f.dial(t, f.server.token, "http://evil.example")
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	_, _, err = f.dial(t, f.server.token, "")
	assert.ErrorIs(t, err, websocket.ErrBadHandshake)
}

func TestSaveHTML_PromptsForDestination(t *testing.T) {
	f := newPreviewFixture(t, false)
	f.prompter.EXPECT().Input(mock.Anything, DestinationTitle, mock.Anything, mock.Anything, mock.Anything).
		Return("custom.html", nil)

	reply := f.save(t, saveMessage(`<div>posted</div>`, false))

	dest := filepath.Join(f.root, "custom.html")
	assert.Equal(t, OutboundMessage{Type: MessageSaved, Path: dest}, reply)
	content, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(content), "<div>posted</div>")
	assert.Contains(t, string(content), report.FileListSuppressionRule)
}

func TestSaveHTML_AssumeYesUsesDefaultDestination(t *testing.T) {
	f := newPreviewFixture(t, true)

	reply := f.save(t, saveMessage(`<div>posted</div>`, true))

	assert.Equal(t, MessageSaved, reply.Type)
	assert.Equal(t, f.root, filepath.Dir(reply.Path))
	assert.True(t, strings.HasPrefix(filepath.Base(reply.Path), "diff-report-"))
	content, err := os.ReadFile(reply.Path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), report.FileListSuppressionRule)
}

func TestSaveHTML_Canceled(t *testing.T) {
	f := newPreviewFixture(t, false)
	f.prompter.EXPECT().Input(mock.Anything, DestinationTitle, mock.Anything, mock.Anything, mock.Anything).
		Return("", domain.ErrSelectionCanceled)

	reply := f.save(t, saveMessage(`<div>posted</div>`, true))

	assert.Equal(t, OutboundMessage{Type: MessageCanceled}, reply)
}

func TestSaveHTML_WriteFailedKeepsConnection(t *testing.T) {
	f := newPreviewFixture(t, false)
	missing := filepath.Join(f.root, "missing", "out.html")
	f.prompter.EXPECT().Input(mock.Anything, DestinationTitle, mock.Anything, mock.Anything, mock.Anything).
		Return(missing, nil).Once()
	f.prompter.EXPECT().Input(mock.Anything, DestinationTitle, mock.Anything, mock.Anything, mock.Anything).
		Return("ok.html", nil).Once()

	conn, _, err := f.dial(t, f.server.token, f.ts.URL)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(saveMessage("<p>x</p>", true)))
	var reply OutboundMessage
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, MessageError, reply.Type)
	assert.Contains(t, reply.Message, missing)
	assert.Contains(t, f.notices.String(), "Error:")
	assert.Contains(t, f.notices.String(), "out.html")

	require.NoError(t, conn.WriteJSON(saveMessage("<p>x</p>", true)))
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, MessageSaved, reply.Type)
	assert.Contains(t, f.notices.String(), "Report saved to")
}

func TestWebSocket_IgnoresOtherMessages(t *testing.T) {
	f := newPreviewFixture(t, true)

	conn, _, err := f.dial(t, f.server.token, f.ts.URL)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	require.NoError(t, conn.WriteJSON(map[string]string{"type": "ping"}))
	require.NoError(t, conn.WriteJSON(saveMessage("<p>x</p>", true)))

	var reply OutboundMessage
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, MessageSaved, reply.Type)
}

func TestServer_ListenAndShutdown(t *testing.T) {
	f := newPreviewFixture(t, true)
	require.NoError(t, f.server.Listen())
	assert.True(t, strings.HasPrefix(f.server.URL(), "http://127.0.0.1:"))
	assert.Contains(t, f.server.URL(), "token="+f.server.token)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.server.Serve(ctx) }()

	resp, err := http.Get(f.server.URL())
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	assert.NoError(t, <-done)
}
