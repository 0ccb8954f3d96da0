package opener

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/renato0307/diffreport/internal/logging"
	"github.com/renato0307/diffreport/internal/ports"
)

// Opener implements ports.Opener
type Opener struct {
	// start launches the handler; replaced in tests
	start func(name string, args ...string) error
}

// Verify interface compliance at compile time
var _ ports.Opener = (*Opener)(nil)

// NewOpener creates a new browser/file opener
func NewOpener() *Opener {
	return &Opener{start: startDetached}
}

// Open opens a URL or file with the user's browser
// Priority: $DIFFREPORT_BROWSER → $BROWSER → platform default
func (o *Opener) Open(target string) error {
	if target == "" {
		return fmt.Errorf("no target provided")
	}

	name, args := findHandler(target)
	logging.Logger.Info("Opening in browser", "handler", name, "target", target)

	if err := o.start(name, args...); err != nil {
		return fmt.Errorf("failed to open %s: %w", target, err)
	}
	return nil
}

func findHandler(target string) (string, []string) {
	if browser := os.Getenv("DIFFREPORT_BROWSER"); browser != "" {
		return browser, []string{target}
	}
	if browser := os.Getenv("BROWSER"); browser != "" {
		return browser, []string{target}
	}
	return platformHandler(target)
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return err
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			logging.Logger.Warn("Browser handler exited with error", "error", err, "handler", name)
		}
	}()

	return nil
}
