package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/renato0307/diffreport/internal/domain"
	"github.com/renato0307/diffreport/internal/logging"
	"github.com/renato0307/diffreport/internal/ports"
)

// warningMarker in stderr marks advisory output that does not fail a run
const warningMarker = "warning:"

// CLIDiffRunner implements ports.DiffRunner by running the git binary
type CLIDiffRunner struct {
	command string
	env     []string
	prefix  []string
}

// Verify interface compliance at compile time
var _ ports.DiffRunner = (*CLIDiffRunner)(nil)

// NewCLIDiffRunner creates a runner that executes "git" from PATH
func NewCLIDiffRunner() *CLIDiffRunner {
	return &CLIDiffRunner{command: "git"}
}

// Run implements ports.DiffRunner.Run.
// The child is not bound to ctx: once started it runs to completion and only
// the output cap bounds it.
func (r *CLIDiffRunner) Run(ctx context.Context, rootPath, encoding string, maxOutputBytes int64, args []string) domain.DiffOutcome {
	argv := make([]string, 0, len(r.prefix)+len(args)+1)
	argv = append(argv, r.prefix...)
	argv = append(argv, "diff")
	argv = append(argv, args...)

	logging.Logger.Debug("Running git diff", "dir", rootPath, "args", args, "encoding", encoding, "max_bytes", maxOutputBytes)

	stdout := &cappedBuffer{limit: maxOutputBytes}
	stderr := &cappedBuffer{limit: maxOutputBytes}

	cmd := exec.Command(r.command, argv...)
	cmd.Dir = rootPath
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if len(r.env) > 0 {
		cmd.Env = append(os.Environ(), r.env...)
	}

	err := cmd.Run()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		logging.Logger.Error("Failed to start git diff", "error", err)
		return domain.CommandFailed(fmt.Sprintf("failed to run git: %v", err))
	}
	if exitErr != nil {
		// Exit status alone never decides the outcome
		logging.Logger.Debug("git diff exited with non-zero status", "code", exitErr.ExitCode())
	}

	if stdout.exceeded || stderr.exceeded {
		logging.Logger.Warn("git diff output exceeded limit", "limit", maxOutputBytes)
		return domain.CommandFailed(fmt.Sprintf("output exceeds the configured limit of %s (max_diff_output_bytes)",
			humanize.IBytes(uint64(maxOutputBytes))))
	}

	outText, errText, err := decode(encoding, stdout.Bytes(), stderr.Bytes())
	if err != nil {
		logging.Logger.Error("Failed to decode git diff output", "encoding", encoding, "error", err)
		return domain.CommandFailed(err.Error())
	}

	if stderr.Len() > 0 && !strings.Contains(errText, warningMarker) {
		logging.Logger.Warn("git diff reported an error", "stderr", errText)
		return domain.CommandFailed(strings.TrimSpace(errText))
	}
	if stderr.Len() > 0 {
		logging.Logger.Info("git diff reported warnings", "stderr", errText)
	}

	if stdout.Len() == 0 {
		logging.Logger.Info("git diff produced no output")
		return domain.NoChanges()
	}

	logging.Logger.Debug("git diff succeeded", "bytes", stdout.Len())
	return domain.Success(outText)
}

// decode converts captured bytes with the named encoding (WHATWG labels)
func decode(encoding string, stdout, stderr []byte) (string, string, error) {
	enc, err := htmlindex.Get(encoding)
	if err != nil {
		return "", "", fmt.Errorf("unknown encoding %q: %w", encoding, err)
	}

	out, err := enc.NewDecoder().Bytes(stdout)
	if err != nil {
		return "", "", fmt.Errorf("failed to decode output as %s: %w", encoding, err)
	}
	errOut, err := enc.NewDecoder().Bytes(stderr)
	if err != nil {
		return "", "", fmt.Errorf("failed to decode error output as %s: %w", encoding, err)
	}
	return string(out), string(errOut), nil
}

// cappedBuffer keeps at most limit bytes and silently drains the rest,
// so the child never blocks on a full pipe after the cap is hit.
type cappedBuffer struct {
	bytes.Buffer
	exceeded bool
	limit    int64
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	if b.exceeded {
		return len(p), nil
	}
	remaining := b.limit - int64(b.Buffer.Len())
	if int64(len(p)) > remaining {
		b.exceeded = true
		b.Buffer.Reset()
		return len(p), nil
	}
	return b.Buffer.Write(p)
}
