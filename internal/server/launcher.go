package server

import (
	"context"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

// ErrLauncherMissing means the configured runner executable does not exist;
// a trigger request gets an error outcome, not a crash.
var ErrLauncherMissing = errors.New("launcher not found")

// Launcher starts one detached pipeline execution and reports its PID.
// The execution's completion is never awaited here.
type Launcher interface {
	Start(ctx context.Context) (pid int, err error)
}

type execLauncher struct {
	path string
}

// NewExecLauncher launches the configured runner executable. The child is
// reaped in the background so finished runs do not linger as zombies.
func NewExecLauncher(path string) Launcher {
	return &execLauncher{path: path}
}

func (l *execLauncher) Start(ctx context.Context) (int, error) {
	if _, err := os.Stat(l.path); err != nil {
		return 0, ErrLauncherMissing
	}

	cmd := exec.Command(l.path)
	if err := cmd.Start(); err != nil {
		return 0, errors.Wrap(err, "start launcher")
	}

	pid := cmd.Process.Pid
	go func() {
		_ = cmd.Wait()
	}()
	return pid, nil
}
