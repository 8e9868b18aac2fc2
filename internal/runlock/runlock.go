// Package runlock implements the advisory lock marker that keeps pipeline
// executions from overlapping. The marker's first token is the owner PID;
// a lock is active only while that process is alive. A marker owned by a
// dead process is stale and is reclaimed on the next check.
package runlock

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"syscall"

	log "github.com/sirupsen/logrus"
)

type Status int

const (
	Free Status = iota
	Held
)

type ownerState int

const (
	ownerAlive ownerState = iota
	ownerDead
	ownerUnknown
)

// Lock is a handle on the marker file. It carries no in-memory state: every
// check re-reads the marker, so any process can arbitrate.
type Lock struct {
	path  string
	probe func(pid int) ownerState
}

func New(path string) *Lock {
	return &Lock{path: path, probe: probePID}
}

// Check reports whether a run is currently active. Anything unreadable or
// unparseable about the marker is treated as Held; only a definitively
// dead owner frees the lock, at which point the stale marker is removed.
func (l *Lock) Check() Status {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Free
		}
		return Held
	}

	contents := strings.TrimSpace(string(data))
	if contents == "" {
		return Held
	}
	pid, err := strconv.Atoi(strings.Fields(contents)[0])
	if err != nil {
		return Held
	}

	if l.probe(pid) != ownerDead {
		return Held
	}

	log.Infof("removing stale lock marker owned by dead process %d", pid)
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		log.Warnf("failed to remove stale lock marker: %v", err)
	}
	return Free
}

// Claim writes the marker naming pid as the owner. The caller must have
// established that the lock is free.
func (l *Lock) Claim(pid int) error {
	return os.WriteFile(l.path, []byte(strconv.Itoa(pid)+"\n"), 0644)
}

// Acquire claims the lock for pid if it is free, or confirms an existing
// claim already naming pid. It reports false when another live run holds
// the lock.
func (l *Lock) Acquire(pid int) (bool, error) {
	if owner, ok := l.owner(); ok && owner == pid {
		return true, nil
	}
	if l.Check() == Held {
		return false, nil
	}
	if err := l.Claim(pid); err != nil {
		return false, err
	}
	return true, nil
}

// Release removes the marker if pid still owns it. Releasing a lock that
// was never claimed, or was reclaimed by someone else, is a no-op.
func (l *Lock) Release(pid int) {
	owner, ok := l.owner()
	if !ok || owner != pid {
		return
	}
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		log.Warnf("failed to remove lock marker: %v", err)
	}
}

func (l *Lock) owner() (int, bool) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return 0, false
	}
	fields := strings.Fields(strings.TrimSpace(string(data)))
	if len(fields) == 0 {
		return 0, false
	}
	pid, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, false
	}
	return pid, true
}

// probePID is a signal-0 liveness probe. EPERM means the process exists
// but belongs to someone else, so the owner counts as alive.
func probePID(pid int) ownerState {
	proc, err := os.FindProcess(pid)
	if err != nil {
		return ownerUnknown
	}
	err = proc.Signal(syscall.Signal(0))
	switch {
	case err == nil:
		return ownerAlive
	case errors.Is(err, os.ErrProcessDone), errors.Is(err, syscall.ESRCH):
		return ownerDead
	case errors.Is(err, syscall.EPERM):
		return ownerAlive
	default:
		return ownerUnknown
	}
}
