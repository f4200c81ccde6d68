package agentmanager

import (
	"os/exec"
	"syscall"
	"time"
)

// terminationGrace is the fixed period a terminated child is given to exit
// on its own before being force-killed, per spec.md §4.5.
const terminationGrace = 2 * time.Second

// childProcess wraps an *exec.Cmd as a state.ProcessHandle: Terminate sends
// SIGTERM, races a grace period against the child's own exit, and
// force-kills if the grace period elapses. It never blocks the caller --
// termination runs on its own goroutine, matching the "never block the
// health loop on a single child indefinitely" requirement.
type childProcess struct {
	cmd    *exec.Cmd
	exited chan struct{}
}

func startChildProcess(cmd *exec.Cmd) (*childProcess, error) {
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	cp := &childProcess{cmd: cmd, exited: make(chan struct{})}
	go func() {
		_ = cmd.Wait()
		close(cp.exited)
	}()
	return cp, nil
}

// HasExited reports whether the child has already exited, without
// blocking. Used by the health loop's non-blocking exit-status poll.
func (c *childProcess) HasExited() bool {
	select {
	case <-c.exited:
		return true
	default:
		return false
	}
}

// Terminate implements state.ProcessHandle. It is idempotent: calling it
// more than once, or after the child has already exited, is a no-op beyond
// the redundant signal delivery attempt.
func (c *childProcess) Terminate() {
	go func() {
		if c.HasExited() {
			return
		}
		_ = c.cmd.Process.Signal(syscall.SIGTERM)

		select {
		case <-c.exited:
			return
		case <-time.After(terminationGrace):
		}

		if !c.HasExited() {
			_ = c.cmd.Process.Kill()
		}
	}()
}
