//go:build !windows

package process

import (
	"errors"
	"os/exec"
	"syscall"
	"testing"
)

func TestKillTree_GroupLeader(t *testing.T) {
	t.Parallel()

	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	// The shell leads a fresh group and forks a child into it.
	cmd := exec.Command(sh, "-c", "sleep 60 & wait")
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	if err := cmd.Start(); err != nil {
		t.Fatalf("starting group: %v", err)
	}

	if err := KillTree(cmd.Process.Pid); err != nil {
		t.Fatalf("KillTree() = %v", err)
	}

	err = cmd.Wait()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Wait() = %v, want exit error", err)
	}
	status, ok := exitErr.Sys().(syscall.WaitStatus)
	if !ok || !status.Signaled() || status.Signal() != syscall.SIGKILL {
		t.Errorf("process state = %v, want killed by SIGKILL", exitErr.ProcessState)
	}

	// The group is gone now.
	if err := KillTree(cmd.Process.Pid); err != nil {
		t.Errorf("KillTree() on exited group = %v, want nil", err)
	}
}
