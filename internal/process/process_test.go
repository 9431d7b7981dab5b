package process

import (
	"errors"
	"testing"
)

func TestKillTree_InvalidPID(t *testing.T) {
	t.Parallel()

	// Zero and negative PIDs would address the caller's own group.
	for _, pid := range []int{0, -1, -4242} {
		if err := KillTree(pid); !errors.Is(err, ErrInvalidPID) {
			t.Errorf("KillTree(%d) = %v, want ErrInvalidPID", pid, err)
		}
	}
}
