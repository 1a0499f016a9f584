package repository

import (
	"errors"
	"strings"
	"testing"
)

// TestBatchError verifies message content and unwrapping
func TestBatchError(t *testing.T) {
	cause := errors.New("deadline exceeded")
	err := &BatchError{Batch: 2, Committed: 200, Err: cause}

	if !errors.Is(err, cause) {
		t.Error("cause not reachable via errors.Is")
	}
	msg := err.Error()
	if !strings.Contains(msg, "batch 2") || !strings.Contains(msg, "200") {
		t.Errorf("message missing batch context: %q", msg)
	}
}
