//go:build darwin

package mkuuid

import (
	"context"
	"errors"
	"testing"
)

// stubExecutor returns a fixed output for every command.
type stubExecutor struct {
	output string
	err    error
	calls  []string
}

func (s *stubExecutor) Execute(_ context.Context, name string, _ ...string) (string, error) {
	s.calls = append(s.calls, name)

	return s.output, s.err
}

func TestDarwinUsesUUIDGen(t *testing.T) {
	exec := &stubExecutor{output: "7dc75063-2639-40f9-af00-0b2ddcd3cb62"}

	got, err := New().WithExecutor(exec).String(context.Background())
	if err != nil {
		t.Fatalf("String() error: %v", err)
	}
	if got != StubUUID {
		t.Errorf("String() = %q, want %q", got, StubUUID)
	}
	if len(exec.calls) != 1 || exec.calls[0] != "uuidgen" {
		t.Errorf("calls = %v, want [uuidgen]", exec.calls)
	}
}

func TestDarwinUUIDGenFailure(t *testing.T) {
	exec := &stubExecutor{err: errors.New("exit status 1")}

	buf := make([]byte, Size)
	if err := New().WithExecutor(exec).Generate(context.Background(), buf); err == nil {
		t.Fatal("Expected error when uuidgen fails")
	}
	if buf[0] != 0 {
		t.Error("buffer written on failure")
	}
}
