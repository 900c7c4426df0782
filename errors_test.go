package distprobe

import (
	"errors"
	"fmt"
	"testing"
)

func TestCommandErrorMessage(t *testing.T) {
	inner := fmt.Errorf("exit status 1")
	err := &CommandError{Command: "vendor/bin/e1", Err: inner}

	want := `command "vendor/bin/e1" failed: exit status 1`
	if err.Error() != want {
		t.Errorf("CommandError.Error() = %q, want %q", err.Error(), want)
	}
}

func TestCommandErrorUnwrap(t *testing.T) {
	inner := fmt.Errorf("exit status 1")
	err := &CommandError{Command: "vendor/bin/e1", Err: inner}

	if err.Unwrap() != inner {
		t.Error("CommandError.Unwrap() did not return inner error")
	}
}

func TestCommandErrorAs(t *testing.T) {
	inner := fmt.Errorf("exit status 1")
	err := fmt.Errorf("running fixture: %w", &CommandError{Command: "vendor/bin/e1", Err: inner})

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatal("errors.As() should find CommandError in wrapped chain")
	}

	if cmdErr.Command != "vendor/bin/e1" {
		t.Errorf("CommandError.Command = %q, want %q", cmdErr.Command, "vendor/bin/e1")
	}
}

func TestParseErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "with line number",
			err:  &ParseError{Line: 3, Text: "bogus", Err: ErrMalformedLine},
			want: `line 3: "bogus": malformed diagnostic line`,
		},
		{
			name: "without line number",
			err:  &ParseError{Text: "a.b = 2", Err: ErrBadValue},
			want: `"a.b = 2": diagnostic value must be 0 or 1`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ParseError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseErrorIs(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &ParseError{Line: 1, Text: "x", Err: ErrMalformedLine})

	if !errors.Is(err, ErrMalformedLine) {
		t.Error("errors.Is() should find ErrMalformedLine through ParseError")
	}
}

func TestCheckErrorMessage(t *testing.T) {
	err := &CheckError{Key: "e2e.dist.exe-install-to-bin", Err: ErrCheckFailed}

	want := `key "e2e.dist.exe-install-to-bin": check reported 0`
	if err.Error() != want {
		t.Errorf("CheckError.Error() = %q, want %q", err.Error(), want)
	}
}

func TestCheckErrorAsInJoined(t *testing.T) {
	err := errors.Join(
		&CheckError{Key: "a.b", Err: ErrMissingKey},
		&CheckError{Key: "a.c", Err: ErrCheckFailed},
	)

	var checkErr *CheckError
	if !errors.As(err, &checkErr) {
		t.Fatal("errors.As() should find CheckError in joined error")
	}
	if !errors.Is(err, ErrMissingKey) || !errors.Is(err, ErrCheckFailed) {
		t.Error("errors.Is() should find both sentinels in joined error")
	}
}
