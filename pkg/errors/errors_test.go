package errors

import (
	"errors"
	"testing"
)

var errBoom = errors.New("boom")

func TestWrapWithCodeKeepsChain(t *testing.T) {
	err := WrapWithCode(errBoom, "getStories", "bridge call failed")

	if !Is(err, errBoom) {
		t.Fatalf("expected wrapped error to match errBoom")
	}
	if got := GetCode(err); got != "getStories" {
		t.Fatalf("expected code getStories, got %q", got)
	}
	if got := err.Error(); got != "bridge call failed: boom" {
		t.Fatalf("unexpected error string %q", got)
	}
}

func TestWrapNil(t *testing.T) {
	if WrapWithCode(nil, "c", "x") != nil {
		t.Fatalf("WrapWithCode(nil) must stay nil")
	}
}

func TestGetCodeOnPlainError(t *testing.T) {
	if got := GetCode(errBoom); got != "" {
		t.Fatalf("expected empty code, got %q", got)
	}
}
