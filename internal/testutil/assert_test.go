package testutil

import (
	"fmt"
	"testing"

	chesserrors "github.com/lgbarn/chess-engine-go/internal/errors"
)

// Only success paths are exercised here; a failing assertion would fail
// this test too.

func TestAssertHelpers_Success(t *testing.T) {
	AssertEqual(t, "e2e4", "e2e4")
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3}, "slice of %d", 3)
	AssertNoError(t, nil)
	AssertErrorIs(t, fmt.Errorf("ctx: %w", chesserrors.ErrInvalidFEN), chesserrors.ErrInvalidFEN)
	AssertContains(t, "White Knight", "Knight")
	AssertTrue(t, true)
	AssertFalse(t, false)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"ply %d", 3}, "ply 3"},
		{"format multiple", []interface{}{"%s-%s", "e2", "e4"}, "e2-e4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestPrefix(t *testing.T) {
	if got := prefix(); got != "" {
		t.Errorf("prefix() = %q, want empty", got)
	}
	if got := prefix("move %s", "e2e4"); got != "move e2e4: " {
		t.Errorf("prefix() = %q", got)
	}
}
