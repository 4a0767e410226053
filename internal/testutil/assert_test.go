package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Failing assertions cannot be observed without a fake *testing.T,
// so these exercise the passing paths and the message formatting.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "e4", "e4")
	AssertEqual(t, chess.NewSquare(4, 3), chess.NewSquare(4, 3))
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3}, "value should be %d", 42)
}

func TestAssertSameSquares(t *testing.T) {
	got := Squares(t, "e4", "e3")
	want := Squares(t, "e3", "e4")
	AssertSameSquares(t, got, want)
	AssertSameSquares(t, nil, []chess.Square{})
}

func TestAssertErrors_Success(t *testing.T) {
	sentinel := errors.New("sentinel")
	AssertNoError(t, nil)
	AssertError(t, sentinel, "expected error from %s", "operation")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", sentinel), sentinel)
}

func TestAssertBools_Success(t *testing.T) {
	AssertTrue(t, len("hello") == 5)
	AssertFalse(t, len("hello") == 0)
	AssertContains(t, "hello world", "world")
}

func TestFixtures(t *testing.T) {
	AssertEqual(t, Sq(t, "h8"), chess.NewSquare(7, 7))
	m := Mv(t, "e7e8q")
	AssertEqual(t, m.Promotion, chess.Queen)
	AssertEqual(t, len(Mvs(t, FoolsMateLine)), 4)
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
		{"format string", []interface{}{"square %s", "e4"}, "square e4"},
		{"format multiple", []interface{}{"%s %d %s", "test", 42, "end"}, "test 42 end"},
		{"non-string first", []interface{}{7, "ignored"}, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMessage(tt.args...)
			if got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
