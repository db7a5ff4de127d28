package window

import (
	"errors"
	"testing"
)

// #region prefix-fill-tests

func TestPrefixFillStepCount(t *testing.T) {
	steps, err := PrefixFillSteps([]rune("bac"), 5, Empty)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}
	for j, step := range steps {
		if len(step.Window) != 5 {
			t.Fatalf("step %d: window length %d, want 5", j, len(step.Window))
		}
	}
}

func TestPrefixFillWindows(t *testing.T) {
	// Worked example: vocabulary {a,b,c}, L=3, substring "bac".
	steps, err := PrefixFillSteps([]rune("bac"), 3, Empty)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []struct {
		window Window
		target rune
	}{
		{Window{Empty, Empty, Empty}, 'b'},
		{Window{Empty, Empty, 'b'}, 'a'},
		{Window{Empty, 'b', 'a'}, 'c'},
	}

	for j, want := range expected {
		got := steps[j]
		if got.Target != want.target {
			t.Fatalf("step %d: target %q, want %q", j, got.Target, want.target)
		}
		for tt := range want.window {
			if got.Window[tt] != want.window[tt] {
				t.Fatalf("step %d slot %d: got %q, want %q", j, tt, got.Window[tt], want.window[tt])
			}
		}
	}
}

func TestPrefixFillTrailingSlots(t *testing.T) {
	s := []rune("hello")
	steps, err := PrefixFillSteps(s, 8, Empty)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for j, step := range steps {
		// Exactly j trailing slots hold s[0:j]; the rest are empty.
		for t2 := 0; t2 < 8-j; t2++ {
			if step.Window[t2] != Empty {
				t.Fatalf("step %d slot %d: expected empty, got %q", j, t2, step.Window[t2])
			}
		}
		for k := 0; k < j; k++ {
			if step.Window[8-j+k] != s[k] {
				t.Fatalf("step %d: trailing slot %d holds %q, want %q", j, k, step.Window[8-j+k], s[k])
			}
		}
	}
}

func TestPrefixFillBlankRune(t *testing.T) {
	steps, err := PrefixFillSteps([]rune("ab"), 4, ' ')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if steps[0].Window[0] != ' ' {
		t.Fatalf("expected blank rune in unfilled slot, got %q", steps[0].Window[0])
	}
	if steps[1].Window[3] != 'a' {
		t.Fatalf("expected 'a' in trailing slot, got %q", steps[1].Window[3])
	}
}

func TestPrefixFillContextTooShort(t *testing.T) {
	if _, err := PrefixFillSteps([]rune("abcdef"), 3, Empty); err == nil {
		t.Fatal("expected error for substring longer than context length")
	}
}

// #endregion prefix-fill-tests

// #region sliding-tests

func TestSlidingWindowsFullyPopulated(t *testing.T) {
	context := []rune("wxyz")
	s := []rune("abc")
	steps, err := SlidingSteps(s, context, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}
	for j, step := range steps {
		for t2, r := range step.Window {
			if r == Empty {
				t.Fatalf("step %d slot %d: sliding windows must never have empty slots", j, t2)
			}
		}
	}
}

func TestSlidingWindowsMatchPrecedingText(t *testing.T) {
	context := []rune("wxyz")
	s := []rune("abc")
	steps, err := SlidingSteps(s, context, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []struct {
		window string
		target rune
	}{
		{"wxyz", 'a'},
		{"xyza", 'b'},
		{"yzab", 'c'},
	}
	for j, want := range expected {
		if string(steps[j].Window) != want.window {
			t.Fatalf("step %d: window %q, want %q", j, string(steps[j].Window), want.window)
		}
		if steps[j].Target != want.target {
			t.Fatalf("step %d: target %q, want %q", j, steps[j].Target, want.target)
		}
	}
}

func TestSlidingInsufficientContext(t *testing.T) {
	_, err := SlidingSteps([]rune("abc"), []rune("xy"), 4)
	if !errors.Is(err, ErrInsufficientContext) {
		t.Fatalf("expected ErrInsufficientContext, got %v", err)
	}
}

// #endregion sliding-tests

// #region dispatcher-tests

func TestStepsDispatch(t *testing.T) {
	s := []rune("ab")
	context := []rune("cdef")

	prefix, err := Steps(PolicyPrefixFill, s, context, 4, Empty)
	if err != nil {
		t.Fatalf("prefix dispatch: %v", err)
	}
	if prefix[0].Window[3] != Empty {
		t.Fatal("prefix-fill step 0 should have an empty trailing slot")
	}

	sliding, err := Steps(PolicySlidingWindow, s, context, 4, Empty)
	if err != nil {
		t.Fatalf("sliding dispatch: %v", err)
	}
	if string(sliding[0].Window) != "cdef" {
		t.Fatalf("sliding step 0 window %q, want %q", string(sliding[0].Window), "cdef")
	}

	if _, err := Steps(Policy("bogus"), s, context, 4, Empty); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("prefix_fill")
	if err != nil || p != PolicyPrefixFill {
		t.Fatalf("parse prefix_fill: %v %v", p, err)
	}
	p, err = ParsePolicy("sliding_window")
	if err != nil || p != PolicySlidingWindow {
		t.Fatalf("parse sliding_window: %v %v", p, err)
	}
	if _, err := ParsePolicy("markov"); err == nil {
		t.Fatal("expected error for unknown policy name")
	}
}

// #endregion dispatcher-tests
