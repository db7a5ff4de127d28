package window

import (
	"errors"
	"fmt"
)

// #region errors

// ErrInsufficientContext signals that the sliding-window policy was
// asked to window a sample with fewer preceding characters than the
// context length. Such samples are excluded from evaluation, never
// padded with fabricated context.
var ErrInsufficientContext = errors.New("insufficient preceding context")

// #endregion errors

// #region parse-policy

// ParsePolicy validates a policy name from config or the CLI.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyPrefixFill, PolicySlidingWindow:
		return Policy(s), nil
	}
	return "", fmt.Errorf("unknown windowing policy %q", s)
}

// #endregion parse-policy

// #region prefix-fill

// PrefixFillSteps decomposes s into one WindowedStep per character.
// Step j's window of length contextLen holds s[0:j] in its trailing j
// slots; everything before is Empty, or the blank rune when one is
// configured (pass Empty for none). Target for step j is s[j].
func PrefixFillSteps(s []rune, contextLen int, blank rune) ([]WindowedStep, error) {
	if contextLen < len(s) {
		return nil, fmt.Errorf("context length %d shorter than substring length %d", contextLen, len(s))
	}

	steps := make([]WindowedStep, len(s))
	for j := range s {
		win := make(Window, contextLen)
		for t := 0; t < contextLen-j; t++ {
			win[t] = blank
		}
		copy(win[contextLen-j:], s[:j])
		steps[j] = WindowedStep{Window: win, Target: s[j]}
	}
	return steps, nil
}

// #endregion prefix-fill

// #region sliding-window

// SlidingSteps decomposes s into one WindowedStep per character, each
// window holding the contextLen characters immediately preceding the
// target within context+s. Every slot holds a real character, so
// len(context) >= contextLen is required (the step-0 window is the
// binding case); otherwise ErrInsufficientContext.
func SlidingSteps(s, context []rune, contextLen int) ([]WindowedStep, error) {
	if len(context) < contextLen {
		return nil, fmt.Errorf("%w: have %d characters, need %d", ErrInsufficientContext, len(context), contextLen)
	}

	// Logical position of s[j] in the combined text is len(context)+j.
	combined := make([]rune, 0, len(context)+len(s))
	combined = append(combined, context...)
	combined = append(combined, s...)

	steps := make([]WindowedStep, len(s))
	for j := range s {
		pos := len(context) + j
		win := make(Window, contextLen)
		copy(win, combined[pos-contextLen:pos])
		steps[j] = WindowedStep{Window: win, Target: s[j]}
	}
	return steps, nil
}

// #endregion sliding-window

// #region dispatcher

// Steps builds the WindowedSteps for s under the given policy. The
// context argument is only consulted by the sliding-window policy; the
// blank rune only by prefix-fill.
func Steps(policy Policy, s, context []rune, contextLen int, blank rune) ([]WindowedStep, error) {
	switch policy {
	case PolicyPrefixFill:
		return PrefixFillSteps(s, contextLen, blank)
	case PolicySlidingWindow:
		return SlidingSteps(s, context, contextLen)
	}
	return nil, fmt.Errorf("unknown windowing policy %q", policy)
}

// #endregion dispatcher
