package window

// #region empty

// Empty marks a window slot that asserts no character. Encoded as the
// all-zero row. U+0000 never appears in text corpora, so it is safe
// as the sentinel.
const Empty rune = 0

// #endregion empty

// #region policy

// Policy selects how context windows are assembled from a substring.
// A run must use exactly one policy for both language models; mixing
// policies makes the log-probability comparison meaningless.
type Policy string

const (
	// PolicyPrefixFill anchors every window at the substring's own
	// start and leaves unavailable left context empty. The resulting
	// score is the log of a single joint probability
	// P(s | start-of-sequence).
	PolicyPrefixFill Policy = "prefix_fill"

	// PolicySlidingWindow fills every window with the real characters
	// preceding the target in the source text, including characters
	// from before the substring. Every slot is populated, which the
	// predictor handles better in practice, but the per-step terms
	// condition on shifting contexts, so the sum is not a coherent
	// joint probability. Retained for its empirical accuracy.
	PolicySlidingWindow Policy = "sliding_window"
)

// #endregion policy

// #region window

// Window is a fixed-length sequence of character slots. A slot holds
// either one vocabulary character or Empty. Length always equals the
// context length the predictor was built for.
type Window []rune

// WindowedStep pairs the window presented to the predictor with the
// character whose conditional probability is read off the returned
// distribution.
type WindowedStep struct {
	Window Window
	Target rune
}

// #endregion window
