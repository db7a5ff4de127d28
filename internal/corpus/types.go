package corpus

// #region sample

// Sample is one labeled evaluation unit: the substring being
// classified, the characters that preceded it in the source text
// (consumed only by the sliding-window policy), and the true language
// label. Constructed once per evaluation run and read-only thereafter.
type Sample struct {
	Substring []rune
	Context   []rune
	Label     int
}

// #endregion sample
