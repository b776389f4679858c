package api

// An Explainer collects information about a merge and can present it in the form of a human readable
// explanation.
type Explainer interface {
	// Accepted accepts information that the entry for the given key in the source at the given
	// index was written to the target
	Accepted(key string, sourceIndex int)

	// Rejected accepts information that the entry for the given key in the source at the given
	// index was left out by the merge strategy
	Rejected(key string, sourceIndex int)

	// Skipped accepts information that the source at the given index was nil
	Skipped(sourceIndex int)
}
