package api

// Strategy is responsible for merging the own entries of a list of sources into a target record.
type Strategy interface {
	// Label returns a short descriptive label of this strategy.
	Label() string

	// Name returns the name of this strategy
	Name() string

	// Merge merges the given sources, from left to right, into the target and returns the target. Nil
	// sources are skipped. The explainer is optional and will, when not nil, receive information about
	// each entry that was accepted or rejected.
	Merge(target Record, sources []Record, explainer Explainer) Record
}

const (
	// StrategyExtend names the strategy that copies all own entries of each source into the target
	StrategyExtend = `extend`

	// StrategyAugment names the strategy that only fills entries that are missing or nil in the target
	StrategyAugment = `augment`

	// StrategyOverride names the strategy that only replaces entries that are members of the target
	StrategyOverride = `override`
)
