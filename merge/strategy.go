package merge

import (
	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/objx/api"
)

type (
	extendStrategy struct{}

	augmentStrategy struct{}

	overrideStrategy struct{}
)

// StrategyNames returns the names of all strategies known to GetStrategy.
func StrategyNames() []string {
	return []string{api.StrategyExtend, api.StrategyAugment, api.StrategyOverride}
}

// GetStrategy returns the api.Strategy that corresponds to the given name. An empty name yields the
// extend strategy. A panic is raised if the name is unknown.
func GetStrategy(n string) api.Strategy {
	switch n {
	case ``, api.StrategyExtend:
		return &extendStrategy{}
	case api.StrategyAugment:
		return &augmentStrategy{}
	case api.StrategyOverride:
		return &overrideStrategy{}
	default:
		panic(api.Error(api.UnknownStrategy, issue.H{`name`: n, `names`: StrategyNames()}))
	}
}

func (s *extendStrategy) Name() string {
	return api.StrategyExtend
}

func (s *extendStrategy) Label() string {
	return `extend strategy`
}

func (s *extendStrategy) Merge(target api.Record, sources []api.Record, explainer api.Explainer) api.Record {
	return mergeAll(target, sources, nil, explainer)
}

func (s *augmentStrategy) Name() string {
	return api.StrategyAugment
}

func (s *augmentStrategy) Label() string {
	return `augment strategy`
}

func (s *augmentStrategy) Merge(target api.Record, sources []api.Record, explainer api.Explainer) api.Record {
	return mergeAll(target, sources, missing, explainer)
}

func (s *overrideStrategy) Name() string {
	return api.StrategyOverride
}

func (s *overrideStrategy) Label() string {
	return `override strategy`
}

func (s *overrideStrategy) Merge(target api.Record, sources []api.Record, explainer api.Explainer) api.Record {
	return mergeAll(target, sources, member, explainer)
}
