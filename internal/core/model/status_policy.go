package model

import (
	"github.com/pkg/errors"
)

const (
	StatusPolicyOpen       = "open"
	StatusPolicySequential = "sequential"
)

// StatusPolicy decides which story status transitions are accepted.
type StatusPolicy interface {
	Allows(from StoryStatus, to StoryStatus) bool
}

type StatusPolicyFunc func(from StoryStatus, to StoryStatus) bool

func (fn StatusPolicyFunc) Allows(from StoryStatus, to StoryStatus) bool {
	return fn(from, to)
}

// OpenStatusPolicy accepts any valid target status.
var OpenStatusPolicy StatusPolicy = StatusPolicyFunc(func(from StoryStatus, to StoryStatus) bool {
	return to.Valid()
})

// SequentialStatusPolicy only accepts staying put or moving one step
// forward or backward in the story lifecycle.
var SequentialStatusPolicy StatusPolicy = StatusPolicyFunc(func(from StoryStatus, to StoryStatus) bool {
	if !to.Valid() {
		return false
	}

	fromIndex, toIndex := from.index(), to.index()
	if fromIndex == -1 {
		return toIndex == 0
	}

	delta := toIndex - fromIndex

	return delta >= -1 && delta <= 1
})

func ParseStatusPolicy(name string) (StatusPolicy, error) {
	switch name {
	case "", StatusPolicyOpen:
		return OpenStatusPolicy, nil
	case StatusPolicySequential:
		return SequentialStatusPolicy, nil
	default:
		return nil, errors.Errorf("unknown story status policy '%s'", name)
	}
}
