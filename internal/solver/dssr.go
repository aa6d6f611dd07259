package solver

import "github.com/evscheduler/daily-schedule/internal/model"

// DetectAndForbid walks the label chain of best from tail to head looking
// for two distinct activities that share a group (a violation of
// group-elementarity the DP cannot see, since it only tracks activity
// ids). Home is revisitable and never counts as a cycle, matching
// feasibility's own exemption. Dusk and the activity immediately before it
// are excluded from the search. If a repeated group is found, it injects
// that group into ForbiddenGroups on every activity that precedes the
// earlier (outer) occurrence in the chain, the chain's head included,
// except the outer and inner occurrences themselves, and reports true so the caller restarts
// the DP. Returns false when the chain is already cycle-free.
func DetectAndForbid(best *model.Label) bool {
	chain := best.Chain()
	n := len(chain)
	if n < 4 {
		return false
	}

	seenAt := make(map[model.Group]int)
	outerIdx, innerIdx := -1, -1
	var cycleGroup model.Group

	for i := n - 3; i >= 0; i-- {
		g := chain[i].Act.Group
		if g == model.GroupHome {
			continue
		}
		if j, ok := seenAt[g]; ok {
			if chain[j].Act.ID != chain[i].Act.ID {
				outerIdx, innerIdx, cycleGroup = i, j, g
				break
			}
			continue
		}
		seenAt[g] = i
	}

	if outerIdx == -1 {
		return false
	}

	outerAct := chain[outerIdx].Act
	innerAct := chain[innerIdx].Act
	for i := outerIdx - 1; i >= 0; i-- {
		act := chain[i].Act
		if act.ID == outerAct.ID || act.ID == innerAct.ID {
			continue
		}
		act.ForbiddenGroups = act.ForbiddenGroups.With(cycleGroup)
	}
	return true
}
