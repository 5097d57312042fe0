package solver

import (
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/tree"
)

// parallelDepth is the deepest node whose partitions are solved concurrently.
const parallelDepth = 1

// fanOut solves each group at depth, writing the subtree for groups[i] to out[i].
//
// All fan-outs of one Solve share sr.sem. A group that finds the budget full is
// solved inline instead of waiting for a slot, so nested fan-outs never block on
// each other and the number of goroutines stays at Workers. A failing group does
// not cancel its siblings; the first error in group order wins.
func (sr *search) fanOut(depth int, groups []feedback.Group, out []*tree.Tree) error {
	// g is only the join. Errors go to errs by index because g.Wait reports
	// whichever failure happened first in time.
	var g errgroup.Group
	errs := make([]error, len(groups))
	for i, grp := range groups {
		select {
		case sr.sem <- struct{}{}:
			g.Go(func() error {
				defer func() { <-sr.sem }()
				out[i], errs[i] = sr.solve(depth, grp.Answers)
				return nil
			})
		default:
			out[i], errs[i] = sr.solve(depth, grp.Answers)
		}
	}
	_ = g.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (sr *search) sequential(depth int, groups []feedback.Group, out []*tree.Tree) error {
	for i, grp := range groups {
		t, err := sr.solve(depth, grp.Answers)
		if err != nil {
			return err
		}
		out[i] = t
	}
	return nil
}
