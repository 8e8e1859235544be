// SPDX-License-Identifier: MIT

// Package search reconstructs a temperament from equal divisions.
//
// FindEDOs and FindPatentEDOs list the edo vals that temper out every comma
// of a target mapping, ranked by badness. FindJoin then picks rank-many of
// them whose join (stacked and put in HNF) is the target again.
//
// Both searches are bounded by the caps in Options. Hitting a cap is not an
// error: results carry counters for the work done and the caller decides
// whether to widen the search.
//
// Usage:
//
//	opts := search.DefaultOptions()
//	edos, err := search.FindEDOs(mapping, s, opts)
//	if err != nil { ... }
//	join, err := search.FindJoin(mapping, edos.Candidates, opts)
//	if join.Found { ... }
package search
