// Package lvpuzzle collects two grid and interval algorithms that keep
// turning up in puzzle work, each in its own subpackage.
//
// What is inside?
//
//	pipemaze/    : pipe-maze loop discovery (BFS over mutual pipe joints),
//	               enclosure counting by scanline parity, and a shoelace /
//	               Pick's theorem cross-check.
//	intervalmap/ : half-open interval sets pushed through chains of
//	               piecewise-linear maps, split at rule boundaries.
//
// The packages do not depend on each other. Both are pure, synchronous
// and allocation-bounded by their input; neither touches files or flags.
//
// Quick ASCII example (pipemaze):
//
//	.....
//	.S-7.      S resolves to F, the loop has 8 cells,
//	.|.|.      the farthest one is 4 steps away,
//	.L-J.      and exactly one cell is enclosed.
//	.....
//
// Quick example (intervalmap):
//
//	[10,30) through rule [20,40)→0  ⇒  mapped [0,10), untouched [10,20)
//
// Errors are package-level sentinels wrapped with context; match them
// with errors.Is. Verbose tracing goes through klog at -v=4.
package lvpuzzle
