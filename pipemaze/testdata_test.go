package pipemaze_test

// Sample mazes shared by the package tests.
const (
	// squareLoop is a single 8-cell loop with one enclosed cell.
	squareLoop = `.....
.S-7.
.|.|.
.L-J.
.....
`

	// squareLoopJunk is squareLoop surrounded by pipes that are not on the loop.
	squareLoopJunk = `-L|F7
7S-7|
L|7||
-L-J|
L|-JF
`

	// winding has a loop whose farthest point is 8 steps away.
	winding = `..F7.
.FJ|.
SJ.L7
|F--J
LJ...
`

	// pocketsOpen encloses two pockets of two cells each.
	pocketsOpen = `...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
`

	// pocketsSqueezed is pocketsOpen with the gap between the inner arms
	// closed; the cells between the touching pipes stay outside.
	pocketsSqueezed = `..........
.S------7.
.|F----7|.
.||....||.
.||....||.
.|L-7F-J|.
.|..||..|.
.L--JL--J.
..........
`

	// largeLoop encloses eight cells.
	largeLoop = `.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...
`

	// junkLoop encloses ten cells, several of them junk pipes.
	junkLoop = `FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L
`
)
