// Package puzzle implements the sliding-tile puzzle (8-puzzle on 3×3, 15-puzzle on 4×4)
// and exposes it to package search as a Problem[Board, Move].
//
// Board is a comparable value: two boards with the same tile layout are == and
// hash identically when used as map keys, which is what the search explored sets
// rely on. Boards are immutable; Result returns a new Board.
//
// Moves name the direction the blank travels:
//
//	up, down, left, right
//
// LegalMoves always lists them in that order, filtered by the blank's position.
// The goal layout is 1..N²-1 in row-major order with the blank in the bottom-right
// corner:
//
//	---------------------
//	|  1 |  2 |  3 |  4 |
//	---------------------
//	|  5 |  6 |  7 |  8 |
//	---------------------
//	|  9 | 10 | 11 | 12 |
//	---------------------
//	| 13 | 14 | 15 |    |
//	---------------------
//
// Errors:
//
//   - ErrInvalidBoard    the tiles are not a permutation of 0..N²-1 for N ∈ {3, 4}.
//   - ErrIllegalMove     Result was called with a move not in LegalMoves.
package puzzle
