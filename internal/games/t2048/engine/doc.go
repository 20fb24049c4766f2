// Package engine is the board simulation behind the 2048 game: grid state,
// per-tile move resolution, whole-board shifts, tile spawning, black holes,
// and the score ledger. It performs no I/O and holds no locks; a Session is
// owned by a single caller and mutated only through Shift and Reset.
package engine
