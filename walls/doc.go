// Package walls decodes the per-cell wall bitmask reported by the game into
// the orthogonal openings the agent may step through.
//
// What:
//
//   - Mask is the opaque 4-bit wall field: a set bit means a wall on that side.
//   - Decode lists the open sides in N, E, S, W order with their unit offsets
//     and the heading to face them.
//   - Neighbors maps a coordinate to the open neighbor coordinates.
//
// Layout:
//
//	bit 3 (0b1000) north   (0,-1)   0°
//	bit 2 (0b0100) east    (+1,0)  90°
//	bit 1 (0b0010) south   (0,+1) 180°
//	bit 0 (0b0001) west    (-1,0) 270°
//
// Bits above the low nibble are ignored. Decoding never fails: every mask has
// a meaning, including 0b1111 (a closed box) and 0b0000 (open on all sides).
//
// Complexity:
//
//   - Decode, Neighbors, Blocked: O(1).
package walls
