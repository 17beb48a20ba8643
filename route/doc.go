// Package route reconstructs the discovered path to the target and
// simplifies it by cutting corners.
//
// What:
//
//   - Build walks parent links from the target to the root and reverses them.
//   - Optimize slides a (prev, cur, next) window over the route. When prev and
//     next are within one king-move of each other, cur is dropped and the
//     window jumps two cells; otherwise cur is kept and the window advances by
//     one. The last two cells are always kept.
//   - Commit records the diagonal hops of an optimized route in the graph, so
//     the spanning tree and costs stay consistent with the route the agent
//     will actually walk.
//
// Corners:
//
//	Geometry alone lets a cut pass the corner of a wall. WithWallCheck(g)
//	additionally requires the cell opposite the cut corner to be known and
//	linked to both ends, and the elided cell to be linked to both ends, so
//	all four sides around the corner are known open.
package route
