// Package navigate turns "go towards cell N" into the single next physical
// action, for an agent that can only rotate in place or move one cell along
// its heading.
//
// What:
//
//   - If N is a linked neighbor of the current cell C: rotate to face it, or
//     move when already facing it. Never both in one step.
//   - Otherwise find the lowest common ancestor of C and N in the spanning
//     tree. While C is not the LCA, step towards C's parent. Once C is the
//     LCA, step towards the child of C that lies on the way down to N.
//
// Repeated Step calls therefore walk the tree path C → LCA → N one action at
// a time. TreePath returns that whole path for logging and tests.
//
// Errors:
//
//   - ErrUnknownCell:       C or N has not been discovered.
//   - ErrNoCommonAncestor:  C and N share no ancestor.
//   - ErrAlreadyThere:      C == N; the caller should have picked a new goal.
//   - ErrBrokenLink:        a parent link is not backed by a neighbor link.
package navigate
