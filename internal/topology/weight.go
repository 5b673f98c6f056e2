// Package topology maintains an immutable-until-mutated, dense
// weighted adjacency matrix for a network under resilience analysis.
//
// Nodes are identified by their index in [0, N). Weight 0 is the
// sentinel for "no edge"; the diagonal is always 0. The matrix is
// loaded once from a text file and never mutated by the scan driver
// directly — every failure scenario operates on its own Clone.
package topology

// Weight is the non-negative integer edge cost used throughout the
// analyzer. The value 0 is overloaded as "no edge" (spec sentinel
// convention); W[i][i] is always 0.
type Weight int

// NoEdge is the sentinel weight meaning "no edge between these nodes".
const NoEdge Weight = 0
