// Package index provides reverse lookup from a spin state to its position in a
// sector's state list.
//
// Sector lists produced by enumeration are strictly increasing, so the position
// of a state is its rank in a Roaring bitmap of the list. Lists in any other
// order fall back to a hash map.
package index
