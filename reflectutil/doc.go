// Package reflectutil inspects struct hierarchies through the reflect
// package. Embedded structs stand in for ancestry: Hierarchy walks them
// breadth-first, Fields flattens promoted fields with their promotion depth,
// and Methods lists a value's method set. All functions are read-only
// traversals; nothing is mutated or cached.
package reflectutil
