// Package shunt converts algebraic expressions written in infix notation
// into reverse Polish notation and into binary syntax trees.
//
// The operator set is the arithmetic one plus d, the tabletop dice-roll
// operator, and % for modulo. "3d6+2" converts to the sequence "3 6 d 2 +",
// or to a tree whose root is +. Nothing is ever evaluated; what rolling a
// d6 means is up to the caller.
//
// Every conversion is a pure function of its input, so the package is safe
// for concurrent use.
package shunt
