/*
Package grid provides a fixed-size, bounds-checked two-dimensional lookup table.

A Matrix is built once from a rectangular [][]T and is read-only afterwards. Rows are
indexed by y and columns by x. Any coordinate outside [0, width) x [0, height) yields
the zero value of T. This is the visual "background", not an error.

Lookup turns a Matrix into a process: it reads a Point slot from the channel and
writes the looked-up value into a value slot.
*/
package grid
