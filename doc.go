// Package linkedlists implements the classic linked list algorithms over
// cells from package cell, in four configurations: singly or doubly linked,
// each either reached through a top sentinel or through its first data cell.
//
// The functions are stateless and work directly on cells. A list's
// configuration is fixed when it is built with MakeList or NewList, and every
// operation that links a new cell checks that the cell agrees with it.
//
// Rejected calls return an error wrapping one of the package's Err values
// and log a Debug entry through logrus.
package linkedlists
