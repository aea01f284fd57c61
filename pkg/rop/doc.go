// Package rop holds the shared vocabulary of the railway: the two-case
// Result[T] and the error helpers used by the solo, core and flow packages.
package rop
