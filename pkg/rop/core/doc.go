// Package core contains the type-erased workflow plumbing: the immutable Node,
// the construction operators that fold or append steps, and the locomotive
// that walks a finalized step sequence. Run options (logger, clock, recorder)
// are carried by the context. The typed fluent API lives in package flow.
package core
