// Package state holds the Tally application state.
//
// # Overview
//
// App is a plain value: counter, last fetched text, loading flag and the
// animation flag and elapsed time. The UI model owns the only copy and
// mutates it from its update step, so the type has no locks.
//
// # Counter
//
// Increment, Decrement and Reset have no bounds. Increment followed by
// Decrement always restores the previous value, including across integer
// wraparound.
//
// # Fetch
//
// BeginFetch sets the loading flag and the placeholder text and refuses to
// start a second fetch while one is in flight. FinishFetch clears the flag
// and stores whatever text came back, error messages included.
package state
