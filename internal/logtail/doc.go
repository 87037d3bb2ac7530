// Package logtail reads the tail of Tally's log file for the in-app console.
//
// Read keeps a ring buffer of maxLines entries, so memory stays bounded no
// matter how large the log grows. A missing file is not an error: the log is
// created lazily on first write and the console simply shows nothing yet.
//
// Highlight splits off the standard logger's timestamp and colors the message
// by a severity inferred from its wording ("failed" and "error" are errors,
// "falling back" is a warning). Malformed lines are rendered as plain
// messages rather than rejected.
package logtail
