// Package logtail reads the tail of the activity log and decodes its lines.
//
// # Reading
//
// Read returns the last maxLines lines of a file in chronological order,
// using a ring buffer so memory stays O(maxLines) regardless of file size.
// A non-positive maxLines returns the whole file. A missing file yields
// nil, nil; other I/O errors are wrapped.
//
// # Decoding
//
// The activity log is written by zap's JSON encoder, one object per line:
//
//	{"level":"info","ts":"2026-10-17T09:12:01.000Z","msg":"dish added","id":"…","name":"Tea"}
//
// Parse pulls out ts, level and msg and keeps the remaining keys as sorted
// fields, so Record.String renders the same line as:
//
//	2026-10-17T09:12:01.000Z INFO dish added id=… name=Tea
//
// Lines that are not JSON objects are reported with ok == false and are
// left for the caller to print as-is.
package logtail
