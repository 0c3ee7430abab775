// Package pipeline drives a batch: expand inputs into files, plan each
// rename from the file's tokens, execute or preview it, and report totals.
//
// Files are processed sequentially in sorted order. Per-file failures are
// logged and counted; they never stop the batch. Cancelling the context
// stops between files.
package pipeline
