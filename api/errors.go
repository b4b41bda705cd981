package api

import "errors"

var (
	// ErrOversize rejects inputs above the absolute upload limit before
	// any parsing begins.
	ErrOversize = errors.New("track file exceeds size limit")

	// ErrUnimplementedAsyncPath rejects inputs above the synchronous
	// processing threshold. A documented limitation, not a bug: callers
	// should offer a retry with a smaller file until a queued-worker
	// path exists.
	ErrUnimplementedAsyncPath = errors.New("asynchronous processing not implemented for large track files")

	// ErrUnknownJob reports a Poll for a job that was never enqueued.
	ErrUnknownJob = errors.New("unknown job")
)
