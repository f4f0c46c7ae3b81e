// Package storage persists dumped ROM images.
//
// The controller only depends on the Sink interface; DirSink writes to the
// local filesystem with replace-on-success semantics and Discard drops
// everything.
package storage
