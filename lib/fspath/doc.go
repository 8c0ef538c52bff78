// Package fspath provides a small path-value API over a pluggable
// filesystem. A Path is an immutable string wrapper whose operations run
// against an afero.Fs, so the same call sites work on the real OS
// filesystem in production and on an in-memory filesystem in tests.
//
// The package focuses on:
//   - Pure path manipulation (Join, Base, Dir, Ext) with no filesystem access
//   - Synchronous filesystem queries and mutations (Stat, ListDir, MkDir,
//     Remove, ReadText, WriteText) that surface backend errors unchanged
//
// Construct paths with New for the OS filesystem or NewOn to inject a
// backend:
//
//	p := fspath.New("/tmp/data")
//	if err := p.MkDirAll(0o755); err != nil { ... }
//	err = p.Join("hello.txt").WriteText("hi")
//
// Thread-safety: Path values are immutable and safe to share; concurrent
// filesystem mutations follow the guarantees of the underlying afero.Fs.
package fspath
