// Package tree is the core of the loader. It walks a directory tree,
// loads every module file it discovers under the calling convention,
// and merges the results into a single hierarchical namespace whose
// shape mirrors the directory structure. Traversal is controlled by
// two presence-only marker files, and per-node values are deferred so
// that branches nobody reads are never loaded from disk.
package tree
