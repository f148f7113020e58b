// Package module loads a single declarative module file and invokes it
// with an argument bundle. A module file holds exactly one HCL
// expression; invoking it means evaluating that expression in a context
// whose variables are the bundle's entries. Anything else in the file
// is a convention violation reported against the file's path.
package module
