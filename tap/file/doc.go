// Package file provides Taps backed by files on a local or mounted filesystem.
// Sizes are probed lazily from file metadata, which is useful for sizing the
// first Stages of a plan.
package file
