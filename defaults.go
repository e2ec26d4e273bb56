//go:build !release

package main

// Windowed by default in development builds; release builds flip this.
const defaultFullscreen = false
