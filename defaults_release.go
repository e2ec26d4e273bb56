//go:build release

package main

const defaultFullscreen = true
