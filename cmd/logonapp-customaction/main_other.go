//go:build !windows

// The custom action DLL only exists on Windows.
package main

func main() {}
