// Package main starts the ddcprobe inspector.
package main

import "flag"

// main is the entrypoint for the ddcprobe inspector.
func main() {
	debug := flag.Bool("debug", false, "Enable verbose debug logging")
	flag.Parse()

	if err := run(*debug); err != nil {
		logFatal(err)
	}
}
