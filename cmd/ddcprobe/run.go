// Package main starts the ddcprobe inspector.
package main

import (
	"log"
	"os"

	"github.com/frudas24/ddcprobe/internal/config"
	"github.com/frudas24/ddcprobe/internal/ddc"
	"github.com/frudas24/ddcprobe/internal/inspect"
)

// run wires the inspector and executes one inspection.
func run(debug bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	ddc.SetDebugLogging(debug)
	if debug {
		log.Printf("debug: enabled")
		logStartup(cfg)
	}

	client, err := ddc.NewClient()
	if err != nil {
		return err
	}

	inspector, err := inspect.New(client, os.Stdout, cfg.MonitorIndex)
	if err != nil {
		return err
	}
	return inspector.Run()
}

// logFatal prints and exits for fatal failures.
func logFatal(err error) {
	log.Printf("fatal: %v", err)
	os.Exit(1)
}

// logStartup prints startup checks and the selected target.
func logStartup(cfg config.Config) {
	log.Printf("ddcprobe starting")
	if fileExists(".env") {
		log.Printf("env check: ok (.env)")
	} else {
		log.Printf("env check: missing (.env)")
	}
	if cfg.MonitorIndex > 0 {
		log.Printf("target: monitor %d", cfg.MonitorIndex)
	} else {
		log.Printf("target: primary monitor")
	}
}

// fileExists reports whether a path exists and is a file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
