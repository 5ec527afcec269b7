// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/howeyc/fsnotify"

	"github.com/ezrec/svcsim/emulator"
)

// devMode re-runs the program each time its file changes, until
// interrupted.
func devMode(emu *emulator.Emulator, program string) error {
	program = filepath.Clean(program)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Watch(filepath.Dir(program)); err != nil {
		return err
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	rerun := time.After(1 * time.Millisecond)
	for {
		select {
		case <-rerun:
			log.Info("dev: run", "program", filepath.Base(program))
			status, err := run(emu, program)
			if err != nil {
				log.Error("dev", "err", err)
				break
			}
			log.Info("dev: exit", "status", status, "ticks", emu.Ticks())
		case ev := <-watcher.Event:
			if filepath.Clean(ev.Name) == program && !ev.IsAttrib() {
				rerun = time.After(100 * time.Millisecond)
			}
		case err := <-watcher.Error:
			log.Warn("dev: watcher", "err", err)
		case <-interrupt:
			return nil
		}
	}
}
