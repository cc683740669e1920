// Package procs snapshots the OS process table and terminates processes by
// fuzzy-matched name.
package procs

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shirou/gopsutil/v4/process"

	"powertools/internal/logging"
	"powertools/internal/textmatch"
)

// Names returns the lowercased names of all running processes. Processes
// whose name cannot be read (vanished, or not ours to inspect) are skipped.
func Names() ([]string, error) {
	running, err := process.Processes()
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}

	names := make([]string, 0, len(running))
	for _, p := range running {
		name, err := p.Name()
		if err != nil || name == "" {
			continue
		}
		names = append(names, strings.ToLower(name))
	}
	return names, nil
}

// Kill fuzzy-matches name against the running process list and terminates
// every live process whose name equals the match. procList may carry a
// pre-fetched snapshot; nil means take one now. Per-target failures — a
// process vanishing between snapshot and kill, or a permission denial — are
// logged and skipped rather than aborting the batch.
//
// Returns true if at least one termination succeeded.
func Kill(name string, procList []string, log *slog.Logger) bool {
	if log == nil {
		log = logging.NewNop()
	}

	if procList == nil {
		snapshot, err := Names()
		if err != nil {
			log.Error("snapshot process list", "error", err)
			return false
		}
		procList = snapshot
	}
	if len(procList) == 0 {
		log.Warn("no running processes found")
		return false
	}

	match, ok := textmatch.BestMatch(strings.ToLower(name), procList)
	if !ok {
		log.Warn("no suitable match for process", "process", name)
		return false
	}

	running, err := process.Processes()
	if err != nil {
		log.Error("list processes", "error", err)
		return false
	}

	killed := false
	for _, p := range running {
		pname, err := p.Name()
		if err != nil {
			// Gone since the snapshot.
			continue
		}
		if strings.ToLower(pname) != match {
			continue
		}
		if err := p.Kill(); err != nil {
			log.Warn("could not terminate process", "process", match, "pid", p.Pid, "error", err)
			continue
		}
		log.Info("killed process", "process", match, "pid", p.Pid)
		killed = true
	}
	return killed
}
