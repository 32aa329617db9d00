// Package deps reports availability of the external binaries subsieve
// shells out to.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"subsieve/internal/config"
)

// Requirement defines an external dependency subsieve relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Available   bool
	Detail      string
}

// Requirements returns the binaries the given configuration will invoke.
func Requirements(cfg *config.Config) []Requirement {
	ffmpeg := "ffmpeg"
	ffprobe := "ffprobe"
	if cfg != nil {
		ffmpeg = cfg.Tools.FFmpegBinary
		ffprobe = cfg.Tools.FFprobeBinary
	}
	return []Requirement{
		{Name: "FFprobe", Command: ffprobe, Description: "Lists subtitle streams and language tags"},
		{Name: "FFmpeg", Command: ffmpeg, Description: "Copies subtitle streams into standalone files"},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}
