// Package diag collects host details shown in the About window.
package diag

import (
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// MemoryInfo holds system memory information
type MemoryInfo struct {
	UsedGB  float64 `json:"used_gb"`
	TotalGB float64 `json:"total_gb"`
	Percent float64 `json:"percent"`
}

// Snapshot holds all host information for the About window
type Snapshot struct {
	OS          string     `json:"os"`
	Platform    string     `json:"platform"`
	PlatformVer string     `json:"platform_version"`
	Arch        string     `json:"arch"`
	Hostname    string     `json:"hostname"`
	UptimeHours float64    `json:"uptime_hours"`
	Memory      MemoryInfo `json:"memory"`
	NumCPU      int        `json:"num_cpu"`
	GoVersion   string     `json:"go_version"`
	DesktopHint string     `json:"desktop_hint"`
}

// Collect gathers a best-effort host snapshot. Probes that fail leave
// their fields zeroed rather than failing the whole call.
func Collect() Snapshot {
	snap := Snapshot{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
		GoVersion: runtime.Version(),
	}

	if info, err := host.Info(); err == nil {
		snap.Platform = info.Platform
		snap.PlatformVer = info.PlatformVersion
		snap.Hostname = info.Hostname
		snap.UptimeHours = float64(info.Uptime) / 3600
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		const bytesPerGB = 1024 * 1024 * 1024
		snap.Memory = MemoryInfo{
			UsedGB:  float64(vm.Used) / bytesPerGB,
			TotalGB: float64(vm.Total) / bytesPerGB,
			Percent: vm.UsedPercent,
		}
	}

	snap.DesktopHint = desktopHint()
	return snap
}

// IsDesktop reports whether the process runs in a desktop session. All
// supported build targets are desktop operating systems.
func IsDesktop() bool {
	return true
}

// desktopHint names the desktop environment where one is detectable.
func desktopHint() string {
	switch runtime.GOOS {
	case "darwin":
		return "aqua"
	case "windows":
		return "dwm"
	default:
		if de := os.Getenv("XDG_CURRENT_DESKTOP"); de != "" {
			return de
		}
		return os.Getenv("DESKTOP_SESSION")
	}
}
