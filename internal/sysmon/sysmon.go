// Package sysmon samples host and process resource usage for the stats
// endpoint.
package sysmon

import (
	"os"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// Stats holds a single snapshot of resource usage.
type Stats struct {
	CPUPercent float64 `json:"cpu_percent"` // host, 0.0 .. 100.0
	MemPercent float64 `json:"mem_percent"` // host, 0.0 .. 100.0
	ProcessRSS uint64  `json:"process_rss_bytes"`
}

// Sample collects one snapshot. CPU uses interval=0 (delta since the last
// call). Fields that cannot be read stay zero.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	s.ProcessRSS = processRSS()
	return s
}

func processRSS() uint64 {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0
	}
	info, err := p.MemoryInfo()
	if err != nil || info == nil {
		return 0
	}
	return info.RSS
}
