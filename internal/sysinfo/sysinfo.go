// Package sysinfo reports host disk and memory figures for the stats API.
// Every query degrades to zeros on failure; stats never fail because the
// host refused to describe itself.
package sysinfo

import (
	"github.com/shirou/gopsutil/v4/mem"
	"golang.org/x/sys/unix"
)

// DiskUsage describes the filesystem backing a path.
type DiskUsage struct {
	Free  uint64 `json:"free"`
	Total uint64 `json:"total"`
	Used  uint64 `json:"used"`
}

// MemoryUsage describes host RAM.
type MemoryUsage struct {
	Free  uint64 `json:"free"`
	Total uint64 `json:"total"`
	Used  uint64 `json:"used"`
}

// Disk returns usage of the filesystem containing path.
func Disk(path string) DiskUsage {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return DiskUsage{}
	}
	total := st.Blocks * uint64(st.Bsize)
	free := st.Bavail * uint64(st.Bsize)
	return DiskUsage{Free: free, Total: total, Used: total - free}
}

// Memory returns host virtual-memory usage.
func Memory() MemoryUsage {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return MemoryUsage{}
	}
	return MemoryUsage{Free: vm.Available, Total: vm.Total, Used: vm.Used}
}
