package service

import (
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/ShashankRaghuram1509/learnify-spotify/config"
	"github.com/ShashankRaghuram1509/learnify-spotify/logger"
)

// Status is the system snapshot served on the admin status endpoint.
type Status struct {
	T        time.Time `json:"-"`
	Cpu      float64   `json:"cpu"`
	CpuCores int       `json:"cpuCores"`
	Mem      struct {
		Current uint64 `json:"current"`
		Total   uint64 `json:"total"`
	} `json:"mem"`
	Uptime     uint64    `json:"uptime"`
	Loads      []float64 `json:"loads"`
	Goroutines int       `json:"goroutines"`
	AppVersion string    `json:"appVersion"`
}

// ServerService reports host and process health for the admin panel.
// Collection failures are logged and leave that field zeroed instead of
// failing the whole snapshot.
type ServerService struct{}

func (s *ServerService) GetStatus() *Status {
	status := &Status{
		T:          time.Now(),
		Goroutines: runtime.NumGoroutine(),
		AppVersion: config.GetVersion(),
	}

	percents, err := cpu.Percent(0, false)
	if err != nil {
		logger.Warning("get cpu percent failed:", err)
	} else if len(percents) > 0 {
		status.Cpu = percents[0]
	}

	cores, err := cpu.Counts(false)
	if err != nil {
		logger.Warning("get cpu core count failed:", err)
	} else {
		status.CpuCores = cores
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		logger.Warning("get virtual memory failed:", err)
	} else {
		status.Mem.Current = memInfo.Used
		status.Mem.Total = memInfo.Total
	}

	uptime, err := host.Uptime()
	if err != nil {
		logger.Warning("get uptime failed:", err)
	} else {
		status.Uptime = uptime
	}

	avgState, err := load.Avg()
	if err != nil {
		logger.Warning("get load avg failed:", err)
	} else {
		status.Loads = []float64{avgState.Load1, avgState.Load5, avgState.Load15}
	}

	return status
}
