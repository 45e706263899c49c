package health

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"gestor-backend/internal/store"
)

type HealthChecker struct {
	store store.Store
}

type HealthStatus struct {
	Status string      `json:"status"`
	Store  StoreHealth `json:"store"`
}

type StoreHealth struct {
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms"`
}

// SystemStats is the extended report with host resource usage.
type SystemStats struct {
	HealthStatus
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryPercent float64 `json:"memory_percent"`
	MemoryUsedMB  uint64  `json:"memory_used_mb"`
	MemoryTotalMB uint64  `json:"memory_total_mb"`
}

func NewHealthChecker(s store.Store) *HealthChecker {
	return &HealthChecker{store: s}
}

func (h *HealthChecker) CheckBasic() HealthStatus {
	storeHealth := h.checkStore()

	status := "healthy"
	if storeHealth.Status != "healthy" {
		status = "unhealthy"
	}

	return HealthStatus{
		Status: status,
		Store:  storeHealth,
	}
}

func (h *HealthChecker) checkStore() StoreHealth {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	err := h.store.Ping(ctx)
	responseTime := time.Since(start).Milliseconds()

	if err != nil {
		return StoreHealth{
			Status:       "unhealthy",
			ResponseTime: responseTime,
		}
	}

	return StoreHealth{
		Status:       "healthy",
		ResponseTime: responseTime,
	}
}

// CheckSystem adds CPU and memory usage to the basic report. Gathering
// failures leave the affected fields at zero.
func (h *HealthChecker) CheckSystem() SystemStats {
	stats := SystemStats{HealthStatus: h.CheckBasic()}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		stats.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		stats.MemoryPercent = vm.UsedPercent
		stats.MemoryUsedMB = vm.Used / 1024 / 1024
		stats.MemoryTotalMB = vm.Total / 1024 / 1024
	}

	return stats
}
