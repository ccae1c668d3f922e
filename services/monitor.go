package services

import (
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
)

// BackendMonitor periodically pings the backend and remembers the last
// result for the health endpoint.
type BackendMonitor struct {
	backend BackendClient

	mu        sync.RWMutex
	healthy   bool
	lastError string
	checkedAt time.Time
}

type BackendStatus struct {
	Healthy   bool      `json:"healthy"`
	LastError string    `json:"last_error,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

func NewBackendMonitor(backend BackendClient) *BackendMonitor {
	return &BackendMonitor{backend: backend}
}

// StartProbeCron begins probing the backend once a minute, with an
// immediate first check so /health is meaningful right after boot.
func (m *BackendMonitor) StartProbeCron() *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.Local)

	scheduler.Every(1).Minutes().Do(func() {
		if err := m.Check(); err != nil {
			log.Printf("Backend probe failed: %v", err)
		}
	})

	scheduler.StartAsync()
	log.Println("Backend probe cron started")

	go m.Check()

	return scheduler
}

func (m *BackendMonitor) Check() error {
	err := m.backend.Ping()

	m.mu.Lock()
	m.healthy = err == nil
	m.lastError = ""
	if err != nil {
		m.lastError = err.Error()
	}
	m.checkedAt = time.Now()
	m.mu.Unlock()

	return err
}

func (m *BackendMonitor) Status() BackendStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return BackendStatus{
		Healthy:   m.healthy,
		LastError: m.lastError,
		CheckedAt: m.checkedAt,
	}
}
