package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/HMS-TriageService/internal/domain"
)

type fakeBookingRepo struct {
	counts map[int64]int
}

func (f *fakeBookingRepo) CountConfirmedByEquipment(equipmentID int64) int {
	return f.counts[equipmentID]
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

func newTestService(counts map[int64]int, now time.Time) *Service {
	svc := NewService(&fakeBookingRepo{counts: counts})
	svc.timeProvider = &fixedTimeProvider{now: now}
	return svc
}

func TestEstimate_MaintenanceAlwaysUnderRepair(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)
	svc := newTestService(map[int64]int{3: 5}, now)

	eq := &domain.Equipment{ID: 3, Status: domain.EquipmentMaintenance, ServiceDurationMinutes: 1440}

	est := svc.Estimate(eq)
	assert.Equal(t, 5, est.QueueLength)
	assert.Equal(t, NextFreeUnderRepair, est.NextAvailable)
}

func TestEstimate_AvailableEmptyQueueIsNow(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)
	svc := newTestService(map[int64]int{}, now)

	eq := &domain.Equipment{ID: 1, Status: domain.EquipmentAvailable, ServiceDurationMinutes: 60}

	est := svc.Estimate(eq)
	assert.Equal(t, 0, est.QueueLength)
	assert.Equal(t, NextFreeNow, est.NextAvailable)
}

func TestEstimate_ProjectsQueueWaitTime(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)
	svc := newTestService(map[int64]int{2: 2}, now)

	eq := &domain.Equipment{ID: 2, Status: domain.EquipmentAvailable, ServiceDurationMinutes: 30}

	// 2 заявки * 30 минут = 60 минут от текущего времени
	est := svc.Estimate(eq)
	assert.Equal(t, 2, est.QueueLength)
	assert.Equal(t, "13:00", est.NextAvailable)
}

func TestEstimate_InUseEmptyQueueProjectsFromNow(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)
	svc := newTestService(map[int64]int{}, now)

	eq := &domain.Equipment{ID: 1, Status: domain.EquipmentInUse, ServiceDurationMinutes: 60}

	// Пустая очередь, но оборудование занято: "Now" не подходит,
	// проекция вырождается в текущее время
	est := svc.Estimate(eq)
	assert.Equal(t, 0, est.QueueLength)
	assert.Equal(t, "12:00", est.NextAvailable)
}

func TestEstimate_ZeroDurationFallsBackToDefault(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)
	svc := newTestService(map[int64]int{4: 1}, now)

	eq := &domain.Equipment{ID: 4, Status: domain.EquipmentAvailable}

	est := svc.Estimate(eq)
	assert.Equal(t, "12:30", est.NextAvailable)
}
