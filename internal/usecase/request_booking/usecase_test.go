package request_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-TriageService/internal/domain"
	bookingRepo "github.com/m04kA/HMS-TriageService/internal/infra/storage/booking"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

var testNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)

func newTestUseCase() (*UseCase, *bookingRepo.Repository) {
	repo := bookingRepo.NewRepository()
	uc := NewUseCase(repo, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc, repo
}

func TestExecute_CreatesPendingNormalBooking(t *testing.T) {
	uc, repo := newTestUseCase()

	resp, err := uc.Execute(&Request{
		PatientName:       "Alice",
		EquipmentID:       1,
		RequestedPriority: "EMERGENCY",
		SlotTime:          "2026-09-01 10:00",
	})
	require.NoError(t, err)

	// Запрошенный приоритет только советующий: заявка создаётся NORMAL
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, "NORMAL", resp.Priority)
	assert.Equal(t, "EMERGENCY", resp.RequestedPriority)
	assert.Equal(t, "2026-09-01 10:00", resp.SlotTime)
	assert.True(t, resp.BookingTime.Equal(testNow))

	stored, err := repo.GetByID(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityNormal, stored.Priority)
}

func TestExecute_PastSlotRejectedStoreUntouched(t *testing.T) {
	uc, repo := newTestUseCase()

	_, err := uc.Execute(&Request{
		PatientName: "Alice",
		EquipmentID: 1,
		SlotTime:    "2026-08-31 11:59",
	})
	require.ErrorIs(t, err, ErrPastSlot)
	assert.Equal(t, 0, repo.Len())
}

func TestExecute_EmptySlotStoresASAPSentinel(t *testing.T) {
	uc, _ := newTestUseCase()

	resp, err := uc.Execute(&Request{PatientName: "Alice", EquipmentID: 1})
	require.NoError(t, err)
	assert.Equal(t, domain.SlotTimeASAP, resp.SlotTime)
}

func TestExecute_EmptyRequestedPriorityDefaultsNormal(t *testing.T) {
	uc, _ := newTestUseCase()

	resp, err := uc.Execute(&Request{PatientName: "Alice", EquipmentID: 1})
	require.NoError(t, err)
	assert.Equal(t, "NORMAL", resp.RequestedPriority)
}

func TestExecute_FreeTextSlotIsAccepted(t *testing.T) {
	uc, _ := newTestUseCase()

	// Нераспознаваемая строка не считается прошедшей датой
	resp, err := uc.Execute(&Request{
		PatientName: "Alice",
		EquipmentID: 1,
		SlotTime:    "after lunch",
	})
	require.NoError(t, err)
	assert.Equal(t, "after lunch", resp.SlotTime)
}

func TestExecute_UnknownEquipmentIDIsAccepted(t *testing.T) {
	uc, _ := newTestUseCase()

	// Заявки не проверяются по внешнему ключу
	resp, err := uc.Execute(&Request{PatientName: "Alice", EquipmentID: 999})
	require.NoError(t, err)
	assert.Equal(t, int64(999), resp.EquipmentID)
}

func TestExecute_RFC3339SlotParsed(t *testing.T) {
	uc, repo := newTestUseCase()

	_, err := uc.Execute(&Request{
		PatientName: "Alice",
		EquipmentID: 1,
		SlotTime:    testNow.Add(-time.Hour).Format(time.RFC3339),
	})
	require.ErrorIs(t, err, ErrPastSlot)
	assert.Equal(t, 0, repo.Len())
}
