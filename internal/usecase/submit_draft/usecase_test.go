package submit_draft

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GCC-TeeSheetService/internal/domain"
	draftRepo "github.com/m04kA/GCC-TeeSheetService/internal/infra/storage/draft"
	"github.com/m04kA/GCC-TeeSheetService/internal/integrations/clubservice"
	"github.com/m04kA/GCC-TeeSheetService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	draft       *domain.BookingDraft
	rows        []*domain.DraftRow
	closedWith  *int
	closedCalls int
}

func (f *fakeRepo) GetDraft(ctx context.Context, id int64) (*domain.BookingDraft, error) {
	if f.draft == nil || f.draft.ID != id {
		return nil, draftRepo.ErrDraftNotFound
	}
	return f.draft, nil
}

func (f *fakeRepo) GetRows(ctx context.Context, draftID int64) ([]*domain.DraftRow, error) {
	return f.rows, nil
}

func (f *fakeRepo) CloseDraft(ctx context.Context, id int64, createdBookings int) error {
	f.closedCalls++
	f.closedWith = &createdBookings
	return nil
}

type fakeClub struct {
	rejectNames map[string]string
	requests    []clubservice.CreateBookingRequest
	nextID      int64
}

func (f *fakeClub) CreateBooking(ctx context.Context, req clubservice.CreateBookingRequest) (*clubservice.BookingRecord, error) {
	f.requests = append(f.requests, req)
	if reason, ok := f.rejectNames[req.PlayerName]; ok {
		return nil, fmt.Errorf("%w: %s", clubservice.ErrBookingRejected, reason)
	}
	f.nextID++
	return &clubservice.BookingRecord{ID: f.nextID, PlayerName: req.PlayerName, Status: "booked"}, nil
}

func openDraft(id int64) *domain.BookingDraft {
	return &domain.BookingDraft{
		ID:        id,
		TeeTimeID: 500,
		TeeTime:   time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC),
		Holes:     domain.Holes18,
		Status:    domain.DraftOpen,
	}
}

func row(id int64, position int, name string) *domain.DraftRow {
	return &domain.DraftRow{
		ID:         id,
		DraftID:    1,
		Position:   position,
		PlayerType: domain.PlayerVisitor,
		Name:       name,
	}
}

func TestExecutePartialFailure(t *testing.T) {
	repo := &fakeRepo{
		draft: openDraft(1),
		rows: []*domain.DraftRow{
			row(10, 0, "Smith"),
			row(11, 1, "Jones"),
			row(12, 2, "Brown"),
		},
	}
	club := &fakeClub{rejectNames: map[string]string{"Jones": "tee time is full"}}
	uc := NewUseCase(repo, club, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{DraftID: 1})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Created)
	assert.Equal(t, 1, resp.Failed)
	require.Len(t, resp.Failures, 1)
	assert.Equal(t, int64(11), resp.Failures[0].RowID)
	assert.Equal(t, "tee time is full", resp.Failures[0].Reason)
	assert.Equal(t, "Jones: tee time is full", resp.Summary)

	// Отказ одной строки не мешает остальным
	assert.Len(t, club.requests, 3)

	// Черновик закрыт с фактическим числом созданных бронирований
	require.Equal(t, 1, repo.closedCalls)
	assert.Equal(t, 2, *repo.closedWith)
}

func TestExecuteBlankNameSkippedWithoutRemoteCall(t *testing.T) {
	repo := &fakeRepo{
		draft: openDraft(1),
		rows: []*domain.DraftRow{
			row(10, 0, "   "),
			row(11, 1, "Smith"),
		},
	}
	club := &fakeClub{}
	uc := NewUseCase(repo, club, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{DraftID: 1})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Created)
	assert.Equal(t, 1, resp.Failed)
	assert.Equal(t, "player name is required", resp.Failures[0].Reason)
	// Пустая строка не уходит на бэкенд клуба
	assert.Len(t, club.requests, 1)
}

func TestExecuteBookingRequestFields(t *testing.T) {
	senior := row(10, 0, "Elder")
	senior.PlayerType = domain.PlayerMember
	senior.Senior = true
	senior.Age = ptr.Ptr(67)
	senior.MemberID = ptr.Ptr(int64(42))
	senior.SelectedFeeID = ptr.Ptr(int64(7))
	senior.AutoFeeID = ptr.Ptr(int64(8))
	senior.CartRequested = true
	senior.Prepaid = true

	adult := row(11, 1, "Smith")
	adult.Age = ptr.Ptr(33)
	adult.AutoFeeID = ptr.Ptr(int64(9))
	adult.PushCart = true

	repo := &fakeRepo{draft: openDraft(1), rows: []*domain.DraftRow{senior, adult}}
	club := &fakeClub{}
	uc := NewUseCase(repo, club, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{DraftID: 1})
	require.NoError(t, err)
	require.Len(t, club.requests, 2)

	first := club.requests[0]
	assert.Equal(t, int64(500), first.TeeTimeID)
	assert.Equal(t, "member", first.PlayerType)
	assert.Equal(t, domain.Holes18, first.Holes)
	// Ручной выбор тарифа приоритетнее автоподбора
	assert.Equal(t, int64(7), *first.FeeCategoryID)
	// Возраст уходит только для пенсионного тарифа
	require.NotNil(t, first.Age)
	assert.Equal(t, 67, *first.Age)
	assert.True(t, first.Cart)
	assert.True(t, first.Prepaid)
	assert.Equal(t, int64(42), *first.MemberID)

	second := club.requests[1]
	assert.Equal(t, int64(9), *second.FeeCategoryID)
	assert.Nil(t, second.Age)
	assert.True(t, second.PushCart)
}

func TestExecuteFailureSummaryTruncated(t *testing.T) {
	repo := &fakeRepo{
		draft: openDraft(1),
		rows: []*domain.DraftRow{
			row(10, 0, "A"), row(11, 1, "B"), row(12, 2, "C"),
			row(13, 3, "D"), row(14, 4, "E"),
		},
	}
	club := &fakeClub{rejectNames: map[string]string{
		"A": "full", "B": "full", "C": "full", "D": "full", "E": "full",
	}}
	uc := NewUseCase(repo, club, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{DraftID: 1})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.Created)
	assert.Equal(t, 5, resp.Failed)
	// В сводке первые три причины и счётчик остальных
	assert.Equal(t, "A: full; B: full; C: full; and 2 more", resp.Summary)
}

func TestExecuteDraftNotFound(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, &fakeClub{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{DraftID: 99})
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestExecuteDraftAlreadyClosed(t *testing.T) {
	draft := openDraft(1)
	draft.Status = domain.DraftClosed
	repo := &fakeRepo{draft: draft, rows: []*domain.DraftRow{row(10, 0, "Smith")}}
	club := &fakeClub{}
	uc := NewUseCase(repo, club, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{DraftID: 1})

	assert.ErrorIs(t, err, ErrDraftClosed)
	// Повторная отправка не задваивает бронирования
	assert.Empty(t, club.requests)
	assert.Equal(t, 0, repo.closedCalls)
}

func TestExecuteEmptyDraft(t *testing.T) {
	repo := &fakeRepo{draft: openDraft(1)}
	uc := NewUseCase(repo, &fakeClub{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{DraftID: 1})
	assert.ErrorIs(t, err, ErrEmptyDraft)
}
