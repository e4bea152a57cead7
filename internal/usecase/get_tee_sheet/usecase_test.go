package get_tee_sheet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GCC-TeeSheetService/internal/domain"
	"github.com/m04kA/GCC-TeeSheetService/internal/integrations/clubservice"
)

type fakeClient struct {
	responses     [][]clubservice.TeeTimeRecord
	fetchCalls    int
	generateCalls int
	generateErr   error
	created       int
	lastGenerate  clubservice.GenerateRequest
}

func (f *fakeClient) GetTeeTimeRange(ctx context.Context, start, end time.Time) ([]clubservice.TeeTimeRecord, error) {
	idx := f.fetchCalls
	f.fetchCalls++
	if idx >= len(f.responses) {
		return nil, nil
	}
	return f.responses[idx], nil
}

func (f *fakeClient) GenerateTeeSheet(ctx context.Context, req clubservice.GenerateRequest) (int, error) {
	f.generateCalls++
	f.lastGenerate = req
	if f.generateErr != nil {
		return 0, f.generateErr
	}
	return f.created, nil
}

type fixedTime struct {
	t time.Time
}

func (f fixedTime) Now() time.Time { return f.t }

func newTestUseCase(client *fakeClient, now time.Time) *UseCase {
	uc := NewUseCase(client, Params{}, nopLogger{})
	uc.timeProvider = fixedTime{t: now}
	return uc
}

func TestExecuteEmptyDayTriggersGeneration(t *testing.T) {
	client := &fakeClient{
		responses: [][]clubservice.TeeTimeRecord{
			nil, // первая выборка пустая
			{record(1, "2024-03-14T06:30:00", "1", 4)},
		},
		created: 122,
	}
	uc := newTestUseCase(client, date(2024, 3, 1))

	resp, err := uc.Execute(context.Background(), &Request{
		Date:   date(2024, 3, 14),
		Period: PeriodDay,
		Holes:  domain.Holes18,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, client.generateCalls)
	assert.Equal(t, 122, resp.Generated)
	assert.Len(t, resp.Rows, 1)

	// Запрос генерации собран из настроек расписания
	assert.Equal(t, "2024-03-14", client.lastGenerate.Date)
	assert.Equal(t, []string{"1", "10"}, client.lastGenerate.Tees)
	assert.Equal(t, "06:30", client.lastGenerate.StartTime)
	assert.Equal(t, "16:30", client.lastGenerate.EndTime)
	assert.Equal(t, domain.DefaultIntervalMinutes, client.lastGenerate.IntervalMin)
	assert.Equal(t, domain.DefaultCapacity, client.lastGenerate.Capacity)
}

func TestExecuteNineHoleGenerationWindow(t *testing.T) {
	client := &fakeClient{created: 20}
	uc := newTestUseCase(client, date(2024, 3, 1))

	_, err := uc.Execute(context.Background(), &Request{
		Date:   date(2024, 3, 14),
		Period: PeriodDay,
		Holes:  domain.Holes9,
	})

	require.NoError(t, err)
	require.Equal(t, 1, client.generateCalls)
	assert.Equal(t, "15:00", client.lastGenerate.StartTime)
	assert.Equal(t, "16:30", client.lastGenerate.EndTime)
}

func TestExecuteNineHoleCustomWindowKeepsGeneratedRows(t *testing.T) {
	// Фильтр девяти лунок обязан использовать то же окно, что и генерация:
	// иначе сгенерированные строки тут же отсекаются
	client := &fakeClient{
		responses: [][]clubservice.TeeTimeRecord{
			nil,
			{record(1, "2024-03-14T13:00:00", "1", 4)},
		},
		created: 10,
	}
	uc := NewUseCase(client, Params{NineHoleStart: "13:00", NineHoleEnd: "14:00"}, nopLogger{})
	uc.timeProvider = fixedTime{t: date(2024, 3, 1)}

	resp, err := uc.Execute(context.Background(), &Request{
		Date:   date(2024, 3, 14),
		Period: PeriodDay,
		Holes:  domain.Holes9,
	})

	require.NoError(t, err)
	assert.Equal(t, "13:00", client.lastGenerate.StartTime)
	assert.Equal(t, "14:00", client.lastGenerate.EndTime)
	assert.Equal(t, 10, resp.Generated)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, int64(1), resp.Rows[0].TeeTimeID)
}

func TestNewUseCaseRejectsLaxWindow(t *testing.T) {
	client := &fakeClient{}
	uc := NewUseCase(client, Params{NineHoleStart: "6:30", NineHoleEnd: "14:00"}, nopLogger{})
	uc.timeProvider = fixedTime{t: date(2024, 3, 1)}

	// Нестрогое значение окна заменяется дефолтным
	_, err := uc.Execute(context.Background(), &Request{
		Date:   date(2024, 3, 14),
		Period: PeriodDay,
		Holes:  domain.Holes9,
	})

	require.NoError(t, err)
	assert.Equal(t, "15:00", client.lastGenerate.StartTime)
	assert.Equal(t, "16:30", client.lastGenerate.EndTime)
}

func TestExecuteGenerationAtMostOncePerKey(t *testing.T) {
	client := &fakeClient{}
	uc := newTestUseCase(client, date(2024, 3, 1))

	req := &Request{Date: date(2024, 3, 14), Period: PeriodDay, Holes: domain.Holes18}

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Повторный пустой день не перезапускает генерацию
	assert.Equal(t, 1, client.generateCalls)

	// Другой режим лунок - другой ключ
	_, err = uc.Execute(context.Background(), &Request{Date: date(2024, 3, 14), Period: PeriodDay, Holes: domain.Holes9})
	require.NoError(t, err)
	assert.Equal(t, 2, client.generateCalls)
}

func TestExecuteNoGenerationForWeekPeriod(t *testing.T) {
	client := &fakeClient{}
	uc := newTestUseCase(client, date(2024, 3, 1))

	resp, err := uc.Execute(context.Background(), &Request{
		Date:   date(2024, 3, 14),
		Period: PeriodWeek,
		Holes:  domain.Holes18,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, client.generateCalls)
	assert.Empty(t, resp.Rows)
}

func TestExecuteGenerationFailureNotFatal(t *testing.T) {
	client := &fakeClient{generateErr: clubservice.ErrSheetClosed}
	uc := newTestUseCase(client, date(2024, 3, 1))

	resp, err := uc.Execute(context.Background(), &Request{
		Date:   date(2024, 3, 14),
		Period: PeriodDay,
		Holes:  domain.Holes18,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.Generated)
	assert.Empty(t, resp.Rows)
}

func TestExecuteSlotClassification(t *testing.T) {
	client := &fakeClient{
		responses: [][]clubservice.TeeTimeRecord{{
			record(1, "2024-03-14T10:00:00", "1", 2, booking(100, "Smith", "booked")),
			record(2, "2024-03-14T10:30:00", "1", 2),
		}},
	}
	// 10:17 усекается до границы интервала 10:10
	uc := newTestUseCase(client, time.Date(2024, 3, 14, 10, 17, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{
		Date:   date(2024, 3, 14),
		Period: PeriodDay,
		Holes:  domain.Holes18,
	})

	require.NoError(t, err)
	require.Len(t, resp.Rows, 2)

	// Прошедший слот: бронирование видно, свободная ячейка закрыта
	past := resp.Rows[0]
	require.Len(t, past.Slots, 2)
	assert.Equal(t, domain.SlotBooked, past.Slots[0].State)
	assert.Equal(t, "Smith", past.Slots[0].Booking.PlayerName)
	assert.Equal(t, domain.SlotClosed, past.Slots[1].State)

	// Будущий слот открыт
	future := resp.Rows[1]
	require.Len(t, future.Slots, 2)
	assert.Equal(t, domain.SlotOpen, future.Slots[0].State)
	assert.Equal(t, domain.SlotOpen, future.Slots[1].State)
}

func TestExecuteValidation(t *testing.T) {
	client := &fakeClient{}
	uc := newTestUseCase(client, date(2024, 3, 1))

	_, err := uc.Execute(context.Background(), &Request{Date: date(2024, 3, 14), Period: "year", Holes: 18})
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = uc.Execute(context.Background(), &Request{Date: date(2024, 3, 14), Period: PeriodDay, Holes: 12})
	assert.ErrorIs(t, err, ErrInvalidHoles)

	_, err = uc.Execute(context.Background(), &Request{Period: PeriodDay, Holes: 18})
	assert.ErrorIs(t, err, ErrInvalidDate)

	assert.Equal(t, 0, client.fetchCalls)
}
