package get_tee_sheet

import (
	"time"

	"github.com/m04kA/GCC-TeeSheetService/internal/domain"
	getTeeSheet "github.com/m04kA/GCC-TeeSheetService/internal/usecase/get_tee_sheet"
)

// TeeSheetResponse HTTP response model
type TeeSheetResponse struct {
	StartDate string        `json:"startDate"`
	EndDate   string        `json:"endDate"`
	Generated int           `json:"generated"`
	Rows      []TeeSheetRow `json:"rows"`
}

// TeeSheetRow строка расписания стартов
type TeeSheetRow struct {
	TeeTimeID    int64  `json:"teeTimeId"`
	TeeTime      string `json:"teeTime"`
	Tee          string `json:"tee"`
	Capacity     int    `json:"capacity"`
	OverCapacity bool   `json:"overCapacity"`
	Slots        []Slot `json:"slots"`
}

// Slot ячейка стартового слота
type Slot struct {
	State   string       `json:"state"`
	Booking *SlotBooking `json:"booking,omitempty"`
}

// SlotBooking бронирование в занятой ячейке
type SlotBooking struct {
	ID             int64   `json:"id"`
	PlayerName     string  `json:"playerName"`
	PlayerEmail    *string `json:"playerEmail,omitempty"`
	Status         string  `json:"status"`
	Price          float64 `json:"price"`
	MemberID       *int64  `json:"memberId,omitempty"`
	HandicapNumber *string `json:"handicapNumber,omitempty"`
}

const teeTimeLayout = "2006-01-02T15:04"

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTeeSheet.Response) *TeeSheetResponse {
	rows := make([]TeeSheetRow, len(resp.Rows))
	for i, row := range resp.Rows {
		slots := make([]Slot, len(row.Slots))
		for j, slot := range row.Slots {
			slots[j] = Slot{State: string(slot.State)}
			if slot.Booking != nil {
				slots[j].Booking = &SlotBooking{
					ID:             slot.Booking.ID,
					PlayerName:     slot.Booking.PlayerName,
					PlayerEmail:    slot.Booking.PlayerEmail,
					Status:         string(slot.Booking.Status),
					Price:          slot.Booking.Price,
					MemberID:       slot.Booking.MemberID,
					HandicapNumber: slot.Booking.HandicapNumber,
				}
			}
		}
		rows[i] = TeeSheetRow{
			TeeTimeID:    row.TeeTimeID,
			TeeTime:      row.TeeTime.Format(teeTimeLayout),
			Tee:          row.Tee,
			Capacity:     row.Capacity,
			OverCapacity: row.OverCapacity,
			Slots:        slots,
		}
	}

	return &TeeSheetResponse{
		StartDate: resp.StartDate.Format(domain.DateFormat),
		EndDate:   resp.EndDate.Format(domain.DateFormat),
		Generated: resp.Generated,
		Rows:      rows,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr, period string, holes int) (*getTeeSheet.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getTeeSheet.Request{
		Date:   date,
		Period: period,
		Holes:  holes,
	}, nil
}
