package models

import (
	"time"

	"github.com/m04kA/GCC-TeeSheetService/internal/domain"
)

// CreateDraftRequest запрос на открытие черновика для свободного слота
type CreateDraftRequest struct {
	TeeTimeID int64     `json:"teeTimeId"`
	TeeTime   time.Time `json:"teeTime"`
	Holes     int       `json:"holes"`
}

// RowInput данные строки игрока от оператора
type RowInput struct {
	PlayerType     string  `json:"playerType"`
	Senior         bool    `json:"senior"`
	Name           string  `json:"name"`
	Email          *string `json:"email,omitempty"`
	HandicapNumber *string `json:"handicapNumber,omitempty"`
	MemberID       *int64  `json:"memberId,omitempty"`
	Age            *int    `json:"age,omitempty"`
	Prepaid        bool    `json:"prepaid"`
	// SelectedFeeID - явный выбор тарифа оператором; nil означает
	// "использовать автоподбор"
	SelectedFeeID *int64 `json:"selectedFeeId,omitempty"`
	CartRequested bool   `json:"cartRequested"`
	PushCart      bool   `json:"pushCart"`
	Caddy         bool   `json:"caddy"`
}

// RowResponse строка черновика с разрешёнными ценами
type RowResponse struct {
	ID             int64   `json:"id"`
	Position       int     `json:"position"`
	PlayerType     string  `json:"playerType"`
	Senior         bool    `json:"senior"`
	Name           string  `json:"name"`
	Email          *string `json:"email,omitempty"`
	HandicapNumber *string `json:"handicapNumber,omitempty"`
	MemberID       *int64  `json:"memberId,omitempty"`
	Age            *int    `json:"age,omitempty"`
	Prepaid        bool    `json:"prepaid"`

	SelectedFeeID      *int64   `json:"selectedFeeId,omitempty"`
	AutoFeeID          *int64   `json:"autoFeeId,omitempty"`
	AutoFeeDescription *string  `json:"autoFeeDescription,omitempty"`
	AutoFeePrice       *float64 `json:"autoFeePrice,omitempty"`

	// FeePrice - разрешённая цена тарифа строки; при Priced == false строка
	// не оценена и отображается как "pricing unavailable", а не как 0
	FeePrice float64 `json:"feePrice"`
	Priced   bool    `json:"priced"`

	CartRequested   bool     `json:"cartRequested"`
	CartPrice       *float64 `json:"cartPrice,omitempty"`
	CartDescription *string  `json:"cartDescription,omitempty"`
	CartUnavailable bool     `json:"cartUnavailable"`
	// CartCharge - начисление строки за кар после разбиения по парам
	CartCharge float64 `json:"cartCharge"`

	PushCart bool `json:"pushCart"`
	Caddy    bool `json:"caddy"`

	RowTotal float64 `json:"rowTotal"`
}

// FeeCategoryResponse запись тарифной таблицы для выпадающего списка
type FeeCategoryResponse struct {
	ID          int64   `json:"id"`
	Code        int     `json:"code"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// DraftResponse черновик с пересчитанным итогом
type DraftResponse struct {
	ID              int64                 `json:"id"`
	TeeTimeID       int64                 `json:"teeTimeId"`
	TeeTime         time.Time             `json:"teeTime"`
	Holes           int                   `json:"holes"`
	Status          string                `json:"status"`
	CreatedBookings int                   `json:"createdBookings"`
	Rows            []RowResponse         `json:"rows"`
	Total           float64               `json:"total"`
	FeeCategories   []FeeCategoryResponse `json:"feeCategories"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

// FromDomainDraft собирает ответ из черновика, его строк и разбиения за кары
// splits - результат drafts.ComputeCartSplits для текущего набора строк
func FromDomainDraft(d *domain.BookingDraft, rows []*domain.DraftRow, splits map[int64]float64, fees []domain.FeeCategory) *DraftResponse {
	rowResponses := make([]RowResponse, len(rows))
	var total float64

	for i, row := range rows {
		fee, priced := row.ResolvedFee()
		cartCharge := splits[row.ID]
		rowTotal := fee + cartCharge
		total += rowTotal

		rowResponses[i] = RowResponse{
			ID:                 row.ID,
			Position:           row.Position,
			PlayerType:         string(row.PlayerType),
			Senior:             row.Senior,
			Name:               row.Name,
			Email:              row.Email,
			HandicapNumber:     row.HandicapNumber,
			MemberID:           row.MemberID,
			Age:                row.Age,
			Prepaid:            row.Prepaid,
			SelectedFeeID:      row.SelectedFeeID,
			AutoFeeID:          row.AutoFeeID,
			AutoFeeDescription: row.AutoFeeDescription,
			AutoFeePrice:       row.AutoFeePrice,
			FeePrice:           fee,
			Priced:             priced,
			CartRequested:      row.CartRequested,
			CartPrice:          row.CartPrice,
			CartDescription:    row.CartDescription,
			CartUnavailable:    row.CartUnavailable,
			CartCharge:         cartCharge,
			PushCart:           row.PushCart,
			Caddy:              row.Caddy,
			RowTotal:           rowTotal,
		}
	}

	feeResponses := make([]FeeCategoryResponse, len(fees))
	for i, fee := range fees {
		feeResponses[i] = FeeCategoryResponse{
			ID:          fee.ID,
			Code:        fee.Code,
			Description: fee.Description,
			Price:       fee.Price,
		}
	}

	return &DraftResponse{
		ID:              d.ID,
		TeeTimeID:       d.TeeTimeID,
		TeeTime:         d.TeeTime,
		Holes:           d.Holes,
		Status:          string(d.Status),
		CreatedBookings: d.CreatedBookings,
		Rows:            rowResponses,
		Total:           total,
		FeeCategories:   feeResponses,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// ToDomainPlayerType конвертирует строковый тип игрока в domain
func ToDomainPlayerType(s string) (domain.PlayerType, bool) {
	switch domain.PlayerType(s) {
	case domain.PlayerMember:
		return domain.PlayerMember, true
	case domain.PlayerVisitor:
		return domain.PlayerVisitor, true
	default:
		return "", false
	}
}
