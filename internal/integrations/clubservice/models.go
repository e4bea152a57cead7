package clubservice

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TeeTimeRecord сырой ти-тайм из GET /tsheet/range
// Поле tee_time остаётся строкой: некорректные значения отбрасываются
// на этапе сборки строк, а не валят весь ответ
type TeeTimeRecord struct {
	ID       int64           `json:"id"`
	TeeTime  string          `json:"tee_time"`
	Hole     string          `json:"hole"`
	Capacity int             `json:"capacity"`
	Status   string          `json:"status"`
	Bookings []BookingRecord `json:"bookings"`
}

// BookingRecord бронирование внутри ти-тайма
type BookingRecord struct {
	ID             int64   `json:"id"`
	TeeTimeID      int64   `json:"tee_time_id"`
	PlayerName     string  `json:"player_name"`
	PlayerEmail    *string `json:"player_email,omitempty"`
	HandicapNumber *string `json:"handicap_number,omitempty"`
	MemberID       *int64  `json:"member_id,omitempty"`
	FeeCategoryID  *int64  `json:"fee_category_id,omitempty"`
	Price          float64 `json:"price"`
	Status         string  `json:"status"`
	Holes          *int    `json:"holes,omitempty"`
	Cart           *bool   `json:"cart,omitempty"`
	PushCart       *bool   `json:"push_cart,omitempty"`
	Caddy          *bool   `json:"caddy,omitempty"`
}

// GenerateRequest запрос POST /tsheet/generate
type GenerateRequest struct {
	Date        string   `json:"date"` // YYYY-MM-DD
	Tees        []string `json:"tees"`
	StartTime   string   `json:"start_time"` // HH:MM
	EndTime     string   `json:"end_time"`   // HH:MM
	IntervalMin int      `json:"interval_min"`
	Capacity    int      `json:"capacity"`
	Status      string   `json:"status"`
}

// GenerateResponse ответ POST /tsheet/generate
type GenerateResponse struct {
	Created int `json:"created"`
}

// CreateBookingRequest запрос POST /tsheet/booking
type CreateBookingRequest struct {
	TeeTimeID      int64   `json:"tee_time_id"`
	PlayerName     string  `json:"player_name"`
	PlayerEmail    *string `json:"player_email,omitempty"`
	HandicapNumber *string `json:"handicap_number,omitempty"`
	PlayerType     string  `json:"player_type"`
	Holes          int     `json:"holes"`
	Prepaid        bool    `json:"prepaid"`
	Cart           bool    `json:"cart"`
	PushCart       bool    `json:"push_cart"`
	Caddy          bool    `json:"caddy"`
	MemberID       *int64  `json:"member_id,omitempty"`
	FeeCategoryID  *int64  `json:"fee_category_id,omitempty"`
	Age            *int    `json:"age,omitempty"`
}

// GolfFeeSuggestRequest запрос POST /fees/suggest/golf
type GolfFeeSuggestRequest struct {
	TeeTimeID  int64  `json:"tee_time_id"`
	PlayerType string `json:"player_type"`
	Holes      int    `json:"holes"`
	Age        *int   `json:"age,omitempty"`
}

// CartFeeSuggestRequest запрос POST /fees/suggest/cart
type CartFeeSuggestRequest struct {
	TeeTimeID  int64  `json:"tee_time_id"`
	PlayerType string `json:"player_type"`
	Holes      int    `json:"holes"`
}

// FeeSuggestion предложенный тариф
type FeeSuggestion struct {
	ID          int64   `json:"id"`
	Code        int     `json:"code"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// FeeCategoryRecord запись тарифной таблицы из GET /fees/golf
type FeeCategoryRecord struct {
	ID          int64   `json:"id"`
	Code        int     `json:"code"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// MemberRecord кандидат из справочника членов клуба (GET /members/search)
type MemberRecord struct {
	ID             int64   `json:"id"`
	MemberNumber   *string `json:"member_number,omitempty"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          *string `json:"email,omitempty"`
	HandicapNumber *string `json:"handicap_number,omitempty"`
}

// errorResponse модель ошибки бэкенда клуба
type errorResponse struct {
	Detail string `json:"detail"`
}
