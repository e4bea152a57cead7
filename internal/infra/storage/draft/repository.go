package draft

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/GCC-TeeSheetService/internal/domain"
	"github.com/m04kA/GCC-TeeSheetService/pkg/dbmetrics"
	"github.com/m04kA/GCC-TeeSheetService/pkg/psqlbuilder"
)

var rowColumns = []string{
	"id",
	"draft_id",
	"position",
	"player_type",
	"senior",
	"name",
	"email",
	"handicap_number",
	"member_id",
	"age",
	"prepaid",
	"selected_fee_id",
	"selected_fee_price",
	"auto_fee_id",
	"auto_fee_price",
	"auto_fee_description",
	"pricing_unavailable",
	"cart_requested",
	"cart_price",
	"cart_description",
	"cart_unavailable",
	"push_cart",
	"caddy",
	"suggestion_seq",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с черновиками бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория черновиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateDraft создает новый черновик бронирования
func (r *Repository) CreateDraft(ctx context.Context, d *domain.BookingDraft) (*domain.BookingDraft, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_drafts").
		Columns("tee_time_id", "tee_time", "holes", "status").
		Values(d.TeeTimeID, d.TeeTime, d.Holes, d.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateDraft - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&d.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateDraft - execute insert: %v", ErrExecQuery, err)
	}

	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return d, nil
}

// GetDraft получает черновик по ID
func (r *Repository) GetDraft(ctx context.Context, id int64) (*domain.BookingDraft, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id", "tee_time_id", "tee_time", "holes", "status", "created_bookings", "created_at", "updated_at",
	).
		From("booking_drafts").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем черновик: одновременные правки строк
	// с разных терминалов не должны терять пересчёт
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDraft - build select query: %v", ErrBuildQuery, err)
	}

	var d domain.BookingDraft
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&d.ID, &d.TeeTimeID, &d.TeeTime, &d.Holes, &d.Status, &d.CreatedBookings, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDraft - scan draft: %v", ErrScanRow, err)
	}

	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return &d, nil
}

// CloseDraft закрывает черновик и фиксирует число созданных бронирований
func (r *Repository) CloseDraft(ctx context.Context, id int64, createdBookings int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_drafts").
		Set("status", domain.DraftClosed).
		Set("created_bookings", createdBookings).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: CloseDraft - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: CloseDraft - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: CloseDraft - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrDraftNotFound
	}

	return nil
}

// AddRow добавляет строку игрока в черновик
func (r *Repository) AddRow(ctx context.Context, row *domain.DraftRow) (*domain.DraftRow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_draft_rows").
		Columns(
			"draft_id",
			"position",
			"player_type",
			"senior",
			"name",
			"email",
			"handicap_number",
			"member_id",
			"age",
			"prepaid",
			"cart_requested",
			"push_cart",
			"caddy",
		).
		Values(
			row.DraftID,
			row.Position,
			row.PlayerType,
			row.Senior,
			row.Name,
			row.Email,
			row.HandicapNumber,
			row.MemberID,
			row.Age,
			row.Prepaid,
			row.CartRequested,
			row.PushCart,
			row.Caddy,
		).
		Suffix("RETURNING id, suggestion_seq, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: AddRow - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&row.ID, &row.SuggestionSeq, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: AddRow - execute insert: %v", ErrExecQuery, err)
	}

	row.CreatedAt = createdAt.Time
	row.UpdatedAt = updatedAt.Time

	return row, nil
}

// UpdateRow обновляет редактируемые поля строки черновика
func (r *Repository) UpdateRow(ctx context.Context, row *domain.DraftRow) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_draft_rows").
		Set("player_type", row.PlayerType).
		Set("senior", row.Senior).
		Set("name", row.Name).
		Set("email", row.Email).
		Set("handicap_number", row.HandicapNumber).
		Set("member_id", row.MemberID).
		Set("age", row.Age).
		Set("prepaid", row.Prepaid).
		Set("selected_fee_id", row.SelectedFeeID).
		Set("selected_fee_price", row.SelectedFeePrice).
		Set("cart_requested", row.CartRequested).
		Set("push_cart", row.PushCart).
		Set("caddy", row.Caddy).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": row.ID, "draft_id": row.DraftID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateRow - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateRow - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateRow - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrRowNotFound
	}

	return nil
}

// RemoveRow удаляет строку из черновика
func (r *Repository) RemoveRow(ctx context.Context, draftID, rowID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("booking_draft_rows").
		Where(squirrel.Eq{"id": rowID, "draft_id": draftID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: RemoveRow - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: RemoveRow - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: RemoveRow - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrRowNotFound
	}

	return nil
}

// GetRow получает строку черновика по ID
func (r *Repository) GetRow(ctx context.Context, draftID, rowID int64) (*domain.DraftRow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(rowColumns...).
		From("booking_draft_rows").
		Where(squirrel.Eq{"id": rowID, "draft_id": draftID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRow - build select query: %v", ErrBuildQuery, err)
	}

	row, err := scanRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRow - scan row: %v", ErrScanRow, err)
	}

	return row, nil
}

// GetRows получает все строки черновика в порядке добавления
func (r *Repository) GetRows(ctx context.Context, draftID int64) ([]*domain.DraftRow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(rowColumns...).
		From("booking_draft_rows").
		Where(squirrel.Eq{"draft_id": draftID}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRows - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRows - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.DraftRow, 0)
	for rows.Next() {
		row, err := scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetRows - scan row: %v", ErrScanRow, err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRows - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// NextPosition возвращает позицию для новой строки черновика
func (r *Repository) NextPosition(ctx context.Context, draftID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(MAX(position) + 1, 0)").
		From("booking_draft_rows").
		Where(squirrel.Eq{"draft_id": draftID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: NextPosition - build select query: %v", ErrBuildQuery, err)
	}

	var position int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&position); err != nil {
		return 0, fmt.Errorf("%w: NextPosition - scan position: %v", ErrScanRow, err)
	}

	return position, nil
}

// IssueSuggestionSeq выдает следующий sequence-номер автоподбора для строки
// Номер фиксируется до сетевого вызова; результат с другим номером не применяется
func (r *Repository) IssueSuggestionSeq(ctx context.Context, draftID, rowID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_draft_rows").
		Set("suggestion_seq", squirrel.Expr("suggestion_seq + 1")).
		Where(squirrel.Eq{"id": rowID, "draft_id": draftID}).
		Suffix("RETURNING suggestion_seq").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: IssueSuggestionSeq - build update query: %v", ErrBuildQuery, err)
	}

	var seq int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&seq)
	if err == sql.ErrNoRows {
		return 0, ErrRowNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: IssueSuggestionSeq - scan seq: %v", ErrScanRow, err)
	}

	return seq, nil
}

// ApplyFeeSuggestion применяет результат автоподбора тарифа на гольф
// Запись происходит только если seq всё ещё последний выданный для строки,
// иначе возвращается ErrStaleSuggestion
func (r *Repository) ApplyFeeSuggestion(ctx context.Context, rowID, seq int64, feeID *int64, price *float64, description *string, unavailable bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_draft_rows").
		Set("auto_fee_id", feeID).
		Set("auto_fee_price", price).
		Set("auto_fee_description", description).
		Set("pricing_unavailable", unavailable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": rowID, "suggestion_seq": seq}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ApplyFeeSuggestion - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ApplyFeeSuggestion - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ApplyFeeSuggestion - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrStaleSuggestion
	}

	return nil
}

// ApplyCartSuggestion применяет результат автоподбора тарифа на кар
// Та же sequence-защита, что и у ApplyFeeSuggestion
func (r *Repository) ApplyCartSuggestion(ctx context.Context, rowID, seq int64, price *float64, description *string, unavailable bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("booking_draft_rows").
		Set("cart_price", price).
		Set("cart_description", description).
		Set("cart_unavailable", unavailable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": rowID, "suggestion_seq": seq}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ApplyCartSuggestion - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ApplyCartSuggestion - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ApplyCartSuggestion - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrStaleSuggestion
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRow(s rowScanner) (*domain.DraftRow, error) {
	var row domain.DraftRow
	var createdAt, updatedAt sql.NullTime

	err := s.Scan(
		&row.ID,
		&row.DraftID,
		&row.Position,
		&row.PlayerType,
		&row.Senior,
		&row.Name,
		&row.Email,
		&row.HandicapNumber,
		&row.MemberID,
		&row.Age,
		&row.Prepaid,
		&row.SelectedFeeID,
		&row.SelectedFeePrice,
		&row.AutoFeeID,
		&row.AutoFeePrice,
		&row.AutoFeeDescription,
		&row.PricingUnavailable,
		&row.CartRequested,
		&row.CartPrice,
		&row.CartDescription,
		&row.CartUnavailable,
		&row.PushCart,
		&row.Caddy,
		&row.SuggestionSeq,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	row.CreatedAt = createdAt.Time
	row.UpdatedAt = updatedAt.Time

	return &row, nil
}
