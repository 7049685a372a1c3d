package repositories

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-diet-tracker/internal/models"
)

// FridgeWriteRepository handles virtual fridge write operations
type FridgeWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewFridgeWriteRepository(db *sqlx.DB, txGetter TxGetter) *FridgeWriteRepository {
	return &FridgeWriteRepository{db: db, txGetter: txGetter}
}

// CreateFridge creates the fridge of a user and returns its id.
func (r *FridgeWriteRepository) CreateFridge(ctx context.Context, userID int64) (int64, error) {
	query := `INSERT INTO virtual_fridge (user_id) VALUES (?) RETURNING fridge_id`

	ex := executor(ctx, r.db, r.txGetter)

	var fridgeID int64
	err := sqlx.GetContext(ctx, ex, &fridgeID, ex.Rebind(query), userID)

	logQuery(ctx, query, []any{userID}, fridgeID, err)

	return fridgeID, err
}

// AddItem performs an UPSERT: creates the item if missing, otherwise increases
// its quantity. Returns the quantity after the change.
func (r *FridgeWriteRepository) AddItem(ctx context.Context, fridgeID, barcode int64, quantity float64) (float64, error) {
	query := `
		INSERT INTO fridge (fridge_id, food_id, quantity)
		VALUES (?, ?, ?)
		ON CONFLICT (fridge_id, food_id)
		DO UPDATE SET quantity = fridge.quantity + excluded.quantity
		RETURNING quantity
	`
	args := []any{fridgeID, barcode, quantity}

	ex := executor(ctx, r.db, r.txGetter)

	var total float64
	err := sqlx.GetContext(ctx, ex, &total, ex.Rebind(query), args...)

	logQuery(ctx, query, args, total, err)

	return total, err
}

// SetQuantity overwrites the quantity of an item. Returns sql.ErrNoRows when
// the product is not in the fridge.
func (r *FridgeWriteRepository) SetQuantity(ctx context.Context, fridgeID, barcode int64, quantity float64) error {
	query := `UPDATE fridge SET quantity = ? WHERE fridge_id = ? AND food_id = ?`
	args := []any{quantity, fridgeID, barcode}

	ex := executor(ctx, r.db, r.txGetter)
	return execOne(ctx, ex, query, args)
}

// RemoveItem deletes an item. Returns sql.ErrNoRows when the product is not
// in the fridge.
func (r *FridgeWriteRepository) RemoveItem(ctx context.Context, fridgeID, barcode int64) error {
	query := `DELETE FROM fridge WHERE fridge_id = ? AND food_id = ?`
	args := []any{fridgeID, barcode}

	ex := executor(ctx, r.db, r.txGetter)
	return execOne(ctx, ex, query, args)
}

// execOne runs a statement expected to touch exactly one row.
func execOne(ctx context.Context, ex sqlx.ExtContext, query string, args []any) error {
	res, err := ex.ExecContext(ctx, ex.Rebind(query), args...)
	var rowsAffected int64
	if err == nil {
		rowsAffected, err = res.RowsAffected()
	}

	logQuery(ctx, query, args, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// FridgeReadRepository handles virtual fridge read operations
type FridgeReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewFridgeReadRepository(db *sqlx.DB, txGetter TxGetter) *FridgeReadRepository {
	return &FridgeReadRepository{db: db, txGetter: txGetter}
}

// GetFridgeID returns the fridge id of a user, or sql.ErrNoRows.
func (r *FridgeReadRepository) GetFridgeID(ctx context.Context, userID int64) (int64, error) {
	query := `SELECT fridge_id FROM virtual_fridge WHERE user_id = ?`

	ex := executor(ctx, r.db, r.txGetter)

	var fridgeID int64
	err := sqlx.GetContext(ctx, ex, &fridgeID, ex.Rebind(query), userID)

	logQuery(ctx, query, []any{userID}, fridgeID, err)

	return fridgeID, err
}

// ListProducts returns the fridge contents joined with their products,
// ordered by quantity descending then barcode ascending.
func (r *FridgeReadRepository) ListProducts(ctx context.Context, fridgeID int64) ([]models.FridgeProduct, error) {
	query := `
		SELECT p.barcode, p.name, p.portion_amount, p.portion_unit,
		       p.calories, p.fats, p.saturated_fats, p.carbohydrates,
		       p.sugars, p.proteins, p.salt, p.fiber,
		       f.quantity
		FROM fridge f
		JOIN products p ON p.barcode = f.food_id
		WHERE f.fridge_id = ?
		ORDER BY f.quantity DESC, p.barcode ASC
	`

	ex := executor(ctx, r.db, r.txGetter)

	items := []models.FridgeProduct{}
	err := sqlx.SelectContext(ctx, ex, &items, ex.Rebind(query), fridgeID)

	logQuery(ctx, query, []any{fridgeID}, len(items), err)

	if err != nil {
		return nil, err
	}
	return items, nil
}
