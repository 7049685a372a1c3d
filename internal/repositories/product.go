package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-diet-tracker/internal/models"
)

const productColumns = `barcode, name, portion_amount, portion_unit,
	calories, fats, saturated_fats, carbohydrates, sugars, proteins, salt, fiber`

// ProductReadRepository reads the shared product cache.
type ProductReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewProductReadRepository(db *sqlx.DB, txGetter TxGetter) *ProductReadRepository {
	return &ProductReadRepository{db: db, txGetter: txGetter}
}

// GetByBarcode returns the stored product, or nil when the barcode is unknown.
func (r *ProductReadRepository) GetByBarcode(ctx context.Context, barcode int64) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE barcode = ?`

	ex := executor(ctx, r.db, r.txGetter)

	var product models.Product
	err := sqlx.GetContext(ctx, ex, &product, ex.Rebind(query), barcode)

	logQuery(ctx, query, []any{barcode}, product.Name, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ProductWriteRepository writes the shared product cache.
type ProductWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewProductWriteRepository(db *sqlx.DB, txGetter TxGetter) *ProductWriteRepository {
	return &ProductWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a product. Products are immutable: saving a known barcode is a no-op.
func (r *ProductWriteRepository) Save(ctx context.Context, p *models.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (barcode) DO NOTHING
	`
	args := []any{
		p.Barcode, p.Name, p.PortionAmount, p.PortionUnit,
		p.Calories, p.Fats, p.SaturatedFats, p.Carbohydrates,
		p.Sugars, p.Proteins, p.Salt, p.Fiber,
	}

	ex := executor(ctx, r.db, r.txGetter)

	res, err := ex.ExecContext(ctx, ex.Rebind(query), args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(ctx, query, args, rowsAffected, err)

	return err
}
