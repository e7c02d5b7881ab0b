package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rl1809/shop-catalog/internal/core/domain"
)

// MySQLRepository implements port.ProductRepository and
// port.StockDecrementer over database/sql.
type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

// EnsureSchema creates the products table if it does not exist.
func (m *MySQLRepository) EnsureSchema(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS products (
			id         VARCHAR(36) PRIMARY KEY,
			name       VARCHAR(255) NOT NULL,
			price      BIGINT NOT NULL,
			stock      INT NOT NULL,
			category   VARCHAR(128) NOT NULL,
			photo      VARCHAR(512) NOT NULL,
			created_at DATETIME(6) NOT NULL,
			updated_at DATETIME(6) NOT NULL,
			INDEX idx_products_category (category),
			INDEX idx_products_created_at (created_at)
		)`)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func buildWhere(filter domain.ProductFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if filter.NameSearch != "" {
		conds = append(conds, "LOWER(name) LIKE ?")
		args = append(args, "%"+strings.ToLower(filter.NameSearch)+"%")
	}
	if filter.MaxPrice > 0 {
		conds = append(conds, "price <= ?")
		args = append(args, filter.MaxPrice)
	}
	if filter.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, filter.Category)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func orderBy(sort domain.SortOrder) string {
	switch sort {
	case domain.SortNewest:
		return " ORDER BY created_at DESC"
	case domain.SortPriceAsc:
		return " ORDER BY price ASC"
	case domain.SortPriceDesc:
		return " ORDER BY price DESC"
	default:
		return ""
	}
}

func (m *MySQLRepository) Find(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	query := "SELECT id, name, price, stock, category, photo, created_at, updated_at FROM products"
	where, args := buildWhere(filter)
	query += where
	query += orderBy(filter.Sort)
	if filter.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.Category, &p.Photo, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

func (m *MySQLRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	err := m.db.QueryRowContext(ctx, `
		SELECT id, name, price, stock, category, photo, created_at, updated_at
		FROM products WHERE id = ?`, id,
	).Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.Category, &p.Photo, &p.CreatedAt, &p.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query product: %w", err)
	}
	return &p, nil
}

func (m *MySQLRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT DISTINCT category FROM products ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

func (m *MySQLRepository) Count(ctx context.Context, filter domain.ProductFilter) (int, error) {
	query := "SELECT COUNT(*) FROM products"
	where, args := buildWhere(filter)
	query += where

	var n int
	if err := m.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func (m *MySQLRepository) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := m.db.ExecContext(ctx, `
		INSERT INTO products (id, name, price, stock, category, photo, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Price, p.Stock, p.Category, p.Photo, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return domain.Product{}, fmt.Errorf("insert product: %w", err)
	}
	return p, nil
}

func (m *MySQLRepository) Save(ctx context.Context, p domain.Product) error {
	_, err := m.db.ExecContext(ctx, `
		UPDATE products
		SET name = ?, price = ?, stock = ?, category = ?, photo = ?, updated_at = NOW(6)
		WHERE id = ?`,
		p.Name, p.Price, p.Stock, p.Category, p.Photo, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func (m *MySQLRepository) Delete(ctx context.Context, p domain.Product) error {
	_, err := m.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, p.ID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// DecrementStock decrements in a single conditional round trip. It
// reports false without modifying anything when the remaining stock
// would go negative or the product does not exist.
func (m *MySQLRepository) DecrementStock(ctx context.Context, productID string, quantity int) (bool, error) {
	result, err := m.db.ExecContext(ctx, `
		UPDATE products
		SET stock = stock - ?, updated_at = NOW(6)
		WHERE id = ? AND stock >= ?`,
		quantity, productID, quantity,
	)
	if err != nil {
		return false, fmt.Errorf("decrement stock: %w", err)
	}

	rows, _ := result.RowsAffected()
	return rows > 0, nil
}
