package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Hemanth1845/sales-forecasting/infrastructure/database/postgres"
	"github.com/Hemanth1845/sales-forecasting/internal/domain"
	"github.com/Masterminds/squirrel"
)

const smartphonesTable = "smartphones"

var productColumns = []string{
	"id", "brand", "model", "price", "ram", "storage", "battery", "camera_mp", "os", "launch_date", "created_at",
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	CreateMany(ctx context.Context, products []*domain.Product) (int, error)
	GetByModel(ctx context.Context, model string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Count(ctx context.Context) (int, error)
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	return insertProduct(ctx, r.conn, product)
}

// CreateMany insere os produtos em uma única transação, ignorando modelos já cadastrados
func (r *productRepository) CreateMany(ctx context.Context, products []*domain.Product) (int, error) {
	inserted := 0

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, p := range products {
			query, args, err := insertProductQuery(p).
				Suffix("ON CONFLICT (model) DO NOTHING RETURNING id, created_at").
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			err = tx.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.CreatedAt)
			if errors.Is(err, sql.ErrNoRows) {
				continue
			}
			if err != nil {
				return wrapExecError(err)
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

func (r *productRepository) GetByModel(ctx context.Context, model string) (*domain.Product, error) {
	query, args, err := squirrel.
		Select(productColumns...).
		From(smartphonesTable).
		Where(squirrel.Eq{"model": model}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	product, err := scanProduct(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear produto: %w", err)
	}

	return product, nil
}

func (r *productRepository) List(ctx context.Context) ([]*domain.Product, error) {
	query, args, err := squirrel.
		Select(productColumns...).
		From(smartphonesTable).
		OrderBy("brand ASC", "model ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

func (r *productRepository) Count(ctx context.Context) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(smartphonesTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}

	return count, nil
}

func insertProductQuery(p *domain.Product) squirrel.InsertBuilder {
	return squirrel.
		Insert(smartphonesTable).
		Columns("brand", "model", "price", "ram", "storage", "battery", "camera_mp", "os", "launch_date").
		Values(p.Brand, p.Model, p.Price, p.RAM, p.Storage, p.Battery, p.CameraMP, p.OS, p.LaunchDate).
		PlaceholderFormat(squirrel.Dollar)
}

func insertProduct(ctx context.Context, q postgres.Queryer, p *domain.Product) error {
	query, args, err := insertProductQuery(p).Suffix("RETURNING id, created_at").ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := q.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.CreatedAt); err != nil {
		return wrapExecError(err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID,
		&p.Brand,
		&p.Model,
		&p.Price,
		&p.RAM,
		&p.Storage,
		&p.Battery,
		&p.CameraMP,
		&p.OS,
		&p.LaunchDate,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
