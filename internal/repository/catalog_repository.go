package repository

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"formulab/internal/models"
)

// CatalogRepository reads the reference-formulation catalog from Postgres.
// The table is written only by the seed tool; the service treats it as
// read-only.
type CatalogRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCatalogRepository(db *pgxpool.Pool, logger *zap.Logger) *CatalogRepository {
	return &CatalogRepository{
		db:     db,
		logger: logger,
	}
}

func (r *CatalogRepository) Insert(ctx context.Context, entry *models.CatalogEntry) error {
	query := squirrel.Insert("catalog_entries").
		Columns("id", "product_name", "product_type", "texture", "claims", "ingredients",
			"fragrance", "vegan", "skin_type", "feel", "summary", "created_at").
		Values(entry.ID, entry.Fields.ProductName, entry.Fields.ProductType, entry.Fields.Texture,
			strings.Join(entry.Fields.Claims, ","), entry.Fields.Ingredients,
			entry.Fields.Fragrance, entry.Fields.Vegan, entry.Fields.SkinType,
			entry.Fields.Feel, entry.Summary, time.Now()).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ListAll returns every catalog entry ordered by id, which is the pool's
// natural order for ranking tie-breaks.
func (r *CatalogRepository) ListAll(ctx context.Context) ([]models.CatalogEntry, error) {
	query := squirrel.Select("id", "product_name", "product_type", "texture", "claims",
		"ingredients", "fragrance", "vegan", "skin_type", "feel", "summary").
		From("catalog_entries").
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.CatalogEntry
	for rows.Next() {
		var (
			entry  models.CatalogEntry
			claims string
		)
		if err := rows.Scan(
			&entry.ID, &entry.Fields.ProductName, &entry.Fields.ProductType,
			&entry.Fields.Texture, &claims, &entry.Fields.Ingredients,
			&entry.Fields.Fragrance, &entry.Fields.Vegan, &entry.Fields.SkinType,
			&entry.Fields.Feel, &entry.Summary,
		); err != nil {
			return nil, err
		}
		entry.Fields.Claims = splitClaims(claims)
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (r *CatalogRepository) Count(ctx context.Context) (int64, error) {
	sql, args, err := squirrel.Select("count(*)").
		From("catalog_entries").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	var n int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&n)
	return n, err
}

func splitClaims(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
