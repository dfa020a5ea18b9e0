package db

import (
	"context"
	"embed"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/The-Gleb/product_banner/internal/domain/entity"
	"github.com/The-Gleb/product_banner/internal/domain/service"
	"github.com/The-Gleb/product_banner/internal/errors"
	"github.com/The-Gleb/product_banner/pkg/client/postgresql"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var _ service.ProductStorage = new(productStorage)

type productStorage struct {
	client postgresql.Client
}

func NewProductStorage(client postgresql.Client) *productStorage {
	return &productStorage{client: client}
}

//go:embed migration/*.sql
var migrationsDir embed.FS

func RunMigrations(dsn string) error {

	d, err := iofs.New(migrationsDir, "migration")
	if err != nil {
		slog.Error(err.Error())
		return fmt.Errorf("failed to return an iofs driver: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", d, dsn)
	if err != nil {
		slog.Error(err.Error())
		return fmt.Errorf("failed to get a new migrate instance: %w", err)
	}
	if err := m.Up(); err != nil {
		if !stdErrors.Is(err, migrate.ErrNoChange) {
			slog.Error(err.Error())
			return fmt.Errorf("failed to apply migrations to the DB: %w", err)
		}
	}
	return nil
}

const productColumns = `p.id, p.name, p.permalink, p.regular_price::text, p.sale_price::text,
	p.currency, COALESCE(p.image_id, 0), COALESCE(m.url, '')`

func (s *productStorage) ListProducts(ctx context.Context, filter entity.ProductFilter) ([]entity.ProductSnapshot, error) {

	status := filter.Status
	if status == "" {
		status = entity.StatusPublish
	}

	rows, err := s.client.Query(
		ctx,
		`SELECT `+productColumns+`
		FROM products p
		LEFT JOIN media m ON m.id = p.image_id
		WHERE p.status = $1
			AND ($2::text = '' OR p.name ILIKE '%' || $2::text || '%' ESCAPE '\')
		ORDER BY p.name, p.id
		LIMIT $3;`,
		string(status), escapeLike(filter.Search), filter.PageSize,
	)
	if err != nil {
		slog.Error("error selecting products",
			"error", err,
		)
		return nil, classify(err, "select products")
	}

	products, err := pgx.CollectRows[entity.ProductSnapshot](rows, func(row pgx.CollectableRow) (entity.ProductSnapshot, error) {
		return scanProduct(row)
	})
	if err != nil {
		slog.Error("error collecting rows",
			"error", err,
		)
		return nil, classify(err, "collect products")
	}

	return products, nil
}

// GetProduct joins the primary image so the snapshot arrives with its URL.
func (s *productStorage) GetProduct(ctx context.Context, id int64) (*entity.ProductSnapshot, error) {

	row := s.client.QueryRow(
		ctx,
		`SELECT `+productColumns+`
		FROM products p
		LEFT JOIN media m ON m.id = p.image_id
		WHERE p.id = $1 AND p.status = $2;`,
		id, string(entity.StatusPublish),
	)

	product, err := scanProduct(row)
	if err != nil {
		if stdErrors.Is(err, pgx.ErrNoRows) {
			slog.Debug("product not found", "product_id", id)
		} else {
			slog.Error("error scanning product",
				"error", err,
				"product_id", id,
			)
		}
		return nil, classify(err, fmt.Sprintf("product %d", id))
	}

	return &product, nil
}

func (s *productStorage) GetMedia(ctx context.Context, id int64) (entity.Media, error) {

	var media entity.Media
	err := s.client.QueryRow(
		ctx,
		`SELECT id, url
		FROM media
		WHERE id = $1;`,
		id,
	).Scan(&media.ID, &media.URL)
	if err != nil {
		if !stdErrors.Is(err, pgx.ErrNoRows) {
			slog.Error("error scanning media",
				"error", err,
				"media_id", id,
			)
		}
		return entity.Media{}, classify(err, fmt.Sprintf("media %d", id))
	}

	return media, nil
}

func scanProduct(row pgx.Row) (entity.ProductSnapshot, error) {
	var (
		product   entity.ProductSnapshot
		regular   string
		sale      *string
		currency  string
		imageID   int64
		imageURL  string
		permalink string
	)

	err := row.Scan(&product.ID, &product.Name, &permalink, &regular, &sale, &currency, &imageID, &imageURL)
	if err != nil {
		return entity.ProductSnapshot{}, err
	}

	markup, err := priceMarkup(regular, sale, currency)
	if err != nil {
		return entity.ProductSnapshot{}, err
	}

	product.PermalinkURL = permalink
	product.PriceDisplayMarkup = markup
	product.PrimaryImageID = imageID
	product.PrimaryImageURL = imageURL

	return product, nil
}

// classify maps a pgx error onto a domain error code.
func classify(err error, msg string) error {
	if stdErrors.Is(err, pgx.ErrNoRows) {
		return errors.WrapIntoDomainError(err, errors.ErrNoDataFound, msg)
	}

	var connErr *pgconn.ConnectError
	if stdErrors.As(err, &connErr) {
		return errors.WrapIntoDomainError(err, errors.ErrUnavailable, msg)
	}

	var pgErr *pgconn.PgError
	if stdErrors.As(err, &pgErr) {
		switch {
		case pgerrcode.IsConnectionException(pgErr.Code),
			pgerrcode.IsInsufficientResources(pgErr.Code),
			pgErr.Code == pgerrcode.AdminShutdown,
			pgErr.Code == pgerrcode.CannotConnectNow:
			return errors.WrapIntoDomainError(err, errors.ErrUnavailable, msg)
		case pgErr.Code == pgerrcode.UndefinedTable:
			slog.Error("catalog tables are missing, migrations not applied?")
		}
	}

	return errors.WrapIntoDomainError(err, errors.ErrDB, msg)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
