package v1

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	cache "github.com/The-Gleb/product_banner/internal/adapter/cache/redis"
	db "github.com/The-Gleb/product_banner/internal/adapter/db/postgres"
	"github.com/The-Gleb/product_banner/internal/domain/render"
	"github.com/The-Gleb/product_banner/internal/domain/resolver"
	"github.com/The-Gleb/product_banner/internal/domain/service"
	"github.com/The-Gleb/product_banner/internal/domain/usecase"
	"github.com/The-Gleb/product_banner/internal/localization"
	"github.com/The-Gleb/product_banner/pkg/client/postgresql"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"
	"github.com/ory/dockertest"
	"github.com/ory/dockertest/docker"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	code, err := createTestContainers(m)
	if err != nil {
		log.Fatal(err)
	}
	os.Exit(code)
}

var (
	dsn       string
	redisAddr string
)

func cleanTables(t *testing.T, c postgresql.Client, tableNames ...string) {
	for _, name := range tableNames {
		query := fmt.Sprintf("TRUNCATE TABLE \"%s\" RESTART IDENTITY CASCADE", name)
		_, err := c.Exec(
			context.Background(),
			query,
		)
		require.NoError(t, err)
	}
}

func startRedis(pool *dockertest.Pool) (string, func(), error) {
	resource, err := pool.Run("redis", "7-alpine", nil)
	if err != nil {
		return "", nil, fmt.Errorf("failed to start redis: %w", err)
	}

	destroy := func() {
		if err := pool.Purge(resource); err != nil {
			slog.Error("failed to purge the redis container", "error", err)
		}
	}

	addr := net.JoinHostPort("localhost", resource.GetPort("6379/tcp"))

	err = pool.Retry(func() error {
		client := redis.NewClient(&redis.Options{Addr: addr})
		defer client.Close()

		return client.Ping(context.Background()).Err()
	})
	if err != nil {
		destroy()
		return "", nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return addr, destroy, nil
}

// createTestContainers starts postgres and redis for the full-stack tests.
// Without docker only the tests that need no containers run.
func createTestContainers(m *testing.M) (int, error) {
	pool, err := dockertest.NewPool("")
	if err == nil {
		err = pool.Client.Ping()
	}
	if err != nil {
		slog.Warn("docker is unreachable, skipping integration tests", "error", err)
		return m.Run(), nil
	}

	pg, err := pool.RunWithOptions(
		&dockertest.RunOptions{
			Repository: "postgres",
			Tag:        "alpine",
			Env: []string{
				"POSTGRES_USER=postgres",
				"POSTGRES_PASSWORD=postgres",
			},
			ExposedPorts: []string{"5432"},
		},
		func(config *docker.HostConfig) {
			config.AutoRemove = true
			config.RestartPolicy = docker.RestartPolicy{Name: "no"}
		},
	)
	if err != nil {
		return 0, err
	}

	defer func() {
		if err := pool.Purge(pg); err != nil {
			slog.Error("failed to purge the postgres container", "error", err)
		}
	}()

	containerDSN := fmt.Sprintf("postgres://postgres:postgres@%s/postgres?sslmode=disable", pg.GetHostPort("5432/tcp"))

	pool.MaxWait = 30 * time.Second
	err = pool.Retry(func() error {
		conn, err := pgx.Connect(context.Background(), containerDSN)
		if err != nil {
			return fmt.Errorf("failed to connect to the DB: %w", err)
		}
		return conn.Close(context.Background())
	})
	if err != nil {
		return 0, err
	}

	addr, stopRedis, err := startRedis(pool)
	if err != nil {
		return 0, err
	}
	defer stopRedis()

	dsn = containerDSN
	redisAddr = addr

	return m.Run(), nil
}

func testRequest(
	t *testing.T, ts *httptest.Server,
	method, path string, body []byte,
) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, bytes.NewReader(body))
	require.NoError(t, err)

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(respBody)
}

func Test_renderBannerHandler_FullStack(t *testing.T) {
	if dsn == "" {
		t.Skip("containers are not available")
	}

	c, err := postgresql.NewClient(context.Background(), dsn)
	require.NoError(t, err)
	defer c.Close()

	err = db.RunMigrations(dsn)
	require.NoError(t, err)

	cleanTables(t, c, "products", "media")

	_, err = c.Exec(
		context.Background(),
		`INSERT INTO media (id, url)
		VALUES (7, 'https://x/img7.jpg');

		INSERT INTO products (id, name, permalink, status, regular_price, currency, image_id)
		VALUES
			(42, 'Trail Runner', 'https://shop.example/p/trail-runner', 'publish', 89, 'USD', 7),
			(43, 'Draft Shoe', 'https://shop.example/p/draft', 'draft', 10, 'USD', NULL);`,
	)
	require.NoError(t, err)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: "",
		DB:       0,
	})
	defer redisClient.Close()
	require.NoError(t, redisClient.FlushDB(context.Background()).Err())

	l, err := localization.New("en")
	require.NoError(t, err)

	productStorage := db.NewProductStorage(c)
	productCache := cache.NewRedisCache(redisClient, 3600)
	productService := service.NewProductService(productStorage, productCache, 100)
	bannerService := service.NewBannerService(productService, resolver.New(l), render.NewRenderer(l))
	renderBannerUsecase := usecase.NewRenderBannerUsecase(bannerService)
	renderBannerHandler := NewRenderBannerHandler(renderBannerUsecase)

	r := chi.NewRouter()
	renderBannerHandler.AddToRouter(r)
	s := httptest.NewServer(r)
	defer s.Close()

	const productBanner = `<div class="product-banner-block" style="background-image: url(https://x/img7.jpg);">` +
		`<div class="product-banner-overlay"></div><div class="product-banner-content">` +
		`<h2 class="product-banner-title">Trail Runner</h2>` +
		`<div class="product-banner-price"><span class="amount">$89.00</span></div>` +
		`<a href="https://shop.example/p/trail-runner" class="product-banner-button button-style-gradient-purple" style="border-radius: 50px;">Shop Now</a>` +
		`</div></div>`

	tests := []struct {
		name    string
		body    string
		prepare func(t *testing.T)
		want    string
	}{
		{
			name: "bound product from db",
			body: `{"productId": 42}`,
			want: productBanner,
		},
		{
			name: "bound product from cache",
			body: `{"productId": 42}`,
			prepare: func(t *testing.T) {
				_, err := c.Exec(context.Background(), `UPDATE products SET regular_price = 1 WHERE id = 42;`)
				require.NoError(t, err)
			},
			want: productBanner,
		},
		{
			name: "draft product is not bound",
			body: `{"productId": 43}`,
			want: `<div class="product-banner-block product-banner-placeholder"><p>Please configure your product banner in the editor.</p></div>`,
		},
		{
			name: "custom content without product",
			body: `{"title": "Sale", "buttonStyle": "outline"}`,
			want: `<div class="product-banner-block">` +
				`<div class="product-banner-overlay"></div><div class="product-banner-content">` +
				`<h2 class="product-banner-title">Sale</h2>` +
				`</div></div>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepare != nil {
				tt.prepare(t)
			}

			resp, body := testRequest(t, s, http.MethodPost, "/render", []byte(tt.body))

			require.Equal(t, http.StatusOK, resp.StatusCode)
			require.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
			require.Equal(t, tt.want, body)
		})
	}
}
