package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	cache "github.com/The-Gleb/product_banner/internal/adapter/cache/redis"
	db "github.com/The-Gleb/product_banner/internal/adapter/db/postgres"
	"github.com/The-Gleb/product_banner/internal/assets"
	"github.com/The-Gleb/product_banner/internal/config"
	v1 "github.com/The-Gleb/product_banner/internal/controller/http/v1/server"
	"github.com/The-Gleb/product_banner/internal/domain/block"
	"github.com/The-Gleb/product_banner/internal/domain/editor"
	"github.com/The-Gleb/product_banner/internal/domain/render"
	"github.com/The-Gleb/product_banner/internal/domain/resolver"
	"github.com/The-Gleb/product_banner/internal/domain/service"
	"github.com/The-Gleb/product_banner/internal/domain/usecase"
	"github.com/The-Gleb/product_banner/internal/localization"
	"github.com/The-Gleb/product_banner/internal/logger"
	"github.com/The-Gleb/product_banner/pkg/client/postgresql"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	configFile := os.Getenv("CONFIG_FILE")
	cfg := config.MustBuild(configFile)

	logger.Initialize(cfg.LogLevel)
	slog.Info("config is built", "run_address", cfg.RunAddress, "locale", cfg.Locale, "page_size", cfg.PageSize)

	localizer, err := localization.New(cfg.Locale)
	if err != nil {
		return err
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable", cfg.DB.Username, cfg.DB.Password, cfg.DB.Host, cfg.DB.Port, cfg.DB.DbName)
	postgresClient, err := postgresql.NewClient(ctx, dsn)
	if err != nil {
		return err
	}
	defer postgresClient.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURL,
		Password: "",
		DB:       0,
	})
	defer redisClient.Close()

	err = db.RunMigrations(dsn)
	if err != nil {
		return err
	}

	if cfg.SeedDemo {
		err = seedDemoCatalog(ctx, postgresClient)
		if err != nil {
			return err
		}
	}

	productStorage := db.NewProductStorage(postgresClient)
	productCache := cache.NewRedisCache(redisClient, cfg.CacheExpiry)

	bannerResolver := resolver.New(localizer)
	renderer := render.NewRenderer(localizer)

	productService := service.NewProductService(productStorage, productCache, cfg.PageSize)
	bannerService := service.NewBannerService(productService, bannerResolver, renderer)
	editorService := service.NewEditorService(ctx, editor.Deps{
		Source:    productService,
		Resolver:  bannerResolver,
		Localizer: localizer,
		PageSize:  cfg.PageSize,
	}, time.Duration(cfg.EditorSessionTTL)*time.Second)
	defer editorService.CloseAll()

	blocks := block.NewRegistry()
	blocks.MustRegister(block.Type{
		Name:       block.BannerName,
		Render:     bannerService.RenderBanner,
		Stylesheet: assets.StylesheetTag(cfg.AssetBaseURL),
	})

	s, err := v1.NewServer(cfg.RunAddress, v1.Usecases{
		RenderBanner:         usecase.NewRenderBannerUsecase(bannerService),
		RenderPage:           usecase.NewRenderPageUsecase(blocks),
		ListProducts:         usecase.NewListProductsUsecase(productService),
		MountEditor:          usecase.NewMountEditorUsecase(editorService),
		GetEditorState:       usecase.NewGetEditorStateUsecase(editorService),
		DispatchEditorAction: usecase.NewDispatchEditorActionUsecase(editorService),
		CloseEditor:          usecase.NewCloseEditorUsecase(editorService),
	})
	if err != nil {
		return err
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()

		<-ctx.Done()

		ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Stop(ctxShutdown)
		if err != nil {
			slog.Error("error shutting down server", "error", err)
			return
		}
		slog.Info("server was successfully shut down")
	}()

	slog.Info("starting server", "address", cfg.RunAddress)
	if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", "error", err)
		cancel()
	}

	wg.Wait()

	return nil
}

// seedDemoCatalog fills an empty catalog with a few products for local runs.
func seedDemoCatalog(ctx context.Context, c postgresql.Client) error {
	tx, err := c.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var count int
	err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM products;`).Scan(&count)
	if err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		slog.Info("catalog is not empty, skipping seed", "products", count)
		return nil
	}

	_, err = tx.Exec(
		ctx,
		`INSERT INTO media (id, url)
		VALUES
			(1, 'https://picsum.photos/id/21/1600/900'),
			(2, 'https://picsum.photos/id/103/1600/900');

		INSERT INTO products (name, permalink, status, regular_price, sale_price, currency, image_id)
		VALUES
			('Trail Runner', 'https://shop.example/product/trail-runner', 'publish', 89, NULL, 'USD', 1),
			('Canvas Sneaker', 'https://shop.example/product/canvas-sneaker', 'publish', 65, 49.99, 'USD', 2),
			('Leather Boot', 'https://shop.example/product/leather-boot', 'publish', 159, NULL, 'EUR', NULL),
			('Prototype Sandal', 'https://shop.example/product/prototype-sandal', 'draft', 30, NULL, 'USD', NULL);

		SELECT setval(pg_get_serial_sequence('media', 'id'), (SELECT MAX(id) FROM media));`,
	)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	slog.Info("demo catalog seeded")

	return tx.Commit(ctx)
}
