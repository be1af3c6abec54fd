package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"refrigeracao_os/internal/adapter/http/handlers"
	"refrigeracao_os/internal/adapter/http/routes"
	"refrigeracao_os/internal/adapter/persistence/memory"
	"refrigeracao_os/internal/adapter/persistence/postgres"
	"refrigeracao_os/internal/adapter/persistence/repository"
	"refrigeracao_os/internal/config"
	"refrigeracao_os/internal/infrastructure/database"
	"refrigeracao_os/internal/infrastructure/document"
	"refrigeracao_os/internal/infrastructure/geocoding"
	"refrigeracao_os/internal/infrastructure/spreadsheet"
	"refrigeracao_os/internal/usecase"
	"refrigeracao_os/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
)

const (
	shutdownTimeout  = 30 * time.Second
	maxSweepInterval = 10 * time.Minute
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "refrigeracao-os",
		Usage: "pricing and service orders API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "optional config file (yaml, json, toml or env)",
				EnvVars: []string{"CONFIG_FILE"},
			},
		},
		DefaultCommand: "serve",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start the HTTP API",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "apply the Postgres schema migrations and exit",
				Action: migrate,
			},
		},
	}
}

// stores is the persistence backend selected by STORAGE_DRIVER.
type stores struct {
	materials   interfaces.IMaterialRepository
	priceTables interfaces.IPriceTableRepository
	orders      interfaces.IOrderRepository
	customers   interfaces.ICustomerRepository
	close       func()
}

func serve(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.close()

	drafts := memory.NewQuotationDraftStore(cfg.DraftTTL)
	go drafts.RunSweeper(ctx, sweepInterval(cfg.DraftTTL))

	priceTableUseCase := usecase.NewPriceTableUseCase(st.priceTables)
	materialUseCase := usecase.NewMaterialUseCase(st.materials, st.orders)
	orderUseCase := usecase.NewOrderUseCase(
		st.orders,
		st.customers,
		newLocationProvider(cfg),
		document.NewPDFRenderer(document.Company{Name: cfg.Company.Name, Phone: cfg.Company.Phone}),
		spreadsheet.NewXLSXExporter(),
		cfg.Geocoder.Timeout,
	)
	quotationUseCase := usecase.NewQuotationUseCase(drafts, materialUseCase, priceTableUseCase, orderUseCase)

	// Load (or seed) the price table before accepting traffic.
	if _, err := priceTableUseCase.Get(ctx); err != nil {
		return fmt.Errorf("loading price table: %w", err)
	}

	router := routes.NewRouter(routes.Handlers{
		PriceTable: handlers.NewPriceTableHandler(priceTableUseCase),
		Materials:  handlers.NewMaterialHandler(materialUseCase),
		Quotations: handlers.NewQuotationHandler(quotationUseCase),
		Orders:     handlers.NewOrderHandler(orderUseCase),
	}, cfg.MetricsEnabled)

	srv := routes.NewServer(":"+strconv.Itoa(cfg.HTTPPort), router)

	go func() {
		log.Printf("[server] listening port=%d storage=%s", cfg.HTTPPort, cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[server] listen failed err=%v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Println("[server] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	log.Println("[server] shutdown complete")
	return nil
}

func migrate(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if cfg.StorageDriver != config.StoragePostgres {
		return fmt.Errorf("migrate requires STORAGE_DRIVER=%s, got %s", config.StoragePostgres, cfg.StorageDriver)
	}
	return postgres.Migrate(cfg.Postgres.URL)
}

func openStores(ctx context.Context, cfg config.Config) (stores, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		if cfg.Postgres.AutoMigrate {
			if err := postgres.Migrate(cfg.Postgres.URL); err != nil {
				return stores{}, err
			}
		}
		pool, err := postgres.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return stores{}, err
		}
		return stores{
			materials:   postgres.NewMaterialRepository(pool),
			priceTables: postgres.NewPriceTableRepository(pool),
			orders:      postgres.NewOrderRepository(pool),
			customers:   postgres.NewCustomerRepository(pool),
			close:       pool.Close,
		}, nil
	default:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return stores{}, fmt.Errorf("failed to create dynamodb client: %w", err)
		}
		return stores{
			materials:   repository.NewMaterialDynamoRepository(ddb, cfg.Tables.Materials),
			priceTables: repository.NewPriceTableDynamoRepository(ddb, cfg.Tables.PriceTables),
			orders:      repository.NewOrderDynamoRepository(ddb, cfg.Tables.Orders, cfg.Tables.OrderMaterials, cfg.Tables.Customers),
			customers:   repository.NewCustomerDynamoRepository(ddb, cfg.Tables.Customers),
			close:       func() {},
		}, nil
	}
}

// newLocationProvider returns nil when no geocoder is configured; addresses are
// then taken as typed.
func newLocationProvider(cfg config.Config) interfaces.ILocationProvider {
	if cfg.Geocoder.URL == "" {
		return nil
	}
	return geocoding.NewNominatimClient(cfg.Geocoder.URL, cfg.Geocoder.UserAgent, cfg.Geocoder.Timeout)
}

func sweepInterval(ttl time.Duration) time.Duration {
	if ttl <= 0 || ttl > maxSweepInterval {
		return maxSweepInterval
	}
	return ttl
}
