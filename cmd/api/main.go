package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/nexusgestion/admin-api/internal/application/auth"
	"github.com/nexusgestion/admin-api/internal/application/usecase"
	infrapdf "github.com/nexusgestion/admin-api/internal/infrastructure/pdf"
	"github.com/nexusgestion/admin-api/internal/infrastructure/postgres"
	httpRouter "github.com/nexusgestion/admin-api/internal/interfaces/http"
	"github.com/nexusgestion/admin-api/pkg/config"
	"github.com/nexusgestion/admin-api/pkg/logger"
	"github.com/nexusgestion/admin-api/pkg/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:      cfg.App.Env,
		Level:    cfg.App.LogLevel,
		Servicio: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	clienteRepo := postgres.NewClienteRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	rolRepo := postgres.NewRolRepository(pool)
	permisoRepo := postgres.NewPermisoRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	ordenRepo := postgres.NewOrdenCompraRepository(pool)
	facturaRepo := postgres.NewFacturaProveedorRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	ajusteRepo := postgres.NewAjusteInventarioRepository(pool)
	alertaRepo := postgres.NewAlertaStockRepository(pool)

	codec, err := token.NewCodec(cfg.JWT.Secret, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración JWT")
	}
	ttl := time.Duration(cfg.JWT.Expiration) * time.Minute

	authUC := auth.NewAuthUseCase(usuarioRepo, rolRepo, codec, ttl)
	clienteUC := usecase.NewClienteUseCase(clienteRepo)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo, clienteRepo)
	rolUC := usecase.NewRolUseCase(rolRepo, permisoRepo, usuarioRepo)

	// PDF: representación imprimible de la orden de compra
	pdfGenerator := infrapdf.NewMarotoOrdenPDFGenerator()
	comprasUC := usecase.NewComprasUseCase(
		proveedorRepo, productoRepo, ordenRepo, facturaRepo,
		clienteRepo, pdfGenerator,
	)
	inventarioUC := usecase.NewInventarioUseCase(
		categoriaRepo, productoRepo, ajusteRepo, alertaRepo,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "NexusGestión API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ClienteUC:    clienteUC,
		UsuarioUC:    usuarioUC,
		RolUC:        rolUC,
		ComprasUC:    comprasUC,
		InventarioUC: inventarioUC,
		TokenCodec:   codec,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
