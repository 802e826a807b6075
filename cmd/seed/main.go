// seed carga los datos iniciales de la plataforma: catálogo de permisos,
// clientes de demostración, roles de sistema y usuarios de prueba. Es
// idempotente: si el catálogo ya existe no escribe nada.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/nexusgestion/admin-api/internal/application/seed"
	"github.com/nexusgestion/admin-api/internal/infrastructure/postgres"
	"github.com/nexusgestion/admin-api/pkg/config"
	"github.com/nexusgestion/admin-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:      cfg.App.Env,
		Level:    cfg.App.LogLevel,
		Servicio: cfg.App.Name + "-seed",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	seeder := seed.NewSeeder(postgres.NewTxRunner(pool))
	cargado, err := seeder.Cargar(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("carga de datos iniciales")
	}
	if !cargado {
		log.Info().Msg("los datos iniciales ya existían, no se escribió nada")
		return
	}
	log.Info().Msg("datos iniciales cargados")
}
