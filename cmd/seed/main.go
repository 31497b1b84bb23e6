// seed importa un inventario en formato XML (el mismo que produce /api/inventory/export?format=xml)
// para un usuario, creándolo si no existe. Todo se aplica en una sola transacción.
//
// Uso: go run ./cmd/seed --username alice --email alice@x.com --password secret1 [inventario.xml]
// Por defecto busca inventario.xml en el directorio actual.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"

	"github.com/jhoicas/inventory-tracker/internal/application/auth"
	"github.com/jhoicas/inventory-tracker/internal/application/dto"
	"github.com/jhoicas/inventory-tracker/internal/application/inventory"
	"github.com/jhoicas/inventory-tracker/internal/domain/repository"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/postgres"
	"github.com/jhoicas/inventory-tracker/internal/infrastructure/report"
	"github.com/jhoicas/inventory-tracker/pkg/config"
	"github.com/jhoicas/inventory-tracker/pkg/logger"
	"github.com/jhoicas/inventory-tracker/pkg/password"
)

func main() {
	username := pflag.String("username", "demo", "usuario dueño de los items")
	email := pflag.String("email", "demo@example.com", "email del usuario")
	pass := pflag.String("password", "", "contraseña (solo si el usuario no existe)")
	pflag.Parse()

	xmlPath := "inventario.xml"
	if pflag.NArg() > 0 {
		xmlPath = pflag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	f, err := os.Open(xmlPath)
	if err != nil {
		log.Fatal().Err(err).Str("file", xmlPath).Msg("abrir XML")
	}
	defer f.Close()

	items, err := report.ParseInventoryXML(f)
	if err != nil {
		log.Fatal().Err(err).Msg("leer inventario")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	hasher := password.NewHasher(password.Cost)
	err = postgres.NewTxRunner(pool).Run(ctx, func(users repository.UserRepository, itemRepo repository.ItemRepository) error {
		ownerID, err := ensureUser(ctx, users, hasher, *username, *email, *pass)
		if err != nil {
			return err
		}
		uc := inventory.NewItemUseCase(itemRepo)
		for _, it := range items {
			if _, err := uc.Create(ctx, ownerID, toRequest(it)); err != nil {
				return fmt.Errorf("item %q: %w", it.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("importar inventario")
	}
	log.Info().Int("items", len(items)).Str("username", *username).Msg("inventario importado")
}

// ensureUser devuelve el id del usuario con ese email, registrándolo si no existe.
func ensureUser(ctx context.Context, users repository.UserRepository, hasher *password.Hasher, username, email, pass string) (string, error) {
	u, err := users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", err
	}
	if u != nil {
		return u.ID, nil
	}
	created, err := auth.NewAuthUseCase(users, hasher, nil).Register(ctx, dto.RegisterRequest{
		Username: username,
		Email:    email,
		Password: pass,
	})
	if err != nil {
		return "", fmt.Errorf("registrar %s: %w", username, err)
	}
	return created.ID, nil
}

func toRequest(it report.ImportedItem) dto.ItemRequest {
	req := dto.ItemRequest{
		Name:        it.Name,
		Description: it.Description,
		Quantity:    dto.NewNumberInput(decimal.NewFromInt(it.Quantity)),
	}
	if it.Price != nil {
		req.Price = dto.NewNumberInput(*it.Price)
	}
	return req
}
