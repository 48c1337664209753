// seed_admin crea la cuenta de administrador inicial si no existe.
//
// Uso: SEED_ADMIN_EMAIL=admin@ejemplo.com SEED_ADMIN_PASSWORD=... go run ./cmd/seed_admin
// Lee la misma configuración que la API (env vars / .env).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Catalogo-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		fmt.Fprintln(os.Stderr, "SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD son requeridos")
		os.Exit(1)
	}

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)

	existing, err := userRepo.GetByEmail(cfg.Seed.AdminEmail)
	if err != nil {
		fmt.Fprintf(os.Stderr, "consultar admin: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Printf("El administrador %s ya existe, nada que hacer\n", cfg.Seed.AdminEmail)
		return
	}

	userUC := usecase.NewUserUseCase(userRepo)
	user, err := userUC.Create(dto.CreateUserRequest{
		Name:     cfg.Seed.AdminName,
		Email:    cfg.Seed.AdminEmail,
		Password: cfg.Seed.AdminPassword,
		Role:     entity.RoleAdmin,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "crear admin: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Administrador creado: %s (%s)\n", user.Email, user.ID)
}
