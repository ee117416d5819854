// crear_usuario da de alta un usuario del personal en la base de datos.
// No existe endpoint público de registro; este comando es la única vía de alta.
//
// Uso: go run ./cmd/crear_usuario <email> <password> <nombre> <rol>
// rol: admin | bodeguero. La conexión se toma de las variables DB_*.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jpacevedo/inventario-pro/internal/application/auth"
	"github.com/jpacevedo/inventario-pro/internal/application/dto"
	"github.com/jpacevedo/inventario-pro/internal/infrastructure/postgres"
	"github.com/jpacevedo/inventario-pro/pkg/config"
)

func main() {
	if len(os.Args) < 5 {
		fmt.Fprintln(os.Stderr, "Uso: crear_usuario <email> <password> <nombre> <rol>")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	uc := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	user, err := uc.CreateUser(ctx, dto.CreateUserRequest{
		Email:    os.Args[1],
		Password: os.Args[2],
		Name:     os.Args[3],
		Role:     os.Args[4],
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear usuario: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Usuario creado: %s (%s, rol %s)\n", user.Email, user.ID, user.Role)
}
