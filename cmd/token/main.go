// token emite un JWT para las rutas de escritura cuando JWT_SECRET está configurado.
//
// Uso: go run ./cmd/token [-sub operador] [-role admin]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/pedidos-api/pkg/config"
	"github.com/jhoicas/pedidos-api/pkg/jwt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	sub := flag.String("sub", "operador", "subject del token")
	role := flag.String("role", "admin", "rol del token")
	flag.Parse()

	tok, err := jwt.Generate(cfg.JWT.Secret, *sub, *role, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
