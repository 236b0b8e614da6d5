// Команда linktree-token выпускает JWT администратора для /api/admin.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/avc-dev/linktree/internal/config"
	"github.com/avc-dev/linktree/internal/service"
)

func main() {
	subject := flag.String("sub", "admin", "token subject")
	ttl := flag.Duration("ttl", 0, "token lifetime, ADMIN_TOKEN_TTL by default")
	flag.Parse()

	cfg, err := config.LoadAdmin()
	if err != nil {
		log.Fatal(err)
	}
	if *ttl > 0 {
		cfg.TokenTTL = *ttl
	}

	token, err := service.NewAuthService(cfg.JWTSecret, cfg.TokenTTL).GenerateJWT(*subject)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}

	fmt.Println(token)
}
