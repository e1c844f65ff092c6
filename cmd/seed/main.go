package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/curioapp/curio/config"
	"github.com/curioapp/curio/pkg/helpers"
)

// Seeds the admin account. Signup only ever produces nonadmin users, so the
// moderation role has to come from here.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	userName := "admin"
	email := "admin@curio.local"
	password := "password123"

	salt, err := helpers.NewSalt()
	if err != nil {
		log.Fatalf("failed to generate salt: %v", err)
	}
	hash, err := helpers.HashPassword(salt, password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (uuid, first_name, last_name, user_name, email, password, salt, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'admin', $8)
		ON CONFLICT (user_name) DO UPDATE SET role = 'admin'
		RETURNING uuid
	`, uuid.NewString(), "Curio", "Admin", userName, email, hash, salt, time.Now()).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: uuid=%s user_name=%s password=%s\n", id, userName, password)
}
