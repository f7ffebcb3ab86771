package main

import (
	"flag"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/InstitutRosalie/salon-scheduler/internal/config"
	dbpkg "github.com/InstitutRosalie/salon-scheduler/internal/db"
	"github.com/InstitutRosalie/salon-scheduler/internal/models"
)

// Provisiona o único admin da instalação. Recusa rodar se já existir um: a
// API não tem registro público e a troca de credenciais é manual, direto no
// banco ou recriando a linha.
func main() {
	email := flag.String("email", "", "e-mail do admin")
	password := flag.String("password", "", "senha do admin (mínimo 8 caracteres)")
	name := flag.String("name", "Admin", "nome de exibição")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("usage: setup -email admin@example.com -password secret [-name Admin]")
	}
	if len(*password) < 8 {
		log.Fatal("password must be at least 8 characters")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var count int64
	if err := db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		log.Fatalf("failed to check existing admins: %v", err)
	}
	if count > 0 {
		log.Fatal("an admin already exists, refusing to create another")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	admin := models.Admin{
		Name:         *name,
		Email:        strings.ToLower(strings.TrimSpace(*email)),
		PasswordHash: string(hash),
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}

	log.Printf("admin created: %s (%s)", admin.Name, admin.Email)
}
