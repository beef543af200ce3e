// fixroles é o script administrativo de reconciliação de cargos: promove a
// ADMIN os emails listados em ADMIN_EMAILS e rebaixa para USER qualquer
// outro ADMIN. Operação pontual de reparo de dados, fora da API.
package main

import (
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/fswbarber/booking-api/internal/config"
	dbpkg "github.com/fswbarber/booking-api/internal/db"
	"github.com/fswbarber/booking-api/internal/models"
	"github.com/fswbarber/booking-api/internal/validators"
)

func main() {

	cfg := config.Load()

	emails := parseEmails(cfg.AdminEmails)
	if len(emails) == 0 {
		log.Fatal("ADMIN_EMAILS vazio: nada a reconciliar")
	}

	db := dbpkg.NewDB(cfg)

	err := db.Transaction(func(tx *gorm.DB) error {
		promoted := tx.Model(&models.User{}).
			Where("LOWER(email) IN ?", emails).
			Update("role", models.RoleAdmin)
		if promoted.Error != nil {
			return promoted.Error
		}

		demoted := tx.Model(&models.User{}).
			Where("role = ? AND LOWER(email) NOT IN ?", models.RoleAdmin, emails).
			Update("role", models.RoleUser)
		if demoted.Error != nil {
			return demoted.Error
		}

		log.Printf("promovidos a ADMIN: %d | rebaixados a USER: %d",
			promoted.RowsAffected, demoted.RowsAffected)

		return nil
	})
	if err != nil {
		log.Fatalf("fixroles failed: %v", err)
	}
}

func parseEmails(raw string) []string {
	var out []string
	for _, e := range strings.Split(raw, ",") {
		e = validators.Normalize(e)
		if e != "" {
			out = append(out, e)
		}
	}
	return out
}
