package guard

import (
	"context"

	"gorm.io/gorm"

	"github.com/fswbarber/booking-api/internal/models"
)

// Identity é o chamador resolvido de uma requisição: valor explícito,
// carregado uma vez por operação e passado adiante como parâmetro.
type Identity struct {
	UserID uint
	Name   string
	Email  string
	Role   string
}

func (id *Identity) HasRole(roles ...string) bool {
	for _, r := range roles {
		if id.Role == r {
			return true
		}
	}
	return false
}

func (id *Identity) IsStaff() bool {
	return id.HasRole(models.RoleAdmin, models.RoleBarber)
}

type Resolver struct {
	db *gorm.DB
}

func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{db: db}
}

// Resolve carrega o cargo do usuário da sessão. Cada operação privilegiada
// chama isso de novo: não há cache de cargo entre requisições.
func (r *Resolver) Resolve(ctx context.Context, userID uint) (*Identity, error) {
	var user models.User
	if err := r.db.WithContext(ctx).
		Select("id", "name", "email", "role").
		First(&user, userID).Error; err != nil {
		return nil, err
	}

	return &Identity{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	}, nil
}
