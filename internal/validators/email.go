package validators

import "strings"

// IsEmailValid faz a checagem mínima de formato usada nos cadastros:
// um "@" com algo antes e algo depois. Validação forte fica para o
// provedor de email, não para o cadastro.
func IsEmailValid(email string) bool {
	at := strings.LastIndex(email, "@")
	return at > 0 && at < len(email)-1
}

// Normalize deixa o email comparável: minúsculo e sem espaços nas pontas.
func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
