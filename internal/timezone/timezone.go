package timezone

import (
	"fmt"
	"time"
)

const DefaultTimezone = "America/Sao_Paulo"

var ptBRMonths = [12]string{
	"janeiro", "fevereiro", "março", "abril",
	"maio", "junho", "julho", "agosto",
	"setembro", "outubro", "novembro", "dezembro",
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

// FormatPtBR formata um instante como "02 de janeiro às 15:04",
// no fuso padrão da aplicação. Usado nas linhas de auditoria.
func FormatPtBR(t time.Time) string {
	t = t.In(Location(DefaultTimezone))
	return fmt.Sprintf(
		"%02d de %s às %s",
		t.Day(),
		ptBRMonths[int(t.Month())-1],
		t.Format("15:04"),
	)
}
