package timezone

import "time"

// Calendário fixo do negócio: todos os slots e datas vivem num único
// fuso. Não há conversão por requisição.

const DefaultTimezone = "Asia/Shanghai"

var current = mustLoad(DefaultTimezone)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Set troca o calendário do processo. Chamado uma vez no startup.
func Set(tz string) {
	if IsValid(tz) {
		current = mustLoad(tz)
	}
}

func Location() *time.Location {
	return current
}

func Now() time.Time {
	return time.Now().In(current)
}

func mustLoad(tz string) *time.Location {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}
