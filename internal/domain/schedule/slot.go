package schedule

// ======================================================
// CATÁLOGO DE SLOTS
// ======================================================

// Slot é um intervalo reservável de um dia específico.
type Slot struct {
	Date  CalendarDate
	Start string // "15:04"
	End   string // "15:04"
}

// Key é a chave composta estável usada pelo availability store
// e pelo ledger: "2025-06-10|10:00-10:30".
func (s Slot) Key() string {
	return s.Date.String() + "|" + s.Start + "-" + s.End
}

// SlotsFor gera o template do dia: puro, determinístico, sem I/O.
// Ordenação ascendente por horário de início — os outros componentes
// dependem dessa ordem.
//
// Para datas anteriores a hoje (com DisallowPastDates) retorna vazio:
// a UI trata "sem slots" e "data passada" da mesma forma, e o
// coordinator rejeita a reserva em separado.
func SlotsFor(date CalendarDate, today CalendarDate, cfg Config) []Slot {
	if cfg.DisallowPastDates && date.Before(today) {
		return []Slot{}
	}

	open, err := minutesOfDay(cfg.OpenTime)
	if err != nil {
		return []Slot{}
	}
	close, err := minutesOfDay(cfg.CloseTime)
	if err != nil {
		return []Slot{}
	}

	step := int(cfg.SlotDuration.Minutes())
	if step <= 0 {
		return []Slot{}
	}

	slots := make([]Slot, 0, (close-open)/step)
	for cur := open; cur+step <= close; cur += step {
		slots = append(slots, Slot{
			Date:  date,
			Start: formatMinutes(cur),
			End:   formatMinutes(cur + step),
		})
	}

	return slots
}

// Contains verifica se (start, end) pertence ao template do dia.
// Protege contra chaves que o catálogo nunca produziu (estado velho
// do cliente ou adulteração).
func Contains(date CalendarDate, today CalendarDate, cfg Config, start, end string) bool {
	for _, s := range SlotsFor(date, today, cfg) {
		if s.Start == start && s.End == end {
			return true
		}
	}
	return false
}
