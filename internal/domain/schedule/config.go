package schedule

import (
	"fmt"
	"time"
)

// ======================================================
// CONFIG DA AGENDA
// ======================================================

// Config define a janela de atendimento e a duração dos slots.
// Validada uma única vez no startup — nunca muda durante uma requisição.
type Config struct {
	OpenTime          string // "15:04"
	CloseTime         string // "15:04"
	SlotDuration      time.Duration
	DisallowPastDates bool
}

type InvalidConfigError struct {
	Reason string
}

func (e InvalidConfigError) Error() string {
	return "invalid_config: " + e.Reason
}

func (c Config) Validate() error {
	open, err := minutesOfDay(c.OpenTime)
	if err != nil {
		return InvalidConfigError{Reason: "open_time inválido: " + c.OpenTime}
	}

	close, err := minutesOfDay(c.CloseTime)
	if err != nil {
		return InvalidConfigError{Reason: "close_time inválido: " + c.CloseTime}
	}

	if close <= open {
		return InvalidConfigError{
			Reason: fmt.Sprintf("close_time (%s) deve ser depois de open_time (%s)", c.CloseTime, c.OpenTime),
		}
	}

	dur := int(c.SlotDuration.Minutes())
	if dur <= 0 {
		return InvalidConfigError{Reason: "slot_duration deve ser positiva"}
	}

	// a duração precisa dividir a janela exatamente — sem slot parcial no fim
	if (close-open)%dur != 0 {
		return InvalidConfigError{
			Reason: fmt.Sprintf("slot_duration (%dmin) não divide a janela %s-%s", dur, c.OpenTime, c.CloseTime),
		}
	}

	return nil
}

// SlotCount retorna quantos slots a janela comporta. Assume Validate ok.
func (c Config) SlotCount() int {
	open, _ := minutesOfDay(c.OpenTime)
	close, _ := minutesOfDay(c.CloseTime)
	return (close - open) / int(c.SlotDuration.Minutes())
}

func minutesOfDay(hm string) (int, error) {
	t, err := time.Parse(TimeFormat, hm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
