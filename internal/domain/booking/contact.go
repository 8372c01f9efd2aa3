package booking

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ======================================================
// CONTATO DO CLIENTE
// ======================================================

const (
	MinNameLength  = 2
	MaxNotesLength = 500
)

// letras de qualquer alfabeto + espaços (cobre nomes em chinês, latim etc.)
var nameRe = regexp.MustCompile(`^[\p{L} ]+$`)

// 11 dígitos após remover separadores: 3 + 4 + 4
var phoneDigitsRe = regexp.MustCompile(`^\d{11}$`)

type Contact struct {
	Name       string
	Phone      string
	AltContact string
	Notes      string
}

// Validate coleta TODOS os erros de campo de uma vez — o cliente
// apresenta tudo em uma única ida e volta.
func (c Contact) Validate() []FieldError {
	var errs []FieldError

	name := strings.TrimSpace(c.Name)
	if utf8.RuneCountInString(name) < MinNameLength {
		errs = append(errs, FieldError{
			Field:   "name",
			Message: fmt.Sprintf("nome precisa de pelo menos %d caracteres", MinNameLength),
		})
	} else if !nameRe.MatchString(name) {
		errs = append(errs, FieldError{
			Field:   "name",
			Message: "nome só pode conter letras e espaços",
		})
	}

	if !phoneDigitsRe.MatchString(stripPhoneSeparators(c.Phone)) {
		errs = append(errs, FieldError{
			Field:   "phone",
			Message: "telefone inválido, formato esperado XXX-XXXX-XXXX",
		})
	}

	if utf8.RuneCountInString(c.Notes) > MaxNotesLength {
		errs = append(errs, FieldError{
			Field:   "notes",
			Message: fmt.Sprintf("observações não podem passar de %d caracteres", MaxNotesLength),
		})
	}

	return errs
}

// Normalized devolve o contato com nome sem espaços nas pontas e o
// telefone reformatado em grupos XXX-XXXX-XXXX. Assume Validate ok.
func (c Contact) Normalized() Contact {
	digits := stripPhoneSeparators(c.Phone)

	out := c
	out.Name = strings.TrimSpace(c.Name)
	if len(digits) == 11 {
		out.Phone = digits[:3] + "-" + digits[3:7] + "-" + digits[7:]
	}
	return out
}

func stripPhoneSeparators(phone string) string {
	return strings.NewReplacer("-", "", " ", "").Replace(phone)
}
