package booking

import (
	"errors"
	"strings"
)

// ======================================================
// TAXONOMIA DE ERROS DA RESERVA
// ======================================================

var (
	// ErrInvalidDate: data que não parseia como YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid_date")

	// ErrPastDate: data estritamente anterior a hoje.
	ErrPastDate = errors.New("past_date")

	// ErrUnknownSlot: (start, end) fora do template do catálogo.
	ErrUnknownSlot = errors.New("unknown_slot")

	// ErrSlotTaken: resultado esperado e comum de uma corrida —
	// não é falha de sistema.
	ErrSlotTaken = errors.New("slot_taken")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ContactError agrega todos os campos inválidos do contato.
type ContactError struct {
	Fields []FieldError
}

func (e *ContactError) Error() string {
	fields := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		fields[i] = f.Field
	}
	return "invalid_contact: " + strings.Join(fields, ", ")
}

// PersistenceError indica falha transitória ao gravar no ledger
// depois de um claim bem sucedido (o claim já foi desfeito).
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return "persistence_failure: " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
