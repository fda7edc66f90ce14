package value_objects

import "fmt"

// TicketStatus values are stored and transported in Portuguese, matching the
// public API contract.
type TicketStatus string

const (
	StatusAberto      TicketStatus = "aberto"
	StatusVisto       TicketStatus = "visto"
	StatusEmAndamento TicketStatus = "em_andamento"
	StatusResolvido   TicketStatus = "resolvido"
	StatusFechado     TicketStatus = "fechado"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusAberto:      true,
	StatusVisto:       true,
	StatusEmAndamento: true,
	StatusResolvido:   true,
	StatusFechado:     true,
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

// IsTerminal reports whether the ticket conversation is settled. Comments
// are locked once a ticket reaches a terminal status.
func (ts TicketStatus) IsTerminal() bool {
	return ts == StatusResolvido || ts == StatusFechado
}

func (ts TicketStatus) IsAberto() bool {
	return ts == StatusAberto
}

func (ts TicketStatus) IsResolvido() bool {
	return ts == StatusResolvido
}

func (ts TicketStatus) IsFechado() bool {
	return ts == StatusFechado
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
