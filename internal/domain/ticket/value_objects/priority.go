package value_objects

import "fmt"

type Priority string

const (
	PriorityBaixa Priority = "baixa"
	PriorityMedia Priority = "media"
	PriorityAlta  Priority = "alta"
)

// DefaultPriority is applied when a ticket is created without one.
const DefaultPriority = PriorityMedia

var validPriorities = map[Priority]bool{
	PriorityBaixa: true,
	PriorityMedia: true,
	PriorityAlta:  true,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

func (p Priority) IsBaixa() bool {
	return p == PriorityBaixa
}

func (p Priority) IsMedia() bool {
	return p == PriorityMedia
}

func (p Priority) IsAlta() bool {
	return p == PriorityAlta
}

func NewPriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return p, nil
}
