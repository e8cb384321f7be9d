package model

// Query is the input of a run: the genus of the curve, the ramification points
// every signature must contain and, optionally, an explicit list of group orders.
type Query struct {
	Genus  int           `yaml:"genus"`
	Known  Points        `yaml:"known,omitempty"`
	Orders []int         `yaml:"orders,omitempty"`
	Policy RelabelPolicy `yaml:"policy"`
}

// Candidate is a group order to search together with the largest quotient
// genus the Riemann–Hurwitz formula allows for it.
type Candidate struct {
	Order            int `yaml:"order"`
	MaxQuotientGenus int `yaml:"max_quotient_genus"`
}

// Plan is the finite search space derived from a Query.
type Plan struct {
	Query      Query       `yaml:"query"`
	Lower      int         `yaml:"lower"`
	Upper      int         `yaml:"upper"`
	Candidates []Candidate `yaml:"candidates"`
}

// Orders returns the candidate group orders in ascending order.
func (p Plan) Orders() []int {
	orders := make([]int, len(p.Candidates))
	for i, c := range p.Candidates {
		orders[i] = c.Order
	}

	return orders
}
