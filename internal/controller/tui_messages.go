package controller

import (
	"fmt"

	m "github.com/mouse-blink/cyclact/internal/model"
)

type signaturesMsg struct {
	query      m.Query
	signatures []m.Signature
}

// List item types.
type signatureItem struct {
	sig m.Signature
}

func (s signatureItem) FilterValue() string {
	return fmt.Sprintf("n=%d g'=%d %s", s.sig.Order, s.sig.QuotientGenus, s.sig.Points)
}
