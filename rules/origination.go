package rules

import (
	"fmt"

	"github.com/c360studio/conlaw/vocabulary/legislation"
	"github.com/c360studio/conlaw/vocabulary/office"
)

// Bill is a bill moving through presentment.
type Bill struct {
	Title  string                 `json:"title"`
	Kind   legislation.BillKind   `json:"kind"`
	Origin office.Chamber         `json:"origin"`
	Status legislation.BillStatus `json:"status"`
}

// NewBill constructs a Bill, enforcing the Article I, Section 7
// origination clause: bills for raising revenue originate in the
// House of Representatives.
func NewBill(title string, kind legislation.BillKind, origin office.Chamber) (*Bill, error) {
	if !origin.Valid() {
		return nil, fmt.Errorf("unknown chamber %q", origin)
	}
	if kind == legislation.BillKindRevenue && origin != office.ChamberHouse {
		return nil, fmt.Errorf("%w: revenue bills originate in the House (Article I, Section 7)", ErrProhibited)
	}
	return &Bill{
		Title:  title,
		Kind:   kind,
		Origin: origin,
		Status: legislation.BillStatusIntroduced,
	}, nil
}

// CheckOrigination validates an already-constructed bill record
// against the origination clause.
func CheckOrigination(kind legislation.BillKind, origin office.Chamber) error {
	if kind == legislation.BillKindRevenue && origin != office.ChamberHouse {
		return fmt.Errorf("%w: revenue bills originate in the House (Article I, Section 7)", ErrProhibited)
	}
	return nil
}
