package rules

import (
	"errors"
	"testing"

	"github.com/c360studio/conlaw/vocabulary/legislation"
	"github.com/c360studio/conlaw/vocabulary/office"
)

func TestNewBill(t *testing.T) {
	tests := []struct {
		name    string
		kind    legislation.BillKind
		origin  office.Chamber
		wantErr bool
	}{
		{"revenue bill from house", legislation.BillKindRevenue, office.ChamberHouse, false},
		{"revenue bill from senate", legislation.BillKindRevenue, office.ChamberSenate, true},
		{"ordinary bill from senate", legislation.BillKindOrdinary, office.ChamberSenate, false},
		{"ordinary bill from house", legislation.BillKindOrdinary, office.ChamberHouse, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bill, err := NewBill("An Act", tt.kind, tt.origin)
			if tt.wantErr {
				if err == nil {
					t.Fatal("NewBill() = nil error, want origination failure")
				}
				if !errors.Is(err, ErrProhibited) {
					t.Errorf("error %v does not wrap ErrProhibited", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewBill() error = %v", err)
			}
			if bill.Status != legislation.BillStatusIntroduced {
				t.Errorf("Status = %q, want %q", bill.Status, legislation.BillStatusIntroduced)
			}
		})
	}
}

func TestNewBill_UnknownChamber(t *testing.T) {
	if _, err := NewBill("An Act", legislation.BillKindOrdinary, "parliament"); err == nil {
		t.Error("NewBill() with unknown chamber should error")
	}
}
