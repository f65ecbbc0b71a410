package settings

import (
	"testing"

	"github.com/Abraxas-365/crewdesk/pkg/kernel"
)

func TestRecipientReceives(t *testing.T) {
	filipino := kernel.Nationality("Filipino")
	blank := kernel.Nationality("  ")

	tests := []struct {
		name        string
		recipient   EmailRecipient
		nationality kernel.Nationality
		want        bool
	}{
		{"no filter", EmailRecipient{IsActive: true}, "Indonesian", true},
		{"blank filter", EmailRecipient{IsActive: true, Nationality: &blank}, "Indonesian", true},
		{"match ignores case and spaces", EmailRecipient{IsActive: true, Nationality: &filipino}, " filipino ", true},
		{"other nationality", EmailRecipient{IsActive: true, Nationality: &filipino}, "Indonesian", false},
		{"inactive", EmailRecipient{IsActive: false}, "Filipino", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.recipient.Receives(tt.nationality); got != tt.want {
				t.Errorf("Receives(%q) = %v, want %v", tt.nationality, got, tt.want)
			}
		})
	}
}

func TestUpdateRecipient_ClearsNationality(t *testing.T) {
	r := NewRecipient("r1", CreateRecipientRequest{Email: "ops@example.com", Nationality: "Filipino"})
	if r.Nationality == nil || !r.IsActive {
		t.Fatalf("expected active recipient with filter, got %+v", r)
	}

	empty := ""
	r.ApplyUpdate(UpdateRecipientRequest{Nationality: &empty})
	if r.Nationality != nil {
		t.Errorf("empty nationality should clear the filter")
	}
}

func TestOptionValidate(t *testing.T) {
	if err := (&Option{Kind: "ranks", Name: "x"}).Validate(); err == nil {
		t.Error("unknown kind should fail")
	}
	if err := (&Option{Kind: OptionPositions, Name: "  "}).Validate(); err == nil {
		t.Error("blank name should fail")
	}

	o := &Option{Kind: OptionVesselTypes, Name: " Bulk Carrier "}
	if err := o.Validate(); err != nil || o.Name != "Bulk Carrier" {
		t.Errorf("expected trimmed valid option, got %q %v", o.Name, err)
	}
}
