package money_test

import (
	"encoding/json"
	"testing"

	"pgstay/shared/money"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		wantErr bool
	}{
		{
			name: "plain integer",
			raw:  "6000",
			want: 6000,
		},
		{
			name: "grouped with currency symbol",
			raw:  "₹4,500",
			want: 4500,
		},
		{
			name: "monthly suffix",
			raw:  "₹4,500/mo",
			want: 4500,
		},
		{
			name: "prefixed and spaced",
			raw:  "Rs. 7,000 / month",
			want: 7000,
		},
		{
			name: "decimal value",
			raw:  "4500.50",
			want: 4500.50,
		},
		{
			name:    "no digits",
			raw:     "free",
			wantErr: true,
		},
		{
			name:    "empty string",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.Parse(tt.raw)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected parse error for %q, got %v", tt.raw, got)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.raw, err)
			}

			if got.Float64() != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got.Float64())
			}
		})
	}
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    float64
		wantErr bool
	}{
		{
			name:    "json number",
			payload: `{"price": 6000}`,
			want:    6000,
		},
		{
			name:    "formatted string",
			payload: `{"price": "₹6,000/mo"}`,
			want:    6000,
		},
		{
			name:    "garbage string",
			payload: `{"price": "call us"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				Price money.Amount `json:"price"`
			}

			err := json.Unmarshal([]byte(tt.payload), &out)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected unmarshal error, got %v", out.Price)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if out.Price.Float64() != tt.want {
				t.Errorf("expected %v, got %v", tt.want, out.Price.Float64())
			}
		})
	}
}

// A price written as a number must read back identically whether the store
// returns it as a number or as a formatted string.
func TestAmount_RoundTrip(t *testing.T) {
	original := money.Amount(4500)

	encoded, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}

	var fromNumber money.Amount
	if err := json.Unmarshal(encoded, &fromNumber); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}

	var fromString money.Amount
	if err := json.Unmarshal([]byte(`"₹4,500/mo"`), &fromString); err != nil {
		t.Fatalf("unexpected unmarshal error: %v", err)
	}

	if fromNumber != original || fromString != original {
		t.Errorf("expected %v from both reads, got %v and %v", original, fromNumber, fromString)
	}
}

func TestAmount_Scan(t *testing.T) {
	var amount money.Amount

	if err := amount.Scan([]byte("₹4,500/mo")); err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}

	if amount.Float64() != 4500 {
		t.Errorf("expected 4500, got %v", amount.Float64())
	}

	if err := amount.Scan(float64(6000)); err != nil {
		t.Fatalf("unexpected scan error: %v", err)
	}

	if amount.Float64() != 6000 {
		t.Errorf("expected 6000, got %v", amount.Float64())
	}
}
