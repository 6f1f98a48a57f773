package enums

import "testing"

func TestParseOrderStatus(t *testing.T) {
	for _, value := range []string{"pending", "processing", "completed", "cancelled"} {
		status, err := ParseOrderStatus(value)
		if err != nil {
			t.Fatalf("parse %q: %v", value, err)
		}
		if status.String() != value {
			t.Fatalf("expected %q got %q", value, status)
		}
	}

	if _, err := ParseOrderStatus("shipped"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	if OrderStatusPending.IsTerminal() || OrderStatusProcessing.IsTerminal() {
		t.Fatal("pending/processing must not be terminal")
	}
	if !OrderStatusCompleted.IsTerminal() || !OrderStatusCancelled.IsTerminal() {
		t.Fatal("completed/cancelled must be terminal")
	}
}

func TestOrderStatusDisplayName(t *testing.T) {
	if OrderStatusPending.DisplayName() != "Pending Payment" {
		t.Fatalf("unexpected display name %q", OrderStatusPending.DisplayName())
	}
	if OrderStatusProcessing.DisplayName() != "Processing" {
		t.Fatalf("unexpected display name %q", OrderStatusProcessing.DisplayName())
	}
}
