package schema

import (
	"errors"
	"strings"
	"testing"
)

// ============================================================================
// VALIDATOR TESTS
// ============================================================================

func TestValidateCompleteHeader(t *testing.T) {
	headers := []string{"user_id", "order_id", "order_date", "product_name", "order_value", "discount_given"}
	if err := Validate(headers, Orders()); err != nil {
		t.Fatalf("Validate failed on complete header: %v", err)
	}
}

func TestValidateExtraColumnsIgnored(t *testing.T) {
	headers := []string{"user_id", "order_id", "order_date", "product_name", "order_value", "discount_given", "shipping_city", "coupon_code"}
	if err := Validate(headers, Orders()); err != nil {
		t.Fatalf("extra columns must not fail validation: %v", err)
	}
}

func TestValidateMissingOrderValue(t *testing.T) {
	headers := []string{"user_id", "order_id", "order_date", "product_name", "discount_given"}
	err := Validate(headers, Orders())
	if err == nil {
		t.Fatal("expected error for missing order_value, got nil")
	}

	var schemaErr *Error
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected *schema.Error, got %T", err)
	}
	assertContains(t, schemaErr.Missing, ColValue, "missing list should name order_value")
	if !strings.Contains(err.Error(), "order_value") {
		t.Errorf("error message should name order_value: %q", err.Error())
	}
}

func TestValidateReportsAllMissing(t *testing.T) {
	err := Validate([]string{"user_id", "product_name"}, Orders())
	var schemaErr *Error
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected *schema.Error, got %v", err)
	}
	for _, key := range []string{ColOrderID, ColOrderDate, ColValue, ColDiscount} {
		assertContains(t, schemaErr.Missing, key, key+" should be reported missing")
	}
}

func TestValidateNormalizesHeaderNames(t *testing.T) {
	headers := []string{"User ID", "Order-ID", " Order Date ", "Product Name", "Order Value", "Discount Given"}
	if err := Validate(headers, Orders()); err != nil {
		t.Fatalf("normalized headers should validate: %v", err)
	}
}

func TestValidateExtendedVariant(t *testing.T) {
	base := []string{"user_id", "order_id", "order_date", "product_name", "order_value", "discount_given"}

	// Base schema accepts it, extended does not.
	if err := Validate(base, Orders()); err != nil {
		t.Fatalf("base schema should accept base header: %v", err)
	}
	err := Validate(base, OrdersExtended())
	var schemaErr *Error
	if !errors.As(err, &schemaErr) {
		t.Fatalf("extended schema should reject base header, got %v", err)
	}
	assertContains(t, schemaErr.Missing, ColCategory, "category should be reported missing")
	assertContains(t, schemaErr.Missing, ColQuantity, "quantity should be reported missing")

	extended := append(base, "category", "quantity")
	if err := Validate(extended, OrdersExtended()); err != nil {
		t.Fatalf("extended schema should accept extended header: %v", err)
	}
}

func TestRequiredKeys(t *testing.T) {
	keys := Orders().RequiredKeys()
	if len(keys) != 6 {
		t.Fatalf("base schema should require 6 columns, got %d: %v", len(keys), keys)
	}
	keys = OrdersExtended().RequiredKeys()
	if len(keys) != 8 {
		t.Fatalf("extended schema should require 8 columns, got %d: %v", len(keys), keys)
	}
}

func TestNormalizeKey(t *testing.T) {
	cases := map[string]string{
		"Order Value":    "order_value",
		"  user_id ":     "user_id",
		"Discount-Given": "discount_given",
		"ORDER_DATE":     "order_date",
	}
	for in, want := range cases {
		if got := NormalizeKey(in); got != want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", in, got, want)
		}
	}
}

// ============================================================================
// HELPERS
// ============================================================================

func assertContains(t *testing.T, slice []string, val string, msg string) {
	t.Helper()
	for _, s := range slice {
		if s == val {
			return
		}
	}
	t.Errorf("%s -- %q not found in %v", msg, val, slice)
}
