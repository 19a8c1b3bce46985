package handler

import (
	"strings"
	"testing"
)

func TestValidator_MessagesUseJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&createUserRequest{Name: "Alice", Email: "a@b.com", PhotoURL: "x"})
	if err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	err = v.Validate(&createUserRequest{Name: "Alice"})
	if err == nil {
		t.Fatalf("missing email must fail validation")
	}
	if !strings.Contains(err.Error(), "email is required") {
		t.Fatalf("expected json field name in message, got %q", err.Error())
	}

	err = v.Validate(&createUserRequest{Name: "Eve", Email: "e@b.com", Role: "superuser"})
	if err == nil || !strings.Contains(err.Error(), "role must be one of buyer, seller, admin") {
		t.Fatalf("unexpected role message: %v", err)
	}

	err = v.Validate(&createBookingRequest{ProductID: "p1", ProductName: "X", Price: -1, BuyerName: "A"})
	if err == nil || !strings.Contains(err.Error(), "price must be greater than 0") {
		t.Fatalf("unexpected price message: %v", err)
	}
}
