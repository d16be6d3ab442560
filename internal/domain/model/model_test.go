package model

import "testing"

func TestCardNetworkValues(t *testing.T) {
	cases := []struct {
		name  string
		got   CardNetwork
		value string
	}{
		{"visa", CardNetworkVisa, "Visa"},
		{"mastercard", CardNetworkMasterCard, "MasterCard"},
		{"amex", CardNetworkAmex, "Amex"},
		{"discover", CardNetworkDiscover, "Discover"},
		{"unknown", CardNetworkUnknown, "Unknown"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
		})
	}
}

func TestPaymentMethodValues(t *testing.T) {
	cases := []struct {
		method PaymentMethod
		value  string
	}{
		{PaymentMethodCard, "Card"},
		{PaymentMethodPayNow, "PayNow"},
	}

	for _, tc := range cases {
		if string(tc.method) != tc.value {
			t.Fatalf("expected %s, got %s", tc.value, tc.method)
		}
	}
}
