package fraud

import "testing"

func TestSuspicious_DenylistedPrefixes(t *testing.T) {
	// All four have valid Luhn checksums so only the prefix can trip them.
	for _, pan := range []string{
		"4444111111111119",
		"5555111111111111",
		"1111111111111117",
		"9999111111111117",
	} {
		if !Suspicious(pan) {
			t.Fatalf("expected %s to be suspicious", pan)
		}
	}
}

func TestSuspicious_LuhnFailure(t *testing.T) {
	if !Suspicious("4111111111111112") {
		t.Fatal("expected luhn-invalid card to be suspicious")
	}
	if !Suspicious("not-a-card") {
		t.Fatal("expected non-numeric card to be suspicious")
	}
}

func TestSuspicious_CleanCards(t *testing.T) {
	if Suspicious("4111111111111111") {
		t.Fatal("expected valid card to pass screening")
	}
	// 5500 is a gateway-stage decline, not a fraud prefix.
	if Suspicious("5500000000000004") {
		t.Fatal("expected 5500-prefixed card to pass fraud screening")
	}
}
