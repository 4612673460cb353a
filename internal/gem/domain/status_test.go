package gem

import "testing"

func TestNormalizeStatus(t *testing.T) {
	cases := map[string]string{
		"  Operating ":     "operating",
		"Pre-construction": "pre-construction",
		"Shut in":          "shut_in",
		"ANNOUNCED":        "announced",
		"":                 "",
	}
	for raw, want := range cases {
		if got := NormalizeStatus(raw); got != want {
			t.Fatalf("NormalizeStatus(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestStatusKept(t *testing.T) {
	for _, status := range KeepStatuses {
		if !StatusKept(status) {
			t.Fatalf("keep-list status %q rejected", status)
		}
	}
	for _, status := range []string{"shut_in", "retired", "mothballed", ""} {
		if StatusKept(status) {
			t.Fatalf("status %q should not be kept", status)
		}
	}
}

func TestValidCoordinates(t *testing.T) {
	if !ValidCoordinates(10.5, 106.5) {
		t.Fatal("expected valid coordinates")
	}
	for _, c := range [][2]float64{{95, 0}, {-95, 0}, {0, 185}, {0, -185}} {
		if ValidCoordinates(c[0], c[1]) {
			t.Fatalf("expected invalid coordinates: %v", c)
		}
	}
}
