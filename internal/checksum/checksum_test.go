package checksum

import "testing"

func TestSumStable(t *testing.T) {
	if Sum([]byte("a")) != Sum([]byte("a")) {
		t.Fatal("sum not deterministic")
	}
	if len(Sum(nil)) != 64 {
		t.Errorf("len = %d, want 64", len(Sum(nil)))
	}
}

func TestFingerprintBoundaries(t *testing.T) {
	a := Fingerprint([]byte("ab"), []byte("c"))
	b := Fingerprint([]byte("a"), []byte("bc"))
	if a == b {
		t.Error("fingerprint ignores part boundaries")
	}
	if a != Fingerprint([]byte("ab"), []byte("c")) {
		t.Error("fingerprint not deterministic")
	}
}
