package detect

import "testing"

func TestNewLinguaRejectsTooFewCandidates(t *testing.T) {
	if _, err := NewLingua([]string{"et"}); err == nil {
		t.Fatal("expected error for single-language candidate set")
	}
	if _, err := NewLingua(nil); err == nil {
		t.Fatal("expected error for empty candidate set")
	}
}

func TestNewLinguaRejectsUnsupportedCode(t *testing.T) {
	if _, err := NewLingua([]string{"et", "zz"}); err == nil {
		t.Fatal("expected error for unsupported candidate code")
	}
}

func TestLinguaDetectsEstonian(t *testing.T) {
	detector, err := NewLingua([]string{"et", "en", "ru", "fi"})
	if err != nil {
		t.Fatalf("NewLingua returned error: %v", err)
	}
	result, ok := detector.Detect("Tere tulemast, kuidas sul täna läheb? See on eestikeelne tekst, mida me kontrollime.")
	if !ok {
		t.Fatal("expected detection, got abstention")
	}
	if result.Language != "et" {
		t.Fatalf("unexpected language: %q", result.Language)
	}
	if result.Confidence <= 0 || result.Confidence > 1 {
		t.Fatalf("confidence out of range: %f", result.Confidence)
	}
}
