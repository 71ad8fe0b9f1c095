package keycode

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	for _, c := range Codes() {
		tok := c.String()
		if tok == "" {
			t.Fatalf("code %d has no token", c)
		}
		back, ok := Parse(tok)
		if !ok || back != c {
			t.Errorf("Parse(%q) = %v, %v; want %v", tok, back, ok, c)
		}
	}
}

func TestParseUnknownToken(t *testing.T) {
	if _, ok := Parse("NotAKey"); ok {
		t.Error("expected unknown token to fail")
	}
	if _, ok := Parse(""); ok {
		t.Error("expected empty token to fail")
	}
}

func TestNativeKeyRoundTrip(t *testing.T) {
	supported := 0
	for _, c := range Codes() {
		native, ok := EncodeKey(c)
		if !ok {
			continue // no mapping on this platform, by contract not an error
		}
		supported++
		back, ok := DecodeKey(native)
		if !ok || back != c {
			t.Errorf("DecodeKey(EncodeKey(%v)) = %v, %v; want %v", c, back, ok, c)
		}
	}
	if supported == 0 {
		t.Fatal("no codes supported on this platform")
	}
}

func TestEncodeKeyInjective(t *testing.T) {
	seen := map[NativeKey]Code{}
	for _, c := range Codes() {
		native, ok := EncodeKey(c)
		if !ok {
			continue
		}
		if prev, dup := seen[native]; dup {
			t.Errorf("codes %v and %v share native value %v", prev, c, native)
		}
		seen[native] = c
	}
}

func TestModifierRoundTrip(t *testing.T) {
	for bit := ModCtrl; bit < modMax; bit <<= 1 {
		native, ok := EncodeMod(bit)
		if !ok {
			continue
		}
		back, ok := DecodeMod(native)
		if !ok || back != bit {
			t.Errorf("DecodeMod(EncodeMod(%v)) = %v, %v; want %v", bit, back, ok, bit)
		}
	}
}

func TestModifierSetOps(t *testing.T) {
	m := ModCtrl | ModShift
	if m != ModShift|ModCtrl {
		t.Error("union should be commutative")
	}
	if m|ModCtrl != m {
		t.Error("union should be idempotent")
	}
	if !m.Has(ModCtrl) || !m.Has(ModShift) || m.Has(ModAlt) {
		t.Errorf("unexpected membership for %v", m)
	}
	if got := len(m.Split()); got != 2 {
		t.Errorf("Split() returned %d members, want 2", got)
	}

	var empty Modifiers
	if len(empty.Split()) != 0 || empty.String() != "" {
		t.Error("empty set should split to nothing")
	}
}

func TestEncodeModsUnsupportedMember(t *testing.T) {
	// Fn has no native registration flag on any supported platform.
	if _, ok := EncodeMods(ModCtrl | ModFn); ok {
		t.Error("expected set with unsupported member to fail encoding")
	}
	if _, ok := EncodeMods(ModCtrl | ModShift); !ok {
		t.Error("expected common set to encode")
	}
}

func TestDescriptorIDDeterministic(t *testing.T) {
	a := Descriptor{Key: KeyA, Mods: ModCtrl}
	b := Descriptor{Key: KeyA, Mods: ModCtrl}
	if a.ID() != b.ID() {
		t.Error("equal descriptors must share an id")
	}
	if a.ID() == (Descriptor{Key: KeyB, Mods: ModCtrl}).ID() {
		t.Error("different keys should not collide on the common path")
	}
	if a.ID() == (Descriptor{Key: KeyA, Mods: ModShift}).ID() {
		t.Error("different modifiers should not collide on the common path")
	}
}

func TestLabelFallback(t *testing.T) {
	if l, ok := Label(KeyA); !ok || l != "a" {
		t.Errorf("Label(KeyA) = %q, %v", l, ok)
	}
	if l, ok := Label(Digit7); !ok || l != "7" {
		t.Errorf("Label(Digit7) = %q, %v", l, ok)
	}
	if _, ok := Label(MediaPlayPause); ok {
		t.Error("expected no label for MediaPlayPause")
	}
}
