package vec

import "testing"

// setCaps temporarily overrides the capability flags so a test can
// drive every code path on any build machine.
func setCaps(t *testing.T, unaligned, extended, crypto bool) {
	t.Helper()
	savedU, savedE, savedC := hasUnaligned, hasExtended, hasCrypto
	hasUnaligned, hasExtended, hasCrypto = unaligned, extended, crypto
	t.Cleanup(func() {
		hasUnaligned, hasExtended, hasCrypto = savedU, savedE, savedC
	})
}

func TestCurrentName(t *testing.T) {
	if CurrentName() == "" {
		t.Error("CurrentName() is empty, dispatch init did not run")
	}
}

func TestLevelString(t *testing.T) {
	cases := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchBaseline, "baseline"},
		{DispatchUnaligned, "unaligned"},
		{DispatchCrypto, "crypto"},
		{DispatchLevel(99), "unknown"},
	}
	for _, c := range cases {
		if got := c.level.String(); got != c.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", c.level, got, c.want)
		}
	}
}

func TestLevelConsistentWithFlags(t *testing.T) {
	if CurrentLevel() >= DispatchCrypto && !HasCrypto() {
		t.Error("crypto level resolved without crypto flag")
	}
	if CurrentLevel() >= DispatchUnaligned && !HasUnalignedAccess() {
		t.Error("unaligned level resolved without unaligned flag")
	}
}

func TestEnvSet(t *testing.T) {
	t.Setenv("VEC128_TEST_FLAG", "")
	if envSet("VEC128_TEST_FLAG") {
		t.Error("envSet true for empty value")
	}
	t.Setenv("VEC128_TEST_FLAG", "0")
	if envSet("VEC128_TEST_FLAG") {
		t.Error("envSet true for 0")
	}
	t.Setenv("VEC128_TEST_FLAG", "1")
	if !envSet("VEC128_TEST_FLAG") {
		t.Error("envSet false for 1")
	}
}

func TestResolveLevelOnlyDowngrades(t *testing.T) {
	savedLevel, savedName := currentLevel, currentName
	setCaps(t, true, true, false)
	t.Cleanup(func() { currentLevel, currentName = savedLevel, savedName })

	currentLevel = DispatchScalar
	resolveLevel()
	if currentLevel != DispatchScalar {
		t.Errorf("resolveLevel raised scalar to %v", currentLevel)
	}

	currentLevel = DispatchCrypto
	resolveLevel()
	if currentLevel != DispatchUnaligned {
		t.Errorf("resolveLevel = %v after crypto flag cleared, want %v", currentLevel, DispatchUnaligned)
	}
}
