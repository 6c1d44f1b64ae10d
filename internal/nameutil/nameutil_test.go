package nameutil

import "testing"

func TestAcronym(t *testing.T) {
	cases := map[string]string{
		"MyFooClass":         "mfc",
		"_my_function":       "mf",
		"$myProperty":        "mp",
		"THIS_IS_A_CONSTANT": "tiac",
	}
	for name, want := range cases {
		if got := Acronym(name); got != want {
			t.Errorf("Acronym(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestSuffixKeys(t *testing.T) {
	cases := map[string][]string{
		`Foo\MyFooClass`:     {`foo\myfooclass`, "myfooclass", "fooclass", "class"},
		"$myProperty":        {"$myproperty", "myproperty", "property"},
		"THIS_IS_A_CONSTANT": {"this_is_a_constant", "is_a_constant", "a_constant", "constant"},
	}
	for name, want := range cases {
		got := SuffixKeys(name)
		if len(got) != len(want) {
			t.Fatalf("SuffixKeys(%q) = %v, want %v", name, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("SuffixKeys(%q)[%d] = %q, want %q", name, i, got[i], want[i])
			}
		}
	}
}

func TestSuffixKeysInvariant(t *testing.T) {
	names := []string{`App\Service\UserManager`, "handle_http_request", "renderTemplate", "$fooBarBaz"}
	for _, name := range names {
		keys := SuffixKeys(name)
		if len(keys) == 0 {
			t.Fatalf("SuffixKeys(%q) returned no keys", name)
		}
		if keys[0] != lowerASCII(name) {
			t.Errorf("first key for %q = %q, want lowercase of full name", name, keys[0])
		}
	}
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func TestSplitJoinFQN(t *testing.T) {
	ns, short := SplitFQN(`App\Service\UserManager`)
	if ns != `App\Service` || short != "UserManager" {
		t.Fatalf("SplitFQN = %q, %q", ns, short)
	}
	if got := JoinFQN(ns, short); got != `App\Service\UserManager` {
		t.Errorf("JoinFQN = %q", got)
	}
	if ns, short := SplitFQN("TopLevel"); ns != "" || short != "TopLevel" {
		t.Errorf("SplitFQN(no namespace) = %q, %q", ns, short)
	}
}
