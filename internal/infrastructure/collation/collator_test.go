package collation

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestParseLocale(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "und"},
		{"C", "und"},
		{"POSIX", "und"},
		{"C.UTF-8", "und"},
		{"en_US.UTF-8", "en-US"},
		{"de_DE@euro", "de-DE"},
		{"fr-CA", "fr-CA"},
		{"!!not a locale", "und"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLocale(tt.in).String())
		})
	}
	assert.Equal(t, language.Und, ParseLocale(""))
}

func TestCollator_KeyOrdersLikeCollation(t *testing.T) {
	c := New("en_US.UTF-8")

	in := []string{"Zeta", "alpha", "Beta", "Émile", "delta"}
	sort.Slice(in, func(i, j int) bool { return c.Key(in[i]) < c.Key(in[j]) })

	assert.Equal(t, []string{"alpha", "Beta", "delta", "Émile", "Zeta"}, in)
}

func TestCollator_KeyIsStable(t *testing.T) {
	c := New("")
	a := c.Key("Go Mono")
	b := c.Key("Go Mono")
	assert.Equal(t, a, b)
	assert.Less(t, c.Key("Alpha"), c.Key("Zeta"))
}

func TestEnvLocale_Precedence(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_COLLATE", "de_DE.UTF-8")
	t.Setenv("LANG", "en_US.UTF-8")
	assert.Equal(t, "de_DE.UTF-8", EnvLocale())

	t.Setenv("LC_ALL", "fr_FR.UTF-8")
	assert.Equal(t, "fr_FR.UTF-8", EnvLocale())
}
