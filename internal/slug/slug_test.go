package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Masque Nasal — Taille M", "masque-nasal-taille-m"},
		{"AirSense 11 AutoSet", "airsense-11-autoset"},
		{"  Concentrateur   d'Oxygène 5L  ", "concentrateur-doxygène-5l"},
		{"CPAP/PPC", "cpapppc"},
		{"Lit --- Médicalisé", "lit-médicalisé"},
		{"tuyau_chauffant", "tuyau_chauffant"},
		{"a\tb\nc", "a-b-c"},
		{"-leading and trailing-", "leading-and-trailing"},
		{"", ""},
		{"!!! ... ???", ""},
		{"— – -", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}

func TestMakeIdempotent(t *testing.T) {
	inputs := []string{
		"Masque Nasal — Taille M",
		"ÉLITE Médicale  Services",
		"İstanbul ǅemal",
		"x²  y½",
		"日本語 テキスト",
		"a_-_b",
		"   ",
		" nbsp em",
	}
	for _, in := range inputs {
		once := Make(in)
		assert.Equal(t, once, Make(once), "input %q", in)
	}
}
