package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Açúcar Cristal 1kg", "acucar cristal 1kg"},
		{"CAFÉ TORRADO", "cafe torrado"},
		{"Feijão", "feijao"},
		{"Müsli", "musli"},
		{"arroz", "arroz"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Normalize(tc.in), "entrada %q", tc.in)
	}
}
