package kernel_test

import (
	"regexp"
	"testing"

	"checkout/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestRandomToken(t *testing.T) {
	upperHex := regexp.MustCompile(`^[0-9A-F]*$`)

	tests := []struct {
		name    string
		n       int
		wantLen int
	}{
		{name: "typical", n: 12, wantLen: 12},
		{name: "zero", n: 0, wantLen: 0},
		{name: "negative", n: -3, wantLen: 0},
		{name: "capped", n: 100, wantLen: 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var token string
			assert.NotPanics(t, func() { token = kernel.RandomToken(tt.n) })
			assert.Len(t, token, tt.wantLen)
			assert.Regexp(t, upperHex, token)
		})
	}
}
