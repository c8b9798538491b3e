package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/matcha-kasir-bot/utils"
)

func TestQRISPayload(t *testing.T) {
	s := NewQRISService("MERCHANT01", "Matcha Kasir")

	p1 := s.Payload(24000)
	p2 := s.Payload(24000)

	assert.True(t, strings.HasPrefix(p1, "QRIS|MERCHANT01|Matcha Kasir|"))
	assert.True(t, strings.HasSuffix(p1, "|24000"))
	assert.NotEqual(t, p1, p2, "invoice id unik per tagihan")
}

func TestQRISGeneratePNG(t *testing.T) {
	utils.InitLogger()
	s := NewQRISService("MERCHANT01", "Matcha Kasir")

	png := s.GeneratePNG(24000)
	assert.NotEmpty(t, png)
	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
