package services

import (
	"fmt"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/yeremiapane/matcha-kasir-bot/utils"
)

// QRISService membangun payload QRIS dan gambar QR untuk layar pembayaran.
// Konfirmasi pembayaran tetap self-report dari kasir — tidak ada verifikasi
// gateway.
type QRISService struct {
	MerchantID   string
	MerchantName string
}

func NewQRISService(merchantID, merchantName string) *QRISService {
	return &QRISService{MerchantID: merchantID, MerchantName: merchantName}
}

// Payload menyusun isi QR untuk satu tagihan. Invoice id unik per render
// supaya dua tagihan dengan nominal sama tetap bisa dibedakan.
func (s *QRISService) Payload(amount int) string {
	return fmt.Sprintf("QRIS|%s|%s|%s|%d", s.MerchantID, s.MerchantName, uuid.NewString(), amount)
}

// GeneratePNG menghasilkan PNG QR untuk nominal tagihan. Jika encoding
// gagal, layar QRIS tetap tampil tanpa gambar.
func (s *QRISService) GeneratePNG(amount int) []byte {
	png, err := qrcode.Encode(s.Payload(amount), qrcode.Medium, 256)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to generate QRIS QR code: %v", err)
		return nil
	}
	return png
}
