package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/yeremiapane/matcha-kasir-bot/models"
)

// Config menyimpan seluruh konfigurasi bot yang dibaca sekali saat start.
// Tidak ada hot-reload: token, allow-list dan menu bersifat statis selama
// proses berjalan.
type Config struct {
	BotToken string

	AdminIDs   map[int64]bool
	CashierIDs map[int64]bool

	Catalog models.Menu

	// Merchant info untuk payload QRIS
	QRISMerchantID   string
	QRISMerchantName string

	// Alamat HTTP untuk health check dan laporan read-only
	OpsAddr string

	// Kebijakan retry koneksi Telegram: jumlah percobaan dan jeda tetap.
	// Setelah percobaan habis, proses berhenti (fatal).
	RetryAttempts int
	RetryDelay    time.Duration
}

// Load membaca konfigurasi dari environment variables.
func Load() (*Config, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is not set")
	}

	adminIDs, err := parseIDList(os.Getenv("ADMIN_IDS"))
	if err != nil {
		return nil, fmt.Errorf("invalid ADMIN_IDS: %w", err)
	}
	cashierIDs, err := parseIDList(os.Getenv("CASHIER_IDS"))
	if err != nil {
		return nil, fmt.Errorf("invalid CASHIER_IDS: %w", err)
	}
	if len(adminIDs) == 0 && len(cashierIDs) == 0 {
		return nil, fmt.Errorf("no authorized users configured (set ADMIN_IDS and/or CASHIER_IDS)")
	}

	catalog, err := parseMenu(os.Getenv("MENU_ITEMS"))
	if err != nil {
		return nil, fmt.Errorf("invalid MENU_ITEMS: %w", err)
	}

	cfg := &Config{
		BotToken:         token,
		AdminIDs:         adminIDs,
		CashierIDs:       cashierIDs,
		Catalog:          catalog,
		QRISMerchantID:   getEnvDefault("QRIS_MERCHANT_ID", "MATCHAKASIR"),
		QRISMerchantName: getEnvDefault("QRIS_MERCHANT_NAME", "Matcha Kasir"),
		OpsAddr:          getEnvDefault("OPS_ADDR", ":8080"),
		RetryAttempts:    5,
		RetryDelay:       5 * time.Second,
	}

	if v := os.Getenv("TELEGRAM_RETRY_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid TELEGRAM_RETRY_ATTEMPTS: %q", v)
		}
		cfg.RetryAttempts = n
	}
	if v := os.Getenv("TELEGRAM_RETRY_DELAY_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid TELEGRAM_RETRY_DELAY_SECONDS: %q", v)
		}
		cfg.RetryDelay = time.Duration(n) * time.Second
	}

	return cfg, nil
}

// IsAdmin mengecek apakah user adalah admin.
func (c *Config) IsAdmin(uid int64) bool {
	return c.AdminIDs[uid]
}

// IsAuthorized mengecek apakah user terdaftar (admin atau kasir).
func (c *Config) IsAuthorized(uid int64) bool {
	return c.AdminIDs[uid] || c.CashierIDs[uid]
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseIDList(raw string) (map[int64]bool, error) {
	ids := make(map[int64]bool)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad user id %q", part)
		}
		ids[id] = true
	}
	return ids, nil
}

// parseMenu membaca override menu dari env dengan format
// "Nama=Harga,Nama=Harga". Jika kosong, pakai katalog default.
func parseMenu(raw string) (models.Menu, error) {
	if strings.TrimSpace(raw) == "" {
		return models.DefaultMenu(), nil
	}

	var items []models.MenuItem
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return models.Menu{}, fmt.Errorf("bad menu entry %q (want Name=Price)", part)
		}
		name := strings.TrimSpace(kv[0])
		price, err := strconv.Atoi(strings.TrimSpace(kv[1]))
		if err != nil || price <= 0 || name == "" {
			return models.Menu{}, fmt.Errorf("bad menu entry %q", part)
		}
		items = append(items, models.MenuItem{Name: name, Price: price})
	}
	if len(items) == 0 {
		return models.Menu{}, fmt.Errorf("menu is empty")
	}
	return models.NewMenu(items), nil
}
