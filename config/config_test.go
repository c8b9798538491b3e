package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token")
	t.Setenv("ADMIN_IDS", "1")
	t.Setenv("CASHIER_IDS", "2, 3")
	t.Setenv("MENU_ITEMS", "")
	t.Setenv("TELEGRAM_RETRY_ATTEMPTS", "")
	t.Setenv("TELEGRAM_RETRY_DELAY_SECONDS", "")
}

func TestLoad(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.BotToken)
	assert.True(t, cfg.IsAdmin(1))
	assert.False(t, cfg.IsAdmin(2))
	assert.True(t, cfg.IsAuthorized(1))
	assert.True(t, cfg.IsAuthorized(2))
	assert.True(t, cfg.IsAuthorized(3))
	assert.False(t, cfg.IsAuthorized(99))

	// Katalog default terpasang saat MENU_ITEMS kosong
	assert.Equal(t, 8, cfg.Catalog.Len())
	price, ok := cfg.Catalog.Price("🍵 Matcha OG")
	assert.True(t, ok)
	assert.Equal(t, 12000, price)

	assert.Equal(t, 5, cfg.RetryAttempts)
	assert.Equal(t, 5*time.Second, cfg.RetryDelay)
}

func TestLoadRequiresToken(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRequiresSomeUsers(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("ADMIN_IDS", "")
	t.Setenv("CASHIER_IDS", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadIDs(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("ADMIN_IDS", "1,abc")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadMenuOverride(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("MENU_ITEMS", "Kopi Susu=18000, Es Teh=5000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Catalog.Len())
	price, ok := cfg.Catalog.Price("Kopi Susu")
	assert.True(t, ok)
	assert.Equal(t, 18000, price)
}

func TestLoadRejectsBadMenu(t *testing.T) {
	setBaseEnv(t)

	for _, bad := range []string{"Kopi Susu", "Kopi Susu=gratis", "Kopi Susu=0", "=5000"} {
		t.Setenv("MENU_ITEMS", bad)
		_, err := Load()
		assert.Error(t, err, "MENU_ITEMS=%q harus ditolak", bad)
	}
}

func TestLoadRetryOverrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("TELEGRAM_RETRY_ATTEMPTS", "3")
	t.Setenv("TELEGRAM_RETRY_DELAY_SECONDS", "10")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.RetryAttempts)
	assert.Equal(t, 10*time.Second, cfg.RetryDelay)
}
