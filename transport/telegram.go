package transport

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yeremiapane/matcha-kasir-bot/utils"
)

// Handler menerima satu update yang sudah sampai. Implementasinya adalah
// UpdateController; transport tidak tahu apa-apa soal state machine.
type Handler interface {
	HandleUpdate(update tgbotapi.Update)
}

// Telegram adalah adapter transport: koneksi Bot API, long polling, dan
// kebijakan retry koneksi. Dari sudut pandang state machine semua panggilan
// keluar bersifat fire-and-forget; retry hanya terjadi di lapisan ini.
type Telegram struct {
	bot *tgbotapi.BotAPI
}

// Connect membuka koneksi ke Bot API dengan retry terbatas dan jeda tetap.
// Setelah percobaan habis, error dikembalikan dan proses seharusnya berhenti
// (kondisi fatal top-level, bukan urusan state machine).
func Connect(token string, attempts int, delay time.Duration) (*Telegram, error) {
	var lastErr error
	for i := 1; i <= attempts; i++ {
		bot, err := tgbotapi.NewBotAPI(token)
		if err == nil {
			utils.InfoLogger.Printf("Connected to Telegram as @%s", bot.Self.UserName)
			return &Telegram{bot: bot}, nil
		}
		lastErr = err
		utils.ErrorLogger.Printf("Telegram connect attempt %d/%d failed: %v", i, attempts, err)
		if i < attempts {
			time.Sleep(delay)
		}
	}
	return nil, fmt.Errorf("failed to connect to Telegram after %d attempts: %w", attempts, lastErr)
}

// Bot mengekspos klien mentah untuk controller.
func (t *Telegram) Bot() *tgbotapi.BotAPI {
	return t.bot
}

// Run menjalankan long polling sampai ctx dibatalkan. Setiap update
// ditangani di goroutine sendiri; serialisasi per-user dijamin oleh session
// store, bukan di sini.
func (t *Telegram) Run(ctx context.Context, handler Handler) {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30

	updates := t.bot.GetUpdatesChan(cfg)
	utils.InfoLogger.Println("Bot is polling...")

	for {
		select {
		case <-ctx.Done():
			t.bot.StopReceivingUpdates()
			utils.InfoLogger.Println("Polling stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			go handler.HandleUpdate(update)
		}
	}
}
