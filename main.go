package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/yeremiapane/matcha-kasir-bot/config"
	"github.com/yeremiapane/matcha-kasir-bot/controllers"
	"github.com/yeremiapane/matcha-kasir-bot/router"
	"github.com/yeremiapane/matcha-kasir-bot/services"
	"github.com/yeremiapane/matcha-kasir-bot/store"
	"github.com/yeremiapane/matcha-kasir-bot/transport"
	"github.com/yeremiapane/matcha-kasir-bot/utils"
)

func init() {
	// Load .env file di awal sebelum apapun
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load configuration: %v", err)
	}

	// Semua state hidup hanya di memori: ledger dan sesi hilang saat proses
	// berhenti. Ini limitation yang disengaja, bukan bug.
	ledger := store.NewLedger()
	sessions := store.NewSessionStore()

	qris := services.NewQRISService(cfg.QRISMerchantID, cfg.QRISMerchantName)
	machine := services.NewMachine(cfg.Catalog, sessions, ledger, qris, cfg)

	// Set gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Surface ops (health + laporan read-only) jalan di goroutine sendiri
	go func() {
		r := router.SetupRouter(ledger)
		utils.InfoLogger.Printf("Ops server listening on %s", cfg.OpsAddr)
		if err := r.Run(cfg.OpsAddr); err != nil {
			utils.ErrorLogger.Printf("Ops server stopped: %v", err)
		}
	}()

	tg, err := transport.Connect(cfg.BotToken, cfg.RetryAttempts, cfg.RetryDelay)
	if err != nil {
		utils.ErrorLogger.Fatalf("%v", err)
	}

	ctl := controllers.NewUpdateController(tg.Bot(), machine, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	utils.InfoLogger.Println("Starting bot application...")
	tg.Run(ctx, ctl)
}
