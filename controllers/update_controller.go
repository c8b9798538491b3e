package controllers

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yeremiapane/matcha-kasir-bot/models"
	"github.com/yeremiapane/matcha-kasir-bot/services"
	"github.com/yeremiapane/matcha-kasir-bot/utils"
	"github.com/yeremiapane/matcha-kasir-bot/views"
)

// UpdateController menerima update Telegram, menjalankan cek otorisasi,
// menerjemahkan update menjadi event untuk state machine, lalu meneruskan
// render instruction yang dihasilkan ke chat.
type UpdateController struct {
	bot     *tgbotapi.BotAPI
	machine *services.Machine
	roles   services.Roles
}

func NewUpdateController(bot *tgbotapi.BotAPI, machine *services.Machine, roles services.Roles) *UpdateController {
	return &UpdateController{bot: bot, machine: machine, roles: roles}
}

// HandleUpdate adalah router utama untuk semua update masuk.
func (ctl *UpdateController) HandleUpdate(update tgbotapi.Update) {
	switch {
	case update.Message != nil && update.Message.IsCommand():
		ctl.handleCommand(update.Message)
	case update.Message != nil:
		ctl.handleText(update.Message)
	case update.CallbackQuery != nil:
		ctl.handleCallback(update.CallbackQuery)
	}
}

func (ctl *UpdateController) handleCommand(msg *tgbotapi.Message) {
	uid := msg.From.ID
	if msg.Command() != "start" {
		ctl.sendRender(msg.Chat.ID, views.UseButtonsHint())
		return
	}
	if !ctl.roles.IsAuthorized(uid) {
		utils.InfoLogger.Printf("Access denied for /start from user %d", uid)
		ctl.sendRender(msg.Chat.ID, views.AccessDenied())
		return
	}
	ctl.sendRender(msg.Chat.ID, ctl.machine.HandleStart(uid))
}

func (ctl *UpdateController) handleText(msg *tgbotapi.Message) {
	uid := msg.From.ID
	if !ctl.roles.IsAuthorized(uid) {
		utils.InfoLogger.Printf("Access denied for message from user %d", uid)
		ctl.sendRender(msg.Chat.ID, views.AccessDenied())
		return
	}
	ctl.sendRender(msg.Chat.ID, ctl.machine.HandleText(uid, msg.Text))
}

func (ctl *UpdateController) handleCallback(cb *tgbotapi.CallbackQuery) {
	uid := cb.From.ID

	if !ctl.roles.IsAuthorized(uid) {
		ctl.answerAlert(cb.ID, views.AccessDeniedAlert().Alert)
		return
	}

	ev, err := models.ParseEvent(cb.Data)
	if err != nil {
		// Payload tak dikenal (keyboard dari versi lama) — jangan sampai
		// error, cukup arahkan ke tombol yang berlaku
		utils.InfoLogger.Printf("Unknown callback payload from user %d: %v", uid, err)
		ctl.answerAlert(cb.ID, views.StaleButtonAlert().Alert)
		return
	}

	render := ctl.machine.HandleEvent(uid, ev)

	if render.Alert != "" {
		ctl.answerAlert(cb.ID, render.Alert)
		return
	}

	// Ack klik tombol dulu supaya spinner di client berhenti
	ctl.answer(cb.ID)

	if cb.Message == nil {
		// Pesan asal sudah terlalu tua untuk diedit; tidak ada yang bisa
		// dirender di tempat
		return
	}
	ctl.renderCallback(cb, render)
}

// renderCallback menampilkan hasil transisi untuk klik tombol: edit pesan di
// tempat jika bisa, atau kirim pesan baru untuk foto (QRIS) dan followup.
func (ctl *UpdateController) renderCallback(cb *tgbotapi.CallbackQuery, render views.Render) {
	chatID := cb.Message.Chat.ID

	if render.Photo != nil {
		// Edit teks tidak bisa berubah menjadi foto — kirim pesan baru
		ctl.sendRender(chatID, render)
		return
	}

	var err error
	if render.Keyboard != nil {
		edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, cb.Message.MessageID, render.Text, toInlineKeyboard(render.Keyboard))
		edit.ParseMode = tgbotapi.ModeMarkdown
		_, err = ctl.bot.Send(edit)
	} else {
		edit := tgbotapi.NewEditMessageText(chatID, cb.Message.MessageID, render.Text)
		edit.ParseMode = tgbotapi.ModeMarkdown
		_, err = ctl.bot.Send(edit)
	}

	if err != nil {
		if isNotModified(err) {
			// Konten tidak berubah (mis. dec saat qty 0) — benign, klik
			// sudah di-ack
			return
		}
		utils.ErrorLogger.Printf("Error rendering view: %v", err)
		ctl.answerAlert(cb.ID, views.GenericErrorAlert().Alert)
		return
	}

	if render.Followup != nil {
		ctl.sendRender(chatID, *render.Followup)
	}
}

// sendRender mengirim render instruction sebagai pesan baru.
func (ctl *UpdateController) sendRender(chatID int64, render views.Render) {
	var err error
	if render.Photo != nil {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "qris.png", Bytes: render.Photo})
		photo.Caption = render.Text
		photo.ParseMode = tgbotapi.ModeMarkdown
		if render.Keyboard != nil {
			photo.ReplyMarkup = toInlineKeyboard(render.Keyboard)
		}
		_, err = ctl.bot.Send(photo)
	} else {
		msg := tgbotapi.NewMessage(chatID, render.Text)
		msg.ParseMode = tgbotapi.ModeMarkdown
		if render.Keyboard != nil {
			msg.ReplyMarkup = toInlineKeyboard(render.Keyboard)
		}
		_, err = ctl.bot.Send(msg)
	}
	if err != nil {
		utils.ErrorLogger.Printf("Error sending message to chat %d: %v", chatID, err)
		return
	}

	if render.Followup != nil {
		ctl.sendRender(chatID, *render.Followup)
	}
}

func (ctl *UpdateController) answer(callbackID string) {
	if _, err := ctl.bot.Request(tgbotapi.NewCallback(callbackID, "")); err != nil {
		utils.ErrorLogger.Printf("Error answering callback: %v", err)
	}
}

func (ctl *UpdateController) answerAlert(callbackID, text string) {
	if _, err := ctl.bot.Request(tgbotapi.NewCallbackWithAlert(callbackID, text)); err != nil {
		utils.ErrorLogger.Printf("Error answering callback alert: %v", err)
	}
}

func toInlineKeyboard(rows [][]views.Button) tgbotapi.InlineKeyboardMarkup {
	var kb [][]tgbotapi.InlineKeyboardButton
	for _, row := range rows {
		var r []tgbotapi.InlineKeyboardButton
		for _, btn := range row {
			r = append(r, tgbotapi.NewInlineKeyboardButtonData(btn.Label, btn.Data))
		}
		kb = append(kb, r)
	}
	return tgbotapi.NewInlineKeyboardMarkup(kb...)
}

func isNotModified(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "message is not modified")
}
