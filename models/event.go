package models

import (
	"fmt"
	"strings"
)

// EventKind adalah jenis tombol yang ditekan pengguna. Payload callback yang
// opaque diparse sekali di boundary menjadi tipe tertutup ini, lalu
// di-switch secara exhaustive di state machine.
type EventKind int

const (
	EventStartTransaction EventKind = iota
	EventEndSession
	EventNewCustomer
	EventContinueCustomer
	EventBackToMenu
	EventItemDetail
	EventCartUpdate
	EventCheckout
	EventBackToCheckout
	EventPayCash
	EventPayQRIS
	EventQRISDone
	EventAdminPanel
	EventAdminReport
	EventAdminReset
)

// Event adalah hasil parse satu klik tombol. Item terisi untuk
// EventItemDetail dan EventCartUpdate; Action hanya untuk EventCartUpdate.
type Event struct {
	Kind   EventKind
	Item   string
	Action CartAction
}

// Callback payload constants — string yang sama dipakai builder keyboard dan
// parser sehingga keduanya tidak bisa lepas sinkron.
const (
	CallbackStartTransaction = "start_transaction"
	CallbackEndSession       = "end_session"
	CallbackNewCustomer      = "new_customer"
	CallbackContinueCustomer = "continue_same_customer"
	CallbackBackToMenu       = "back_to_menu"
	CallbackCheckout         = "checkout"
	CallbackBackToCheckout   = "back_to_checkout"
	CallbackPayCash          = "pay_cash"
	CallbackPayQRIS          = "pay_qris"
	CallbackQRISDone         = "qris_done"
	CallbackAdminPanel       = "admin_panel"
	CallbackAdminReport      = "adm_rekap"
	CallbackAdminReset       = "adm_reset"

	callbackItemPrefix = "item_"
	callbackIncPrefix  = "inc_"
	callbackDecPrefix  = "dec_"
)

// ItemCallback membangun payload tombol pilih item.
func ItemCallback(item string) string { return callbackItemPrefix + item }

// CartCallback membangun payload tombol +/- pada detail item.
func CartCallback(action CartAction, item string) string {
	return string(action) + "_" + item
}

// ParseEvent menerjemahkan payload callback menjadi Event.
func ParseEvent(data string) (Event, error) {
	switch data {
	case CallbackStartTransaction:
		return Event{Kind: EventStartTransaction}, nil
	case CallbackEndSession:
		return Event{Kind: EventEndSession}, nil
	case CallbackNewCustomer:
		return Event{Kind: EventNewCustomer}, nil
	case CallbackContinueCustomer:
		return Event{Kind: EventContinueCustomer}, nil
	case CallbackBackToMenu:
		return Event{Kind: EventBackToMenu}, nil
	case CallbackCheckout:
		return Event{Kind: EventCheckout}, nil
	case CallbackBackToCheckout:
		return Event{Kind: EventBackToCheckout}, nil
	case CallbackPayCash:
		return Event{Kind: EventPayCash}, nil
	case CallbackPayQRIS:
		return Event{Kind: EventPayQRIS}, nil
	case CallbackQRISDone:
		return Event{Kind: EventQRISDone}, nil
	case CallbackAdminPanel:
		return Event{Kind: EventAdminPanel}, nil
	case CallbackAdminReport:
		return Event{Kind: EventAdminReport}, nil
	case CallbackAdminReset:
		return Event{Kind: EventAdminReset}, nil
	}

	switch {
	case strings.HasPrefix(data, callbackItemPrefix):
		return Event{Kind: EventItemDetail, Item: data[len(callbackItemPrefix):]}, nil
	case strings.HasPrefix(data, callbackIncPrefix):
		return Event{Kind: EventCartUpdate, Action: CartInc, Item: data[len(callbackIncPrefix):]}, nil
	case strings.HasPrefix(data, callbackDecPrefix):
		return Event{Kind: EventCartUpdate, Action: CartDec, Item: data[len(callbackDecPrefix):]}, nil
	}

	return Event{}, fmt.Errorf("unknown callback payload %q", data)
}
