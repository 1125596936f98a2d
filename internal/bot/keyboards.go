package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Spok95/yard-terminal/internal/domain/containers"
)

func navKeyboard(back bool, cancel bool) tgbotapi.InlineKeyboardMarkup {
	row := []tgbotapi.InlineKeyboardButton{}
	if back {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("⬅️ Atrás", "nav:back"))
	}
	if cancel {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("✖️ Cancelar", "nav:cancel"))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row)
}

func loadKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("FCL (contenedor)", "gi:load:FCL"),
			tgbotapi.NewInlineKeyboardButtonData("LCL (carga suelta)", "gi:load:LCL"),
		),
		navKeyboard(false, true).InlineKeyboard[0],
	)
}

func materialKeyboard() tgbotapi.InlineKeyboardMarkup {
	kinds := []containers.MaterialType{
		containers.MaterialBoxes, containers.MaterialCoils, containers.MaterialPallets,
		containers.MaterialBags, containers.MaterialPlates,
	}
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, k := range kinds {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(string(k), "gi:mat:"+string(k)))
		if len(row) == 3 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, navKeyboard(true, true).InlineKeyboard[0])
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func confirmKeyboard(prefix string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Confirmar", prefix+":confirm"),
		),
		navKeyboard(true, true).InlineKeyboard[0],
	)
}
