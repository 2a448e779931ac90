package ioc

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/viper"
)

func InitTelegramBot() (*tgbotapi.BotAPI, int64) {
	token, chatId := telegramConfig()
	if token == "" {
		panic("no telegram bot token set")
	}
	if chatId == 0 {
		panic("no telegram chat id set")
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		panic(err)
	}
	return bot, chatId
}

// telegramConfig reads the keys directly: UnmarshalKey does not see
// env-bound nested keys, direct Get does.
func telegramConfig() (string, int64) {
	_ = viper.BindEnv("telegram.token", "TELEGRAM_BOT_TOKEN")
	_ = viper.BindEnv("telegram.chat_id", "TELEGRAM_CHAT_ID")
	return viper.GetString("telegram.token"), viper.GetInt64("telegram.chat_id")
}
