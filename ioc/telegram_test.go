package ioc

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestTelegramConfigFromEnv(t *testing.T) {
	viper.Reset()
	t.Setenv("TELEGRAM_BOT_TOKEN", "tok-from-env")
	t.Setenv("TELEGRAM_CHAT_ID", "123456789")

	token, chatId := telegramConfig()
	assert.Equal(t, "tok-from-env", token)
	assert.EqualValues(t, 123456789, chatId)
}

func TestTelegramConfigFromConfig(t *testing.T) {
	viper.Reset()
	viper.Set("telegram.token", "tok-from-file")
	viper.Set("telegram.chat_id", int64(42))

	token, chatId := telegramConfig()
	assert.Equal(t, "tok-from-file", token)
	assert.EqualValues(t, 42, chatId)
}

func TestTelegramConfigMissing(t *testing.T) {
	viper.Reset()
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")

	token, chatId := telegramConfig()
	assert.Empty(t, token)
	assert.Zero(t, chatId)
}
