package i18n

import (
	"testing"

	"back_office/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestEveryCodeHasATemplateInEveryLanguage(t *testing.T) {
	for _, tag := range Supported {
		for _, code := range domain.Codes() {
			_, ok := templates[tag][code]
			assert.True(t, ok, "%s has no %s template", tag, code)
		}
	}
}

func TestTranslator_Match(t *testing.T) {
	tr, err := New()
	require.NoError(t, err)

	tests := []struct {
		name     string
		explicit string
		accept   string
		want     string
	}{
		{name: "default", want: "en"},
		{name: "explicit", explicit: "ru", want: "ru"},
		{name: "explicit wins over header", explicit: "uz", accept: "ru", want: "uz"},
		{name: "header", accept: "ru-RU,ru;q=0.9,en;q=0.8", want: "ru"},
		{name: "header quality order", accept: "de;q=0.9,uz;q=0.8", want: "uz"},
		{name: "unknown explicit falls back to header", explicit: "xx-invalid-", accept: "ru", want: "ru"},
		{name: "unsupported", accept: "fr", want: "en"},
		{name: "garbage header", accept: ";;;", want: "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Match(tt.explicit, tt.accept).String())
		})
	}
}

func TestTranslator_Message(t *testing.T) {
	tr := Must()

	tests := []struct {
		name string
		lang language.Tag
		err  *domain.Error
		want string
	}{
		{name: "english user", lang: language.English, err: domain.UserNotFound(12345), want: "User with id 12345 not found"},
		{name: "russian user", lang: language.Russian, err: domain.UserNotFound(7), want: "Пользователь с id 7 не найден"},
		{name: "uzbek stock", lang: language.Uzbek, err: domain.NotEnoughProduct(2), want: "Omborda mahsulot yetarli emas, faqat 2 ta qoldi"},
		{name: "no value", lang: language.English, err: domain.NotEnoughBalance(), want: "Not enough balance"},
		{name: "decimal value", lang: language.English, err: domain.NegativeBalance(decimal.RequireFromString("-1000.50")), want: "Balance cannot be negative: -1000.5"},
		{name: "username", lang: language.Russian, err: domain.UsernameExists("bob"), want: "Имя пользователя bob уже занято"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Message(tt.lang, tt.err))
		})
	}
}
