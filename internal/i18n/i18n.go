// Package i18n renders domain error messages in the caller's language.
//
// Messages are registered in a golang.org/x/text catalog keyed by the error
// code name; the language is negotiated from an explicit tag or an
// Accept-Language header, falling back to English.
package i18n

import (
	"fmt"

	"back_office/internal/domain"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported languages; the first is the fallback
var Supported = []language.Tag{language.English, language.Russian, language.Uzbek}

var templates = map[language.Tag]map[domain.ErrorCode]string{
	language.English: {
		domain.CodeUsernameExists:          "Username %v already exists",
		domain.CodeUserNotFound:            "User with id %v not found",
		domain.CodeCategoryNotFound:        "Category with id %v not found",
		domain.CodeProductNotFound:         "Product with id %v not found",
		domain.CodeWrongAmount:             "Wrong amount: %v",
		domain.CodeNotEnoughProduct:        "Not enough product in stock, only %v left",
		domain.CodeTransactionNotFound:     "Transaction with id %v not found",
		domain.CodeNegativeBalance:         "Balance cannot be negative: %v",
		domain.CodePaymentRecordNotFound:   "Payment record with id %v not found",
		domain.CodeTransactionItemNotFound: "Transaction item with id %v not found",
		domain.CodeNotEnoughBalance:        "Not enough balance",
	},
	language.Russian: {
		domain.CodeUsernameExists:          "Имя пользователя %v уже занято",
		domain.CodeUserNotFound:            "Пользователь с id %v не найден",
		domain.CodeCategoryNotFound:        "Категория с id %v не найдена",
		domain.CodeProductNotFound:         "Товар с id %v не найден",
		domain.CodeWrongAmount:             "Неверная сумма: %v",
		domain.CodeNotEnoughProduct:        "Недостаточно товара на складе, осталось %v",
		domain.CodeTransactionNotFound:     "Транзакция с id %v не найдена",
		domain.CodeNegativeBalance:         "Баланс не может быть отрицательным: %v",
		domain.CodePaymentRecordNotFound:   "Платёж с id %v не найден",
		domain.CodeTransactionItemNotFound: "Позиция транзакции с id %v не найдена",
		domain.CodeNotEnoughBalance:        "Недостаточно средств на балансе",
	},
	language.Uzbek: {
		domain.CodeUsernameExists:          "%v foydalanuvchi nomi band",
		domain.CodeUserNotFound:            "%v id li foydalanuvchi topilmadi",
		domain.CodeCategoryNotFound:        "%v id li kategoriya topilmadi",
		domain.CodeProductNotFound:         "%v id li mahsulot topilmadi",
		domain.CodeWrongAmount:             "Noto'g'ri summa: %v",
		domain.CodeNotEnoughProduct:        "Omborda mahsulot yetarli emas, faqat %v ta qoldi",
		domain.CodeTransactionNotFound:     "%v id li tranzaksiya topilmadi",
		domain.CodeNegativeBalance:         "Balans manfiy bo'lishi mumkin emas: %v",
		domain.CodePaymentRecordNotFound:   "%v id li to'lov topilmadi",
		domain.CodeTransactionItemNotFound: "%v id li tranzaksiya elementi topilmadi",
		domain.CodeNotEnoughBalance:        "Balansda mablag' yetarli emas",
	},
}

// Translator formats domain error messages
type Translator struct {
	catalog catalog.Catalog
	matcher language.Matcher
}

// New builds a translator holding every template above
func New() (*Translator, error) {
	b := catalog.NewBuilder(catalog.Fallback(Supported[0]))
	for tag, msgs := range templates {
		for code, tmpl := range msgs {
			if err := b.SetString(tag, code.String(), tmpl); err != nil {
				return nil, err
			}
		}
	}
	return &Translator{catalog: b, matcher: language.NewMatcher(Supported)}, nil
}

// Must is New that panics on error; templates are static so failure is a bug
func Must() *Translator {
	t, err := New()
	if err != nil {
		panic(err)
	}
	return t
}

// Match picks the supported language for an explicit tag (e.g. a "lang" query
// parameter) or, when that is empty or unknown, an Accept-Language header.
func (t *Translator) Match(explicit, acceptLanguage string) language.Tag {
	if explicit != "" {
		if tag, err := language.Parse(explicit); err == nil {
			if matched, _, conf := t.matcher.Match(tag); conf != language.No {
				return base(matched)
			}
		}
	}
	if acceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil && len(tags) > 0 {
			if matched, _, conf := t.matcher.Match(tags...); conf != language.No {
				return base(matched)
			}
		}
	}
	return Supported[0]
}

// Message renders the message for err in lang. NotEnoughBalance carries no value.
// Values are pre-formatted so ids and amounts are not digit-grouped by locale.
func (t *Translator) Message(lang language.Tag, err *domain.Error) string {
	p := message.NewPrinter(lang, message.Catalog(t.catalog))
	if err.Value == nil {
		return p.Sprintf(err.Code.String())
	}
	return p.Sprintf(err.Code.String(), fmt.Sprint(err.Value))
}

// base strips the region and extensions the matcher may attach, e.g. "ru-u-rg-ruzzzz"
func base(tag language.Tag) language.Tag {
	b, _ := tag.Base()
	t, err := language.Compose(b)
	if err != nil {
		return tag
	}
	return t
}
