package middleware

import (
	"back_office/internal/i18n" // Language negotiation

	"github.com/gin-gonic/gin"   // Gin web framework
	"golang.org/x/text/language" // Language tags
)

// languageKey is the context key holding the negotiated language.Tag
const languageKey = "lang"

// Language negotiates the response language from the "lang" query parameter,
// then the Accept-Language header, and stores it in the context
func Language(tr *i18n.Translator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tag := tr.Match(c.Query("lang"), c.GetHeader("Accept-Language")) // Pick a supported language
		c.Set(languageKey, tag)                                          // Store tag in context
		c.Header("Content-Language", tag.String())                       // Tell the client
		c.Next()
	}
}

// LanguageFrom returns the language stored by Language, or the default language
func LanguageFrom(c *gin.Context) language.Tag {
	if v, ok := c.Get(languageKey); ok {
		if tag, ok := v.(language.Tag); ok {
			return tag
		}
	}
	return i18n.Supported[0]
}
