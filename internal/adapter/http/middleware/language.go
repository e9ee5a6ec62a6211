package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/codeskillotech/taskmanagement-backend/pkg/translator"
)

// LanguageMiddleware stores the request language based on the
// Accept-Language header so error messages can be localized downstream.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Keep language handling simple: use the raw header value,
		// fall back to en.
		lang := c.GetHeader("Accept-Language")
		if lang == "" {
			lang = translator.LanguageEn
		}
		c.Set("lang", lang)
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get("lang"); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
