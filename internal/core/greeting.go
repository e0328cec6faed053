package core

import "time"

// Greeting returns the salutation for the given wall-clock time:
// 5-11h morning, 12-17h afternoon, 18-22h evening, otherwise night.
func Greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h >= 5 && h < 12:
		return "Доброе утро"
	case h >= 12 && h < 18:
		return "Добрый день"
	case h >= 18 && h < 23:
		return "Добрый вечер"
	default:
		return "Доброй ночи"
	}
}
