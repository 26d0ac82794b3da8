package config

import "strconv"

type cacheKey struct{}

// CacheKey namespaces all Redis keys used by the bot.
var CacheKey = cacheKey{}

// UserLangKey caches a user's interface language by Telegram ID.
func (cacheKey) UserLangKey(telegramID int64) string {
	return "edutester:lang:" + strconv.FormatInt(telegramID, 10)
}

// TestNotifiedKey marks a scheduled test as already announced so the
// notifier never announces the same test twice.
func (cacheKey) TestNotifiedKey(testID int64) string {
	return "edutester:notified:" + strconv.FormatInt(testID, 10)
}
