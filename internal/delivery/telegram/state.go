package telegram

import "fmt"

const (
	UserStateKey = "user_state:%d"

	StateIdle = 0

	// /signal states
	StateWaitingSignalPair = 1
)

func (t *TelegramBotHandler) SetUserState(userID int64, state int) {
	t.inmemoryCache.Set(fmt.Sprintf(UserStateKey, userID), state, t.cfg.Cache.BotStateExpiration)
}

func (t *TelegramBotHandler) GetUserState(userID int64) int {
	val, found := t.inmemoryCache.Get(fmt.Sprintf(UserStateKey, userID))
	if !found {
		return StateIdle
	}
	state, ok := val.(int)
	if !ok {
		return StateIdle
	}
	return state
}

func (t *TelegramBotHandler) ResetUserState(userID int64) {
	t.inmemoryCache.Delete(fmt.Sprintf(UserStateKey, userID))
}
