package common

// cache keys
const (
	KEY_QUESTIONNAIRE_SESSION = "questionnaire_session:%s"
)
