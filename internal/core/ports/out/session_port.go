package out

// SessionPort - токен доктора, под которым панель ходит в бэкенд
// Отсутствие токена не ошибка: запрос уйдет без авторизации и бэкенд его отклонит
type SessionPort interface {
	Token() string
	SetToken(token string)
	Clear()
}
