package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// ObjectIDLength - длина идентификатора документа у бэкенда
const ObjectIDLength = 24

// NewObjectID собирает идентификатор в формате документов бэкенда:
// 8 hex-символов unix-времени плюс 16 hex-символов случайных байт.
// Бэкенд требует клиентский идентификатор у поддокумента слота,
// гарантий уникальности здесь нет и не нужно
func NewObjectID() string {
	timestamp := fmt.Sprintf("%08x", time.Now().Unix())

	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand на практике не отказывает, но нулевой хвост
		// формату не противоречит
		for i := range buf {
			buf[i] = 0
		}
	}

	return timestamp + hex.EncodeToString(buf)
}
