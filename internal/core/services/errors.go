package services

import "errors"

var (
	// ErrDraftNotFound - черновик не найден, истек или уже отправлен
	ErrDraftNotFound = errors.New("draft not found")

	// ErrValidation - форма не прошла проверку, запрос в бэкенд не отправлялся
	ErrValidation = errors.New("please fill all required fields")

	// ErrUnknownField - такого поля в форме нет
	ErrUnknownField = errors.New("unknown draft field")

	// ErrSlotsFetch - слоты загрузить не удалось, список очищен, форма живет дальше
	ErrSlotsFetch = errors.New("failed to load available slots")
)
