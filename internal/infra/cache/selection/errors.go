package selection

import "errors"

var (
	// ErrSelectionNotFound возвращается, когда для сессии нет сохранённого выбора
	ErrSelectionNotFound = errors.New("selection.store: selection not found")

	// ErrEncode возвращается при ошибке сериализации выбора
	ErrEncode = errors.New("selection.store: failed to encode selection")

	// ErrStore возвращается при ошибке обращения к Redis
	ErrStore = errors.New("selection.store: redis operation failed")
)
