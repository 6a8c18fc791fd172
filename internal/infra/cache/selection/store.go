package selection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/salonsphere/booking-service/internal/domain"
)

const keyPrefix = "selection:"

// Store Redis-хранилище незавершённого выбора слотов
// Выбор живёт ограниченное время (TTL): брошенный мастер бронирования
// не держит слоты вечно.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore создает хранилище выбора слотов
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Get возвращает сохранённый выбор сессии
func (s *Store) Get(ctx context.Context, sessionID string) (*domain.Selection, error) {
	data, err := s.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSelectionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get: %v", ErrStore, err)
	}

	var sel domain.Selection
	if err := json.Unmarshal(data, &sel); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal: %v", ErrEncode, err)
	}

	return &sel, nil
}

// Save сохраняет выбор сессии, обновляя TTL
func (s *Store) Save(ctx context.Context, sel *domain.Selection) error {
	data, err := json.Marshal(sel)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal: %v", ErrEncode, err)
	}

	if err := s.client.Set(ctx, keyPrefix+sel.SessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save: %v", ErrStore, err)
	}

	return nil
}

// Delete удаляет выбор сессии
// Отсутствие ключа не считается ошибкой.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("%w: Delete: %v", ErrStore, err)
	}
	return nil
}
