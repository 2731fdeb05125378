package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/jhoicas/catalog-admin/internal/application/ports"
	"github.com/jhoicas/catalog-admin/internal/domain"
	"github.com/jhoicas/catalog-admin/pkg/logger"
)

var _ ports.TokenStore = (*RedisStore)(nil)

// RedisOptions configuración del store en Redis. URL tiene prioridad sobre Addr.
type RedisOptions struct {
	URL       string
	Addr      string
	Password  string
	DB        int
	Namespace string        // prefijo de la clave; la clave final es "<namespace>:token"
	TTL       time.Duration // 0 = sin expiración
}

// RedisStore guarda el token bajo una única clave de Redis.
type RedisStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
	log    *logger.Logger
}

// NewRedisStore crea el cliente y verifica la conexión con PING.
func NewRedisStore(ctx context.Context, opts RedisOptions, log *logger.Logger) (*RedisStore, error) {
	var ro *redis.Options
	if opts.URL != "" {
		parsed, err := redis.ParseURL(opts.URL)
		if err != nil {
			return nil, fmt.Errorf("session: REDIS_URL inválida: %w", err)
		}
		ro = parsed
	} else {
		ro = &redis.Options{Addr: opts.Addr, Password: opts.Password, DB: opts.DB}
	}
	client := redis.NewClient(ro)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("session: conectar a Redis %s: %w", ro.Addr, err)
	}
	return NewRedisStoreWithClient(client, opts.Namespace, opts.TTL, log), nil
}

// NewRedisStoreWithClient usa un cliente ya configurado.
func NewRedisStoreWithClient(client *redis.Client, namespace string, ttl time.Duration, log *logger.Logger) *RedisStore {
	if namespace == "" {
		namespace = "catalog-admin"
	}
	return &RedisStore{
		client: client,
		key:    namespace + ":token",
		ttl:    ttl,
		log:    logger.OrNop(log).Named("session.redis"),
	}
}

// Key clave usada en Redis.
func (s *RedisStore) Key() string { return s.key }

// Load devuelve el token guardado o domain.ErrNoSession.
func (s *RedisStore) Load(ctx context.Context) (string, error) {
	tok, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("session: GET %s: %w", s.key, err)
	}
	return tok, nil
}

// Save reemplaza el token guardado.
func (s *RedisStore) Save(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, s.key, token, s.ttl).Err(); err != nil {
		return fmt.Errorf("session: SET %s: %w", s.key, err)
	}
	s.log.Debug().Str("key", s.key).Msg("token guardado")
	return nil
}

// Clear borra el token; sin token guardado no es error.
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("session: DEL %s: %w", s.key, err)
	}
	s.log.Debug().Str("key", s.key).Msg("token borrado")
	return nil
}

// Close cierra la conexión.
func (s *RedisStore) Close() error { return s.client.Close() }
