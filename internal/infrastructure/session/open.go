package session

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalog-admin/internal/application/ports"
	"github.com/jhoicas/catalog-admin/pkg/config"
	"github.com/jhoicas/catalog-admin/pkg/logger"
)

// Open construye el TokenStore según SESSION_DRIVER. La función devuelta libera la conexión si la hay.
func Open(ctx context.Context, cfg config.SessionConfig, log *logger.Logger) (ports.TokenStore, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Driver {
	case config.SessionDriverFile:
		return NewFileStore(cfg.File, log), noop, nil
	case config.SessionDriverMemory:
		return NewMemoryStore(""), noop, nil
	case config.SessionDriverRedis:
		rs, err := NewRedisStore(ctx, RedisOptions{
			URL:       cfg.Redis.URL,
			Addr:      cfg.Redis.Addr,
			Password:  cfg.Redis.Password,
			DB:        cfg.Redis.DB,
			Namespace: cfg.Namespace,
		}, log)
		if err != nil {
			return nil, nil, err
		}
		return rs, rs.Close, nil
	default:
		return nil, nil, fmt.Errorf("session: driver %q no soportado", cfg.Driver)
	}
}
