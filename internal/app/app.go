// Package app wires configuration, storage, the API clients, and the session
// into one owned application object. Nothing here is a global; the lifecycle
// runs from New to Close.
package app

import (
	"fmt"

	"bookstorefront/internal/adminapi"
	"bookstorefront/internal/api"
	"bookstorefront/internal/config"
	"bookstorefront/internal/prefs"
	"bookstorefront/internal/session"
	"bookstorefront/internal/storage"
	"bookstorefront/internal/views"
)

// Config selects the storage backend and the API endpoints.
type Config struct {
	APIBaseURL     string
	AdminBaseURL   string
	StorageBackend string
	StoragePath    string
	RedisAddr      string
	RedisPassword  string
}

// App owns every long-lived collaborator.
type App struct {
	KV      storage.KV
	API     *api.Client
	Admin   *adminapi.Client
	Session *session.Store
	Prefs   *prefs.Cache
	Router  *Router
	Notify  views.Notifier
}

// New builds the application. The admin client is only constructed when an
// admin base URL is configured.
func New(cfg Config) (*App, error) {
	kv, err := openStorage(cfg)
	if err != nil {
		return nil, err
	}

	tokens := api.NewStorageTokenSource(kv)
	client := api.NewClient(cfg.APIBaseURL, tokens)
	sess := session.New(client, kv)

	a := &App{
		KV:      kv,
		API:     client,
		Session: sess,
		Prefs:   prefs.New(kv),
		Router:  NewRouter(sess),
		Notify:  LogNotifier{},
	}
	if cfg.AdminBaseURL != "" {
		a.Admin = adminapi.NewClient(cfg.AdminBaseURL, tokens)
	}
	return a, nil
}

// ViewDeps bundles the collaborators a view module needs.
func (a *App) ViewDeps() views.Deps {
	return views.Deps{
		API:     a.API,
		Session: a.Session,
		Prefs:   a.Prefs,
		Notify:  a.Notify,
		Nav:     a.Router,
	}
}

func (a *App) Close() error {
	return a.KV.Close()
}

func openStorage(cfg Config) (storage.KV, error) {
	switch cfg.StorageBackend {
	case config.StorageMemory:
		return storage.NewMemoryKV(), nil
	case config.StorageFile:
		return storage.NewFileKV(cfg.StoragePath)
	case config.StorageSQLite:
		return storage.NewSQLiteKV(cfg.StoragePath)
	case config.StorageRedis:
		return storage.NewRedisKV(cfg.RedisAddr, cfg.RedisPassword, "storefront"), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
