package core

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/moodnest/moodnest-api/internal/store"
	"github.com/moodnest/moodnest-api/internal/store/sqlstore"
	"github.com/moodnest/moodnest-api/pkg/utils"
)

type Core struct {
	cfg CoreConfig

	stores  store.Provider
	metrics *Metrics

	engine     *gin.Engine
	engineOnce sync.Once

	limiters     map[string]*rate.Limiter
	limitersLock sync.Mutex
}

func MustSetupCore(cfg CoreConfig) *Core {
	{
		var writer io.Writer = os.Stdout
		if cfg.Log.Path != "" {
			writer = &lumberjack.Logger{
				Filename:   cfg.Log.Path,
				MaxSize:    500, // megabytes
				MaxBackups: 3,
				MaxAge:     28,   //days
				Compress:   true, // disabled by default
			}
		}
		l := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
			Level: cfg.Log.SlogLevel(),
		}))
		slog.SetDefault(l)
	}

	getProvider := sqlstore.MustSetup(cfg.Postgres.ConnectConfig())

	return NewCore(cfg, getProvider())
}

// NewCore wires a core around an already built store provider. Logic tests
// use it with an in-memory provider instead of postgres.
func NewCore(cfg CoreConfig, stores store.Provider) *Core {
	utils.SetupIDWorker(1)

	return &Core{
		cfg:      cfg,
		stores:   stores,
		metrics:  NewMetrics("moodnest", "core"),
		limiters: make(map[string]*rate.Limiter),
	}
}

func (s *Core) Cfg() CoreConfig {
	return s.cfg
}

func (s *Core) Store() store.Provider {
	return s.stores
}

func (s *Core) Metrics() *Metrics {
	return s.metrics
}

func (s *Core) HttpEngine() *gin.Engine {
	s.engineOnce.Do(func() {
		s.engine = gin.New()
		s.engine.Use(gin.Recovery())
	})
	return s.engine
}

// UseLimiter returns the per key+operation limiter, creating it on first
// use with n events per second and a burst of n.
func (s *Core) UseLimiter(key, operation string, n int) *rate.Limiter {
	s.limitersLock.Lock()
	defer s.limitersLock.Unlock()

	id := operation + ":" + key
	limiter, exist := s.limiters[id]
	if !exist {
		limiter = rate.NewLimiter(rate.Limit(n), n)
		s.limiters[id] = limiter
	}
	return limiter
}
