// Package api provides the HTTP API for the application
package api

import (
	"context"
	"time"

	"chirp/internal/adapters/identity"
	"chirp/internal/platform/config"
	"chirp/internal/platform/logger"
	phttp "chirp/internal/platform/net/http"
	"chirp/internal/platform/store"

	"chirp/internal/modkit"
	"chirp/internal/modkit/httpkit"
	"chirp/internal/modkit/module"

	feeddom "chirp/internal/services/api/feed/domain"
	feedmod "chirp/internal/services/api/feed/module"
	metamod "chirp/internal/services/api/meta/module"
	postsmod "chirp/internal/services/api/posts/module"
	ratedom "chirp/internal/services/ratelimit/domain"
	ratesvc "chirp/internal/services/ratelimit/service"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
		RD:  opt.Store.RD,
	}

	// outbound identity provider client, shared by auth and the feed join
	idc := identity.NewClient(identityOptions(opt.Config))

	// the limiter counts in redis; decisions mirror into clickhouse when present
	var sink ratedom.AnalyticsPort
	if opt.Store.CH != nil {
		sink = ratesvc.NewCHSink(opt.Store.CH)
	}
	limiter := ratesvc.New(opt.Store.RD, limiterConfig(opt.Config), sink)

	feed := feedmod.New(deps, modkit.WithPorts(feedmod.Ports{
		Identity: identityDirectory{c: idc},
	}))

	// posts are bearer-protected, tokens are verified against the provider
	auth := httpkit.NewPortFunc(func(ctx context.Context, token string) (string, string, error) {
		uid, err := idc.VerifyToken(ctx, token)
		return uid, "", err
	})
	posts := postsmod.New(deps, modkit.WithPorts(postsmod.Ports{
		Limiter: limiter,
		Auth:    auth,
	}))

	mods := []module.Module{
		metamod.New(deps),
		feed,
		posts,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		phttp.MountSwagger(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}

// identityDirectory adapts the identity client to the feed port
type identityDirectory struct{ c *identity.Client }

// UsersByIDs implements feed domain.IdentityPort
func (d identityDirectory) UsersByIDs(ctx context.Context, ids []string) ([]feeddom.AuthorProfile, error) {
	profiles, err := d.c.UsersByIDs(ctx, ids, len(ids))
	if err != nil {
		return nil, err
	}
	out := make([]feeddom.AuthorProfile, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, feeddom.AuthorProfile{
			ID:       p.ID,
			Username: p.Username,
			ImageURL: p.ImageURL,
		})
	}
	return out, nil
}

func identityOptions(cfg config.Conf) identity.Options {
	ic := cfg.Prefix("IDENTITY_")
	return identity.Options{
		BaseURL:    ic.MustString("BASE_URL"),
		SecretKey:  ic.MustString("SECRET_KEY"),
		UserAgent:  ic.MayString("UA", "chirp-api"),
		Timeout:    ic.MayDuration("TIMEOUT", 10*time.Second),
		MaxRetries: ic.MayInt("MAX_RETRIES", 3),
		RetryBase:  ic.MayDuration("RETRY_BASE", 250*time.Millisecond),
	}
}

func limiterConfig(cfg config.Conf) ratesvc.Config {
	rc := cfg.Prefix("RATELIMIT_")
	return ratesvc.Config{
		Limit:  rc.MayInt("LIMIT", 3),
		Window: rc.MayDuration("WINDOW", time.Minute),
		Prefix: rc.MayString("PREFIX", "ratelimit"),
	}
}
