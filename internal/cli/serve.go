package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/daireno/internal/server"
	"github.com/matzehuels/daireno/pkg/config"
	"github.com/matzehuels/daireno/pkg/render/sink"
	"github.com/matzehuels/daireno/pkg/session"
)

// serveOpts holds the command-line flags for the serve command. Empty values
// keep the config file's setting.
type serveOpts struct {
	setupFlags
	addr           string
	redisAddr      string
	allowedOrigins string
	sessionTTL     string
}

// serveCommand creates the serve command for the browser editor.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the section editor in the browser",
		Long: `Serve the section editor in the browser.

Sessions are kept in memory unless a Redis address is configured, in which
case they survive restarts and can be shared between instances.`,
		Example: `  daireno serve
  daireno serve --addr :8080 --redis-addr localhost:6379 --session-ttl 2h`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config, 127.0.0.1:8080)")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", "", "Redis address for sessions (default: in memory)")
	cmd.Flags().StringVar(&opts.allowedOrigins, "allowed-origins", "", "comma-separated CORS origins")
	cmd.Flags().StringVar(&opts.sessionTTL, "session-ttl", "", "session lifetime, e.g. 30m or 24h")

	return cmd
}

// serverConfig applies flag overrides to the config's server section.
func (o *serveOpts) serverConfig(cfg config.Config) (config.Config, error) {
	if o.addr != "" {
		cfg.Server.Addr = o.addr
	}
	if o.redisAddr != "" {
		cfg.Server.RedisAddr = o.redisAddr
	}
	if o.allowedOrigins != "" {
		var origins []string
		for _, s := range strings.Split(o.allowedOrigins, ",") {
			if s = strings.TrimSpace(s); s != "" {
				origins = append(origins, s)
			}
		}
		cfg.Server.AllowedOrigins = origins
	}
	if o.sessionTTL != "" {
		cfg.Server.SessionTTL = o.sessionTTL
	}
	if o.width > 0 {
		cfg.Diagram.Width = o.width
	}
	cfg.Defaults = o.setup(cfg)
	return cfg, cfg.Validate()
}

// openStore picks the session backend.
func openStore(ctx context.Context, cfg config.Server) (session.Store, string, error) {
	if cfg.RedisAddr == "" {
		return session.NewMemoryStore(), "memory", nil
	}
	store, err := session.NewRedisStore(ctx, session.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,

		ConnectAttempts: 3,
	})
	if err != nil {
		return nil, "", err
	}
	return store, "redis " + cfg.RedisAddr, nil
}

func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	cfg, err := opts.serverConfig(c.cfg)
	if err != nil {
		return err
	}

	store, storeName, err := openStore(ctx, cfg.Server)
	if err != nil {
		return err
	}

	png := []sink.PNGOption{sink.WithScale(cfg.Output.PNGScale)}
	if cfg.Output.FontPath != "" {
		png = append(png, sink.WithFontFace(cfg.Output.FontPath))
	}

	srv := server.New(server.Options{
		Store:          store,
		Logger:         c.Logger,
		Defaults:       cfg.Defaults,
		Width:          cfg.Diagram.Width,
		FloorHeight:    cfg.Diagram.FloorHeight,
		Shadow:         cfg.Diagram.Shadow,
		SessionTTL:     cfg.Server.TTL(),
		AllowedOrigins: cfg.Server.AllowedOrigins,
		PNG:            png,
	})

	printKeyValue("Address", "http://"+cfg.Server.Addr)
	printKeyValue("Sessions", storeName)
	printKeyValue("Session TTL", cfg.Server.TTL().String())
	printNextStep("Render from the terminal instead", "daireno render -f svg")

	return srv.ListenAndServe(ctx, cfg.Server.Addr)
}
