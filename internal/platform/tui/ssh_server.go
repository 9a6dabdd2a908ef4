package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/carlot/internal/config"
	"github.com/vovakirdan/carlot/internal/core"
	"github.com/vovakirdan/carlot/internal/prefs"
	"github.com/vovakirdan/carlot/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the host key file; wish generates it when missing.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	Site  config.SiteConfig
	Dodge config.DodgeConfig

	// TickRate overrides the game's tick interval when positive.
	TickRate int

	// Store is shared by all sessions. Nil serves the site without scores,
	// submissions or remembered themes.
	Store *storage.Store

	Logger *log.Logger
}

// SSHServer serves the site over SSH, one session per connection.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	logger   *log.Logger
	sessions atomic.Int64
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if cfg.HostKeyPath == "" {
		return nil, errors.New("ssh: host key path is required")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.HostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("ssh: cannot create host key directory: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	srv := &SSHServer{config: cfg, logger: logger}

	// Middlewares run last to first: the session log wraps the PTY check,
	// which wraps the site.
	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("ssh: cannot create server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// sessionOptions builds the site options for one SSH user. Each user gets
// their own theme preference and renderer; the database is shared.
func (s *SSHServer) sessionOptions(user string, width, height int) Options {
	opts := Options{
		Site:  s.config.Site,
		Dodge: s.config.Dodge,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: s.config.TickRate,
			Seed:     time.Now().UnixNano(),
		},
		Player: user,
		Logger: s.logger.WithPrefix(user),
	}
	if s.config.Store != nil {
		opts.Store = s.config.Store
		opts.Prefs = prefs.WithPrefix(s.config.Store.Preferences(), user)
	}
	return opts
}

// teaHandler creates a site session for each SSH connection.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sshSession.Pty()
	opts := s.sessionOptions(sshSession.User(), pty.Window.Width, pty.Window.Height)

	// The client's terminal answers the background query, not ours.
	renderer := bubbletea.MakeRenderer(sshSession)
	opts.Renderer = renderer
	opts.Dark = renderer.HasDarkBackground()

	model, err := NewSiteModel(opts)
	if err != nil {
		s.logger.Error("cannot start session", "user", sshSession.User(), "error", err)
		wish.Fatalln(sshSession, "carlot: "+err.Error())
		return nil, nil
	}

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
}

// loggingMiddleware logs each session with the number of open sessions.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		started := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"open", s.sessions.Add(1),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"duration", time.Since(started).Round(time.Second),
			"open", s.sessions.Add(-1),
		)
	}
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}
