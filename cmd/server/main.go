// loot-grid-server serves the inventory over SSH. Every connection gets its
// own inventory; nothing is shared between sessions except the loot list
// and the metrics. Build:
//
//	go build -o loot-grid-server ./cmd/server
//
// Usage:
//
//	./loot-grid-server [--port 2222] [--key server_host_key] [--config loot.yaml] [--metrics :9090]
//
// Connect with:
//
//	ssh -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/xid"
	xssh "golang.org/x/crypto/ssh"

	"loot-grid/internal/catalog"
	"loot-grid/internal/config"
	"loot-grid/internal/metrics"
	internalssh "loot-grid/internal/ssh"
	"loot-grid/internal/ui"
)

const (
	defaultTerm   = "xterm-256color"
	maxNameLength = 16
)

// allowedTerms lists the TERM values passed through to terminfo lookup.
// Anything else falls back to defaultTerm.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
}

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	configPath := flag.String("config", "", "Path to a YAML config file (built-in loot and limits if empty)")
	metricsAddr := flag.String("metrics", "", "Serve Prometheus metrics on this address (disabled if empty)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			logger.Error("load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
	}
	cat, err := cfg.Catalog()
	if err != nil {
		logger.Error("build catalog", "error", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	srv := &server{
		cfg:     cfg,
		catalog: cat,
		metrics: metrics.New(reg),
		logger:  logger,
	}

	if *metricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			logger.Info("metrics listening", "addr", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server", "error", err)
			}
		}()
	}

	signer, err := loadOrCreateHostKey(*keyFile, logger)
	if err != nil {
		logger.Error("host key", "error", err)
		os.Exit(1)
	}

	sshSrv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: srv.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: every user gets a fresh, throwaway inventory.
		HostSigners: []gossh.Signer{signer},
	}

	logger.Info("SSH server listening", "port", *port)
	if err := sshSrv.ListenAndServe(); err != nil {
		logger.Error("SSH server", "error", err)
		os.Exit(1)
	}
}

// server holds what every session shares.
type server struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// handleSession is the gliderlabs SSH handler for one connection. It blocks
// until the user quits so the SSH session stays open.
func (s *server) handleSession(sess gossh.Session) {
	logger := s.logger.With(
		"session", xid.New().String(),
		"user", sanitizeName(sess.User()),
		"remote", sess.RemoteAddr().String(),
	)

	pty, winCh, hasPTY := sess.Pty()
	if !hasPTY {
		fmt.Fprintln(sess, "The inventory needs a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	term := pty.Term
	if term == "" {
		term = termFromEnv(sess.Environ())
	}
	if !allowedTerms[term] {
		logger.Debug("unsupported TERM, using default", "term", term)
		term = defaultTerm
	}

	// TERM must be set in the process environment before NewTerminfoScreenFromTty.
	tty := internalssh.NewSessionTty(sess, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(sess, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(sess, "Screen init failed: %v\n", err)
		return
	}

	opts := s.cfg.Options()
	opts.Logger = logger
	opts.Listener = s.metrics.Listener()
	session, err := ui.New(screen, s.catalog, opts)
	if err != nil {
		screen.Fini()
		logger.Error("session setup", "error", err)
		return
	}

	s.metrics.SessionStarted()
	defer s.metrics.SessionEnded()
	logger.Info("session started", "term", term)
	session.Run()
	logger.Info("session ended")
}

// termMu protects os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

func termFromEnv(environ []string) string {
	for _, env := range environ {
		if v, ok := strings.CutPrefix(env, "TERM="); ok {
			return v
		}
	}
	return ""
}

// sanitizeName strips non-printable runes from a user name and caps it at
// maxNameLength runes so it is safe to log.
func sanitizeName(name string) string {
	var sb strings.Builder
	n := 0
	for _, r := range name {
		if !unicode.IsPrint(r) {
			continue
		}
		if n == maxNameLength {
			break
		}
		sb.WriteRune(r)
		n++
	}
	return sb.String()
}

// ─── host key ───────────────────────────────────────────────────────────────

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	logger.Info("generating ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "loot-grid server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
			logger.Warn("persist host key", "path", path, "error", err)
		}
	}
	return signer, nil
}
