package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/harun/temptmp/pkg/temptmp"
	"github.com/spf13/cobra"
)

const (
	envTempDir = "TEMPTMP_DIR"
	envSession = "TEMPTMP_SESSION"
)

var (
	execFlags       tempFlags
	execSession     string
	execKeep        bool
	execMetricsAddr string
)

var execCmd = &cobra.Command{
	Use:   "exec [flags] -- command [args...]",
	Short: "Run a command inside a tracked temp directory",
	Long: `Create a tracked session and a temp directory, run the command with
TEMPTMP_DIR and TEMPTMP_SESSION set, then remove everything the session
tracked. SIGINT and SIGTERM are forwarded to the command.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExec,
}

func init() {
	execFlags.register(execCmd, true)
	execCmd.Flags().SetInterspersed(false)
	execCmd.Flags().StringVar(&execSession, "session", "", "session ID (default from config or a random UUID)")
	execCmd.Flags().BoolVar(&execKeep, "keep", false, "keep the temp directory after the command exits")
	execCmd.Flags().StringVar(&execMetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while the command runs")
	rootCmd.AddCommand(execCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	opts, err := execFlags.options(temptmp.KindDir)
	if err != nil {
		return err
	}

	id := execSession
	if id == "" {
		id = appConfig.Session.ID
	}
	if id == "" {
		id = uuid.NewString()
	}

	s := registry.CreateSession(id, appConfig.Session.Track)
	if execKeep {
		s.PauseTracking()
		appLogger.Warn().Str("session_id", id).Msg("Tracking paused, temp directory will be kept")
	}

	dir, err := s.Mkdir(opts)
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}

	if execMetricsAddr != "" {
		stop, err := serveMetrics(execMetricsAddr)
		if err != nil {
			s.Cleanup()
			return err
		}
		defer stop()
	}

	appLogger.Debug().
		Str("session_id", id).
		Str("dir", dir).
		Strs("command", args).
		Msg("Running command")

	runErr := runChild(cmd, args, dir, id)

	removed := s.Cleanup()
	appLogger.Info().
		Str("session_id", id).
		Int("removed", len(removed)).
		Msg("Session cleaned up")

	if !s.Tracking() {
		fmt.Fprintf(cmd.ErrOrStderr(), "kept %s\n", dir)
	}

	return runErr
}

func runChild(cmd *cobra.Command, args []string, dir, id string) error {
	child := exec.Command(args[0], args[1:]...)
	child.Stdin = cmd.InOrStdin()
	child.Stdout = cmd.OutOrStdout()
	child.Stderr = cmd.ErrOrStderr()
	child.Env = append(os.Environ(), envTempDir+"="+dir, envSession+"="+id)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	if err := child.Start(); err != nil {
		return fmt.Errorf("failed to start command: %w", err)
	}

	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			select {
			case sig := <-sigChan:
				appLogger.Debug().Str("signal", sig.String()).Msg("Forwarding signal")
				_ = child.Process.Signal(sig)
			case <-done:
				return
			}
		}
	}()

	return child.Wait()
}

func serveMetrics(addr string) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", appMetrics.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error().Err(err).Msg("Metrics server failed")
		}
	}()

	appLogger.Info().Str("addr", ln.Addr().String()).Msg("Serving metrics")

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
