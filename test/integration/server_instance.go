package integration

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/exec"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/tripleswitch/complianceos/pkg/app"
	"github.com/tripleswitch/complianceos/pkg/audit"
	"github.com/tripleswitch/complianceos/pkg/config"
	"github.com/tripleswitch/complianceos/pkg/server"
)

// portCounter is used to allocate unique ports for binary servers
var portCounter int32 = 19000

const (
	analysisTick  = 10 * time.Millisecond
	analysisDelay = 20 * time.Millisecond
)

// ServerInstance represents a running server for a single scenario
type ServerInstance struct {
	Server        *server.Server
	ServerURL     string
	serverProcess *exec.Cmd
	cancel        context.CancelFunc
}

// StartServer starts a server over the test database. This supports both
// inline and binary modes based on how the test suite was started.
func StartServer(tc *TestContext) (*ServerInstance, error) {
	if tc.InlineMode {
		return startInlineServerInstance(tc)
	}
	return startBinaryServerInstance(tc.BinaryPath, tc.DatabaseURL)
}

func startInlineServerInstance(tc *TestContext) (*ServerInstance, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("failed to create listener: %w", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port

	stores := app.GormStores(tc.DB)
	s, err := app.New(app.Options{
		Config: &config.ComplianceConfig{
			BindAddress:             "127.0.0.1",
			Port:                    port,
			LogLevel:                "info",
			LogFormat:               "json",
			NotificationTTL:         time.Minute,
			AnalysisTickInterval:    analysisTick,
			AnalysisCompletionDelay: analysisDelay,
		},
		Stores:   &stores,
		AuditLog: audit.NewRing(100),
	})
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	instance := &ServerInstance{
		Server:    s,
		ServerURL: fmt.Sprintf("http://127.0.0.1:%d", port),
	}

	go func() {
		_ = s.StartWithListener(listener)
	}()

	if err := waitForServer(instance.ServerURL, 10*time.Second); err != nil {
		instance.Stop()
		return nil, fmt.Errorf("server failed to become ready: %w", err)
	}
	return instance, nil
}

func startBinaryServerInstance(binaryPath, dbURL string) (*ServerInstance, error) {
	port := int(atomic.AddInt32(&portCounter, 1))
	portStr := strconv.Itoa(port)

	ctx, cancel := context.WithCancel(context.Background())

	// Migrations already ran during test setup
	cmd := exec.CommandContext(ctx, binaryPath, "server", "--no-migrate", "-b", "127.0.0.1", "-p", portStr)
	cmd.Env = append(os.Environ(),
		"COMPLY_DATABASE_URL="+dbURL,
		"COMPLY_NOTIFICATION_TTL=1m",
		"COMPLY_ANALYSIS_TICK_INTERVAL="+analysisTick.String(),
		"COMPLY_ANALYSIS_COMPLETION_DELAY="+analysisDelay.String(),
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to start binary: %w", err)
	}

	instance := &ServerInstance{
		ServerURL:     fmt.Sprintf("http://127.0.0.1:%d", port),
		serverProcess: cmd,
		cancel:        cancel,
	}

	if err := waitForServer(instance.ServerURL, 30*time.Second); err != nil {
		instance.Stop()
		return nil, fmt.Errorf("server failed to become ready: %w", err)
	}
	return instance, nil
}

// Stop shuts down the server instance
func (si *ServerInstance) Stop() {
	if si.Server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = si.Server.Shutdown(ctx)
	}
	if si.cancel != nil {
		si.cancel()
	}
	if si.serverProcess != nil && si.serverProcess.Process != nil {
		_ = si.serverProcess.Process.Kill()
		_ = si.serverProcess.Wait()
	}
}
