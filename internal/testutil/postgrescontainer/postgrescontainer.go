// Package postgrescontainer provides a throwaway PostgreSQL for integration
// tests. Set POSTGRES_TEST_DSN to reuse an existing server instead of docker.
package postgrescontainer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	_ "github.com/lib/pq"
)

const (
	dsnEnv        = "POSTGRES_TEST_DSN"
	dockerfile    = "Dockerfile.postgres.test"
	imageName     = "go-httpstatus-postgres-test"
	containerName = "go-httpstatus-postgres-test"
	hostPort      = "55432"
	user          = "httpstatus"
	password      = "secret"
	dbName        = "httpstatus_test"
	readyTimeout  = 15 * time.Second
)

// ErrUnavailable is returned by Setup when neither POSTGRES_TEST_DSN nor a
// docker executable is available.
var ErrUnavailable = errors.New("postgrescontainer: no database available")

var (
	mu       sync.Mutex
	started  bool
	external bool
	setupErr error
)

// DSN returns a lib/pq connection string for the test database.
func DSN() string {
	if dsn := os.Getenv(dsnEnv); dsn != "" {
		return dsn
	}
	return fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", user, password, hostPort, dbName)
}

// Setup makes the test database reachable, building and starting the
// container when no external DSN is configured. It is safe to call repeatedly.
func Setup() error {
	mu.Lock()
	defer mu.Unlock()
	if started || setupErr != nil {
		return setupErr
	}

	if os.Getenv(dsnEnv) != "" {
		external = true
	} else {
		if _, err := exec.LookPath("docker"); err != nil {
			setupErr = fmt.Errorf("%w: %v", ErrUnavailable, err)
			return setupErr
		}
		_ = docker("stop", containerName)
		root := repoRoot()
		if err := docker("build", "-f", filepath.Join(root, dockerfile), "-t", imageName, root); err != nil {
			setupErr = err
			return setupErr
		}
		if err := docker("run", "-d", "--rm", "--name", containerName, "-p", hostPort+":5432", imageName); err != nil {
			setupErr = err
			return setupErr
		}
	}

	if err := waitReady(DSN(), readyTimeout); err != nil {
		setupErr = err
		return setupErr
	}
	started = true
	return nil
}

// Teardown stops the container started by Setup. External databases are left alone.
func Teardown() error {
	mu.Lock()
	defer mu.Unlock()
	if !started || external {
		return nil
	}
	started = false
	return docker("stop", containerName)
}

func docker(args ...string) error {
	cmd := exec.Command("docker", args...)
	cmd.Dir = repoRoot()
	output, err := cmd.CombinedOutput()
	if err != nil {
		if args[0] == "stop" && strings.Contains(string(output), "No such container") {
			return nil
		}
		return fmt.Errorf("docker %s failed: %w: %s", args[0], err, output)
	}
	return nil
}

func waitReady(dsn string, timeout time.Duration) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	deadline := time.Now().Add(timeout)
	for {
		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		err := db.PingContext(ctx)
		cancel()
		if err == nil {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("postgrescontainer: not ready after %s: %w", timeout, err)
		}
		time.Sleep(200 * time.Millisecond)
	}
}

func repoRoot() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", "..", ".."))
}
