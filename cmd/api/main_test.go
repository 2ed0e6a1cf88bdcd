package main

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"likeat/internal/config"
)

func testConfig(port int) *config.Config {
	return &config.Config{
		Port:       port,
		DBDriver:   config.DriverSQLite,
		SQLitePath: ":memory:",
		JWTSecret:  "test-secret",
	}
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestRun_ListenFailureReturnsError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	busy, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer busy.Close()
	port := busy.Addr().(*net.TCPAddr).Port

	done := make(chan error, 1)
	go func() { done <- run(context.Background(), testConfig(port), quietLogger()) }()

	select {
	case err := <-done:
		if err == nil {
			t.Fatal("expected an error for a port already in use")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after the listener failed")
	}
}

func TestRun_StopsWhenContextIsDone(t *testing.T) {
	gin.SetMode(gin.TestMode)

	free, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := free.Addr().(*net.TCPAddr).Port
	free.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx, testConfig(port), quietLogger()) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}
