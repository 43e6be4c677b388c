package testctl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// SmokeConfig drives one build-start-classify round against a real binary.
type SmokeConfig struct {
	Port         int
	ConfigPath   string
	CacheDir     string
	Offline      bool
	Text         string
	ReadyTimeout time.Duration
}

// smokeResult is what one POST /intent returned.
type smokeResult struct {
	Status int
	Body   json.RawMessage
}

func runSmoke(ctx context.Context, cfg SmokeConfig) error {
	info("==== Smoke test intentd ====")
	tmp, err := os.MkdirTemp("", "intentd-smoke-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmp)
	bin := filepath.Join(tmp, "intentd")
	if err := RunCmd(ctx, Cmd{Path: "go", Args: []string{"build", "-o", bin, "./cmd/intentd"}}); err != nil {
		return fmt.Errorf("build intentd: %w", err)
	}

	port, err := preferOrFree(cfg.Port)
	if err != nil {
		return err
	}
	args := []string{"serve", "--addr", fmt.Sprintf("127.0.0.1:%d", port), "--config", cfg.ConfigPath}
	if cfg.CacheDir != "" {
		args = append(args, "--cache-dir", cfg.CacheDir)
	}
	if cfg.Offline {
		args = append(args, "--offline")
	}
	srvCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if _, err := StartCmd(srvCtx, Cmd{Path: bin, Args: args}); err != nil {
		return fmt.Errorf("start intentd: %w", err)
	}
	defer killProcesses()

	base := fmt.Sprintf("http://127.0.0.1:%d", port)
	waitCtx, waitCancel := context.WithTimeout(ctx, 30*time.Second)
	defer waitCancel()
	if err := waitHTTP(waitCtx, base+"/healthz", http.StatusOK, 250*time.Millisecond); err != nil {
		return err
	}
	info("[smoke] %s is up", base)

	readyCtx, readyCancel := context.WithTimeout(ctx, cfg.ReadyTimeout)
	defer readyCancel()
	if err := waitHTTP(readyCtx, base+"/ready", http.StatusOK, time.Second); err != nil {
		return fmt.Errorf("model never became ready: %w", err)
	}

	res, err := postIntent(ctx, base, cfg.Text)
	if err != nil {
		return err
	}
	info("[smoke] POST /intent -> %d %s", res.Status, string(res.Body))
	if res.Status != http.StatusOK {
		return fmt.Errorf("intent returned %d", res.Status)
	}
	return nil
}

func postIntent(ctx context.Context, base, text string) (smokeResult, error) {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return smokeResult{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/intent", bytes.NewReader(payload))
	if err != nil {
		return smokeResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return smokeResult{}, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return smokeResult{}, err
	}
	return smokeResult{Status: resp.StatusCode, Body: bytes.TrimSpace(body)}, nil
}
