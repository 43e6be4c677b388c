package testctl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
)

// Cmd describes one child process run by the harness.
type Cmd struct {
	Path   string
	Args   []string
	Env    map[string]string // appended to the inherited environment
	Dir    string
	Stream bool // prefix each output line with the stream name
}

func (c Cmd) build(ctx context.Context) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	if c.Dir != "" {
		cmd.Dir = c.Dir
	}
	cmd.Env = os.Environ()
	for k, v := range c.Env {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
	}
	return cmd
}

// RunCmd runs c to completion, forwarding its output to ours.
func RunCmd(ctx context.Context, c Cmd) error {
	return runTo(ctx, c, os.Stdout, os.Stderr)
}

func runTo(ctx context.Context, c Cmd, stdout, stderr io.Writer) error {
	cmd := c.build(ctx)
	debug("exec %s %v", c.Path, c.Args)
	if !c.Stream {
		cmd.Stdout = stdout
		cmd.Stderr = stderr
		return cmd.Run()
	}
	outPipe, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	errPipe, err := cmd.StderrPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); stream("OUT", outPipe, stdout) }()
	go func() { defer wg.Done(); stream("ERR", errPipe, stderr) }()
	// pipes must be drained before Wait closes them
	wg.Wait()
	return cmd.Wait()
}

// StartCmd starts c in the background and tracks it for KillAll.
func StartCmd(ctx context.Context, c Cmd) (*exec.Cmd, error) {
	cmd := c.build(ctx)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	TrackProcess(cmd)
	return cmd, nil
}

func stream(prefix string, r io.Reader, w io.Writer) {
	s := bufio.NewScanner(r)
	for s.Scan() {
		fmt.Fprintf(w, "[%s] %s\n", prefix, s.Text())
	}
}
