package testctl

import (
	"context"
	"fmt"
)

// Suite is one named set of go test invocations.
type Suite struct {
	Name string
	Args []string
	Env  map[string]string
}

// suites lists what `testctl test <name>` runs.
func suites(verbose bool) map[string]Suite {
	v := func(args ...string) []string {
		if verbose {
			return append(args, "-v")
		}
		return args
	}
	return map[string]Suite{
		"unit":     {Name: "unit", Args: v("test", "-short", "./...")},
		"race":     {Name: "race", Args: v("test", "-short", "-race", "./internal/...")},
		"blackbox": {Name: "blackbox", Args: v("test", "-count=1", "./tests/blackbox/...")},
		"live": {
			Name: "live",
			Args: v("test", "-count=1", "-run", "TestLive", "./internal/e2e/..."),
			Env:  map[string]string{"INTENTD_E2E_LIVE": "1"},
		},
	}
}

// suiteOrder is the sequence `testctl test all` follows; live is opt-in.
var suiteOrder = []string{"unit", "race", "blackbox"}

func runSuite(ctx context.Context, name string, verbose bool) error {
	s, ok := suites(verbose)[name]
	if !ok {
		return fmt.Errorf("unknown suite %q", name)
	}
	info("==== Run %s tests ====", s.Name)
	if err := RunCmd(ctx, Cmd{Path: "go", Args: s.Args, Env: s.Env, Stream: true}); err != nil {
		return fmt.Errorf("%s tests: %w", s.Name, err)
	}
	return nil
}

func runAll(ctx context.Context, verbose bool) error {
	for _, name := range suiteOrder {
		if err := runSuite(ctx, name, verbose); err != nil {
			return err
		}
	}
	return nil
}
