// Command testctl runs the intentd test suites and a local smoke test.
package main

import "intentd/internal/testctl"

func main() { testctl.Main() }
