package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/tetratelabs/wazero/api"
	"golang.org/x/term"

	"github.com/wippyai/fnptr/abi"
	"github.com/wippyai/fnptr/sig"
	"github.com/wippyai/fnptr/wasmabi"
)

func main() {
	var (
		sigStr       = flag.String("sig", "", "Signature to classify, e.g. 'unsafe extern \"c\" func(int32) int32'")
		toggleSafety = flag.Bool("toggle-safety", false, "Apply the safety toggle to the signature")
		convName     = flag.String("conv", "", "Re-tag the signature with the named convention")
		convKey      = flag.Int("key", -1, "Re-tag the signature with the convention under this registry key")
		showWasm     = flag.Bool("wasm", false, "Show the flat wasm host signature")
		list         = flag.Bool("list", false, "List the convention registry and exit")
		interactive  = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *list {
		listRegistry()
		return
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *sigStr == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -sig '<signature>' [-toggle-safety] [-conv name | -key n] [-wasm]")
		fmt.Fprintln(os.Stderr, "       inspect -list")
		fmt.Fprintln(os.Stderr, "       inspect -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*sigStr, *toggleSafety, *convName, *convKey, *showWasm); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func listRegistry() {
	fmt.Printf("%-4s %-12s %-8s %-6s %s\n", "key", "name", "foreign", "alias", "concrete")
	for _, c := range abi.All() {
		fmt.Printf("%-4d %-12s %-8v %-6v %s\n",
			c.Key(), c, c.Foreign(), c.Alias(), c.Concrete())
	}
}

func run(input string, toggleSafety bool, convName string, convKey int, showWasm bool) error {
	s, err := sig.Parse(input)
	if err != nil {
		return err
	}

	fmt.Printf("Signature: %s\n", s)
	classify(s)

	transformed := s
	changed := false

	if toggleSafety {
		transformed = transformed.ToggleSafety()
		changed = true
	}
	if convName != "" {
		c, err := abi.Parse(convName)
		if err != nil {
			return err
		}
		transformed, err = transformed.WithConvention(c)
		if err != nil {
			return err
		}
		changed = true
	}
	if convKey >= 0 {
		if convKey > 255 {
			return fmt.Errorf("key %d out of range", convKey)
		}
		transformed, err = transformed.WithConventionKey(uint8(convKey))
		if err != nil {
			return err
		}
		changed = true
	}

	if changed {
		fmt.Printf("\nTransformed: %s\n", transformed)
		classify(transformed)
	}

	if showWasm {
		params, results, err := wasmabi.Lower(transformed)
		if err != nil {
			return err
		}
		fmt.Printf("\nWasm host signature:\n")
		fmt.Printf("  params:  %s\n", valueTypes(params))
		fmt.Printf("  results: %s\n", valueTypes(results))
	}

	return nil
}

func classify(s sig.Signature) {
	fmt.Printf("  arity:      %d\n", s.Arity())
	fmt.Printf("  safe:       %v\n", s.Safe)
	fmt.Printf("  foreign:    %v\n", s.Foreign())
	fmt.Printf("  convention: %s (key %d)\n", s.Convention, s.Convention.Key())
	if s.Convention.Alias() {
		fmt.Printf("  concrete:   %s\n", s.Convention.Concrete())
	}
}

func valueTypes(ts []api.ValueType) string {
	if len(ts) == 0 {
		return "(none)"
	}
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = api.ValueTypeName(t)
	}
	return strings.Join(names, ", ")
}
