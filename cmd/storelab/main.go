package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/wasm-vm/store"
)

func main() {
	var (
		script      = flag.String("e", "", "Commands to run, separated by ';'")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		debug       = flag.Bool("debug", false, "Enable debug logging of store operations")
	)
	flag.Parse()

	if *debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		store.SetLogger(logger)
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *script != "" {
		if err := runScript(*script); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runStdin(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runScript(script string) error {
	s := newSession()
	for _, line := range strings.Split(script, ";") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out, err := s.exec(line)
		if err != nil {
			return fmt.Errorf("%s: %w", line, err)
		}
		if out != "" {
			fmt.Println(out)
		}
	}
	fmt.Println(s.state())
	return nil
}

func runStdin() error {
	s := newSession()
	fmt.Println("storelab (try 'help'; ctrl-d to exit)")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		out, err := s.exec(scanner.Text())
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		if out != "" {
			fmt.Println(out)
		}
	}
	return scanner.Err()
}
