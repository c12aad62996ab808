package main

import (
	"fmt"
	"os"

	"github.com/ctwhome/notidian-file-explorer-sub000/internal/state"
	"github.com/ctwhome/notidian-file-explorer-sub000/pkg/cmd/root"
)

func main() {
	// The workspace flag has to be known before cobra parses anything,
	// because the whole command tree is built around the resolved state.
	s, err := state.NewState(workspaceFromArgs(os.Args[1:]))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	rootCmd, err := root.NewCmdRoot(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build commands: %v\n", err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func workspaceFromArgs(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--workspace" || arg == "-w":
			if i+1 < len(args) {
				return args[i+1]
			}
		case len(arg) > len("--workspace=") && arg[:len("--workspace=")] == "--workspace=":
			return arg[len("--workspace="):]
		}
	}
	return ""
}
