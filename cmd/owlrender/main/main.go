package main

import (
	"fmt"
	"os"

	"github.com/yinjianfei/owlapi/cmd/owlrender"
	"github.com/yinjianfei/owlapi/pkg/style"
)

func main() {
	rootCmd := owlrender.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
