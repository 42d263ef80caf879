package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/vseledkin/enorm/check"
	"github.com/vseledkin/enorm/norm"
)

func main() {
	log.SetOutput(os.Stderr)

	root := &cobra.Command{
		Use:   "enorm",
		Short: "overflow safe euclidean norm tools",
	}
	root.AddCommand(norm.NormCommand)
	root.AddCommand(check.CheckCommand)

	if e := root.Execute(); e != nil {
		log.Fatal(e)
	}
}
