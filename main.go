package main

import (
	"fmt"
	"os"

	"gmartin/finboard/cmd/batch"
	"gmartin/finboard/cmd/categorize"
	"gmartin/finboard/cmd/convert"
	"gmartin/finboard/cmd/report"
	"gmartin/finboard/cmd/root"
	"gmartin/finboard/cmd/serve"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(serve.Cmd)
	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
