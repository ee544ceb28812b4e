package main

import (
	"os"
	"time"

	"github.com/warp/timesheet/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, time.Now))
}
