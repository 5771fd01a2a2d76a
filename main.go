package main

import (
	"github.com/appecho/alpha/cmd"
	"github.com/appecho/alpha/config"
	"github.com/appecho/alpha/download"
	"github.com/appecho/alpha/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go download.CollectGarbage()

	cmd.Execute()
}
