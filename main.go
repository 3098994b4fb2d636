// Package main is the entry point for the unicon application.
package main

import (
	"github.com/laserpy/unicon/cmd"
	"github.com/laserpy/unicon/config"
	"github.com/laserpy/unicon/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
