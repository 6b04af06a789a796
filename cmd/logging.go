package cmd

import (
	"github.com/idovelemon/ProjectVPT/log"
	"github.com/urfave/cli"
)

var logger = log.New("vpt")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
