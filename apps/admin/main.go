package main

import (
	"log"
	"os"

	"github.com/trezcool/eduplatform/core"
	"github.com/trezcool/eduplatform/core/user"
	logsvc "github.com/trezcool/eduplatform/services/logger"
	inmemreg "github.com/trezcool/eduplatform/storage/registry/inmem"
)

func main() {
	conf := core.NewConfig()

	std := log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	var logger core.Logger
	if conf.Debug {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}

	reg := inmemreg.NewRegistry()
	cli := &commandLine{
		svc: user.NewService(reg, logger),
		reg: reg,
	}

	if err := cli.run(os.Args); err != nil {
		if err == errHelp {
			os.Exit(2)
		}
		if verr := core.AsValidationError(err); verr != nil {
			for _, fld := range verr.Fields {
				std.Printf("%s: %s", fld.Field, fld.Error)
			}
		}
		std.Fatalf("%+v", err)
	}
}
