// Command lorentzinfo inspects Lorentz vectors read from a YAML file.
//
// Usage:
//
//	lorentzinfo [--level debug] <command> [flags]
//
// Examples:
//
//	lorentzinfo ops
//	lorentzinfo describe --file event.yaml
//	lorentzinfo pair --file event.yaml --i 0 --j 1
//	lorentzinfo boost --file event.yaml --beta 0,0,0.5 --to rhophi-eta-tau
//
// The input lists vectors by name, coordinate system and components:
//
//	vectors:
//	  - name: muon1
//	    system: rhophi-eta-tau
//	    coords: [25.0, 0.3, 1.2, 0.105]
package main

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func main() {
	app := buildApp()
	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("lorentzinfo failed")
	}
}

func buildApp() *cli.App {
	app := cli.NewApp()

	app.Name = "lorentzinfo"
	app.Usage = "inspect Lorentz vectors and the kinematics kernel registry"
	app.Version = "0.1.0"

	app.Commands = []cli.Command{
		opsCommand(),
		describeCommand(),
		pairCommand(),
		boostCommand(),
	}

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "level",
			Value: "info",
			Usage: "lowest visible log level: 'panic|fatal|error|warn|info|debug|trace'",
		},
	}

	app.Before = func(c *cli.Context) error {
		return errors.WithStack(loggingSetup(c.String("level")))
	}

	return app
}

func loggingSetup(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "log level %q", level)
	}
	log.SetLevel(lvl)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	return nil
}
