// Command apiresource generates and checks the formats that map API
// dictionaries onto Go models.
//
//	apiresource gen --mapping paypal/apiformat.yaml
//	apiresource check --type AccountNonce nonce.json
//	apiresource describe --type Payer
package main

import (
	"os"

	"github.com/mongodb/grip"
	"github.com/urfave/cli"

	"apiresource/operations"
)

func main() {
	grip.EmergencyFatal(buildApp().Run(os.Args))
}

func buildApp() *cli.App {
	app := cli.NewApp()
	app.Name = "apiresource"
	app.Usage = "declarative mapping between API dictionaries and Go models"
	app.Version = operations.Version

	app.Commands = []cli.Command{
		operations.Gen(),
		operations.Check(),
		operations.Describe(),
	}

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "level",
			Value: "warning",
			Usage: "Specify lowest visible log level as string: 'emergency|alert|critical|error|warning|notice|info|debug|trace'",
		},
	}

	app.Before = func(c *cli.Context) error {
		return operations.LoggingSetup(app.Name, c.String("level"))
	}

	return app
}
