package entities

import (
	"github.com/urfave/cli/v2"

	"github.com/izonak/localbox/internal/interfaces"
)

var (
	CliApp *cli.App
	Config interfaces.Config
)
