package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fulldump/goconfig"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/tableview/configuration"
)

var VERSION = "dev"

func main() {

	c := configuration.Default()
	goconfig.Read(c)

	if c.Version {
		fmt.Println("Version:", VERSION)
		return
	}

	if c.ShowConfig {
		json.MarshalWrite(os.Stdout, c, jsontext.WithIndent("    "))
		fmt.Println()
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "datatable",
	})
	if level, err := log.ParseLevel(c.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warn("unknown log level, using info", "level", c.LogLevel)
	}

	err := run(c, os.Stdout, logger)
	if err != nil {
		logger.Fatal("could not display table", "err", err)
	}
}
