package main

import (
	"flag"
	"log"
	"strconv"

	"github.com/bytearena/sightline/common/config"
	"github.com/bytearena/sightline/common/utils"
	"github.com/bytearena/sightline/vizserver"
)

func main() {
	port := flag.Int("port", 8081, "Port of the viz server")
	configFile := flag.String("config", "", "Render configuration file (JSON or YAML)")

	flag.Parse()

	cfg := config.DefaultRenderConfig()

	if *configFile != "" {
		var err error
		cfg, err = config.LoadRenderConfig(*configFile)
		utils.Check(err, "ERROR: could not load render configuration")
	}

	log.Println("sightline viz server " + utils.GetVersion())

	vizservice := vizserver.NewVizService(":"+strconv.Itoa(*port), cfg.RenderOptions())
	utils.Check(vizservice.ListenAndServe(), "ERROR: viz server stopped")
}
