package main

import (
	"github.com/bytearena/sightline/vizserver"
)

func serveAction(addr string, configFile string) error {
	cfg, err := loadRenderConfig(configFile)
	if err != nil {
		return err
	}

	return vizserver.NewVizService(addr, cfg.RenderOptions()).ListenAndServe()
}
