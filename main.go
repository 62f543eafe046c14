/*
Lumen renders a scene description to an image through the software Phong
pipeline. Run it once to produce a frame, or with -watch to re-render every
time the scene file changes.
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/lumen/engine/core"
	"github.com/spaghettifunk/lumen/engine/renderer"
	"github.com/spaghettifunk/lumen/engine/scene"
)

func main() {
	configPath := flag.String("scene", "assets/scene.toml", "path to the scene description")
	watch := flag.Bool("watch", false, "re-render whenever the scene file changes")
	flag.Parse()

	cfg, err := scene.LoadConfig(*configPath)
	if err != nil {
		core.LogFatal("%v", err)
	}

	if err := render(cfg); err != nil {
		core.LogFatal("%v", err)
	}
	if !*watch {
		return
	}

	watcher, err := scene.NewWatcher(*configPath)
	if err != nil {
		core.LogFatal("failed to watch %s: %v", *configPath, err)
	}
	defer watcher.Close()

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	for {
		select {
		case cfg, ok := <-watcher.Events():
			if !ok {
				return
			}
			if err := render(cfg); err != nil {
				core.LogError("%v", err)
			}
		case <-sigCh:
			core.LogInfo("shutting down")
			return
		}
	}
}

func render(cfg *scene.Config) error {
	s, err := scene.New(cfg)
	if err != nil {
		return err
	}

	r, err := renderer.NewRenderer(cfg.Output.Width, cfg.Output.Height)
	if err != nil {
		return err
	}

	aspect := float32(cfg.Output.Width) / float32(cfg.Output.Height)
	r.Render(s.Frame(aspect), s.Light, s.Commands())

	if err := r.Framebuffer().Save(cfg.Output.Path); err != nil {
		return err
	}
	core.LogInfo("rendered %d models to %s", len(s.Models), cfg.Output.Path)
	return nil
}
