//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Renders the stock scene once.
func (Run) Render() error {
	fmt.Println("Rendering scene...")
	if _, err := executeCmd("go", withArgs("run", ".", "-scene", "assets/scene.toml"), withStream()); err != nil {
		return err
	}
	return nil
}

// Renders the stock scene and re-renders whenever it changes on disk.
func (Run) Watch() error {
	fmt.Println("Watching scene...")
	if _, err := executeCmd("go", withArgs("run", ".", "-scene", "assets/scene.toml", "-watch"), withStream()); err != nil {
		return err
	}
	return nil
}
