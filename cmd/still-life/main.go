// Command still-life opens a window and renders the tableau scene: a wooden table
// with a cheese wheel, a hardcover book, a stemless glass, and a wine bottle in front
// of a backdrop plane.
package main

import (
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Carmen-Shannon/tableau-go/engine"
	"github.com/Carmen-Shannon/tableau-go/engine/camera"
	"github.com/Carmen-Shannon/tableau-go/engine/light"
	"github.com/Carmen-Shannon/tableau-go/engine/material"
	"github.com/Carmen-Shannon/tableau-go/engine/mesh"
	"github.com/Carmen-Shannon/tableau-go/engine/scene"
	"github.com/Carmen-Shannon/tableau-go/engine/shader"
	"github.com/Carmen-Shannon/tableau-go/engine/texture"
	"github.com/Carmen-Shannon/tableau-go/engine/window"
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	win, err := window.NewWindow(
		window.WithTitle("Tableau - Still Life"),
		window.WithWidth(1000),
		window.WithHeight(800),
	)
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}
	defer win.Close()

	if err := gl.Init(); err != nil {
		log.Fatalf("[Main] failed to initialize OpenGL: %v", err)
	}

	sh, err := shader.NewGLShader()
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}
	defer sh.Release()
	sh.Use()

	composer := scene.NewComposer(
		sh,
		mesh.NewGLMeshes(),
		texture.NewRegistry(texture.NewGLBackend()),
		material.NewRegistry(),
		light.NewRig(),
	)
	defer composer.Release()
	composer.PrepareScene()

	e := engine.NewEngine(
		win,
		sh,
		composer,
		camera.NewCamera(),
		engine.WithProfiling(true),
	)
	e.Run()
}
