// Command schwarzschildray reads a JSON5 run configuration, renders one
// image of a Schwarzschild black hole, and writes it out as a PPM (and,
// optionally, a CSV). It mirrors the argument-count check and os.Exit
// error handling of the original diffraction tool's main.go, but has no
// GUI: an interactive front end is out of scope here.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bob-anderson-ok/schwarzschildray/camera"
	"github.com/bob-anderson-ok/schwarzschildray/config"
	"github.com/bob-anderson-ok/schwarzschildray/disk"
	"github.com/bob-anderson-ok/schwarzschildray/render"
	"github.com/bob-anderson-ok/schwarzschildray/sinks"
	"github.com/bob-anderson-ok/schwarzschildray/spacetime"
	"github.com/bob-anderson-ok/schwarzschildray/units"
)

func main() {
	args := os.Args

	if len(args) != 2 {
		fmt.Println("\n\tWrong number of arguments.\n\tUsage: schwarzschildray <config-file>")
		os.Exit(1)
	}

	path := args[1]

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Println(fmt.Errorf("\n\tAttempt to read config file %q failed: %w\n", path, err))
		os.Exit(2)
	}

	cfg, err := config.Load(data)
	if err != nil {
		fmt.Println(fmt.Errorf("\n\tFormat error in file %q: %w\n", path, err))
		os.Exit(3)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Println(fmt.Errorf("\n\tInvalid configuration in %q: %w\n", path, err))
		os.Exit(4)
	}

	if cfg.ShowInput {
		fmt.Println("\nPrintout of complete run configuration...")
		fmt.Println(string(data))
	}

	massKg := units.SolarMasses(cfg.SolarMass)
	rs := units.SchwarzschildRadius(massKg)
	metric := spacetime.NewSchwarzschild(rs)
	d := disk.New(massKg, rs, cfg.EddingtonFraction)
	cam := camera.New(rs, cfg.ObserverRadiusRs, cfg.InclinationDeg, cfg.FovDeg, cfg.Width, cfg.Height)
	tr := render.New(metric, d, cam, render.Sky{})

	img, err := render.Render(context.Background(), tr, cfg.Threads)
	if err != nil {
		fmt.Println(fmt.Errorf("\n\tRender failed: %w\n", err))
		os.Exit(5)
	}

	out := os.Stdout
	if cfg.OutputPPM != "" {
		f, err := os.Create(cfg.OutputPPM)
		if err != nil {
			fmt.Println(fmt.Errorf("\n\tCould not create output file %q: %w\n", cfg.OutputPPM, err))
			os.Exit(6)
		}
		defer f.Close()
		out = f
	}

	if err := sinks.WritePPM(out, img); err != nil {
		fmt.Println(fmt.Errorf("\n\tWriting PPM output failed: %w\n", err))
		os.Exit(7)
	}

	if cfg.OutputCSV != "" {
		f, err := os.Create(cfg.OutputCSV)
		if err != nil {
			fmt.Println(fmt.Errorf("\n\tCould not create CSV output file %q: %w\n", cfg.OutputCSV, err))
			os.Exit(8)
		}
		defer f.Close()

		if err := sinks.WriteCSV(f, img); err != nil {
			fmt.Println(fmt.Errorf("\n\tWriting CSV output failed: %w\n", err))
			os.Exit(9)
		}
	}
}
