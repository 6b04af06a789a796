package main

import (
	"os"

	"github.com/idovelemon/ProjectVPT/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "vpt"
	app.Usage = "render a participating medium with volumetric path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a still frame of the medium",
			Description: `
Trace camera rays through a bounded heterogeneous volume lit by ambient
light. The medium is either one of the built-in procedural extinction
fields or a density grid voxelized from a wavefront obj mesh.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 512,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 512,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 32,
					Usage: "samples per pixel axis; total samples per pixel is the square of this",
				},
				cli.StringFlag{
					Name:  "medium, m",
					Value: "sponge",
					Usage: "medium to render: sponge, sphere, or a path/url of an obj mesh to voxelize",
				},
				cli.Float64Flag{
					Name:  "albedo",
					Value: 0.8,
					Usage: "single-scattering albedo of the medium",
				},
				cli.Float64Flag{
					Name:  "max-extinction",
					Value: 200.0,
					Usage: "majorant extinction coefficient of the medium",
				},
				cli.IntFlag{
					Name:  "max-interactions",
					Value: 1024,
					Usage: "interaction cap per path; paths beyond it contribute no light",
				},
				cli.Float64Flag{
					Name:  "ambient",
					Value: 4.0,
					Usage: "ambient light radiance",
				},
				cli.IntFlag{
					Name:  "grid-res",
					Value: 64,
					Usage: "density grid resolution used when voxelizing an obj mesh",
				},
				cli.IntFlag{
					Name:  "workers, w",
					Value: 0,
					Usage: "number of render workers; 0 selects one per logical cpu",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 0,
					Usage: "master random seed; 0 derives one from the clock",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "volume.bmp",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "info",
			Usage:  "show cpu and memory information for this host",
			Action: cmd.Info,
		},
	}

	app.Run(os.Args)
}
