package cmd

import (
	"bytes"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
	"github.com/urfave/cli"
)

// Display information about the host the renderer will run on.
func Info(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("\nRendering runs on %d logical CPUs:\n\n", runtime.NumCPU()))

	cpuInfo, err := cpu.Info()
	if err != nil {
		return err
	}
	for idx, info := range cpuInfo {
		buf.WriteString(fmt.Sprintf("[CPU %02d]\n  Model %s\n  Cores %d\n  Clock %.0f MHz\n\n", idx, info.ModelName, info.Cores, info.Mhz))
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		return err
	}
	buf.WriteString(fmt.Sprintf("[Memory]\n  Total     %d MiB\n  Available %d MiB\n", memInfo.Total>>20, memInfo.Available>>20))

	logger.Notice(buf.String())
	return nil
}
