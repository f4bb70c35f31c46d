package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/explora/pkg/app"
	"github.com/decker502/explora/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	urlFlag     = flag.String("url", "", "Initial URL in the address bar")
	setHomeFlag = flag.Bool("set-home", false, "Save --url as the home page")
	widthFlag   = flag.Int("width", 0, "Window width (default: last saved or 800)")
	heightFlag  = flag.Int("height", 0, "Window height (default: last saved or 600)")
)

func main() {
	flag.Parse()

	a, err := app.NewApp(app.Config{
		Verbose: *verboseFlag,
		URL:     *urlFlag,
		SetHome: *setHomeFlag,
		Width:   *widthFlag,
		Height:  *heightFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	width, height := a.WindowSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(a)
	if !a.Shutdown() {
		log.Printf("[Main] 退出时保存设置失败")
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "运行失败: %v\n", runErr)
		os.Exit(1)
	}
}
