// pgaview - terminal viewer and self-check for the PGA motor engine.
//
// Commands:
//
//	view <model.glb>   Animate a glTF model between its node motors
//	nodes <model.glb>  Print node motors, axis/angle and translations
//	check              Run the algebra checks and report pass/fail
//
// Viewer controls:
//
//	Space       - Tween to the next keyframe motor
//	Left/Right  - Spin impulse about +Y
//	+/-         - Dolly along the view line
//	R           - Reset pose and camera
//	Esc         - Quit
package main

import (
	"context"
	"log"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var version = "dev"

// app carries the state shared by all commands.
type app struct {
	cfgFile string
	verbose bool
	log     *log.Logger
}

func main() {
	a := &app{log: log.New(os.Stderr, "pgaview: ", 0)}
	if err := fang.Execute(context.Background(), a.rootCmd(),
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	); err != nil {
		os.Exit(1)
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pgaview",
		Short: "Rigid motions with projective geometric algebra",
		Long: `pgaview drives meshes with PGA motors: glTF node transforms become motors,
keyframes are blended by motor slerp on a spring, and the wireframe is culled
against frustum planes by oriented distance.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.pgaview/config.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		a.viewCmd(),
		a.nodesCmd(),
		a.checkCmd(),
	)
	return root
}
