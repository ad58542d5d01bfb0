package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ScottFielder/MathLibEx/pkg/math3d"
	"github.com/ScottFielder/MathLibEx/pkg/models"
	"github.com/ScottFielder/MathLibEx/pkg/motion"
)

func (a *app) nodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nodes <model.glb>",
		Short: "Print each glTF node as a motor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, err := models.LoadNodes(args[0])
			if err != nil {
				return fmt.Errorf("load nodes: %w", err)
			}
			if len(nodes) == 0 {
				a.log.Printf("no nodes in %s", args[0])
				return nil
			}
			printNodes(cmd.OutOrStdout(), nodes)
			return nil
		},
	}
}

func printNodes(w io.Writer, nodes []models.Node) {
	for _, n := range nodes {
		name := n.Name
		if name == "" {
			name = fmt.Sprintf("node%d", n.Index)
		}
		indent := strings.Repeat("  ", n.Depth)
		axis, angle := motion.AxisAngle(n.Local)

		fmt.Fprintf(w, "%s%s\n", indent, name)
		fmt.Fprintf(w, "%s  motor:       %v\n", indent, n.Local)
		fmt.Fprintf(w, "%s  rotation:    %.2f deg about %s\n", indent, angle/math3d.DegreesToRadians, fmtVec(axis))
		fmt.Fprintf(w, "%s  translation: %s\n", indent, fmtVec(motion.Translation(n.Local)))
		if n.Scale != math3d.V3(1, 1, 1) {
			fmt.Fprintf(w, "%s  scale:       %s\n", indent, fmtVec(n.Scale))
		}
		fmt.Fprintf(w, "%s  world:       %s\n", indent, fmtVec(motion.Translation(n.World)))

		// f32.Mat4 is row-major
		rows := motion.ToMat4(n.World).ToF32()
		for r := range 4 {
			fmt.Fprintf(w, "%s  | %8.4f %8.4f %8.4f %8.4f |\n", indent,
				rows[r*4]+0, rows[r*4+1]+0, rows[r*4+2]+0, rows[r*4+3]+0)
		}
	}
}

func fmtVec(v math3d.Vec3) string {
	// +0 folds negative zeros
	return fmt.Sprintf("(%.4g, %.4g, %.4g)", v.X+0, v.Y+0, v.Z+0)
}
