package models

import (
	"fmt"

	"github.com/qmuntal/gltf"

	"github.com/ScottFielder/MathLibEx/pkg/math3d"
	"github.com/ScottFielder/MathLibEx/pkg/motion"
	"github.com/ScottFielder/MathLibEx/pkg/pga"
)

// Node is one glTF node with its rigid part held as motors.
//
// A glTF node transform is T*R*S. The motor carries T*R and the scale is kept
// beside it. World poses compose as parent.World * Local once the local
// translation has been scaled by the parent's scale, which is exact for
// uniform scales.
type Node struct {
	Index  int
	Name   string
	Parent int // -1 for roots
	Mesh   int // -1 when the node has no mesh
	Depth  int

	Local      pga.Motor
	Scale      math3d.Vec3
	World      pga.Motor
	WorldScale math3d.Vec3
}

var identityMatrix = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

func rootNode() Node {
	return Node{
		Index:      -1,
		Parent:     -1,
		Mesh:       -1,
		Local:      pga.Identity(),
		Scale:      math3d.V3(1, 1, 1),
		World:      pga.Identity(),
		WorldScale: math3d.V3(1, 1, 1),
	}
}

// NodeTransform returns the rigid part of n as a motor and its scale.
// A matrix other than the identity takes precedence over the TRS
// properties, as glTF requires they are not both set. Decoding fills an
// absent matrix with the identity.
func NodeTransform(n *gltf.Node) (pga.Motor, math3d.Vec3) {
	if n.Matrix != ([16]float64{}) && n.Matrix != identityMatrix {
		return matrixTransform(n.Matrix)
	}

	t := math3d.V3(float32(n.Translation[0]), float32(n.Translation[1]), float32(n.Translation[2]))

	q := math3d.IdentityQuat()
	if r := n.Rotation; r != ([4]float64{}) {
		// glTF stores (x, y, z, w)
		q = math3d.Quat{W: float32(r[3]), X: float32(r[0]), Y: float32(r[1]), Z: float32(r[2])}.Normalize()
	}

	s := math3d.V3(1, 1, 1)
	if n.Scale != ([3]float64{}) {
		s = math3d.V3(float32(n.Scale[0]), float32(n.Scale[1]), float32(n.Scale[2]))
	}

	return motion.FromRotationTranslation(q, t), s
}

func matrixTransform(m [16]float64) (pga.Motor, math3d.Vec3) {
	var mat math3d.Mat4
	for i, v := range m {
		mat[i] = float32(v)
	}

	s := math3d.V3(
		math3d.V3(mat[0], mat[1], mat[2]).Len(),
		math3d.V3(mat[4], mat[5], mat[6]).Len(),
		math3d.V3(mat[8], mat[9], mat[10]).Len(),
	)
	rot := math3d.Identity()
	for c, l := range [3]float32{s.X, s.Y, s.Z} {
		if l < math3d.VerySmall {
			continue
		}
		for r := range 3 {
			rot[c*4+r] = mat[c*4+r] / l
		}
	}

	return motion.FromRotationTranslation(math3d.QuatFromMat4(rot), mat.Translation()), s
}

// Nodes walks the default scene depth first and returns every reachable
// node with its world pose. Parents come before their children. Documents
// without scenes start from the nodes no other node lists as a child.
func Nodes(doc *gltf.Document) []Node {
	var roots []int
	switch {
	case doc.Scene != nil && *doc.Scene < len(doc.Scenes):
		roots = doc.Scenes[*doc.Scene].Nodes
	case len(doc.Scenes) > 0:
		roots = doc.Scenes[0].Nodes
	default:
		child := make([]bool, len(doc.Nodes))
		for _, n := range doc.Nodes {
			for _, c := range n.Children {
				if c >= 0 && c < len(child) {
					child[c] = true
				}
			}
		}
		for i, isChild := range child {
			if !isChild {
				roots = append(roots, i)
			}
		}
	}

	out := make([]Node, 0, len(doc.Nodes))
	visited := make([]bool, len(doc.Nodes))

	var walk func(i int, parent Node)
	walk = func(i int, parent Node) {
		if i < 0 || i >= len(doc.Nodes) || visited[i] {
			return
		}
		visited[i] = true

		gn := doc.Nodes[i]
		local, scale := NodeTransform(gn)

		// Parent scale stretches the local offset before the parent's
		// rotation and translation act on it.
		t := motion.Translation(local).Mul(parent.WorldScale)
		placed := motion.FromRotationTranslation(motion.RotationQuat(local), t)

		n := Node{
			Index:      i,
			Name:       gn.Name,
			Parent:     parent.Index,
			Mesh:       -1,
			Depth:      parent.Depth + 1,
			Local:      local,
			Scale:      scale,
			World:      pga.MulMotor(parent.World, placed),
			WorldScale: parent.WorldScale.Mul(scale),
		}
		if parent.Index < 0 {
			n.Depth = 0
		}
		if gn.Mesh != nil && *gn.Mesh >= 0 && *gn.Mesh < len(doc.Meshes) {
			n.Mesh = *gn.Mesh
		}
		out = append(out, n)

		for _, c := range gn.Children {
			walk(c, n)
		}
	}

	for _, r := range roots {
		walk(r, rootNode())
	}
	return out
}

// LoadNodes opens a glTF file and returns its node hierarchy.
func LoadNodes(path string) ([]Node, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return Nodes(doc), nil
}

// Keyframes returns the normalized world motors of the nodes in order.
func Keyframes(nodes []Node) []pga.Motor {
	keys := make([]pga.Motor, 0, len(nodes))
	for _, n := range nodes {
		m, err := n.World.Normalize()
		if err != nil {
			continue
		}
		keys = append(keys, m)
	}
	return keys
}
