package output

import (
	"path/filepath"
	"sort"
	"strings"
)

// Tree characters.
const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "
)

// TreeNode represents a node in the file tree.
type TreeNode struct {
	Name        string
	Description string
	IsDir       bool
	Children    []*TreeNode
}

// RenderFileTree renders the written files as a tree rooted at root.
// files maps relative paths to an optional description.
func RenderFileTree(root string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	rootNode := &TreeNode{Name: root, IsDir: true}

	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, filepath.ToSlash(p))
	}
	sort.Strings(paths)

	for _, p := range paths {
		parts := strings.Split(p, "/")
		current := rootNode

		for i, part := range parts {
			isLeaf := i == len(parts)-1

			var child *TreeNode
			for _, c := range current.Children {
				if c.Name == part {
					child = c
					break
				}
			}

			if child == nil {
				child = &TreeNode{Name: part, IsDir: !isLeaf}
				if isLeaf {
					child.Description = files[filepath.FromSlash(p)]
					if child.Description == "" {
						child.Description = files[p]
					}
				}
				current.Children = append(current.Children, child)
			}
			current = child
		}
	}

	var b strings.Builder
	b.WriteString(rootNode.Name)
	b.WriteString("\n")
	renderChildren(&b, rootNode, "")
	return b.String()
}

func renderChildren(b *strings.Builder, node *TreeNode, prefix string) {
	for i, child := range node.Children {
		last := i == len(node.Children)-1

		edge := treeEdge
		next := treeVert
		if last {
			edge = treeLast
			next = treeSpace
		}

		b.WriteString(prefix)
		b.WriteString(edge)
		if child.IsDir {
			b.WriteString(StyleNoun.Render(child.Name))
		} else {
			b.WriteString(child.Name)
		}
		if child.Description != "" {
			b.WriteString(StyleDim.Render("  "))
			b.WriteString(StatusStyle(child.Description).Render(child.Description))
		}
		b.WriteString("\n")

		renderChildren(b, child, prefix+next)
	}
}
