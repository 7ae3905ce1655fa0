package output

import (
	"path"
	"sort"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// descriptionColumn is where file descriptions start.
	descriptionColumn = 30
)

// TreeNode is a node in a rendered file tree.
type TreeNode struct {
	Name        string
	Description string
	IsDir       bool
	Children    []*TreeNode
}

// RenderFileTree renders a file tree rooted at rootName. files maps
// slash-separated relative paths to an optional description, which is aligned
// at descriptionColumn.
func RenderFileTree(rootName string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	root := &TreeNode{Name: rootName, IsDir: true}
	for p, desc := range files {
		parts := strings.Split(path.Clean(p), "/")
		current := root
		for i, part := range parts {
			isLast := i == len(parts)-1
			child := current.child(part)
			if child == nil {
				child = &TreeNode{Name: part, IsDir: !isLast}
				current.Children = append(current.Children, child)
			}
			if isLast {
				child.Description = desc
			}
			current = child
		}
	}

	sortTree(root)

	var sb strings.Builder
	renderNode(&sb, root, "", true, true)
	return sb.String()
}

func (n *TreeNode) child(name string) *TreeNode {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// sortTree orders directories before files, then alphabetically.
func sortTree(node *TreeNode) {
	sort.Slice(node.Children, func(i, j int) bool {
		a, b := node.Children[i], node.Children[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		return a.Name < b.Name
	})
	for _, c := range node.Children {
		sortTree(c)
	}
}

func renderNode(sb *strings.Builder, node *TreeNode, prefix string, isRoot, isLast bool) {
	if isRoot {
		sb.WriteString(StyleAction.Render(node.Name + "/"))
		sb.WriteString("\n")
	} else {
		connector := treeEdge
		if isLast {
			connector = treeLast
		}
		name := node.Name
		if node.IsDir {
			name += "/"
		}

		plain := prefix + connector + name
		line := StyleDim.Render(prefix+connector) + name
		if node.Description != "" {
			padding := descriptionColumn - len([]rune(plain))
			if padding < 2 {
				padding = 2
			}
			line += strings.Repeat(" ", padding) + StyleDim.Render(node.Description)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	for i, c := range node.Children {
		childPrefix := ""
		if !isRoot {
			if isLast {
				childPrefix = prefix + treeSpace
			} else {
				childPrefix = prefix + treeVert
			}
		}
		renderNode(sb, c, childPrefix, false, i == len(node.Children)-1)
	}
}
