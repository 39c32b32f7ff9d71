package content

import (
	"sort"

	"github.com/maruel/natural"

	"ssmlc/ssml"
	"ssmlc/utils/debug"
)

// String returns a readable dump of the Content including parsed tree. It
// exists solely for manual inspection during debugging.
func (c *Content) String() string {
	if c == nil {
		return "<nil Content>"
	}

	tw := debug.NewTreeWriter()
	tw.Line(0, "Content ID=%s src=%q format=%s", c.ID, c.SrcName, c.OutputFormat)
	tw.Pair(1, "digest", c.Digest)
	tw.Pair(1, "lang", c.Lang.String())
	if c.Cached {
		tw.Line(1, "Parse tree from cache")
	}

	usage := elementUsage(c.Root)
	if len(usage) > 0 {
		names := make([]string, 0, len(usage))
		for name := range usage {
			names = append(names, name)
		}
		sort.Sort(natural.StringSlice(names))

		tw.Line(1, "Elements: %d", len(names))
		for _, name := range names {
			tw.Line(2, "%s x%d", name, usage[name])
		}
	}

	tw.TextBlock(1, "Text", c.Text)
	if len(c.Sentences) > 0 {
		tw.Line(1, "Sentences: %d", len(c.Sentences))
		for _, s := range c.Sentences {
			tw.TextBlock(2, "Sentence", s)
		}
	}

	return tw.String() + "\n" + c.Root.String()
}

func elementUsage(root *ssml.Element) map[string]int {
	usage := make(map[string]int)
	ssml.Walk(root, func(n ssml.Node) bool {
		if el, ok := n.(*ssml.Element); ok {
			usage[el.Name]++
		}
		return true
	})
	return usage
}
