package drawer

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/askiada/go-dataprep/pkg/pipeline/measure"
)

// DOTDrawer renders the pipeline as a Graphviz DOT graph. Output is stable:
// steps are written in topological order, ties broken by name.
type DOTDrawer struct {
	graph    graph.Graph[string, string]
	fileName string
	xlabels  map[string]string
	edges    map[string]map[string]map[string]string
}

// NewDOTDrawer creates a drawer writing to fileName on Draw.
func NewDOTDrawer(fileName string) *DOTDrawer {
	return &DOTDrawer{
		fileName: fileName,
		graph:    graph.New(graph.StringHash, graph.Directed(), graph.PreventCycles()),
		xlabels:  make(map[string]string),
		edges:    make(map[string]map[string]map[string]string),
	}
}

// AddStep adds a step to the pipeline graph.
func (d *DOTDrawer) AddStep(name string) error {
	err := d.graph.AddVertex(name)
	if err != nil {
		return errors.Wrapf(err, "unable to add vertex %s", name)
	}

	return nil
}

// AddLink adds a link between parent and children steps.
func (d *DOTDrawer) AddLink(parentName, childrenName string) error {
	err := d.graph.AddEdge(parentName, childrenName)
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentName, childrenName)
	}

	return nil
}

func (d *DOTDrawer) setEdgeAttributes(source, target string, attrs map[string]string) error {
	if _, err := d.graph.Edge(source, target); err != nil {
		return errors.Wrapf(err, "unable to get edge from %s to %s", source, target)
	}
	if d.edges[source] == nil {
		d.edges[source] = make(map[string]map[string]string)
	}
	d.edges[source][target] = attrs

	return nil
}

const maxRGB = 240

// transportColor maps elapsed within [minValue, maxValue] to a colour going
// from blue for the fastest link to red for the slowest one.
func transportColor(elapsed, minValue, maxValue time.Duration) (string, error) {
	fraction := 1.0
	if maxValue > minValue {
		fraction = float64(elapsed-minValue) / float64(maxValue-minValue)
	}
	red := math.Round(maxRGB * fraction)
	blue := maxRGB - red

	rgb, err := colors.RGB(uint8(red), 0, uint8(blue)) //nolint
	if err != nil {
		return "", errors.Wrap(err, "unable to get colour")
	}

	return strings.ToLower(rgb.ToHEX().String()), nil
}

// AddMeasure adds measure to drawer.
func (d *DOTDrawer) AddMeasure(msr measure.Measure) error {
	metrics := msr.AllMetrics()

	var minValue, maxValue time.Duration
	first := true
	for _, mt := range metrics {
		for _, elapsed := range mt.AVGTransportDuration() {
			if first || elapsed < minValue {
				minValue = elapsed
			}
			if first || elapsed > maxValue {
				maxValue = elapsed
			}
			first = false
		}
	}

	for name, mt := range metrics {
		if _, err := d.graph.Vertex(name); err != nil {
			return errors.Wrapf(err, "unable to get vertex %s", name)
		}

		labels := make([]string, 0, 3)
		if avg := mt.AVGDuration(); avg != 0 {
			labels = append(labels, avg.String())
		}
		if rows, cols, ok := mt.Shape(); ok {
			labels = append(labels, fmt.Sprintf("%dx%d", rows, cols))
		}
		if total := mt.GetTotalDuration(); total > 0 {
			labels = append(labels, "end: "+total.String())
		}
		if len(labels) > 0 {
			d.xlabels[name] = strings.Join(labels, ", ")
		}

		for inputStep, elapsed := range mt.AVGTransportDuration() {
			color, err := transportColor(elapsed, minValue, maxValue)
			if err != nil {
				return err
			}
			err = d.setEdgeAttributes(inputStep, name, map[string]string{
				"label":     elapsed.String(),
				"fontcolor": "blue",
				"color":     color,
			})
			if err != nil {
				return errors.Wrap(err, "unable to update edge")
			}
		}
	}

	return nil
}

// Draw creates the DOT file.
func (d *DOTDrawer) Draw() error {
	file, err := os.Create(d.fileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.fileName)
	}
	defer file.Close()

	err = d.DrawTo(file)
	if err != nil {
		return errors.Wrapf(err, "unable to write dot file %s", d.fileName)
	}

	return file.Close()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// DrawTo writes the DOT graph to w.
func (d *DOTDrawer) DrawTo(w io.Writer) error {
	order, err := graph.StableTopologicalSort(d.graph, func(a, b string) bool { return a < b })
	if err != nil {
		return errors.Wrap(err, "unable to sort steps")
	}
	adjacencyMap, err := d.graph.AdjacencyMap()
	if err != nil {
		return errors.Wrap(err, "unable to get adjacency map")
	}

	buf := bufio.NewWriter(w)
	fmt.Fprintln(buf, "strict digraph {")
	fmt.Fprintln(buf, "\trankdir=\"LR\";")
	for _, vertex := range order {
		if xlabel, ok := d.xlabels[vertex]; ok {
			fmt.Fprintf(buf, "\t%q [ label=<%s <BR /> <FONT POINT-SIZE=\"12\">%s</FONT>> ];\n", vertex, vertex, xlabel)
		} else {
			fmt.Fprintf(buf, "\t%q;\n", vertex)
		}
	}
	for _, vertex := range order {
		for _, target := range sortedKeys(adjacencyMap[vertex]) {
			attrs := d.edges[vertex][target]
			if len(attrs) == 0 {
				fmt.Fprintf(buf, "\t%q -> %q;\n", vertex, target)

				continue
			}
			pairs := make([]string, 0, len(attrs))
			for _, k := range sortedKeys(attrs) {
				pairs = append(pairs, fmt.Sprintf("%s=%q", k, attrs[k]))
			}
			fmt.Fprintf(buf, "\t%q -> %q [ %s ];\n", vertex, target, strings.Join(pairs, ", "))
		}
	}
	fmt.Fprintln(buf, "}")

	return errors.Wrap(buf.Flush(), "unable to flush dot graph")
}

var _ Drawer = (*DOTDrawer)(nil)
