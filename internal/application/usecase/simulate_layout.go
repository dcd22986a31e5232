package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/splitter/internal/application/port"
	"github.com/bnema/splitter/internal/domain/entity"
	"github.com/bnema/splitter/internal/logging"
	"github.com/bnema/splitter/internal/ui/layout"
)

// LayoutOpKind names a scripted interaction.
type LayoutOpKind int

const (
	OpResize   LayoutOpKind = iota // Container resize
	OpDrag                         // Pointer drag on a divider
	OpNudge                        // Keyboard nudge of a divider
	OpCollapse                     // Collapse control activation
)

var opNames = map[string]LayoutOpKind{
	"resize":   OpResize,
	"drag":     OpDrag,
	"nudge":    OpNudge,
	"collapse": OpCollapse,
}

func (k LayoutOpKind) String() string {
	for name, kind := range opNames {
		if kind == k {
			return name
		}
	}
	return "op(" + strconv.Itoa(int(k)) + ")"
}

// ErrInvalidOp is returned for scripted operations that cannot be parsed.
var ErrInvalidOp = errors.New("invalid layout operation")

// LayoutOp is one scripted interaction:
//
//	resize:N|WxH   drag:I:±D   nudge:I:±D   collapse:I|NAME
//
// resize:N sets the extent along the layout axis and keeps the cross axis.
type LayoutOp struct {
	Kind     LayoutOpKind
	Raw      string
	Size     layout.Size
	AxisOnly bool // Size.Width holds the layout-axis extent
	Divider int
	Pane    string // Pane name for collapse by name
	Delta   int
}

// ParseLayoutOp parses the textual form of an operation.
func ParseLayoutOp(s string) (LayoutOp, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	name := strings.ToLower(parts[0])
	kind, ok := opNames[name]
	if !ok {
		names := make([]string, 0, len(opNames))
		for n := range opNames {
			names = append(names, n)
		}
		return LayoutOp{}, fmt.Errorf("%w: unknown operation %q%s", ErrInvalidOp, parts[0], didYouMean(name, names))
	}

	op := LayoutOp{Kind: kind, Raw: s}
	args := parts[1:]
	var err error
	switch kind {
	case OpResize:
		if len(args) != 1 {
			return LayoutOp{}, fmt.Errorf("%w: %q: want resize:EXTENT or resize:WIDTHxHEIGHT", ErrInvalidOp, s)
		}
		op.Size, err = parseSize(args[0])
		op.AxisOnly = !strings.ContainsAny(args[0], "xX")
	case OpDrag, OpNudge:
		if len(args) != 2 {
			return LayoutOp{}, fmt.Errorf("%w: %q: want %s:DIVIDER:DELTA", ErrInvalidOp, s, name)
		}
		if op.Divider, err = strconv.Atoi(args[0]); err == nil {
			op.Delta, err = strconv.Atoi(args[1])
		}
	case OpCollapse:
		if len(args) != 1 || args[0] == "" {
			return LayoutOp{}, fmt.Errorf("%w: %q: want collapse:DIVIDER or collapse:PANE", ErrInvalidOp, s)
		}
		if i, convErr := strconv.Atoi(args[0]); convErr == nil {
			op.Divider = i
		} else {
			op.Divider = -1
			op.Pane = args[0]
		}
	}
	if err != nil {
		return LayoutOp{}, fmt.Errorf("%w: %q: %w", ErrInvalidOp, s, err)
	}
	return op, nil
}

// ParseLayoutOps parses every operation, stopping at the first error.
func ParseLayoutOps(raw []string) ([]LayoutOp, error) {
	ops := make([]LayoutOp, 0, len(raw))
	for _, s := range raw {
		op, err := ParseLayoutOp(s)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func parseSize(s string) (layout.Size, error) {
	w, h, found := strings.Cut(strings.ToLower(s), "x")
	width, err := strconv.Atoi(w)
	if err != nil {
		return layout.Size{}, err
	}
	height := 0
	if found {
		if height, err = strconv.Atoi(h); err != nil {
			return layout.Size{}, err
		}
	}
	if width < 0 || height < 0 {
		return layout.Size{}, fmt.Errorf("negative size %s", s)
	}
	return layout.Size{Width: width, Height: height}, nil
}

// SimulateLayoutInput holds the declaration, the initial container size and
// the operations to replay.
type SimulateLayoutInput struct {
	Document  *port.LayoutDocument
	Container layout.Size
	Ops       []LayoutOp
}

// SimulationStep records the layout after one operation.
type SimulationStep struct {
	Op      LayoutOp
	Applied int // Delta applied by drag and nudge
	Layout  layout.Layout
}

// SimulateLayoutOutput holds the initial layout and one step per operation.
type SimulateLayoutOutput struct {
	Initial layout.Layout
	Steps   []SimulationStep
	Renders int
}

// Final returns the layout after the last operation.
func (o *SimulateLayoutOutput) Final() layout.Layout {
	if len(o.Steps) == 0 {
		return o.Initial
	}
	return o.Steps[len(o.Steps)-1].Layout
}

// SimulateLayoutUseCase mounts a headless splitter and replays operations on it.
type SimulateLayoutUseCase struct{}

// NewSimulateLayoutUseCase creates a new simulate layout use case.
func NewSimulateLayoutUseCase() *SimulateLayoutUseCase {
	return &SimulateLayoutUseCase{}
}

// Execute mounts the document, sizes the container and applies each
// operation in order. The first failing operation aborts the run.
func (uc *SimulateLayoutUseCase) Execute(ctx context.Context, input SimulateLayoutInput) (*SimulateLayoutOutput, error) {
	if input.Document == nil {
		return nil, fmt.Errorf("no layout document")
	}
	log := logging.FromContext(ctx)
	opts := layout.ShellOptions(input.Document.Settings)
	if input.Container.Along(opts.Orientation) <= 0 {
		return nil, fmt.Errorf("container %s must be positive", axisName(opts.Orientation))
	}

	out := &SimulateLayoutOutput{}
	shell, err := layout.Mount(ctx, opts, input.Document.Panes, layout.RendererFunc(func(layout.Layout) {
		out.Renders++
	}))
	if err != nil {
		return nil, err
	}
	defer shell.Unmount()

	registry, err := entity.NewPaneRegistry(input.Document.Panes)
	if err != nil {
		return nil, err
	}

	container := input.Container
	observe(shell, container)
	out.Initial = shell.Layout()

	for _, op := range input.Ops {
		applied, err := uc.apply(shell, &container, op, registry)
		if err != nil {
			log.Debug().Err(err).Str("op", op.Raw).Msg("simulation aborted")
			return nil, fmt.Errorf("%s: %w", op.Raw, err)
		}
		out.Steps = append(out.Steps, SimulationStep{Op: op, Applied: applied, Layout: shell.Layout()})
	}

	log.Debug().Int("ops", len(input.Ops)).Int("renders", out.Renders).Msg("simulation finished")
	return out, nil
}

func (*SimulateLayoutUseCase) apply(shell *layout.Shell, container *layout.Size, op LayoutOp, panes *entity.PaneRegistry) (int, error) {
	switch op.Kind {
	case OpResize:
		o := shell.Orientation()
		size := op.Size
		if op.AxisOnly {
			size = withAlong(*container, o, op.Size.Width)
		}
		if size.Along(o) <= 0 {
			return 0, fmt.Errorf("container %s must be positive", axisName(o))
		}
		*container = size
		observe(shell, size)
		return 0, nil

	case OpDrag:
		l := shell.Layout()
		if op.Divider < 0 || op.Divider >= len(l.Bars) {
			return 0, fmt.Errorf("divider %d out of range (%d dividers)", op.Divider, len(l.Bars))
		}
		pos := l.Bars[op.Divider].Offset
		if shell.PointerDown(pointAt(shell.Orientation(), pos)) != op.Divider {
			return 0, fmt.Errorf("divider %d is not draggable", op.Divider)
		}
		applied := shell.PointerMove(pointAt(shell.Orientation(), pos+op.Delta))
		shell.PointerUp()
		return applied, nil

	case OpNudge:
		bar, err := shell.Bar(op.Divider)
		if err != nil {
			return 0, err
		}
		return bar.Nudge(op.Delta), nil

	case OpCollapse:
		divider := op.Divider
		if op.Pane != "" {
			var err error
			if divider, err = dividerForPane(shell.Layout(), op.Pane, panes); err != nil {
				return 0, err
			}
		}
		return 0, shell.ToggleCollapse(divider)
	}
	return 0, fmt.Errorf("%w: %s", ErrInvalidOp, op.Kind)
}

// dividerForPane finds the divider whose collapse control acts on the named pane.
func dividerForPane(l layout.Layout, name string, panes *entity.PaneRegistry) (int, error) {
	pane := panes.FindByName(name)
	if pane < 0 {
		return -1, fmt.Errorf("unknown pane %q%s", name, didYouMean(name, paneNames(panes.Snapshot())))
	}
	for i, bar := range l.Bars {
		if bar.Control.Visible && bar.Control.PaneIndex == pane {
			return i, nil
		}
	}
	return -1, fmt.Errorf("pane %q has no collapse control", name)
}

func observe(shell *layout.Shell, size layout.Size) {
	if shell.ObserveSize(size) {
		shell.Flush()
	}
}

// withAlong returns s with its layout-axis extent replaced by extent.
func withAlong(s layout.Size, o entity.Orientation, extent int) layout.Size {
	if o == entity.OrientationVertical {
		s.Height = extent
	} else {
		s.Width = extent
	}
	return s
}

func pointAt(o entity.Orientation, pos int) layout.Point {
	if o == entity.OrientationVertical {
		return layout.Point{Y: pos}
	}
	return layout.Point{X: pos}
}

func paneNames(panes []entity.Pane) []string {
	names := make([]string, len(panes))
	for i, p := range panes {
		names[i] = p.Name
	}
	return names
}

func axisName(o entity.Orientation) string {
	if o == entity.OrientationVertical {
		return "height"
	}
	return "width"
}
