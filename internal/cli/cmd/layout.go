package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/bnema/splitter/internal/application/port"
	"github.com/bnema/splitter/internal/application/usecase"
	"github.com/bnema/splitter/internal/cli/styles"
	"github.com/bnema/splitter/internal/domain/entity"
	"github.com/bnema/splitter/internal/ui/layout"
)

var (
	layoutWidth       int
	layoutHeight      int
	layoutSteps       bool
	layoutConcurrency int
)

const (
	defaultProbeWidth  = 120
	defaultProbeHeight = 40
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Inspect layouts without a terminal UI",
	Long: `Compute splitter layouts headlessly.

The splitter comes from the config file, or from the file given with
--layout. Sizes are in cells.`,
}

var layoutShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print pane and divider geometry at a container size",
	RunE:  runLayoutShow,
}

var layoutSimulateCmd = &cobra.Command{
	Use:   "simulate OP...",
	Short: "Replay resize, drag, nudge and collapse operations",
	Long: `Mount the splitter at --width x --height and apply operations in order.

Operations:
  resize:N            set the extent along the layout axis to N
  resize:WxH          resize the container to W x H
  drag:I:DELTA        drag divider I by DELTA cells with the pointer
  nudge:I:DELTA       move divider I by DELTA cells from the keyboard
  collapse:I|NAME     press the collapse control of divider I, or the one acting on pane NAME

Examples:
  splitter layout simulate drag:0:+10 collapse:preview
  splitter layout simulate -W 200 resize:100 nudge:1:-5`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLayoutSimulate,
}

var layoutCheckCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Validate layout files and probe them for overflow",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLayoutCheck,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.AddCommand(layoutShowCmd)
	layoutCmd.AddCommand(layoutSimulateCmd)
	layoutCmd.AddCommand(layoutCheckCmd)

	layoutCmd.PersistentFlags().IntVarP(&layoutWidth, "width", "W", defaultProbeWidth, "container width in cells")
	layoutCmd.PersistentFlags().IntVarP(&layoutHeight, "height", "H", defaultProbeHeight, "container height in cells")
	layoutSimulateCmd.Flags().BoolVar(&layoutSteps, "steps", false, "print the panes after every operation")
	layoutCheckCmd.Flags().IntVarP(&layoutConcurrency, "concurrency", "j", 0, "files checked in parallel (default GOMAXPROCS)")
}

func runLayoutShow(cmd *cobra.Command, _ []string) error {
	return simulateAndPrint(cmd.OutOrStdout(), nil)
}

func runLayoutSimulate(cmd *cobra.Command, args []string) error {
	ops, err := usecase.ParseLayoutOps(args)
	if err != nil {
		return err
	}
	return simulateAndPrint(cmd.OutOrStdout(), ops)
}

func simulateAndPrint(w io.Writer, ops []usecase.LayoutOp) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	doc, err := app.Document()
	if err != nil {
		return err
	}

	uc := usecase.NewSimulateLayoutUseCase()
	out, err := uc.Execute(app.Ctx(), usecase.SimulateLayoutInput{
		Document:  doc,
		Container: layout.Size{Width: layoutWidth, Height: layoutHeight},
		Ops:       ops,
	})
	if err != nil {
		return err
	}

	t := app.Theme
	fmt.Fprintln(w, t.Title.Render(fmt.Sprintf("%s %s", styles.IconPane, doc.Source)))
	if layoutSteps {
		for _, step := range out.Steps {
			fmt.Fprintln(w)
			fmt.Fprintln(w, t.Subtitle.Render(stepTitle(step)))
			fmt.Fprintln(w, renderPaneTable(t, doc, step.Layout))
		}
		return nil
	}

	final := out.Final()
	fmt.Fprintln(w)
	fmt.Fprintln(w, renderPaneTable(t, doc, final))
	if len(final.Bars) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, renderBarTable(t, final))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, renderLayoutStatus(t, final))
	return nil
}

func stepTitle(step usecase.SimulationStep) string {
	switch step.Op.Kind {
	case usecase.OpDrag, usecase.OpNudge:
		return fmt.Sprintf("%s (applied %+d)", step.Op.Raw, step.Applied)
	default:
		return step.Op.Raw
	}
}

func renderPaneTable(t *styles.Theme, doc *port.LayoutDocument, l layout.Layout) string {
	rows := make([]table.Row, len(l.Panes))
	for i, ps := range l.Panes {
		p := entity.NewPane(ps.PaneID, i)
		if i < len(doc.Panes) {
			p = doc.Panes[i]
		}
		p.Collapsed = ps.Collapsed
		rows[i] = table.Row{
			strconv.Itoa(i),
			p.Label(),
			strconv.Itoa(ps.Offset),
			strconv.Itoa(ps.Size),
			styles.FormatBound(p.MinSize),
			styles.FormatBound(p.MaxSize),
			styles.PaneState(p),
		}
	}
	return styles.RenderStaticTable(t, styles.PaneTableColumns(), rows)
}

func renderBarTable(t *styles.Theme, l layout.Layout) string {
	rows := make([]table.Row, len(l.Bars))
	for i, b := range l.Bars {
		drag := "no"
		if b.Draggable {
			drag = "yes"
		}
		control := "-"
		if b.Control.Visible {
			control = fmt.Sprintf("%s pane %d", b.Control.Action, b.Control.PaneIndex)
			if !b.Control.Enabled {
				control += " (off)"
			}
		}
		rows[i] = table.Row{
			strconv.Itoa(i),
			strconv.Itoa(b.Offset),
			strconv.Itoa(b.Size),
			drag,
			control,
		}
	}
	return styles.RenderStaticTable(t, styles.BarTableColumns(), rows)
}

func renderLayoutStatus(t *styles.Theme, l layout.Layout) string {
	line := t.Subtle.Render(fmt.Sprintf("container %d", l.ContainerSize))
	if l.Status.LayoutOverflow() {
		line += "  " + t.WarningStyle.Render(fmt.Sprintf("%s minimums overflow by %d", styles.IconWarning, l.Status.Overflow))
	}
	if l.Status.Unallocated > 0 {
		line += "  " + t.Subtle.Render(fmt.Sprintf("%d unallocated", l.Status.Unallocated))
	}
	return line
}

func runLayoutCheck(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	uc := usecase.NewCheckLayoutsUseCase(app.Layouts)
	out, err := uc.Execute(app.Ctx(), usecase.CheckLayoutsInput{
		Paths:       args,
		Probe:       layout.Size{Width: layoutWidth, Height: layoutHeight},
		Concurrency: layoutConcurrency,
	})
	if err != nil {
		return err
	}

	t := app.Theme
	rows := make([]table.Row, len(out.Results))
	for i, r := range out.Results {
		rows[i] = table.Row{filepath.Base(r.Path), strconv.Itoa(r.Panes), checkStatus(r)}
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.RenderStaticTable(t, styles.CheckTableColumns(), rows))

	for _, r := range out.Results {
		if r.Err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s %s\n%v\n", t.ErrorStyle.Render(styles.IconX), r.Path, r.Err)
		}
	}

	if out.Failed > 0 {
		return fmt.Errorf("%d of %d layouts failed", out.Failed, len(out.Results))
	}
	fmt.Fprintln(cmd.OutOrStdout(), t.SuccessStyle.Render(fmt.Sprintf("%s %d layouts fit %dx%d", styles.IconCheck, len(out.Results), layoutWidth, layoutHeight)))
	return nil
}

func checkStatus(r usecase.LayoutCheckResult) string {
	switch {
	case r.Err != nil:
		return "invalid"
	case r.Overflow > 0:
		return fmt.Sprintf("overflow by %d", r.Overflow)
	case r.Unallocated > 0:
		return fmt.Sprintf("ok, %d unallocated", r.Unallocated)
	default:
		return "ok"
	}
}
