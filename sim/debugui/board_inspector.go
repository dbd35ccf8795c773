package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/sim"
)

func NewBoardInspectorComponent() BoardInspectorComponent {
	return BoardInspectorComponent{}
}

func (bi *BoardInspectorComponent) Render(game *sim.Game) {
	if !imgui.BeginV("Board Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	board := game.Board()

	imgui.Text(fmt.Sprintf("Board: %dx%d", board.Width(), board.Height()))
	imgui.Text(fmt.Sprintf("Locked Cells: %d", board.LockedCount()))
	imgui.Text(fmt.Sprintf("Lines Cleared: %d", board.Lines()))
	if board.Over() {
		imgui.Text("State: GAME OVER")
	} else {
		imgui.Text("State: running")
	}

	imgui.Separator()

	if piece := board.Active(); piece != nil {
		imgui.Text(fmt.Sprintf("Active Piece: %s at (%d,%d)", piece.Shape.Name, piece.Origin.X, piece.Origin.Y))
		for _, c := range piece.Cells {
			imgui.BulletText(fmt.Sprintf("(%d,%d)", c.X, c.Y))
		}
	} else {
		imgui.Text("Active Piece: none")
	}

	if imgui.TreeNodeStr("Row Fill") {
		counts := make([]int, board.Height())
		for _, c := range board.LockedCells() {
			counts[c.Y]++
		}

		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("RowFillTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Row")
			imgui.TableSetupColumn("Filled")
			imgui.TableHeadersRow()

			for y := board.Height() - 1; y >= 0; y-- {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", y))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d / %d", counts[y], board.Width()))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Locked Cells") {
		for _, c := range board.LockedCells() {
			imgui.BulletText(fmt.Sprintf("(%d,%d)", c.X, c.Y))
		}
		imgui.TreePop()
	}

	imgui.End()
}
