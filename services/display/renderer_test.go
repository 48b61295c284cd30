package display

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tictactoe-go/errcode"
	"tictactoe-go/game"
	"tictactoe-go/types"
)

var testLayout = types.LayoutConfig{
	GridX: 50, GridY: 50, GridSize: 220,
	LineThickness: 3, SymbolPadding: 10,
	TitleY: 10, PromptY: 300, StatusY: 280, StatusH: 20, BannerY: 120, FatalY: 220,
}

func TestRenderer_Init(t *testing.T) {
	rec := &Recorder{W: 320, H: 480}
	require.NoError(t, NewRenderer(rec, testLayout).Init())

	require.Equal(t, "clear", rec.Ops[0].Kind)
	texts := rec.Of("text")
	require.Len(t, texts, 2)
	assert.Equal(t, Op{Kind: "text", Y: 10, Text: "TIC TAC TOE", Font: FontLarge, Align: AlignCenter, Color: White}, texts[0])
	assert.Equal(t, "Touch a square to play!", texts[1].Text)
	assert.Equal(t, 300, texts[1].Y)
	assert.Equal(t, "flush", rec.Ops[len(rec.Ops)-1].Kind)
}

func TestRenderer_DrawBoardGrid(t *testing.T) {
	rec := &Recorder{W: 320, H: 480}
	require.NoError(t, NewRenderer(rec, testLayout).DrawBoard(game.Board{}))

	fills := rec.Of("fill")
	require.Len(t, fills, 6) // background, 4 bars, status strip
	assert.Equal(t, Op{Kind: "fill", X: 50, Y: 50, W: 220, H: 220, Color: Black}, fills[0])
	// CellSize 73, thickness 3: bars start one pixel before the cell edge.
	assert.Equal(t, Op{Kind: "fill", X: 122, Y: 50, W: 3, H: 220, Color: White}, fills[1])
	assert.Equal(t, Op{Kind: "fill", X: 50, Y: 122, W: 220, H: 3, Color: White}, fills[2])
	assert.Equal(t, Op{Kind: "fill", X: 195, Y: 50, W: 3, H: 220, Color: White}, fills[3])
	assert.Equal(t, Op{Kind: "fill", X: 50, Y: 195, W: 220, H: 3, Color: White}, fills[4])
	assert.Equal(t, Op{Kind: "fill", X: 0, Y: 280, W: 320, H: 20, Color: Black}, fills[5])
	assert.Empty(t, rec.Of("line"))
	assert.Empty(t, rec.Of("circle"))
}

func TestRenderer_DrawBoardSymbols(t *testing.T) {
	var b game.Board
	b.PlaceMove(game.Cell{Row: 0, Col: 0}, game.PlayerX)
	b.PlaceMove(game.Cell{Row: 1, Col: 1}, game.PlayerO)

	rec := &Recorder{W: 320, H: 480}
	require.NoError(t, NewRenderer(rec, testLayout).DrawBoard(b))

	lines := rec.Of("line")
	require.Len(t, lines, 2)
	assert.Equal(t, Op{Kind: "line", X: 60, Y: 60, W: 113, H: 113, Color: Red}, lines[0])
	assert.Equal(t, Op{Kind: "line", X: 113, Y: 60, W: 60, H: 113, Color: Red}, lines[1])

	circles := rec.Of("circle")
	require.Len(t, circles, 1)
	assert.Equal(t, Op{Kind: "circle", X: 159, Y: 159, W: 26, Color: Blue}, circles[0])
}

func TestRenderer_ShowWinner(t *testing.T) {
	rec := &Recorder{W: 320, H: 480}
	require.NoError(t, NewRenderer(rec, testLayout).ShowWinner(game.PlayerO))

	require.Equal(t, "clear", rec.Ops[0].Kind)
	texts := rec.Of("text")
	require.Len(t, texts, 1)
	assert.Equal(t, "O WINS!", texts[0].Text)
	assert.Equal(t, Green, texts[0].Color)
	assert.Equal(t, 120, texts[0].Y)
}

func TestRenderer_ShowFatal(t *testing.T) {
	rec := &Recorder{W: 320, H: 480}
	require.NoError(t, NewRenderer(rec, testLayout).ShowFatal(FatalTouchInit))
	texts := rec.Of("text")
	require.Len(t, texts, 1)
	assert.Equal(t, "Touch Init Failed!", texts[0].Text)
	assert.Equal(t, 220, texts[0].Y)
}

func TestRenderer_FlushError(t *testing.T) {
	rec := &Recorder{W: 320, H: 480, FlushErr: errors.New("spi")}
	err := NewRenderer(rec, testLayout).DrawBoard(game.Board{})
	assert.Equal(t, errcode.DisplayFailed, errcode.Of(err))
}

func TestTinyCanvas_FrameBuffer(t *testing.T) {
	fb := NewFrameBuffer(320, 480)
	c := NewTinyCanvas(fb)

	w, h := c.Size()
	require.Equal(t, 320, w)
	require.Equal(t, 480, h)

	c.Clear(Black)
	assert.Equal(t, 320*480, fb.Count(0, 0, 320, 480, Black))

	c.FillRect(10, 20, 5, 4, White)
	assert.Equal(t, 20, fb.Count(10, 20, 5, 4, White))
	assert.Equal(t, 20, fb.Count(0, 0, 320, 480, White))

	c.Line(100, 100, 120, 100, Red)
	assert.Equal(t, Red, fb.At(100, 100))
	assert.Equal(t, Red, fb.At(120, 100))

	c.Circle(200, 200, 20, Blue)
	assert.Equal(t, Blue, fb.At(220, 200))
	assert.Equal(t, Blue, fb.At(200, 180))
	assert.NotEqual(t, Blue, fb.At(200, 200), "circle is not filled")

	c.Text(0, 300, "X WINS!", FontLarge, AlignCenter, Green)
	assert.Positive(t, fb.Count(0, 295, 320, 40, Green))

	require.NoError(t, c.Flush())
	assert.Equal(t, 1, fb.Flushes())
}

func TestRenderer_OnFrameBuffer(t *testing.T) {
	fb := NewFrameBuffer(320, 480)
	r := NewRenderer(NewTinyCanvas(fb), testLayout)

	var b game.Board
	b.PlaceMove(game.Cell{Row: 2, Col: 2}, game.PlayerX)
	require.NoError(t, r.Init())
	require.NoError(t, r.DrawBoard(b))

	// The main-diagonal stroke passes through the centre of cell (2,2).
	assert.Equal(t, Red, fb.At(196+36, 196+36))
	// The grid bar between columns 0 and 1.
	assert.Equal(t, White, fb.At(123, 60))
	assert.Equal(t, 2, fb.Flushes())
}
