package wordle

import (
	"strings"
	"testing"
)

func TestRenderBoardEmpty(t *testing.T) {
	board := RenderBoard(nil, "crane")

	rows := strings.Split(board, "\n")
	if len(rows) != 6 {
		t.Fatalf("rows = %d, want 6", len(rows))
	}
	for i, row := range rows {
		if row != "⬛⬛⬛⬛⬛  `·····`" {
			t.Errorf("row %d = %q, want blank row", i, row)
		}
	}
}

func TestRenderBoardWithGuesses(t *testing.T) {
	board := RenderBoard([]string{"candy", "crane"}, "crane")

	rows := strings.Split(board, "\n")
	if len(rows) != 6 {
		t.Fatalf("rows = %d, want 6", len(rows))
	}
	if rows[0] != "🟩🟨🟨⬛⬛  `candy`" {
		t.Errorf("row 0 = %q", rows[0])
	}
	if rows[1] != "🟩🟩🟩🟩🟩  `crane`" {
		t.Errorf("row 1 = %q", rows[1])
	}
	if rows[2] != "⬛⬛⬛⬛⬛  `·····`" {
		t.Errorf("row 2 = %q", rows[2])
	}
}

func TestRenderBoardUppercaseGuess(t *testing.T) {
	board := RenderBoard([]string{"CRANE"}, "crane")
	if !strings.HasPrefix(board, "🟩🟩🟩🟩🟩  `crane`") {
		t.Errorf("uppercase guess not normalized: %q", strings.Split(board, "\n")[0])
	}
}
