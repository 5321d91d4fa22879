package wordle

import (
	"fmt"
	"strings"

	"gamebot/internal/domain/wordle"
	wordleuc "gamebot/internal/usecase/wordle"
)

const (
	tileExact   = "🟩"
	tilePresent = "🟨"
	tileAbsent  = "⬛"
)

// RenderBoard draws the six-row emoji board with the entered letters
// under each row. Unused rows come out as blank tiles.
func RenderBoard(guesses []string, answer string) string {
	answer = strings.ToLower(answer)

	rows := make([]string, 0, wordle.MaxAttempts)
	for r := 0; r < wordle.MaxAttempts; r++ {
		var guess string
		if r < len(guesses) {
			guess = strings.ToLower(guesses[r])
		}
		marks := wordleuc.Score(guess, answer)

		var line, letters strings.Builder
		for i := 0; i < wordle.WordLen; i++ {
			if i >= len(guess) {
				line.WriteString(tileAbsent)
				letters.WriteRune('·')
				continue
			}
			switch marks[i] {
			case wordle.MarkExact:
				line.WriteString(tileExact)
			case wordle.MarkPresent:
				line.WriteString(tilePresent)
			default:
				line.WriteString(tileAbsent)
			}
			letters.WriteByte(guess[i])
		}
		rows = append(rows, fmt.Sprintf("%s  `%s`", line.String(), letters.String()))
	}
	return strings.Join(rows, "\n")
}
