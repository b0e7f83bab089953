package etl

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/forkful/mealplan-backend/internal/domain"
)

// maxLineSize is the buffer size for bufio.Scanner (16 MB). Some dumps
// pack an entire recipe, directions included, into one line.
const maxLineSize = 16 << 20

// SourceStats describes one pass over a dump file.
type SourceStats struct {
	TotalLines     int
	MalformedLines int
	EmptyLines     int
}

// ReadRecipes streams a JSONL dump, one recipe object per line. Malformed
// lines are counted and skipped rather than failing the whole import.
func ReadRecipes(filePath string) ([]domain.RawRecipe, SourceStats, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, SourceStats{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var (
		recipes []domain.RawRecipe
		stats   SourceStats
	)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, maxLineSize), maxLineSize)

	for scanner.Scan() {
		stats.TotalLines++
		line := scanner.Bytes()

		if len(line) == 0 {
			stats.EmptyLines++
			continue
		}

		var raw domain.RawRecipe
		if err := json.Unmarshal(line, &raw); err != nil {
			stats.MalformedLines++
			continue
		}
		recipes = append(recipes, raw)
	}

	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("scanner error: %w", err)
	}

	return recipes, stats, nil
}
