package tactic

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"

	"github.com/ChizhovVadim/CounterLite/pkg/common"
)

// EpdItem is one test position with the moves that solve it.
type EpdItem struct {
	Content   string
	Fen       string
	BestMoves []common.Move
}

// LoadEpd reads an EPD suite. Files ending in .zst are decompressed on the fly.
// Lines that fail to parse are logged and skipped.
func LoadEpd(filePath string) ([]EpdItem, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var r io.Reader = file
	if strings.HasSuffix(filePath, ".zst") {
		var decoder, err = zstd.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("open zstd %v: %w", filePath, err)
		}
		defer decoder.Close()
		r = decoder
	}
	return ReadEpd(r)
}

func ReadEpd(r io.Reader) ([]EpdItem, error) {
	var result []EpdItem
	var scanner = bufio.NewScanner(r)
	for scanner.Scan() {
		var line = strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var test, err = parseEpdTest(line)
		if err != nil {
			log.Warn().Err(err).Msg("skip epd line")
			continue
		}
		result = append(result, test)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func parseEpdTest(s string) (EpdItem, error) {
	var bmBegin = strings.Index(s, " bm ")
	if bmBegin < 0 {
		return EpdItem{}, fmt.Errorf("no best move %v", s)
	}
	var bmEnd = strings.Index(s[bmBegin:], ";")
	if bmEnd < 0 {
		bmEnd = len(s)
	} else {
		bmEnd += bmBegin
	}
	var fen = strings.TrimSpace(s[:bmBegin])
	// EPD carries four FEN fields, the move counters are implied
	if len(strings.Fields(fen)) == 4 {
		fen += " 0 1"
	}
	var board, err = common.NewBoardFromFEN(fen)
	if err != nil {
		return EpdItem{}, err
	}

	var bestMoves []common.Move
	for _, san := range strings.Fields(s[bmBegin+len(" bm ") : bmEnd]) {
		var move, err = board.ParseMoveSAN(san)
		if err != nil {
			return EpdItem{}, fmt.Errorf("parse move failed %v: %w", s, err)
		}
		bestMoves = append(bestMoves, move)
	}
	if len(bestMoves) == 0 {
		return EpdItem{}, fmt.Errorf("empty best moves %v", s)
	}

	return EpdItem{
		Content:   s,
		Fen:       fen,
		BestMoves: bestMoves,
	}, nil
}

func (item *EpdItem) IsBestMove(move common.Move) bool {
	for _, bm := range item.BestMoves {
		if bm == move {
			return true
		}
	}
	return false
}
