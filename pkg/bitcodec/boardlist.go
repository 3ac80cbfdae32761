package bitcodec

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/herohde/pc4l/pkg/board"
)

// WriteBoardList writes boards to w as a length-prefixed, diff-encoded
// varint stream: a leading count, then each board's value minus the
// previous board's value (0 for the first), both LEB128-encoded via
// encoding/binary. Boards compress well this way because a sorted legal
// board list has small consecutive deltas.
func WriteBoardList(w io.Writer, boards []board.Board) error {
	buf := bufio.NewWriter(w)

	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], uint64(len(boards)))
	if _, err := buf.Write(tmp[:n]); err != nil {
		return err
	}

	var current uint64
	for _, b := range boards {
		diff := uint64(b) - current
		current = uint64(b)

		n := binary.PutUvarint(tmp[:], diff)
		if _, err := buf.Write(tmp[:n]); err != nil {
			return err
		}
	}

	return buf.Flush()
}

// ReadBoardList reads the format WriteBoardList produces.
func ReadBoardList(r io.Reader) ([]board.Board, error) {
	br := bufio.NewReader(r)

	count, err := binary.ReadUvarint(br)
	if err != nil {
		return nil, err
	}

	boards := make([]board.Board, 0, count)
	var current uint64
	for i := uint64(0); i < count; i++ {
		diff, err := binary.ReadUvarint(br)
		if err != nil {
			return nil, err
		}
		current += diff
		boards = append(boards, board.Board(current))
	}

	return boards, nil
}
