package bitcodec_test

import (
	"bytes"
	"testing"

	"github.com/herohde/pc4l/pkg/bitcodec"
	"github.com/herohde/pc4l/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestBoardListRoundTripEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, bitcodec.WriteBoardList(&buf, nil))

	got, err := bitcodec.ReadBoardList(&buf)
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestBoardListRoundTripSortedBoards(t *testing.T) {
	boards := []board.Board{board.Empty, 0x1, 0x3, 0xFF, board.Full}

	var buf bytes.Buffer
	assert.NoError(t, bitcodec.WriteBoardList(&buf, boards))

	got, err := bitcodec.ReadBoardList(&buf)
	assert.NoError(t, err)
	assert.Equal(t, boards, got)
}

func TestBoardListReadTruncatedStreamErrors(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, bitcodec.WriteBoardList(&buf, []board.Board{0x1, 0x2}))

	truncated := bytes.NewReader(buf.Bytes()[:1])
	_, err := bitcodec.ReadBoardList(truncated)
	assert.Error(t, err)
}
