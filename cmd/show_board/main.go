package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lk16/reversi/internal/othello"
)

func main() {
	boardString := flag.String("board", othello.NewBoardStart().String(), "the board to show, 64 squares of W, B or .")
	player := flag.String("player", "white", "mark the legal moves of this player: white, black or none")
	flag.Parse()

	board, err := othello.NewBoardFromString(*boardString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	var moves othello.MoveMap
	switch strings.ToLower(*player) {
	case "white":
		moves = othello.FindMoves(board, othello.WHITE)
	case "black":
		moves = othello.FindMoves(board, othello.BLACK)
	case "none":
	default:
		fmt.Printf("unknown player %q\n", *player)
		os.Exit(1)
	}

	for _, line := range board.ASCIIArtLines(moves) {
		fmt.Println(line)
	}

	for _, square := range moves.Squares() {
		fmt.Printf("%s: %v\n", square, moves.Runs(square))
	}
}
