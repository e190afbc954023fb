package worker

import (
	"context"

	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// WorkItem is one root move to count below.
type WorkItem struct {
	Board *engine.Board // Position after the root move; owned by the job
	Move  engine.Move
	Depth int // Remaining depth below Board
}

// MoveCount is the node count below one root move.
type MoveCount struct {
	Move  engine.Move
	Nodes int64
}

// PerftResult is the outcome of a parallel perft run.
type PerftResult struct {
	Nodes  int64
	Divide map[string]int64 // Count below each root move, keyed by move text
}

// PerftJob counts the nodes below one root move.
func PerftJob(item WorkItem) MoveCount {
	return MoveCount{Move: item.Move, Nodes: engine.Perft(item.Board, item.Depth)}
}

// ParallelPerft counts the move tree of b to depth, one pool job per root
// move. b is only read; each job owns a clone. Cancelling ctx stops jobs
// that have not started and returns ctx.Err().
func ParallelPerft(ctx context.Context, b *engine.Board, depth, workers int) (PerftResult, error) {
	res := PerftResult{Divide: make(map[string]int64)}
	if depth <= 0 {
		res.Nodes = 1
		return res, nil
	}

	moves := b.LegalMoveList()
	items := make([]WorkItem, 0, len(moves))
	for _, m := range moves {
		child, ok := b.Play(m)
		if !ok {
			return res, errors.Wrapf(errors.ErrIllegalForPiece, "root move %s", m)
		}
		items = append(items, WorkItem{Board: child, Move: m, Depth: depth - 1})
	}

	pool := NewPool(PerftJob, WithWorkers(workers), WithBufferSize(len(items)))
	pool.Start()
	for _, item := range items {
		pool.Submit(item)
	}
	go pool.Close()

	done := ctx.Done()
	for {
		select {
		case r, ok := <-pool.Results():
			if !ok {
				return res, ctx.Err()
			}
			res.Nodes += r.Nodes
			res.Divide[r.Move.String()] = r.Nodes
		case <-done:
			pool.Stop()
			done = nil
		}
	}
}
