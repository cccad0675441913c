package mesher

import (
	"testing"

	"vcore/voxelspace"
)

func TestWorkerPoolSubmitRunsEveryJob(t *testing.T) {
	pool := NewWorkerPool(4, 8)
	defer pool.Shutdown()

	channels := make([]<-chan jobResult, 0, 8)
	for i := 0; i < 8; i++ {
		i := i
		channels = append(channels, pool.Submit(func() (ChunkMesh, error) {
			return ChunkMesh{Coord: voxelspace.ChunkCoord{X: i}}, nil
		}))
	}

	seen := make(map[int]bool)
	for _, ch := range channels {
		res := <-ch
		if res.err != nil {
			t.Fatalf("job error = %v", res.err)
		}
		seen[res.mesh.Coord.X] = true
	}
	if len(seen) != 8 {
		t.Fatalf("expected 8 distinct results, got %d", len(seen))
	}
}

func TestWorkerPoolShutdownStopsWorkers(t *testing.T) {
	pool := NewWorkerPool(2, 2)
	pool.Shutdown()

	select {
	case <-pool.ctx.Done():
	default:
		t.Fatalf("expected context to be cancelled after Shutdown")
	}
}
