package idgen

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestSequentialIdentitiesAreUnique(t *testing.T) {
	g := NewWithSession("test")
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := g.StageID()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	require.Equal(t, "Plan-test-0", g.PlanID())
	require.Equal(t, "Task-test-0", g.TaskID())
	require.Equal(t, "Stage-test-1000", g.StageID())
}

func TestConcurrentIdentitiesAreUnique(t *testing.T) {
	defer goleak.VerifyNone(t)

	const workers = 16
	const perWorker = 500
	g := New()
	results := make(chan string, workers*perWorker*2)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				results <- g.PlanID()
				results <- g.TaskID()
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := map[string]bool{}
	for id := range results {
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	require.Len(t, seen, workers*perWorker*2)
}

func TestGeneratorsDoNotCollide(t *testing.T) {
	a, b := New(), New()
	require.NotEqual(t, a.Session(), b.Session())
	require.NotEqual(t, a.PlanID(), b.PlanID())
	require.True(t, strings.HasPrefix(a.StageID(), "Stage-"+a.Session()+"-"))
}

func TestUnknownNamespacePanics(t *testing.T) {
	g := New()
	require.Panics(t, func() { g.Next(Namespace(7)) })
	require.Equal(t, "Namespace(7)", Namespace(7).String())
	require.Equal(t, "Task", TaskNamespace.String())
}
