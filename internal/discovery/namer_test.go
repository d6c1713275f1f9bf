package discovery

import (
	"sync"
	"testing"
)

func TestNamerAssign(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want []string
	}{
		{
			name: "collisions numbered in order",
			ids:  []string{"ep1", "ep1", "ep1"},
			want: []string{"ep1.txt", "ep1_2.txt", "ep1_3.txt"},
		},
		{
			name: "independent identifiers",
			ids:  []string{"ep1", "ep2", "ep1", "ep2"},
			want: []string{"ep1.txt", "ep2.txt", "ep1_2.txt", "ep2_2.txt"},
		},
		{
			name: "identifier shaped like a suffixed name",
			ids:  []string{"ep1", "ep1", "ep1_2"},
			want: []string{"ep1.txt", "ep1_2.txt", "ep1_2_2.txt"},
		},
		{
			name: "suffixed name taken first",
			ids:  []string{"ep1_2", "ep1", "ep1"},
			want: []string{"ep1_2.txt", "ep1.txt", "ep1_3.txt"},
		},
		{
			name: "case-insensitive collisions",
			ids:  []string{"EP1", "ep1"},
			want: []string{"EP1.txt", "ep1_2.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			namer := NewNamer(".txt")
			for i, id := range tt.ids {
				if got := namer.Assign(id); got != tt.want[i] {
					t.Errorf("Assign(%q) #%d = %q, want %q", id, i, got, tt.want[i])
				}
			}
		})
	}
}

func TestNamerIndependentRuns(t *testing.T) {
	first := NewNamer(".txt")
	first.Assign("ep1")

	second := NewNamer(".txt")
	if got := second.Assign("ep1"); got != "ep1.txt" {
		t.Errorf("Assign() on fresh namer = %q, want %q", got, "ep1.txt")
	}
}

func TestNamerConcurrent(t *testing.T) {
	namer := NewNamer(".txt")

	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		names = make(map[string]bool)
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := namer.Assign("ep")
			mu.Lock()
			names[name] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(names) != 50 {
		t.Errorf("got %d distinct names, want 50", len(names))
	}
}
