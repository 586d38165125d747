package store

import "sort"

// adjacency builds predecessor -> successors lists in edge creation order.
func (s *Store) adjacency() map[string][]string {
	adj := make(map[string][]string)
	for _, e := range s.edges {
		adj[e.PredecessorID] = append(adj[e.PredecessorID], e.SuccessorID)
	}
	return adj
}

// Reaches reports whether to is reachable from from by following edges
// forward. A node reaches itself.
func (s *Store) Reaches(from, to string) bool {
	if from == to {
		return true
	}
	adj := s.adjacency()
	seen := map[string]bool{from: true}
	queue := []string{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range adj[cur] {
			if next == to {
				return true
			}
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}

// DependentsOf returns every task transitively downstream of id, in an order
// where each task comes after all of its downstream predecessors. Ties are
// broken by row order. Tasks caught in a cycle are appended last in row
// order so every dependent is visited exactly once.
func (s *Store) DependentsOf(id string) []string {
	adj := s.adjacency()

	reach := make(map[string]bool)
	queue := []string{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range adj[cur] {
			if next == id || reach[next] {
				continue
			}
			if _, ok := s.tasks[next]; !ok {
				continue
			}
			reach[next] = true
			queue = append(queue, next)
		}
	}
	if len(reach) == 0 {
		return nil
	}

	indegree := make(map[string]int, len(reach))
	for n := range reach {
		indegree[n] = 0
	}
	for _, e := range s.edges {
		if reach[e.PredecessorID] && reach[e.SuccessorID] {
			indegree[e.SuccessorID]++
		}
	}

	rank := make(map[string]int, len(s.order))
	for i, tid := range s.order {
		rank[tid] = i
	}
	byRow := func(ids []string) {
		sort.SliceStable(ids, func(i, j int) bool { return rank[ids[i]] < rank[ids[j]] })
	}

	var ready []string
	for n, deg := range indegree {
		if deg == 0 {
			ready = append(ready, n)
		}
	}
	byRow(ready)

	out := make([]string, 0, len(reach))
	done := make(map[string]bool, len(reach))
	for len(ready) > 0 {
		cur := ready[0]
		ready = ready[1:]
		out = append(out, cur)
		done[cur] = true

		var unlocked []string
		for _, next := range adj[cur] {
			if !reach[next] || done[next] {
				continue
			}
			indegree[next]--
			if indegree[next] == 0 {
				unlocked = append(unlocked, next)
			}
		}
		ready = append(ready, unlocked...)
		byRow(ready)
	}

	if len(out) < len(reach) {
		var rest []string
		for n := range reach {
			if !done[n] {
				rest = append(rest, n)
			}
		}
		byRow(rest)
		out = append(out, rest...)
	}
	return out
}
