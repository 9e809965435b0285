package employee

import (
	"slices"
	"sync"

	"golang.org/x/text/language"
)

// Project は記録の並びから表示用の射影を作ります。
// 絞り込みは記録の順序を保ち、並び替えは安定ソートです。入力は変更しません。
func Project(records []Employee, c Criteria, s SortState) []Employee {
	return project(records, c, s, NewComparator(language.English))
}

func project(records []Employee, c Criteria, s SortState, comparator *Comparator) []Employee {
	m := newMatcher(c)

	out := make([]Employee, 0, len(records))
	for _, e := range records {
		if m.match(e) {
			out = append(out, e)
		}
	}

	if !s.Active() {
		return out
	}

	slices.SortStableFunc(out, func(a, b Employee) int {
		return comparator.Compare(a, b, s)
	})
	return out
}

// Projector は直近の射影結果を保持します。
// キャッシュは同じ入力に対する再計算を省くだけで、結果は常に Project と同じです。
type Projector struct {
	tag language.Tag

	mu     sync.Mutex
	cached bool
	key    projectionKey
	result []Employee
}

type projectionKey struct {
	version  uint64
	criteria Criteria
	sort     SortState
}

// NewProjector は指定言語で並び替える Projector を生成します。
func NewProjector(tag language.Tag) *Projector {
	return &Projector{tag: tag}
}

// Project はスナップショットの版と条件が前回と同じならキャッシュを返します。
func (p *Projector) Project(snap Snapshot, c Criteria, s SortState) []Employee {
	key := projectionKey{version: snap.Version, criteria: c, sort: s}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.cached || p.key != key {
		p.result = project(snap.Employees, c, s, NewComparator(p.tag))
		p.key = key
		p.cached = true
	}

	return slices.Clone(p.result)
}
