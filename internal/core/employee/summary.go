package employee

import "math"

// DepartmentCount は部署ごとの人数です。
type DepartmentCount struct {
	Department Department
	Count      int
}

// StatusSlice は状態別の円グラフ 1 区分です。
type StatusSlice struct {
	Status Status
	Name   string
	Count  int
	Fill   string
}

// Summary は全社員に対する集計結果です。絞り込みや並び替えの影響を受けません。
type Summary struct {
	Total       int
	Active      int
	Inactive    int
	Departments []DepartmentCount
	Status      []StatusSlice
}

const (
	activeFill   = "hsl(142, 76%, 36%)"
	inactiveFill = "hsl(38, 92%, 50%)"
)

// Summarize は記録全体を集計します。部署は初出順で、存在しない部署は含みません。
func Summarize(records []Employee) Summary {
	s := Summary{Total: len(records)}

	index := make(map[Department]int)
	for _, e := range records {
		if e.Status == StatusActive {
			s.Active++
		}

		i, ok := index[e.Department]
		if !ok {
			i = len(s.Departments)
			index[e.Department] = i
			s.Departments = append(s.Departments, DepartmentCount{Department: e.Department})
		}
		s.Departments[i].Count++
	}
	s.Inactive = s.Total - s.Active

	s.Status = []StatusSlice{
		{Status: StatusActive, Name: "Active", Count: s.Active, Fill: activeFill},
		{Status: StatusInactive, Name: "Inactive", Count: s.Inactive, Fill: inactiveFill},
	}

	return s
}

// DepartmentCounts は部署名から人数への対応を返します。
func (s Summary) DepartmentCounts() map[Department]int {
	out := make(map[Department]int, len(s.Departments))
	for _, dc := range s.Departments {
		out[dc.Department] = dc.Count
	}
	return out
}

// Percent は全体に対する割合を整数のパーセントで返します。
func (s StatusSlice) Percent(total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(s.Count) * 100 / float64(total)))
}
