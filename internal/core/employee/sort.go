package employee

import (
	"cmp"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortField は並び替え可能な項目です。
type SortField string

const (
	SortFieldNone       SortField = ""
	SortFieldName       SortField = "name"
	SortFieldEmail      SortField = "email"
	SortFieldAge        SortField = "age"
	SortFieldDepartment SortField = "department"
	SortFieldStatus     SortField = "status"
)

// SortFields は並び替え可能な項目を列の並び順で返します。
func SortFields() []SortField {
	return []SortField{SortFieldName, SortFieldEmail, SortFieldAge, SortFieldDepartment, SortFieldStatus}
}

// ParseSortField は文字列を SortField に変換します。空文字と "none" は並び替えなしです。
func ParseSortField(raw string) (SortField, error) {
	switch field := SortField(strings.ToLower(strings.TrimSpace(raw))); field {
	case "none", SortFieldNone:
		return SortFieldNone, nil
	case SortFieldName, SortFieldEmail, SortFieldAge, SortFieldDepartment, SortFieldStatus:
		return field, nil
	default:
		return SortFieldNone, ErrInvalidSortField
	}
}

// SortDirection は並び順です。
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortDirection は文字列を SortDirection に変換します。空文字は昇順です。
func ParseSortDirection(raw string) (SortDirection, error) {
	switch dir := SortDirection(strings.ToLower(strings.TrimSpace(raw))); dir {
	case "":
		return SortAsc, nil
	case SortAsc, SortDesc:
		return dir, nil
	default:
		return SortAsc, ErrInvalidSortDirection
	}
}

// SortState は現在の並び替え状態です。ゼロ値は並び替えなしを表します。
type SortState struct {
	Field     SortField
	Direction SortDirection
}

// Toggle は列見出しを選択したときの次の状態を返します。
// 同じ項目の昇順からは降順へ、それ以外は昇順へ切り替えます。
func (s SortState) Toggle(field SortField) SortState {
	if s.Field == field && s.Direction == SortAsc {
		return SortState{Field: field, Direction: SortDesc}
	}
	return SortState{Field: field, Direction: SortAsc}
}

// Active は並び替えが指定されているかを返します。
func (s SortState) Active() bool {
	return s.Field != SortFieldNone
}

func (s SortState) normalize() (SortState, error) {
	field, err := ParseSortField(string(s.Field))
	if err != nil {
		return SortState{}, err
	}
	dir, err := ParseSortDirection(string(s.Direction))
	if err != nil {
		return SortState{}, err
	}
	if field == SortFieldNone {
		return SortState{}, nil
	}
	return SortState{Field: field, Direction: dir}, nil
}

// sortKey は項目の値を型付きで保持します。age だけが数値です。
type sortKey struct {
	text    string
	number  int
	numeric bool
}

func (f SortField) key(e Employee) sortKey {
	switch f {
	case SortFieldName:
		return sortKey{text: e.Name}
	case SortFieldEmail:
		return sortKey{text: e.Email}
	case SortFieldAge:
		return sortKey{number: e.Age, numeric: true}
	case SortFieldDepartment:
		return sortKey{text: string(e.Department)}
	case SortFieldStatus:
		return sortKey{text: string(e.Status)}
	default:
		return sortKey{}
	}
}

// Comparator はロケールに従って社員を比較します。並行利用はできません。
type Comparator struct {
	collator *collate.Collator
}

// NewComparator は指定言語の照合順序で大文字小文字を区別しない Comparator を生成します。
func NewComparator(tag language.Tag) *Comparator {
	return &Comparator{collator: collate.New(tag, collate.IgnoreCase)}
}

// Compare は a と b を比較し -1, 0, 1 のいずれかを返します。
// 並び替えなしの場合は常に 0 です。
func (c *Comparator) Compare(a, b Employee, s SortState) int {
	if s.Field == SortFieldNone {
		return 0
	}

	ka, kb := s.Field.key(a), s.Field.key(b)

	var result int
	if ka.numeric && kb.numeric {
		result = cmp.Compare(ka.number, kb.number)
	} else {
		result = c.collator.CompareString(ka.text, kb.text)
	}

	if s.Direction == SortDesc {
		return -result
	}
	return result
}
