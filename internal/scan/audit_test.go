package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAudit(t *testing.T) {
	tests := []struct {
		name    string
		numbers []string
		from    int
		to      int
		want    AuditReport
	}{
		{
			name:    "complete range",
			numbers: []string{"1", "2", "3"},
			from:    1, to: 3,
			want: AuditReport{},
		},
		{
			name:    "gap between eleven and thirteen",
			numbers: []string{"10", "11", "13"},
			from:    10, to: 14,
			want:    AuditReport{Missing: []int{12, 14}},
		},
		{
			name:    "duplicates reported once",
			numbers: []string{"1", "2", "2", "2", "3"},
			from:    1, to: 3,
			want:    AuditReport{Duplicates: []string{"2"}},
		},
		{
			name:    "non numeric numbers",
			numbers: []string{"1", "x", "2"},
			from:    1, to: 2,
			want:    AuditReport{NonNumeric: []string{"x"}},
		},
		{
			name:    "empty input",
			numbers: nil,
			from:    1, to: 2,
			want:    AuditReport{Missing: []int{1, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Audit(tt.numbers, tt.from, tt.to)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Clean(), got.Clean())
		})
	}
}

func TestAudit_DoesNotMutateInput(t *testing.T) {
	numbers := []string{"3", "1", "1"}
	Audit(numbers, 1, 3)
	assert.Equal(t, []string{"3", "1", "1"}, numbers)
}
