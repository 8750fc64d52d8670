package pgerr_test

import (
	"errors"
	"fmt"
	"testing"

	"parceltrack/internal/adapters/out/postgres/pgerr"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeStateErr struct{ code string }

func (e fakeStateErr) Error() string    { return "server error " + e.code }
func (e fakeStateErr) SQLState() string { return e.code }

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"pq unique", &pq.Error{Code: "23505"}, true},
		{"wrapped pq unique", fmt.Errorf("insert: %w", &pq.Error{Code: "23505"}), true},
		{"pq other", &pq.Error{Code: "23502"}, false},
		{"gorm translated", gorm.ErrDuplicatedKey, true},
		{"sqlstate carrier", fakeStateErr{code: "23505"}, true},
		{"plain", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pgerr.IsUniqueViolation(tt.err))
		})
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, pgerr.IsForeignKeyViolation(&pq.Error{Code: "23503"}))
	assert.True(t, pgerr.IsForeignKeyViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, pgerr.IsForeignKeyViolation(fakeStateErr{code: "23503"}))
	assert.False(t, pgerr.IsForeignKeyViolation(&pq.Error{Code: "23505"}))
	assert.False(t, pgerr.IsForeignKeyViolation(nil))
}

func TestCode(t *testing.T) {
	assert.Equal(t, "23505", pgerr.Code(&pq.Error{Code: "23505"}))
	assert.Equal(t, "42P01", pgerr.Code(fakeStateErr{code: "42P01"}))
	assert.Empty(t, pgerr.Code(errors.New("not from the server")))
}

func TestConstraint(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pq.Error{Code: "23503", Constraint: "fk_status_history_package"})

	assert.Equal(t, "fk_status_history_package", pgerr.Constraint(err))
	assert.Empty(t, pgerr.Constraint(gorm.ErrForeignKeyViolated))
	assert.Empty(t, pgerr.Constraint(nil))
}
