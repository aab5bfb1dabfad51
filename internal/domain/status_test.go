package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePaymentStatus(t *testing.T) {
	for _, valid := range []string{"pending", "paid", "failed", "refunded", "Paid"} {
		_, err := ParsePaymentStatus(valid)
		assert.NoError(t, err, "input %q", valid)
	}
	_, err := ParsePaymentStatus("settled")
	assert.True(t, IsValidation(err))
}

func TestParseLogType(t *testing.T) {
	for _, valid := range []string{"import", "export", "adjustment", "IMPORT"} {
		_, err := ParseLogType(valid)
		assert.NoError(t, err, "input %q", valid)
	}
	_, err := ParseLogType("restock")
	assert.True(t, IsValidation(err))
}

func TestParseProductStatus(t *testing.T) {
	_, err := ParseProductStatus("active")
	assert.NoError(t, err)
	_, err = ParseProductStatus("archived")
	assert.True(t, IsValidation(err))
}

func TestErrorKinds(t *testing.T) {
	assert.True(t, IsNotFound(NotFoundf("missing")))
	assert.True(t, IsConflict(Conflictf("taken")))
	assert.True(t, IsValidation(Validationf("bad")))
	assert.Equal(t, KindInternal, KindOf(assert.AnError))
	assert.Equal(t, KindInternal, KindOf(nil))
}
