package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	assert.Equal(t, "Acme Corp", Clean("  Acme \n\t Corp  "))
	assert.Equal(t, "Cần Thơ", Clean("Cần   Thơ"))
	assert.Equal(t, "", Clean("   \n "))
}

func TestFold(t *testing.T) {
	assert.Equal(t, "can tho", Fold("Cần Thơ"))
	assert.Equal(t, "unknown company", Fold("  Unknown Company "))
	assert.Equal(t, "societe generale", Fold("Société Générale"))
}
