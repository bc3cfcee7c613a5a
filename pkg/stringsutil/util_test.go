package stringsutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveEmptyStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, RemoveEmptyStrings([]string{"", "a", "", "b"}))
	assert.Nil(t, RemoveEmptyStrings([]string{"", ""}))
}

func TestSplitTrim(t *testing.T) {
	assert.Equal(t, []string{"http://a", "http://b"}, SplitTrim(" http://a , ,http://b ", ","))
	assert.Nil(t, SplitTrim("", ","))
}
