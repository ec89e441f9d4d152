package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoverSwallowsPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		defer Recover()
		panic("boom")
	})
}

func TestPrettyPrint(t *testing.T) {
	assert.NoError(t, PrettyPrint(map[string]interface{}{"message": "hello"}))
	assert.NoError(t, PrettyPrint("prefix", map[string]interface{}{"message": "hello"}))
}
