package sonago

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/darkclainer/sonago/pkg/sonapi"
)

func TestGetWordEmpty(t *testing.T) {
	result, err := GetWord(context.TODO(), "", false)
	assert.True(t, errors.Is(err, sonapi.ErrEmptyWord))
	assert.Nil(t, result)
}
